package portfolio

// Skill levels.
const (
	LevelExpert       = "Expert"
	LevelAdvanced     = "Advanced"
	LevelIntermediate = "Intermediate"
)

// Section names accepted by Service.Section.
const (
	SectionProfile    = "profile"
	SectionSkills     = "skills"
	SectionExperience = "experience"
	SectionProjects   = "projects"
)

type Contact struct {
	Email     string `json:"email"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location"`
}

type Profile struct {
	Name     string  `json:"name"`
	Title    string  `json:"title"`
	Tagline  string  `json:"tagline"`
	Summary  string  `json:"summary"`
	Contact  Contact `json:"contact"`
	Location string  `json:"location"`
}

type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level"`
}

type Experience struct {
	ID             string   `json:"id"`
	Company        string   `json:"company"`
	Position       string   `json:"position"`
	Duration       string   `json:"duration"`
	Location       string   `json:"location"`
	Description    []string `json:"description"`
	Technologies   []string `json:"technologies"`
	ConsultantRole string   `json:"consultant_role,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	Image        string   `json:"image,omitempty"`
}

// Portfolio is the whole dataset served by the API.
type Portfolio struct {
	Profile    Profile      `json:"profile"`
	Skills     []Skill      `json:"skills"`
	Experience []Experience `json:"experience"`
	Projects   []Project    `json:"projects"`
}

func validLevel(level string) bool {
	switch level {
	case LevelExpert, LevelAdvanced, LevelIntermediate:
		return true
	default:
		return false
	}
}
