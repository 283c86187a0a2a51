package portfolio

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Service serves the portfolio dataset. It is immutable after NewService
// returns and safe for concurrent use without locking.
type Service struct {
	data Portfolio
}

// NewService loads the built-in dataset, assigns entry IDs and validates it.
func NewService() (*Service, error) {
	return newService(dataset(), uuid.NewString)
}

func newService(data Portfolio, newID func() string) (*Service, error) {
	for i := range data.Experience {
		if data.Experience[i].ID == "" {
			data.Experience[i].ID = newID()
		}
	}
	for i := range data.Projects {
		if data.Projects[i].ID == "" {
			data.Projects[i].ID = newID()
		}
	}
	if err := Validate(data); err != nil {
		return nil, err
	}
	return &Service{data: data}, nil
}

// Validate checks the dataset invariants: non-empty sections, enumerated
// skill levels, non-empty experience lists and unique entry IDs.
func Validate(p Portfolio) error {
	if strings.TrimSpace(p.Profile.Name) == "" {
		return fmt.Errorf("%w: profile name is empty", ErrInvalidDataset)
	}
	if len(p.Skills) == 0 || len(p.Experience) == 0 || len(p.Projects) == 0 {
		return fmt.Errorf("%w: skills, experience and projects must be non-empty", ErrInvalidDataset)
	}
	for i, s := range p.Skills {
		if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.Category) == "" {
			return fmt.Errorf("%w: skill %d missing name or category", ErrInvalidDataset, i)
		}
		if !validLevel(s.Level) {
			return fmt.Errorf("%w: skill %q has level %q", ErrInvalidDataset, s.Name, s.Level)
		}
	}
	seen := make(map[string]struct{}, len(p.Experience)+len(p.Projects))
	for _, e := range p.Experience {
		if len(e.Description) == 0 || len(e.Technologies) == 0 {
			return fmt.Errorf("%w: experience %q needs description and technologies", ErrInvalidDataset, e.Company)
		}
		if err := claimID(seen, e.ID); err != nil {
			return err
		}
	}
	for _, pr := range p.Projects {
		if err := claimID(seen, pr.ID); err != nil {
			return err
		}
	}
	return nil
}

func claimID(seen map[string]struct{}, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidDataset)
	}
	if _, dup := seen[id]; dup {
		return fmt.Errorf("%w: duplicate id %q", ErrInvalidDataset, id)
	}
	seen[id] = struct{}{}
	return nil
}

func (s *Service) Profile() Profile {
	return s.data.Profile
}

func (s *Service) Skills() []Skill {
	return slices.Clone(s.data.Skills)
}

func (s *Service) Experience() []Experience {
	out := make([]Experience, len(s.data.Experience))
	for i, e := range s.data.Experience {
		e.Description = slices.Clone(e.Description)
		e.Technologies = slices.Clone(e.Technologies)
		out[i] = e
	}
	return out
}

func (s *Service) Projects() []Project {
	out := make([]Project, len(s.data.Projects))
	for i, p := range s.data.Projects {
		p.Technologies = slices.Clone(p.Technologies)
		out[i] = p
	}
	return out
}

// Record returns a copy of the whole dataset.
func (s *Service) Record() Portfolio {
	return Portfolio{
		Profile:    s.Profile(),
		Skills:     s.Skills(),
		Experience: s.Experience(),
		Projects:   s.Projects(),
	}
}

// Section looks a section up by name.
func (s *Service) Section(name string) (any, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case SectionProfile:
		return s.Profile(), nil
	case SectionSkills:
		return s.Skills(), nil
	case SectionExperience:
		return s.Experience(), nil
	case SectionProjects:
		return s.Projects(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, name)
	}
}
