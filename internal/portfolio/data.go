package portfolio

// RootMessage is returned by GET /api/.
const RootMessage = "Erik Sjaastad Portfolio API"

// dataset returns the hand-authored portfolio. Experience and project IDs are
// left empty and assigned when the service loads the data.
func dataset() Portfolio {
	return Portfolio{
		Profile: Profile{
			Name:    "Erik Sjaastad",
			Title:   "Senior Software Engineer",
			Tagline: "React | Professional Traveler | Innovation Focused",
			Summary: "Dynamic Senior Software Engineer with 10+ years of experience, a positive and collaborative attitude, " +
				"and an eye towards continual improvement and innovation. Dedicated to creating and implementing standards " +
				"that maximize productivity and minimize churn. Proven ability to ramp up quickly and perform above expectations.",
			Contact: Contact{
				Email:     "erik@logicdesigns.com",
				LinkedIn:  "www.linkedin.com/in/erikodin",
				Portfolio: "eriksjaastad.com",
				Location:  "United States",
			},
			Location: "United States",
		},
		Skills: []Skill{
			{Name: "React", Category: "Frontend", Level: LevelExpert},
			{Name: "Redux", Category: "Frontend", Level: LevelExpert},
			{Name: "TypeScript", Category: "Frontend", Level: LevelAdvanced},
			{Name: "JavaScript", Category: "Frontend", Level: LevelExpert},
			{Name: "HTML5", Category: "Frontend", Level: LevelExpert},
			{Name: "CSS3", Category: "Frontend", Level: LevelExpert},
			{Name: "Node.js", Category: "Backend", Level: LevelAdvanced},
			{Name: "API Development", Category: "Backend", Level: LevelAdvanced},
			{Name: "Python", Category: "Backend", Level: LevelIntermediate},
			{Name: "WordPress", Category: "CMS", Level: LevelAdvanced},
			{Name: "PHP", Category: "Backend", Level: LevelIntermediate},
			{Name: "MySQL", Category: "Database", Level: LevelIntermediate},
			{Name: "Git", Category: "Tools", Level: LevelAdvanced},
			{Name: "Webpack", Category: "Tools", Level: LevelAdvanced},
			{Name: "Responsive Design", Category: "Design", Level: LevelExpert},
			{Name: "Performance Optimization", Category: "Optimization", Level: LevelAdvanced},
			{Name: "SEO", Category: "Optimization", Level: LevelAdvanced},
		},
		Experience: []Experience{
			{
				Company:  "98point6 Inc.",
				Position: "Software Engineer",
				Duration: "April 2022 - August 2022",
				Location: "Seattle, Washington",
				Description: []string{
					"Key member of a small engineering team building self-service dashboards",
					"Developed doctor-patient communication portal",
					"Worked on patient surveys and chat client functionality",
				},
				Technologies:   []string{"React", "TypeScript", "Redux"},
				ConsultantRole: "Rooster Park Consultant",
			},
			{
				Company:  "iStreamPlanet",
				Position: "Software Engineer",
				Duration: "September 2018 - January 2022",
				Location: "Greater Seattle Area",
				Description: []string{
					"Built customer-facing self-service dashboards for live streaming platform",
					"Developed React components for scheduling content and managing live events",
					"Created Pebble, an open-source design system with styled React components",
					"Built APIs with Golang and Node.js, integrated with Auth0 and MongoDB",
					"Mentored junior engineers and implemented feature flags with LaunchDarkly",
				},
				Technologies: []string{"React", "Redux", "Golang", "Node.js", "MongoDB", "Auth0"},
			},
			{
				Company:  "Redfin",
				Position: "Software Engineer",
				Duration: "November 2017 - June 2018",
				Location: "Greater Seattle Area",
				Description: []string{
					"Worked on Brand Awareness team focusing on performance and accessibility",
					"Developed reusable React components implemented site-wide",
					"Improved homepage performance, SEO, and test coverage",
				},
				Technologies:   []string{"React", "JavaScript", "HTML", "Less"},
				ConsultantRole: "Rooster Park Consultant",
			},
			{
				Company:  "DoubleDown Interactive",
				Position: "Software Engineer",
				Duration: "April 2017 - October 2017",
				Location: "Greater Seattle Area",
				Description: []string{
					"Developed slot games using custom library built on Google Closure",
					"Collaborated with Unity artists to refine export processes",
					"Consulted with IGT to modernize workflow processes",
				},
				Technologies:   []string{"JavaScript", "Google Closure", "Soy Templates"},
				ConsultantRole: "Rooster Park Consultant",
			},
			{
				Company:  "LogicDesigns",
				Position: "Owner/Founder",
				Duration: "July 1998 - December 2008",
				Location: "Greater Seattle Area",
				Description: []string{
					"Built and scaled network of websites generating $240K revenue in 2 years",
					"Managed team of freelance designers and backend programmers",
					"Implemented SEO, SEM, and affiliate marketing strategies",
					"Created custom analytics and split-tested designs",
				},
				Technologies: []string{"PHP", "MySQL", "HTML", "CSS", "JavaScript"},
			},
		},
		Projects: []Project{
			{
				Title:        "Gerrymander Explorer",
				Description:  "Interactive web application exploring gerrymandering via US congressional districts map with real census data",
				Technologies: []string{"React", "Census API", "Data Visualization"},
				GitHub:       "github.com/eriksjaastad/gerrymander",
			},
			{
				Title:        "Indulge - Seattle Tweet Map",
				Description:  "Real-time map visualization of Seattle tweets to discover local events and trends",
				Technologies: []string{"Node.js", "Express", "MongoDB", "Twitter API", "Socket.IO", "Angular"},
				GitHub:       "github.com/eriksjaastad/indulge",
			},
			{
				Title:        "Pebble Design System",
				Description:  "Open-source design system with styled React components, reducing development time and increasing reliability",
				Technologies: []string{"React", "Styled Components", "Storybook", "Design Systems"},
			},
			{
				Title:        "iStreamPlanet Dashboard",
				Description:  "Customer-facing self-service platform for managing live streaming events, used for major events like Olympics and World Cup",
				Technologies: []string{"React", "Redux", "Node.js", "MongoDB", "Auth0"},
			},
		},
	}
}
