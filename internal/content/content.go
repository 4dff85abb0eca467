// Package content holds the authored dataset the site renders when no
// content file has been generated.
package content

import "folio.dev/internal/models"

// Default returns a fresh copy of the built-in dataset.
func Default() *models.Content {
	return &models.Content{
		Profile:         profile(),
		Projects:        projects(),
		SkillCategories: skillCategories(),
	}
}

func profile() models.Profile {
	return models.Profile{
		Name:     "Jordan Avery",
		Headline: "Full-Stack Engineer",
		Location: "Denver, CO",
		Email:    "jordan.avery@example.com",
		Phone:    "+1 (555) 010-4242",
		Bio: `I build web products end to end, from **data models** to the last pixel.

Lately that means Go services, React front ends and the CI/CD glue between
them. I like small teams, clear ownership and shipping every week.`,
		ResumePath: "/static/resume/jordan-avery-resume.pdf",
		Links: []models.Link{
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/jordan-avery"},
			{Label: "GitHub", URL: "https://github.com/jordan-avery"},
			{Label: "Calendly", URL: "https://calendly.com/jordan-avery/30min"},
		},
		Experience: []models.TimelineEntry{
			{
				Title:        "Software Engineer",
				Organization: "Brightline Logistics",
				Start:        "Mar 2022",
				End:          "Present",
				Highlights: []string{
					"Led the migration of shipment tracking to an event-driven pipeline",
					"Cut p95 API latency from 800ms to 120ms with query and cache work",
					"Mentored three junior engineers through their first on-call rotations",
				},
			},
			{
				Title:        "Junior Developer",
				Organization: "Pixel & Pine Studio",
				Start:        "Jun 2020",
				End:          "Feb 2022",
				Highlights: []string{
					"Shipped twelve client marketing sites on a shared component library",
					"Introduced automated accessibility checks into the release pipeline",
				},
			},
		},
		Education: []models.TimelineEntry{
			{
				Title:        "B.S. Computer Science",
				Organization: "University of Colorado",
				Start:        "Aug 2016",
				End:          "May 2020",
				Highlights:   []string{"Capstone: real-time transit arrival predictions"},
			},
		},
	}
}

func projects() []models.Project {
	return []models.Project{
		{
			ID:           1,
			Title:        "E-Commerce Platform",
			Description:  "A headless storefront with **inventory sync**, Stripe checkout and an admin dashboard for order management.",
			Image:        "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=800",
			Type:         "Web Application",
			Complexity:   "Advanced",
			Technologies: []string{"React", "Node.js", "PostgreSQL", "Stripe"},
			Metrics: []models.Metric{
				{Label: "Conversion lift", Value: "18%"},
				{Label: "Page load", Value: "1.2s"},
			},
			Status:    "Completed",
			Duration:  "6 months",
			TeamSize:  4,
			Role:      "Lead Developer",
			GitHubURL: "https://github.com/jordan-avery/storefront",
			Featured:  true,
		},
		{
			ID:           2,
			Title:        "Task Management App",
			Description:  "A collaborative kanban board with real-time updates, drag-and-drop ordering and offline support.",
			Image:        "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=800",
			Type:         "Productivity",
			Complexity:   "Intermediate",
			Technologies: []string{"Vue.js", "Firebase", "TypeScript"},
			Metrics: []models.Metric{
				{Label: "Active users", Value: "2.4k"},
			},
			Status:    "Completed",
			Duration:  "3 months",
			TeamSize:  2,
			Role:      "Full-Stack Developer",
			GitHubURL: "https://github.com/jordan-avery/taskboard",
		},
		{
			ID:           3,
			Title:        "Weather Dashboard",
			Description:  "Location-aware forecasts with interactive charts, severe weather alerts and a seven-day outlook.",
			Image:        "https://images.unsplash.com/photo-1504608524841-42fe6f032b4b?w=800",
			Type:         "Data Visualization",
			Complexity:   "Beginner",
			Technologies: []string{"React", "D3.js", "OpenWeather API"},
			Metrics: []models.Metric{
				{Label: "Lighthouse", Value: "98"},
			},
			Status:   "Live",
			Duration: "1 month",
			Role:     "Solo Developer",
			LiveURL:  "https://weather.jordan-avery.dev",
			Featured: true,
		},
	}
}

func skillCategories() []models.SkillCategory {
	return []models.SkillCategory{
		{
			Name: "Frontend",
			Icon: "monitor",
			Skills: []models.Skill{
				{Name: "React", Proficiency: 90, Experience: "5 years", Projects: []string{"E-Commerce Platform", "Weather Dashboard"}, Timeline: "2019 - present", NextGoal: "React Server Components", Certified: false},
				{Name: "TypeScript", Proficiency: 85, Experience: "4 years", Projects: []string{"Task Management App"}, Timeline: "2020 - present", NextGoal: "Advanced type-level patterns", Certified: false},
				{Name: "Tailwind CSS", Proficiency: 80, Experience: "3 years", Projects: []string{"Weather Dashboard"}, Timeline: "2021 - present", NextGoal: "Design token pipelines", Certified: false},
			},
		},
		{
			Name: "Backend",
			Icon: "server",
			Skills: []models.Skill{
				{Name: "Go", Proficiency: 80, Experience: "3 years", Projects: []string{"E-Commerce Platform"}, Timeline: "2021 - present", NextGoal: "Contribute to an open-source router", Certified: false},
				{Name: "Node.js", Proficiency: 85, Experience: "5 years", Projects: []string{"E-Commerce Platform"}, Timeline: "2019 - present", NextGoal: "Streams and worker threads", Certified: false},
				{Name: "PostgreSQL", Proficiency: 75, Experience: "4 years", Projects: []string{"E-Commerce Platform"}, Timeline: "2020 - present", NextGoal: "Query planner internals", Certified: true},
			},
		},
		{
			Name: "Cloud & DevOps",
			Icon: "cloud",
			Skills: []models.Skill{
				{Name: "AWS", Proficiency: 70, Experience: "3 years", Projects: []string{"E-Commerce Platform"}, Timeline: "2021 - present", NextGoal: "Solutions Architect Professional", Certified: true},
				{Name: "Docker", Proficiency: 80, Experience: "4 years", Projects: []string{"Task Management App"}, Timeline: "2020 - present", NextGoal: "Rootless builds", Certified: false},
			},
		},
	}
}
