package models

// Skill is a single entry on the skills page
type Skill struct {
	Name        string   `json:"name"`
	Proficiency int      `json:"proficiency"` // 0-100
	Experience  string   `json:"experience"`
	Projects    []string `json:"projects"`
	Timeline    string   `json:"timeline"`
	NextGoal    string   `json:"next_goal"`
	Certified   bool     `json:"certified"`
}

// SkillCategory groups related skills
type SkillCategory struct {
	Name   string  `json:"name"`
	Icon   string  `json:"icon"`
	Skills []Skill `json:"skills"`
}

// SkillSummary aggregates the skills dataset for the page header
type SkillSummary struct {
	Categories      int     `json:"categories"`
	TotalSkills     int     `json:"total_skills"`
	Certified       int     `json:"certified"`
	MeanProficiency float64 `json:"mean_proficiency"`
}
