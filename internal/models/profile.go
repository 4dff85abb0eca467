package models

// Link is an outbound profile link (LinkedIn, GitHub, Calendly...)
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// TimelineEntry is one row of the experience or education timeline
type TimelineEntry struct {
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	Highlights   []string `json:"highlights"`
}

// Profile holds the biographical content for the site owner
type Profile struct {
	Name       string          `json:"name"`
	Headline   string          `json:"headline"`
	Location   string          `json:"location"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Bio        string          `json:"bio"` // markdown
	ResumePath string          `json:"resume_path"`
	Links      []Link          `json:"links"`
	Experience []TimelineEntry `json:"experience"`
	Education  []TimelineEntry `json:"education"`
}

// ContactInfo is the copy-to-clipboard payload
type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Content is the full authored dataset behind the site
type Content struct {
	Profile         Profile         `json:"profile"`
	Projects        []Project       `json:"projects"`
	SkillCategories []SkillCategory `json:"skill_categories"`
}
