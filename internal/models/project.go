package models

// Project represents a portfolio project
type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Type         string   `json:"type"`
	Complexity   string   `json:"complexity"`
	Technologies []string `json:"technologies"`
	Metrics      []Metric `json:"metrics"`
	Status       string   `json:"status"`
	Duration     string   `json:"duration"`
	TeamSize     int      `json:"team_size,omitempty"`
	Role         string   `json:"role,omitempty"`
	GitHubURL    string   `json:"github_url,omitempty"`
	LiveURL      string   `json:"live_url,omitempty"`
	Featured     bool     `json:"featured"`
}

// Metric is a labelled outcome shown on a project card
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// Facet is one selectable filter value and how many projects carry it
type Facet struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ProjectFacets lists the available filter values per category
type ProjectFacets struct {
	Types        []Facet `json:"types"`
	Technologies []Facet `json:"technologies"`
	Complexities []Facet `json:"complexities"`
	Statuses     []Facet `json:"statuses"`
}
