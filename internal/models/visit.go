package models

// VisitStats summarizes recorded page views
type VisitStats struct {
	TotalViews     int64           `json:"total_views"`
	UniqueVisitors int64           `json:"unique_visitors"`
	ViewsToday     int64           `json:"views_today"`
	TopPaths       []PathViewCount `json:"top_paths"`
}

// PathViewCount is a page path with its view count
type PathViewCount struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}
