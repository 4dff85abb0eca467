package models

// ThemeState is the persisted light/dark flag
type ThemeState struct {
	IsDarkMode bool `json:"is_dark_mode"`
}

// ClassName returns the CSS class applied to the document root
func (t ThemeState) ClassName() string {
	if t.IsDarkMode {
		return "dark"
	}
	return "light"
}
