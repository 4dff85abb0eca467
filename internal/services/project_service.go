package services

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"folio.dev/internal/models"
)

// SortKey selects the ordering of filtered projects
type SortKey string

const (
	SortDefault      SortKey = ""
	SortRecent       SortKey = "recent"
	SortAlphabetical SortKey = "alphabetical"
	SortComplexity   SortKey = "complexity"
)

// ParseSortKey validates a sort key from user input
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortDefault, SortRecent, SortAlphabetical, SortComplexity:
		return k, nil
	case "default":
		return SortDefault, nil
	default:
		return SortDefault, fmt.Errorf("invalid sort key: %s", s)
	}
}

var complexityRank = map[string]int{
	"beginner":     1,
	"intermediate": 2,
	"advanced":     3,
}

// ProjectQuery is the set of active filter selections on the projects page.
// Selections within a category are OR'd, categories are AND'd.
type ProjectQuery struct {
	Types        []string `json:"types"`
	Technologies []string `json:"technologies"`
	Complexities []string `json:"complexities"`
	Statuses     []string `json:"statuses"`
	Search       string   `json:"search"`
	Sort         SortKey  `json:"sort"`
}

// IsZero reports whether no filter, search or sort is active
func (q ProjectQuery) IsZero() bool {
	return len(q.Types) == 0 && len(q.Technologies) == 0 &&
		len(q.Complexities) == 0 && len(q.Statuses) == 0 &&
		strings.TrimSpace(q.Search) == "" && q.Sort == SortDefault
}

// ProjectService handles project-related operations
type ProjectService struct {
	projects *models.ProjectList
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects *models.ProjectList) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.projects.Projects
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id int) (*models.Project, error) {
	for i := range s.projects.Projects {
		if s.projects.Projects[i].ID == id {
			return &s.projects.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("project not found: %d", id)
}

// Featured returns the projects flagged for the home page
func (s *ProjectService) Featured() []models.Project {
	var featured []models.Project
	for _, p := range s.projects.Projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// Filter applies q to the dataset and returns a new slice; the dataset
// itself is never reordered.
func (s *ProjectService) Filter(q ProjectQuery) []models.Project {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	result := make([]models.Project, 0, len(s.projects.Projects))
	for _, p := range s.projects.Projects {
		if !matchesAny(q.Types, p.Type) ||
			!matchesAny(q.Complexities, p.Complexity) ||
			!matchesAny(q.Statuses, p.Status) ||
			!matchesTechnologies(q.Technologies, p.Technologies) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		result = append(result, p)
	}

	SortProjects(result, q.Sort)
	return result
}

// ClearFilters returns the query with every selection, the search text and
// the sort key reset
func ClearFilters(ProjectQuery) ProjectQuery {
	return ProjectQuery{}
}

// SortProjects orders projects in place. The sort is stable, so applying
// the same key twice leaves the slice unchanged.
func SortProjects(projects []models.Project, key SortKey) {
	switch key {
	case SortRecent:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].ID > projects[j].ID
		})
	case SortAlphabetical:
		sort.SliceStable(projects, func(i, j int) bool {
			return strings.ToLower(projects[i].Title) < strings.ToLower(projects[j].Title)
		})
	case SortComplexity:
		sort.SliceStable(projects, func(i, j int) bool {
			ri := complexityRank[strings.ToLower(projects[i].Complexity)]
			rj := complexityRank[strings.ToLower(projects[j].Complexity)]
			if ri != rj {
				return ri > rj
			}
			return projects[i].ID > projects[j].ID
		})
	}
}

// Facets counts the distinct values of each filterable category
func (s *ProjectService) Facets() models.ProjectFacets {
	types := map[string]int{}
	techs := map[string]int{}
	complexities := map[string]int{}
	statuses := map[string]int{}

	for _, p := range s.projects.Projects {
		types[p.Type]++
		complexities[p.Complexity]++
		statuses[p.Status]++
		for _, t := range p.Technologies {
			techs[t]++
		}
	}

	return models.ProjectFacets{
		Types:        toFacets(types),
		Technologies: toFacets(techs),
		Complexities: toFacets(complexities),
		Statuses:     toFacets(statuses),
	}
}

func toFacets(counts map[string]int) []models.Facet {
	facets := make([]models.Facet, 0, len(counts))
	for value, count := range counts {
		if value == "" {
			continue
		}
		facets = append(facets, models.Facet{Value: value, Count: count})
	}
	slices.SortFunc(facets, func(a, b models.Facet) int {
		return strings.Compare(a.Value, b.Value)
	})
	return facets
}

// matchesAny is true when no selection is active or value is selected
func matchesAny(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}

func matchesTechnologies(selected, technologies []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, t := range technologies {
		if matchesAny(selected, t) {
			return true
		}
	}
	return false
}

func matchesSearch(p models.Project, search string) bool {
	if strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.Description), search) {
		return true
	}
	for _, t := range p.Technologies {
		if strings.Contains(strings.ToLower(t), search) {
			return true
		}
	}
	return false
}
