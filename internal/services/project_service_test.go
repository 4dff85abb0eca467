package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio.dev/internal/content"
	"folio.dev/internal/models"
)

func newTestProjectService() *ProjectService {
	return NewProjectService(&models.ProjectList{Projects: content.Default().Projects})
}

func titles(projects []models.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.Title
	}
	return out
}

func TestFilterIncludesProjectMatchingEveryCategory(t *testing.T) {
	svc := newTestProjectService()

	for _, p := range svc.GetAll() {
		got := svc.Filter(ProjectQuery{
			Types:        []string{p.Type},
			Complexities: []string{p.Complexity},
			Statuses:     []string{p.Status},
		})
		assert.Contains(t, titles(got), p.Title)
		for _, other := range got {
			assert.Equal(t, p.Type, other.Type)
			assert.Equal(t, p.Complexity, other.Complexity)
			assert.Equal(t, p.Status, other.Status)
		}
	}
}

func TestFilterExcludesProjectWhenAnyCategoryExcludesIt(t *testing.T) {
	svc := newTestProjectService()

	for _, p := range svc.GetAll() {
		got := svc.Filter(ProjectQuery{
			Types:    []string{p.Type},
			Statuses: []string{"Archived"},
		})
		assert.NotContains(t, titles(got), p.Title)
	}
}

func TestFilterByLiveStatus(t *testing.T) {
	svc := newTestProjectService()

	statuses := make([]string, 0, 3)
	for _, p := range svc.GetAll() {
		statuses = append(statuses, p.Status)
	}
	require.Equal(t, []string{"Completed", "Completed", "Live"}, statuses)

	got := svc.Filter(ProjectQuery{Statuses: []string{"Live"}})
	require.Len(t, got, 1)
	assert.Equal(t, "Weather Dashboard", got[0].Title)
}

func TestFilterTechnologyMatchesAnySelected(t *testing.T) {
	svc := newTestProjectService()

	got := svc.Filter(ProjectQuery{Technologies: []string{"react"}})
	assert.Equal(t, []string{"E-Commerce Platform", "Weather Dashboard"}, titles(got))

	got = svc.Filter(ProjectQuery{Technologies: []string{"Firebase", "D3.js"}})
	assert.Equal(t, []string{"Task Management App", "Weather Dashboard"}, titles(got))
}

func TestFilterSearch(t *testing.T) {
	svc := newTestProjectService()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"title", "weather", []string{"Weather Dashboard"}},
		{"description", "kanban", []string{"Task Management App"}},
		{"technology", "stripe", []string{"E-Commerce Platform"}},
		{"blank", "   ", []string{"E-Commerce Platform", "Task Management App", "Weather Dashboard"}},
		{"no match", "blockchain", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Filter(ProjectQuery{Search: tt.search})
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestSortOrders(t *testing.T) {
	svc := newTestProjectService()

	alpha := svc.Filter(ProjectQuery{Sort: SortAlphabetical})
	for i := 1; i < len(alpha); i++ {
		assert.LessOrEqual(t, strings.ToLower(alpha[i-1].Title), strings.ToLower(alpha[i].Title))
	}

	recent := svc.Filter(ProjectQuery{Sort: SortRecent})
	for i := 1; i < len(recent); i++ {
		assert.GreaterOrEqual(t, recent[i-1].ID, recent[i].ID)
	}

	byComplexity := svc.Filter(ProjectQuery{Sort: SortComplexity})
	assert.Equal(t, []string{"Advanced", "Intermediate", "Beginner"},
		[]string{byComplexity[0].Complexity, byComplexity[1].Complexity, byComplexity[2].Complexity})
}

func TestSortIsIdempotent(t *testing.T) {
	svc := newTestProjectService()

	for _, key := range []SortKey{SortDefault, SortRecent, SortAlphabetical, SortComplexity} {
		once := svc.Filter(ProjectQuery{Sort: key})
		twice := append([]models.Project(nil), once...)
		SortProjects(twice, key)
		assert.Equal(t, titles(once), titles(twice), "sort %q", key)
	}
}

func TestFilterDoesNotReorderDataset(t *testing.T) {
	svc := newTestProjectService()
	before := titles(svc.GetAll())

	svc.Filter(ProjectQuery{Sort: SortAlphabetical})
	svc.Filter(ProjectQuery{Sort: SortRecent})

	assert.Equal(t, before, titles(svc.GetAll()))
}

func TestClearFiltersRestoresFullList(t *testing.T) {
	svc := newTestProjectService()

	q := ProjectQuery{
		Types:        []string{"Productivity"},
		Technologies: []string{"Vue.js"},
		Statuses:     []string{"Completed"},
		Search:       "kanban",
		Sort:         SortAlphabetical,
	}
	require.Len(t, svc.Filter(q), 1)

	cleared := ClearFilters(q)
	assert.True(t, cleared.IsZero())
	assert.Equal(t, svc.GetAll(), svc.Filter(cleared))
}

func TestGetByID(t *testing.T) {
	svc := newTestProjectService()

	p, err := svc.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Task Management App", p.Title)

	_, err = svc.GetByID(99)
	assert.Error(t, err)
}

func TestFacets(t *testing.T) {
	facets := newTestProjectService().Facets()

	assert.Equal(t, []models.Facet{{Value: "Completed", Count: 2}, {Value: "Live", Count: 1}}, facets.Statuses)
	assert.Contains(t, facets.Technologies, models.Facet{Value: "React", Count: 2})
	assert.Len(t, facets.Types, 3)
}

func TestParseSortKey(t *testing.T) {
	for in, want := range map[string]SortKey{
		"":             SortDefault,
		"default":      SortDefault,
		"Recent":       SortRecent,
		"alphabetical": SortAlphabetical,
		" complexity ": SortComplexity,
	} {
		got, err := ParseSortKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSortKey("popularity")
	assert.Error(t, err)
}

func TestFeatured(t *testing.T) {
	assert.Equal(t, []string{"E-Commerce Platform", "Weather Dashboard"}, titles(newTestProjectService().Featured()))
}
