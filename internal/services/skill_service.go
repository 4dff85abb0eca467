package services

import (
	"fmt"
	"strings"

	"folio.dev/internal/models"
)

// SkillService serves the skills page dataset
type SkillService struct {
	categories []models.SkillCategory
}

// NewSkillService creates a new SkillService
func NewSkillService(categories []models.SkillCategory) *SkillService {
	return &SkillService{categories: categories}
}

// GetAll returns every category in authored order
func (s *SkillService) GetAll() []models.SkillCategory {
	return s.categories
}

// GetCategory looks a category up by name, ignoring case
func (s *SkillService) GetCategory(name string) (*models.SkillCategory, error) {
	for i := range s.categories {
		if strings.EqualFold(s.categories[i].Name, name) {
			return &s.categories[i], nil
		}
	}
	return nil, fmt.Errorf("skill category not found: %s", name)
}

// Summary aggregates counts across all categories
func (s *SkillService) Summary() models.SkillSummary {
	summary := models.SkillSummary{Categories: len(s.categories)}
	total := 0
	for _, c := range s.categories {
		for _, sk := range c.Skills {
			summary.TotalSkills++
			total += sk.Proficiency
			if sk.Certified {
				summary.Certified++
			}
		}
	}
	if summary.TotalSkills > 0 {
		summary.MeanProficiency = float64(total) / float64(summary.TotalSkills)
	}
	return summary
}
