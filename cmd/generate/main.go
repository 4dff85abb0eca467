package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"folio.dev/internal/config"
	"folio.dev/internal/content"
	"folio.dev/internal/models"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		fmt.Println("Writes the built-in site content to <output-dir>/" + config.ContentFile)
		os.Exit(1)
	}

	outputDir := os.Args[1]

	// Ensure output directory exists
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	c := content.Default()
	if err := check(c); err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR marshaling JSON: %v\n", err)
		os.Exit(1)
	}

	path := filepath.Join(outputDir, config.ContentFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR writing file: %v\n", err)
		os.Exit(1)
	}

	skills := 0
	for _, cat := range c.SkillCategories {
		skills += len(cat.Skills)
	}
	fmt.Printf("Created %s (%d projects, %d skills in %d categories)\n",
		path, len(c.Projects), skills, len(c.SkillCategories))
}

// check catches authoring mistakes before they reach the site
func check(c *models.Content) error {
	seen := make(map[int]string, len(c.Projects))
	for _, p := range c.Projects {
		if p.Title == "" {
			return fmt.Errorf("project %d has no title", p.ID)
		}
		if other, dup := seen[p.ID]; dup {
			return fmt.Errorf("projects %q and %q share id %d", other, p.Title, p.ID)
		}
		seen[p.ID] = p.Title
	}
	for _, cat := range c.SkillCategories {
		for _, s := range cat.Skills {
			if s.Proficiency < 0 || s.Proficiency > 100 {
				return fmt.Errorf("skill %s: proficiency %d out of range", s.Name, s.Proficiency)
			}
		}
	}
	return nil
}
