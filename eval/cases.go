// Package eval runs offline checks of the structured note generator
// against a collection of expectation cases.
package eval

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one expectation: feed Input to the generator and assert each
// Expected pattern appears (case-insensitively) in the JSON-serialized
// structure.
type Case struct {
	Name     string   `yaml:"name"`
	Input    string   `yaml:"input"`
	Expected []string `yaml:"expected"`
}

// LoadCases reads a YAML case file.
func LoadCases(path string) ([]Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cases: %w", err)
	}

	var cases []Case
	if err := yaml.Unmarshal(raw, &cases); err != nil {
		return nil, fmt.Errorf("parse cases: %w", err)
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("no cases in %s", path)
	}
	return cases, nil
}

// DefaultCases returns the built-in case collection used when no case
// file is given.
func DefaultCases() []Case {
	return []Case{
		{
			Name:     "bug fix classification",
			Input:    "Fixed login crash\nFixed broken avatar upload",
			Expected: []string{"bug fixes", "login"},
		},
		{
			Name:     "feature classification",
			Input:    "Added dark mode\nIntroduced keyboard shortcuts",
			Expected: []string{"new features", "dark mode"},
		},
		{
			Name:     "improvement classification",
			Input:    "Improved startup speed\nOptimized image loading",
			Expected: []string{"improvements", "startup"},
		},
		{
			Name:     "mixed bullets keep all groups",
			Input:    "Fixed login crash\nAdded dark mode\nImproved startup speed",
			Expected: []string{"new features", "improvements", "bug fixes"},
		},
		{
			Name:     "uncategorized lines land somewhere",
			Input:    "Rewrote the documentation\nBumped dependencies",
			Expected: []string{"sections", "documentation"},
		},
		{
			Name:     "required keys always present",
			Input:    "Added export to CSV",
			Expected: []string{"version_suggestion", "summary", "sections", "needs_date"},
		},
	}
}
