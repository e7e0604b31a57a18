package generate

import (
	"fmt"
	"strings"

	"github.com/KhanNadman/llm-patchsmith/internal/notes"
)

const fallbackVersion = "0.1.0"

// classifyRules map keyword sets to section titles, evaluated
// top-to-bottom per line. The first matching rule wins, so a line with
// both "fixed" and "added" lands in Bug Fixes.
var classifyRules = []struct {
	title    string
	keywords []string
}{
	{"Bug Fixes", []string{"fix", "fixed", "bug", "issue", "error", "crash"}},
	{"New Features", []string{"add", "added", "new", "introduc"}},
	{"Improvements", []string{"improv", "optimiz", "faster", "performance", "speed"}},
}

// displayOrder fixes section ordering in the rendered notes regardless
// of classification order.
var displayOrder = []string{"New Features", "Improvements", "Bug Fixes", "Other Changes"}

// Fallback deterministically derives a PatchStructure from the bullets
// using keyword classification. It is used whenever the model call
// fails or returns unparseable content.
func Fallback(bullets string) notes.PatchStructure {
	var lines []string
	for _, raw := range strings.Split(bullets, "\n") {
		line := strings.TrimSpace(strings.Trim(raw, "- "))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	buckets := make(map[string][]string, len(displayOrder))
	for _, line := range lines {
		title := classify(line)
		buckets[title] = append(buckets[title], line)
	}

	var sections []notes.Section
	for _, title := range displayOrder {
		if items := buckets[title]; len(items) > 0 {
			sections = append(sections, notes.Section{Title: title, Items: items})
		}
	}

	summary := fmt.Sprintf(
		"This release includes %d change(s) across new features, improvements, and fixes.",
		len(lines))

	return notes.PatchStructure{
		VersionSuggestion: fallbackVersion,
		Summary:           summary,
		Sections:          sections,
		NeedsDate:         true,
	}
}

func classify(line string) string {
	lowered := strings.ToLower(line)
	for _, rule := range classifyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.title
			}
		}
	}
	return "Other Changes"
}
