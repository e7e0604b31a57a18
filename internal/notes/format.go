package notes

import "strings"

const (
	defaultVersion = "0.0.1"
)

// Format renders a PatchStructure as human-readable patch notes.
// releaseDate is an ISO calendar date ("2025-11-30") or empty when no
// date is available; an empty date leaves the header without a suffix.
// Sections with a blank title or no items are skipped entirely.
func Format(st PatchStructure, releaseDate string) string {
	version := st.VersionSuggestion
	if version == "" {
		version = defaultVersion
	}
	summary := strings.TrimSpace(st.Summary)

	header := "Release v" + version
	if releaseDate != "" {
		header += " — " + releaseDate
	}

	lines := []string{header, "", "Summary", "- " + summary, ""}

	for _, sec := range st.Sections {
		title := strings.TrimSpace(sec.Title)
		if title == "" || len(sec.Items) == 0 {
			continue
		}
		lines = append(lines, title)
		for _, item := range sec.Items {
			lines = append(lines, "- "+item)
		}
		lines = append(lines, "")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
