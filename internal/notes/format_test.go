package notes

import (
	"strings"
	"testing"
)

func TestFormat_FullDocument(t *testing.T) {
	st := PatchStructure{
		VersionSuggestion: "1.3.0",
		Summary:           "A release with features and fixes.",
		Sections: []Section{
			{Title: "New Features", Items: []string{"Added dark mode"}},
			{Title: "Bug Fixes", Items: []string{"Fixed login crash", "Fixed typo"}},
		},
	}

	got := Format(st, "2025-11-30")

	want := strings.Join([]string{
		"Release v1.3.0 — 2025-11-30",
		"",
		"Summary",
		"- A release with features and fixes.",
		"",
		"New Features",
		"- Added dark mode",
		"",
		"Bug Fixes",
		"- Fixed login crash",
		"- Fixed typo",
	}, "\n")

	if got != want {
		t.Errorf("unexpected output:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormat_NoReleaseDate(t *testing.T) {
	st := PatchStructure{VersionSuggestion: "2.0.0", Summary: "Big release."}

	got := Format(st, "")

	if !strings.HasPrefix(got, "Release v2.0.0\n") {
		t.Errorf("header should have no date suffix, got %q", strings.SplitN(got, "\n", 2)[0])
	}
	if strings.Contains(got, "—") {
		t.Errorf("output should contain no separator artifact: %q", got)
	}
}

func TestFormat_Defaults(t *testing.T) {
	got := Format(PatchStructure{}, "")

	if !strings.HasPrefix(got, "Release v0.0.1") {
		t.Errorf("missing version should default to 0.0.1, got %q", got)
	}
	if !strings.Contains(got, "Summary\n- ") {
		t.Errorf("missing summary should render as empty bullet, got %q", got)
	}
}

func TestFormat_SkipsIncompleteSections(t *testing.T) {
	st := PatchStructure{
		VersionSuggestion: "1.0.0",
		Summary:           "s",
		Sections: []Section{
			{Title: "", Items: []string{"orphan item"}},
			{Title: "Empty Section"},
			{Title: "  ", Items: []string{"whitespace title"}},
			{Title: "Kept", Items: []string{"one"}},
		},
	}

	got := Format(st, "")

	for _, absent := range []string{"orphan item", "Empty Section", "whitespace title"} {
		if strings.Contains(got, absent) {
			t.Errorf("output should not contain %q:\n%s", absent, got)
		}
	}
	if !strings.Contains(got, "Kept\n- one") {
		t.Errorf("complete section should render:\n%s", got)
	}
}

func TestFormat_Deterministic(t *testing.T) {
	st := PatchStructure{
		VersionSuggestion: "0.1.0",
		Summary:           "same in, same out",
		Sections:          []Section{{Title: "Other Changes", Items: []string{"a", "b"}}},
	}

	first := Format(st, "2025-01-01")
	second := Format(st, "2025-01-01")

	if first != second {
		t.Errorf("formatting is not deterministic:\n%s\nvs\n%s", first, second)
	}
}

func TestFormat_TrimsSurroundingWhitespace(t *testing.T) {
	got := Format(PatchStructure{VersionSuggestion: "1.0.0", Summary: "s"}, "")

	if got != strings.TrimSpace(got) {
		t.Errorf("output should be trimmed: %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Errorf("output should not end with a newline: %q", got)
	}
}
