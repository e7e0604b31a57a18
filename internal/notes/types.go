package notes

// Section groups related change items under a heading.
type Section struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// PatchStructure is the structured document the generator produces from
// raw change bullets. Sections are kept in display order.
type PatchStructure struct {
	VersionSuggestion string    `json:"version_suggestion"`
	Summary           string    `json:"summary"`
	Sections          []Section `json:"sections"`
	NeedsDate         bool      `json:"needs_date"`
}
