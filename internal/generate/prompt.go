package generate

import (
	"fmt"
	"strings"
)

// BuildUserPrompt embeds the verbatim bullets plus a reminder of the
// required JSON shape.
func BuildUserPrompt(bullets string) string {
	var b strings.Builder

	b.WriteString("Here are the raw changes as bullet points. ")
	b.WriteString("Do NOT invent additional changes.\n\n")
	fmt.Fprintf(&b, "%s\n\n", bullets)
	b.WriteString("Remember:\n")
	b.WriteString("- Respond ONLY with valid JSON.\n")
	b.WriteString(`- JSON keys: "version_suggestion", "summary", "sections", "needs_date".`)

	return b.String()
}
