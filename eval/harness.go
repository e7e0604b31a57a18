package eval

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/KhanNadman/llm-patchsmith/internal/core"
)

// Harness runs expectation cases against a generator. The generator may
// be the real Ollama-backed client (for end-to-end checks) or anything
// else implementing core.NoteGenerator.
type Harness struct {
	generator core.NoteGenerator
	cases     []Case
}

// NewHarness creates a harness over the given cases.
func NewHarness(generator core.NoteGenerator, cases []Case) *Harness {
	return &Harness{generator: generator, cases: cases}
}

// Run evaluates every case and returns the aggregated report.
func (h *Harness) Run(ctx context.Context) *Report {
	report := &Report{Model: h.generator.ModelName()}

	for _, c := range h.cases {
		st := h.generator.Generate(ctx, c.Input)

		serialized, err := json.Marshal(st)
		if err != nil {
			report.Results = append(report.Results, CaseResult{Name: c.Name, Err: err.Error()})
			continue
		}
		haystack := strings.ToLower(string(serialized))

		var missing []string
		for _, want := range c.Expected {
			if !strings.Contains(haystack, strings.ToLower(want)) {
				missing = append(missing, want)
			}
		}

		report.Results = append(report.Results, CaseResult{
			Name:    c.Name,
			Passed:  len(missing) == 0,
			Missing: missing,
		})
	}

	return report
}
