package eval

import (
	"fmt"
	"io"
)

// CaseResult holds the outcome of one case.
type CaseResult struct {
	Name    string   `json:"name"`
	Passed  bool     `json:"passed"`
	Missing []string `json:"missing,omitempty"`
	Err     string   `json:"error,omitempty"`
}

// Report aggregates a full harness run.
type Report struct {
	Model   string       `json:"model"`
	Results []CaseResult `json:"results"`
}

// Passed counts passing cases.
func (r *Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

// PassRate is the fraction of passing cases in [0, 1].
func (r *Report) PassRate() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(r.Passed()) / float64(len(r.Results))
}

// Write prints a per-case line followed by a pass-rate summary.
func (r *Report) Write(w io.Writer) {
	total := len(r.Results)
	for i, res := range r.Results {
		status := "FAIL"
		if res.Passed {
			status = "PASS"
		}
		fmt.Fprintf(w, "Test %d/%d: %s (%s)\n", i+1, total, status, res.Name)
		for _, m := range res.Missing {
			fmt.Fprintf(w, "  missing pattern: %q\n", m)
		}
		if res.Err != "" {
			fmt.Fprintf(w, "  error: %s\n", res.Err)
		}
	}

	fmt.Fprintf(w, "\n--- SUMMARY ---\n")
	fmt.Fprintf(w, "Model: %s\n", r.Model)
	fmt.Fprintf(w, "Passed: %d/%d\n", r.Passed(), total)
	fmt.Fprintf(w, "Pass rate: %.2f%%\n", r.PassRate()*100)
}
