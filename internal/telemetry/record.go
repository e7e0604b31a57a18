// Package telemetry appends one structured record per completed request
// to an append-only JSONL sink. The sink is write-only: nothing in this
// system reads it back.
package telemetry

import (
	"time"

	"github.com/google/uuid"
)

// Pathway tags for how the request was served.
const (
	PathwayTool = "tool"
	PathwayNone = "none"
)

// Record is one telemetry event. Token and cost fields stay null until
// a backend that reports usage populates them.
type Record struct {
	Timestamp string   `json:"timestamp"`
	RequestID string   `json:"request_id"`
	Pathway   string   `json:"pathway"`
	LatencyMS float64  `json:"latency_ms"`
	InputLen  int      `json:"input_len_chars"`
	OutputLen int      `json:"output_len_chars"`
	UsedTool  bool     `json:"used_tool"`
	Model     string   `json:"model"`
	TokensIn  *int     `json:"tokens_in"`
	TokensOut *int     `json:"tokens_out"`
	CostUSD   *float64 `json:"cost_usd"`
}

// NewRecord stamps a record with the current UTC time and a fresh
// request id.
func NewRecord(pathway string, latencyMS float64, inputLen, outputLen int, usedTool bool, model string) Record {
	return Record{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		RequestID: uuid.NewString(),
		Pathway:   pathway,
		LatencyMS: latencyMS,
		InputLen:  inputLen,
		OutputLen: outputLen,
		UsedTool:  usedTool,
		Model:     model,
	}
}
