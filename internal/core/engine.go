// Package core orchestrates the patch-notes pipeline: validate,
// generate, enrich with a release date, format, record telemetry.
package core

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/KhanNadman/llm-patchsmith/internal/notes"
	"github.com/KhanNadman/llm-patchsmith/internal/safety"
	"github.com/KhanNadman/llm-patchsmith/internal/telemetry"
)

// Engine runs the generation pipeline. It owns no state across
// requests; the telemetry recorder is the only shared sink.
type Engine struct {
	generator NoteGenerator
	dates     DateSource
	recorder  telemetry.Recorder
}

// NewEngine wires the pipeline collaborators.
func NewEngine(generator NoteGenerator, dates DateSource, recorder telemetry.Recorder) *Engine {
	return &Engine{
		generator: generator,
		dates:     dates,
		recorder:  recorder,
	}
}

// GenerateNotes runs the full pipeline for one request and returns the
// formatted patch notes.
//
// A *safety.ValidationError is returned verbatim for rejected input;
// no generation happens and no telemetry is recorded. Any other error
// is an unexpected failure caught at this boundary, also without a
// telemetry record. External-service failures never surface here: the
// generator falls back and a missing date is simply omitted.
func (e *Engine) GenerateNotes(ctx context.Context, bullets string) (out string, err error) {
	if verr := safety.Validate(bullets); verr != nil {
		return "", verr
	}

	defer func() {
		if p := recover(); p != nil {
			out = ""
			err = fmt.Errorf("generating patch notes: %v", p)
		}
	}()

	start := time.Now()

	st := e.generator.Generate(ctx, bullets)

	releaseDate := ""
	usedTool := false
	if st.NeedsDate {
		releaseDate = e.dates.ReleaseDate(ctx)
		usedTool = releaseDate != ""
	}

	text := notes.Format(st, releaseDate)

	latencyMS := float64(time.Since(start)) / float64(time.Millisecond)

	pathway := telemetry.PathwayNone
	if usedTool {
		pathway = telemetry.PathwayTool
	}
	rec := telemetry.NewRecord(pathway, latencyMS, len([]rune(bullets)), len([]rune(text)), usedTool, e.generator.ModelName())
	if rerr := e.recorder.Record(rec); rerr != nil {
		// Telemetry is best effort; the response still goes out.
		log.Printf("core: telemetry record failed: %v", rerr)
	}

	return text, nil
}
