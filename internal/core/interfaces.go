package core

import (
	"context"

	"github.com/KhanNadman/llm-patchsmith/internal/notes"
)

// NoteGenerator turns raw bullets into a structured document. It never
// fails: implementations recover internally to a deterministic
// fallback.
// Implementations: generate.Client (Ollama chat)
type NoteGenerator interface {
	Generate(ctx context.Context, bullets string) notes.PatchStructure

	// ModelName identifies the backend for telemetry.
	ModelName() string
}

// DateSource resolves the current release date. An empty string means
// the date is unavailable.
// Implementations: timeapi.Client (worldtimeapi.org)
type DateSource interface {
	ReleaseDate(ctx context.Context) string
}
