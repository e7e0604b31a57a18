package core

import (
	"context"
	"errors"
	"sync"

	"github.com/KhanNadman/llm-patchsmith/internal/generate"
	"github.com/KhanNadman/llm-patchsmith/internal/notes"
	"github.com/KhanNadman/llm-patchsmith/internal/telemetry"
)

var ErrMockRecorder = errors.New("mock recorder error")

// MockGenerator implements NoteGenerator for testing.
type MockGenerator struct {
	GenerateFunc func(ctx context.Context, bullets string) notes.PatchStructure
	Model        string
	CallCount    int
	LastBullets  string
}

func (m *MockGenerator) Generate(ctx context.Context, bullets string) notes.PatchStructure {
	m.CallCount++
	m.LastBullets = bullets
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, bullets)
	}
	return generate.Fallback(bullets)
}

func (m *MockGenerator) ModelName() string {
	if m.Model != "" {
		return m.Model
	}
	return "mock-model"
}

// MockDateSource implements DateSource for testing.
type MockDateSource struct {
	Date      string
	CallCount int
}

func (m *MockDateSource) ReleaseDate(ctx context.Context) string {
	m.CallCount++
	return m.Date
}

// MockRecorder implements telemetry.Recorder, capturing records
// in memory.
type MockRecorder struct {
	mu      sync.Mutex
	Records []telemetry.Record
	Err     error
}

func (m *MockRecorder) Record(rec telemetry.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Records = append(m.Records, rec)
	return nil
}

func (m *MockRecorder) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Records)
}
