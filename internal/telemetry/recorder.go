package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Recorder persists telemetry records.
type Recorder interface {
	Record(rec Record) error
}

// FileRecorder appends records to a JSONL file, one complete line per
// record. The file is opened in append mode per write and closed after
// each write; the mutex keeps concurrent records from interleaving.
type FileRecorder struct {
	mu   sync.Mutex
	path string
}

// NewFileRecorder creates a recorder writing to the given path. The
// file is created on first write.
func NewFileRecorder(path string) *FileRecorder {
	return &FileRecorder{path: path}
}

// Record appends one serialized record.
func (r *FileRecorder) Record(rec Record) error {
	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal telemetry record: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open telemetry log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write telemetry record: %w", err)
	}
	return nil
}
