package telemetry

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestFileRecorder_AppendsOneLinePerRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.log")
	r := NewFileRecorder(path)

	for i := 0; i < 3; i++ {
		rec := NewRecord(PathwayNone, 12.5, 40, 200, false, "ollama-gemma3:1b")
		if err := r.Record(rec); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	for _, line := range lines {
		var got map[string]any
		if err := json.Unmarshal([]byte(line), &got); err != nil {
			t.Fatalf("line is not independently parseable: %v", err)
		}
		for _, key := range []string{"timestamp", "request_id", "pathway", "latency_ms",
			"input_len_chars", "output_len_chars", "used_tool", "model",
			"tokens_in", "tokens_out", "cost_usd"} {
			if _, ok := got[key]; !ok {
				t.Errorf("record missing key %q: %s", key, line)
			}
		}
		// Unpopulated usage fields serialize as null, not absent.
		if got["tokens_in"] != nil || got["cost_usd"] != nil {
			t.Errorf("usage fields should be null: %s", line)
		}
	}
}

func TestFileRecorder_ConcurrentRecordsDoNotInterleave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.log")
	r := NewFileRecorder(path)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := NewRecord(PathwayTool, 1, 1, 1, true, "m")
			if err := r.Record(rec); err != nil {
				t.Errorf("Record() error: %v", err)
			}
		}()
	}
	wg.Wait()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("interleaved or partial record: %v", err)
		}
		count++
	}
	if count != 20 {
		t.Errorf("expected 20 records, got %d", count)
	}
}

func TestNewRecord_StampsTimestampAndID(t *testing.T) {
	rec := NewRecord(PathwayTool, 3.2, 10, 20, true, "ollama-gemma3:1b")

	ts, err := time.Parse(time.RFC3339Nano, rec.Timestamp)
	if err != nil {
		t.Fatalf("timestamp not RFC 3339: %v", err)
	}
	if loc := ts.Location(); loc != time.UTC {
		t.Errorf("timestamp should be UTC, got %v", loc)
	}
	if rec.RequestID == "" {
		t.Error("request id should be set")
	}

	other := NewRecord(PathwayTool, 3.2, 10, 20, true, "m")
	if other.RequestID == rec.RequestID {
		t.Error("request ids should be unique")
	}
}

func TestFileRecorder_ErrorOnUnwritablePath(t *testing.T) {
	r := NewFileRecorder(filepath.Join(t.TempDir(), "missing", "telemetry.log"))

	if err := r.Record(NewRecord(PathwayNone, 1, 1, 1, false, "m")); err == nil {
		t.Error("expected an error for an unwritable path")
	}
}
