package logging

import (
	"bytes"
	"context"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"
)

var lineRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3} - (DEBUG|INFO|WARN|ERROR) - .+$`)

func TestLineHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Info("Addition: (4 + 3i) + (2 + -1i) = (6 + 2i)")
	logger.Error("Division by zero!")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	for _, line := range lines {
		if !lineRE.MatchString(line) {
			t.Errorf("Line does not match expected format: %q", line)
		}
	}
	if !strings.HasSuffix(lines[0], " - INFO - Addition: (4 + 3i) + (2 + -1i) = (6 + 2i)") {
		t.Errorf("Unexpected first line: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], " - ERROR - Division by zero!") {
		t.Errorf("Unexpected second line: %q", lines[1])
	}
}

func TestLineHandler_Timestamp(t *testing.T) {
	var buf bytes.Buffer
	h := NewLineHandler(&buf, nil)

	ts := time.Date(2024, 3, 5, 14, 7, 9, 123_000_000, time.Local)
	r := slog.NewRecord(ts, slog.LevelInfo, "hello", 0)
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := buf.String(); got != "2024-03-05 14:07:09,123 - INFO - hello\n" {
		t.Errorf("Unexpected output: %q", got)
	}
}

func TestLineHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected debug record to be dropped, got %q", buf.String())
	}

	var verbose bytes.Buffer
	New(&verbose, slog.LevelDebug).Debug("shown")
	if !strings.Contains(verbose.String(), " - DEBUG - shown") {
		t.Errorf("Expected debug record, got %q", verbose.String())
	}
}

func TestLineHandler_Attrs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo).With("component", "batch").WithGroup("req")

	logger.Info("evaluated", "index", 2, slog.Group("op", "name", "division"))

	if !strings.Contains(buf.String(), " - INFO - evaluated component=batch req.index=2 req.op.name=division\n") {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}

func TestLineHandler_ConcurrentWritesStayWhole(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				logger.Info("Multiplication: (1 + 1i) * (1 + 1i) = (0 + 2i)")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 1000 {
		t.Fatalf("Expected 1000 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !lineRE.MatchString(line) {
			t.Fatalf("Interleaved line: %q", line)
		}
	}
}

func TestOrDiscard(t *testing.T) {
	if OrDiscard(nil) == nil {
		t.Fatal("Expected a non-nil logger")
	}
	l := New(&bytes.Buffer{}, slog.LevelInfo)
	if OrDiscard(l) != l {
		t.Error("Expected the given logger to be returned")
	}
}
