package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"info", "info", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"trace", "trace", LevelTrace},
		{"uppercase INFO", "INFO", slog.LevelInfo},
		{"mixed case Debug", "Debug", slog.LevelDebug},
		{"unknown defaults to info", "unknown", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLevel(tt.input)
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		logAtDebug bool
	}{
		{"info filters debug", "info", false},
		{"debug passes debug", "debug", true},
		{"trace passes debug", "trace", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tt.level, &buf)

			logger.Debug("debug message")
			hasDebug := strings.Contains(buf.String(), "debug message")
			if hasDebug != tt.logAtDebug {
				t.Errorf("debug message logged = %v, want %v", hasDebug, tt.logAtDebug)
			}

			buf.Reset()
			logger.Info("info message")
			if !strings.Contains(buf.String(), "info message") {
				t.Error("info message should always be logged")
			}
		})
	}
}

func TestNewLogger_TraceLevelLabel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("trace", &buf)

	logger.Log(nil, LevelTrace, "trace message")
	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("trace entry missing TRACE label: %s", buf.String())
	}
}

func TestNewTraceLogger_InfoLevelDisabled(t *testing.T) {
	dir := t.TempDir()
	tl := NewTraceLogger(dir, "info")
	if tl != nil {
		t.Error("NewTraceLogger at info level should return nil")
	}

	// Nil receiver is safe.
	tl.Log(map[string]any{"event": "ignored"})
	tl.Close()

	if _, err := os.Stat(filepath.Join(dir, "trace.jsonl")); !os.IsNotExist(err) {
		t.Error("trace file should not exist at info level")
	}
}

func TestTraceLogger_WritesJSONL(t *testing.T) {
	dir := t.TempDir()
	tl := NewTraceLogger(dir, "debug")
	if tl == nil {
		t.Fatal("NewTraceLogger at debug level returned nil")
	}

	tl.Log(map[string]any{"event": "run_started", "rows": 500})
	tl.Log(map[string]any{"event": "run_finished"})
	tl.Close()

	f, err := os.Open(filepath.Join(dir, "trace.jsonl"))
	if err != nil {
		t.Fatalf("open trace file: %v", err)
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines++
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Errorf("line %d is not valid JSON: %v", lines, err)
			continue
		}
		if _, ok := entry["time"]; !ok {
			t.Errorf("line %d missing time field", lines)
		}
	}
	if lines != 2 {
		t.Errorf("trace file has %d lines, want 2", lines)
	}
}

func TestTraceLogger_DoesNotMutateCallerMap(t *testing.T) {
	tl := NewTraceLogger(t.TempDir(), "trace")
	if tl == nil {
		t.Fatal("NewTraceLogger returned nil")
	}
	defer tl.Close()

	event := map[string]any{"event": "x"}
	tl.Log(event)
	if _, ok := event["time"]; ok {
		t.Error("Log mutated the caller's map")
	}
}
