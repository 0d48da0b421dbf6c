package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewWritesJSONToFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelDebug)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("store dispatched", "action", "UPDATE_VALUE", "seq", 1)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "fieldkit.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]any
	line := strings.TrimSpace(string(data))
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if entry["msg"] != "store dispatched" {
		t.Errorf("msg = %v, want %q", entry["msg"], "store dispatched")
	}
	if entry["action"] != "UPDATE_VALUE" {
		t.Errorf("action = %v, want %q", entry["action"], "UPDATE_VALUE")
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelError)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug("should be dropped")
	logger.Info("should be dropped")
	logger.Error("kept")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "fieldkit.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), string(data))
	}
	if !strings.Contains(lines[0], "kept") {
		t.Errorf("surviving line should be the error entry, got %q", lines[0])
	}
}

func TestWithComponentPropagates(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelDebug)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	child := logger.WithComponent("binder").With("feature", "textField")
	child.Debug("rendering")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "fieldkit.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if entry["component"] != "binder" {
		t.Errorf("component = %v, want %q", entry["component"], "binder")
	}
	if entry["feature"] != "textField" {
		t.Errorf("feature = %v, want %q", entry["feature"], "textField")
	}
}

func TestDiscardAndOr(t *testing.T) {
	// Must not panic and must accept writes.
	Discard().Info("dropped")

	if Or(nil) == nil {
		t.Fatal("Or(nil) should return a usable logger")
	}
	logger := Discard()
	if Or(logger) != logger {
		t.Error("Or(l) should return l unchanged")
	}
}

func TestCloseWithoutFile(t *testing.T) {
	logger, err := New("", LevelInfo)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on stderr logger should be a no-op, got %v", err)
	}
}
