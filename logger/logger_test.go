package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFile(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	path := filepath.Join(t.TempDir(), "snake.log")
	if err := Init(path, "debug"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Log.Debugw("path computed", "length", 3)
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file, got error: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "path computed") {
		t.Errorf("Expected message in log, got %q", out)
	}
	if !strings.Contains(out, SessionID) {
		t.Errorf("Expected session id %s in log, got %q", SessionID, out)
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	if err := Init(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestDefaultLoggerIsUsable(t *testing.T) {
	if Log == nil {
		t.Fatal("Expected non-nil default logger")
	}
	Log.Infow("discarded")
}
