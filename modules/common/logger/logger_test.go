package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesJSONToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	Init(false, path)
	t.Cleanup(func() { Init(false, "") })

	Debugf("hidden at info level")
	Infof("🎨 Art generation request: emotion=%q", "calm")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("log lines = %d, want 1 (debug filtered): %s", len(lines), data)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["level"] != "info" || entry["msg"] != `🎨 Art generation request: emotion="calm"` {
		t.Errorf("entry = %v", entry)
	}
	if caller, _ := entry["caller"].(string); !strings.Contains(caller, "logger_test.go") {
		t.Errorf("caller = %q, want the calling file", caller)
	}
}

func TestInit_DevelopmentEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.log")
	Init(true, path)
	t.Cleanup(func() { Init(false, "") })

	Debugf("🔍 debug line")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "🔍 debug line") {
		t.Errorf("debug line missing from %s", data)
	}
}
