package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoggerAppendsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")

	logger, err := NewLogger(path)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	if err := logger.Log(EventProfileCreate, "work", "openai", map[string]string{"model": "gpt-4"}); err != nil {
		t.Fatalf("Failed to log event: %v", err)
	}
	if err := logger.Log(EventGenerate, "work", "openai", map[string]string{"task": "summarize"}); err != nil {
		t.Fatalf("Failed to log event: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open audit log: %v", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("Invalid JSON line: %v", err)
		}
		events = append(events, e)
	}

	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventProfileCreate || events[0].Profile != "work" {
		t.Errorf("Unexpected first event: %+v", events[0])
	}
	if events[1].Type != EventGenerate || events[1].Details["task"] != "summarize" {
		t.Errorf("Unexpected second event: %+v", events[1])
	}
	if events[0].Timestamp.IsZero() {
		t.Error("Event timestamp not set")
	}
}

func TestLoggerFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")

	logger, err := NewLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := logger.Log(EventProfileDelete, "work", "", nil); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected audit log mode 0600, got %o", perm)
	}
}

func TestNilLoggerIsNoop(t *testing.T) {
	var logger *Logger
	if err := logger.Log(EventError, "", "", nil); err != nil {
		t.Errorf("Nil logger returned error: %v", err)
	}
}
