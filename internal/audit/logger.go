package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EventType represents the type of audit event
type EventType string

const (
	EventProfileCreate EventType = "PROFILE_CREATE"
	EventProfileUpdate EventType = "PROFILE_UPDATE"
	EventProfileDelete EventType = "PROFILE_DELETE"
	EventDefaultChange EventType = "DEFAULT_CHANGE"
	EventGenerate      EventType = "GENERATE"
	EventError         EventType = "ERROR"
)

// Event represents a single audit log entry. Details must never contain
// credential values.
type Event struct {
	Timestamp time.Time         `json:"timestamp"`
	Type      EventType         `json:"type"`
	Profile   string            `json:"profile,omitempty"`
	Provider  string            `json:"provider,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

// Logger appends audit events to a JSONL file in the config directory.
// A nil Logger is a valid no-op, so callers never guard their Log calls.
type Logger struct {
	mu   sync.Mutex
	path string
}

// NewLogger creates an audit logger writing to the given file.
func NewLogger(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create audit log directory: %w", err)
	}
	return &Logger{path: path}, nil
}

// Log appends one event. Failures are returned, not fatal; callers decide
// whether a lost audit line aborts the operation.
func (l *Logger) Log(eventType EventType, profile, provider string, details map[string]string) error {
	if l == nil {
		return nil
	}

	event := Event{
		Timestamp: time.Now().UTC(),
		Type:      eventType,
		Profile:   profile,
		Provider:  provider,
		Details:   details,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize audit event: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write audit event: %w", err)
	}

	return nil
}
