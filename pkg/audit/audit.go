// Package audit provides an immutable, structured audit log for Nova.
//
// Every extension command execution, background tick, permission grant,
// and shortcut change is recorded as a structured event, append-only and
// exportable as JSON for anyone who wants to know what an extension did
// and when.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EventType categorizes audit events.
type EventType string

const (
	EventExtensionExecute   EventType = "extension.execute"
	EventExtensionBackground EventType = "extension.background"
	EventPermissionDecision EventType = "permission.decision"
	EventShortcutChange     EventType = "shortcut.change"
	EventConfigChange       EventType = "config.change"
)

// Event is a single immutable audit record.
type Event struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"ts"`
	Type      EventType      `json:"type"`
	User      string         `json:"user"`
	Action    string         `json:"action"`
	Target    *EventTarget   `json:"target,omitempty"`
	Result    *EventResult   `json:"result,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// EventTarget describes what was targeted by the action: an extension
// and, for a command invocation, which command.
type EventTarget struct {
	ExtensionID string `json:"extension_id,omitempty"`
	CommandID   string `json:"command_id,omitempty"`
}

// EventResult captures the outcome of the action.
type EventResult struct {
	Status   string        `json:"status"` // "success", "failure"
	Duration time.Duration `json:"duration_ms,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// QueryOptions filters audit log queries.
type QueryOptions struct {
	User  string
	Type  EventType
	Since time.Time
	Until time.Time
	Limit int
}

// Store is the persistence interface for the audit log.
type Store interface {
	// Append writes an event to the audit log. Events are immutable once written.
	Append(ctx context.Context, event *Event) error

	// Query retrieves events matching the given filters.
	Query(ctx context.Context, opts QueryOptions) ([]*Event, error)

	// Export returns all events since the given time.
	Export(ctx context.Context, since time.Time) ([]*Event, error)
}

// ------------------------------------------------------------------
// File-based audit store (append-only JSONL)
// ------------------------------------------------------------------

// FileStore is an append-only file-based audit store using JSON Lines format.
// Each line is a complete JSON event. The file is never modified, only appended to.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a file-based audit store at the given directory.
func NewFileStore(dir string) *FileStore {
	os.MkdirAll(dir, 0o700)
	return &FileStore{dir: dir}
}

func (s *FileStore) logFile() string {
	return filepath.Join(s.dir, "audit.jsonl")
}

// Append writes an event to the audit log.
func (s *FileStore) Append(ctx context.Context, event *Event) error {
	if event.ID == "" {
		event.ID = fmt.Sprintf("evt_%d", time.Now().UnixNano())
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.logFile(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write audit event: %w", err)
	}

	return nil
}

// Query reads events matching the given filters.
func (s *FileStore) Query(ctx context.Context, opts QueryOptions) ([]*Event, error) {
	all, err := s.readAll()
	if err != nil {
		return nil, err
	}

	var results []*Event
	for _, e := range all {
		if opts.User != "" && e.User != opts.User {
			continue
		}
		if opts.Type != "" && e.Type != opts.Type {
			continue
		}
		if !opts.Since.IsZero() && e.Timestamp.Before(opts.Since) {
			continue
		}
		if !opts.Until.IsZero() && e.Timestamp.After(opts.Until) {
			continue
		}
		results = append(results, e)
		if opts.Limit > 0 && len(results) >= opts.Limit {
			break
		}
	}

	return results, nil
}

// Export returns all events since the given time.
func (s *FileStore) Export(ctx context.Context, since time.Time) ([]*Event, error) {
	return s.Query(ctx, QueryOptions{Since: since})
}

func (s *FileStore) readAll() ([]*Event, error) {
	data, err := os.ReadFile(s.logFile())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var events []*Event
	for _, line := range splitLines(data) {
		if len(line) == 0 {
			continue
		}
		var e Event
		if err := json.Unmarshal(line, &e); err != nil {
			continue // skip malformed lines
		}
		events = append(events, &e)
	}
	return events, nil
}

func splitLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i := range data {
		if data[i] == '\n' {
			lines = append(lines, data[start:i])
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, data[start:])
	}
	return lines
}

// ------------------------------------------------------------------
// Logger is a convenience wrapper for emitting audit events
// ------------------------------------------------------------------

// Logger provides helper methods for common audit patterns.
type Logger struct {
	store Store
	user  string
}

// NewLogger creates an audit logger for the given user.
func NewLogger(store Store, user string) *Logger {
	return &Logger{store: store, user: user}
}

// LogExtensionExecute records a foreground command invocation.
func (l *Logger) LogExtensionExecute(ctx context.Context, extensionID, commandID string, result *EventResult) error {
	return l.store.Append(ctx, &Event{
		Type:   EventExtensionExecute,
		User:   l.user,
		Action: "extension.execute",
		Target: &EventTarget{ExtensionID: extensionID, CommandID: commandID},
		Result: result,
	})
}

// LogExtensionBackground records one background scheduler tick.
func (l *Logger) LogExtensionBackground(ctx context.Context, extensionID string, result *EventResult) error {
	return l.store.Append(ctx, &Event{
		Type:   EventExtensionBackground,
		User:   l.user,
		Action: "extension.background",
		Target: &EventTarget{ExtensionID: extensionID},
		Result: result,
	})
}

// LogPermissionDecision records a permission grant made while loading
// an extension for the first time.
func (l *Logger) LogPermissionDecision(ctx context.Context, extensionID string, granted []string) error {
	return l.store.Append(ctx, &Event{
		Type:   EventPermissionDecision,
		User:   l.user,
		Action: "permission.decision",
		Target: &EventTarget{ExtensionID: extensionID},
		Result: &EventResult{Status: "success"},
		Metadata: map[string]any{
			"granted": granted,
		},
	})
}

// LogShortcutChange records a `set-shortcut` invocation.
func (l *Logger) LogShortcutChange(ctx context.Context, binding string, result *EventResult) error {
	return l.store.Append(ctx, &Event{
		Type:   EventShortcutChange,
		User:   l.user,
		Action: "shortcut.change",
		Result: result,
		Metadata: map[string]any{
			"binding": binding,
		},
	})
}
