package audit

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	dir := t.TempDir()
	return NewFileStore(dir)
}

func TestFileStore_AppendAndQuery(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	event := &Event{
		Type:   EventExtensionExecute,
		User:   "local",
		Action: "extension.execute",
		Target: &EventTarget{ExtensionID: "todo", CommandID: "add"},
		Result: &EventResult{Status: "success"},
	}
	if err := store.Append(ctx, event); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if event.ID == "" {
		t.Error("expected event.ID to be set")
	}
	if event.Timestamp.IsZero() {
		t.Error("expected event.Timestamp to be set")
	}

	events, err := store.Query(ctx, QueryOptions{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Target.ExtensionID != "todo" {
		t.Errorf("Target.ExtensionID = %q, want todo", events[0].Target.ExtensionID)
	}
}

func TestFileStore_QueryFilterByUser(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	store.Append(ctx, &Event{User: "alice", Type: EventExtensionExecute, Action: "run"})
	store.Append(ctx, &Event{User: "bob", Type: EventExtensionExecute, Action: "run"})
	store.Append(ctx, &Event{User: "alice", Type: EventExtensionBackground, Action: "tick"})

	events, err := store.Query(ctx, QueryOptions{User: "alice"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events for alice, got %d", len(events))
	}
}

func TestFileStore_QueryFilterByType(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	store.Append(ctx, &Event{User: "alice", Type: EventExtensionExecute, Action: "run"})
	store.Append(ctx, &Event{User: "bob", Type: EventExtensionBackground, Action: "tick"})

	events, err := store.Query(ctx, QueryOptions{Type: EventExtensionBackground})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 background event, got %d", len(events))
	}
	if events[0].User != "bob" {
		t.Errorf("User = %q, want bob", events[0].User)
	}
}

func TestFileStore_QueryFilterBySince(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	oldEvent := &Event{User: "alice", Type: EventExtensionExecute, Action: "old", Timestamp: time.Now().Add(-2 * time.Hour)}
	store.Append(ctx, oldEvent)
	store.Append(ctx, &Event{User: "alice", Type: EventExtensionExecute, Action: "new"})

	events, err := store.Query(ctx, QueryOptions{Since: time.Now().Add(-1 * time.Hour)})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 recent event, got %d", len(events))
	}
	if events[0].Action != "new" {
		t.Errorf("Action = %q, want new", events[0].Action)
	}
}

func TestFileStore_QueryLimit(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		store.Append(ctx, &Event{User: "alice", Type: EventExtensionExecute, Action: "run"})
	}

	events, err := store.Query(ctx, QueryOptions{Limit: 3})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
}

func TestFileStore_Export(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	store.Append(ctx, &Event{User: "alice", Type: EventExtensionExecute, Action: "run"})
	store.Append(ctx, &Event{User: "bob", Type: EventExtensionBackground, Action: "tick"})

	events, err := store.Export(ctx, time.Now().Add(-1*time.Hour))
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
}

func TestFileStore_EmptyLog(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	events, err := store.Query(ctx, QueryOptions{})
	if err != nil {
		t.Fatalf("Query empty: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected 0 events, got %d", len(events))
	}
}

func TestFileStore_ConcurrentAppend(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	n := 50
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(idx int) {
			defer wg.Done()
			store.Append(ctx, &Event{
				User:   "concurrent",
				Type:   EventExtensionExecute,
				Action: "run",
			})
		}(i)
	}
	wg.Wait()

	events, err := store.Query(ctx, QueryOptions{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(events) != n {
		t.Fatalf("expected %d events, got %d", n, len(events))
	}
}

func TestFileStore_MalformedLines(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	ctx := context.Background()

	store.Append(ctx, &Event{User: "alice", Type: EventExtensionExecute, Action: "run"})

	f, _ := os.OpenFile(filepath.Join(dir, "audit.jsonl"), os.O_APPEND|os.O_WRONLY, 0o644)
	f.Write([]byte("not-valid-json\n"))
	f.Close()

	store.Append(ctx, &Event{User: "bob", Type: EventExtensionBackground, Action: "tick"})

	events, err := store.Query(ctx, QueryOptions{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 valid events (skipping malformed), got %d", len(events))
	}
}

func TestLogger_LogExtensionExecute(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	logger := NewLogger(store, "local")
	err := logger.LogExtensionExecute(ctx, "todo", "add", &EventResult{Status: "success"})
	if err != nil {
		t.Fatalf("LogExtensionExecute: %v", err)
	}

	events, _ := store.Query(ctx, QueryOptions{})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Type != EventExtensionExecute {
		t.Errorf("Type = %q, want extension.execute", events[0].Type)
	}
	if events[0].Target.CommandID != "add" {
		t.Errorf("Target.CommandID = %q, want add", events[0].Target.CommandID)
	}
}

func TestLogger_LogExtensionBackground(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	logger := NewLogger(store, "local")
	err := logger.LogExtensionBackground(ctx, "weather", &EventResult{Status: "failure", Error: "timeout"})
	if err != nil {
		t.Fatalf("LogExtensionBackground: %v", err)
	}

	events, _ := store.Query(ctx, QueryOptions{})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Type != EventExtensionBackground {
		t.Errorf("Type = %q, want extension.background", events[0].Type)
	}
	if events[0].Result.Status != "failure" {
		t.Errorf("Result.Status = %q, want failure", events[0].Result.Status)
	}
}

func TestLogger_LogPermissionDecision(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	logger := NewLogger(store, "local")
	err := logger.LogPermissionDecision(ctx, "todo", []string{"clipboard.read", "notifications"})
	if err != nil {
		t.Fatalf("LogPermissionDecision: %v", err)
	}

	events, _ := store.Query(ctx, QueryOptions{})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Type != EventPermissionDecision {
		t.Errorf("Type = %q, want permission.decision", events[0].Type)
	}
}

func TestLogger_LogShortcutChange(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	logger := NewLogger(store, "local")
	err := logger.LogShortcutChange(ctx, "<Alt>space", &EventResult{Status: "success"})
	if err != nil {
		t.Fatalf("LogShortcutChange: %v", err)
	}

	events, _ := store.Query(ctx, QueryOptions{})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Type != EventShortcutChange {
		t.Errorf("Type = %q, want shortcut.change", events[0].Type)
	}
}

func TestFileStore_QueryFilterByUntil(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	store.Append(ctx, &Event{User: "alice", Type: EventExtensionExecute, Action: "old", Timestamp: time.Now().Add(-2 * time.Hour)})
	store.Append(ctx, &Event{User: "alice", Type: EventExtensionExecute, Action: "new"})

	events, err := store.Query(ctx, QueryOptions{Until: time.Now().Add(-1 * time.Hour)})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 old event, got %d", len(events))
	}
	if events[0].Action != "old" {
		t.Errorf("Action = %q, want old", events[0].Action)
	}
}

func TestFileStore_CustomID(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	event := &Event{ID: "custom-123", User: "alice", Type: EventExtensionExecute, Action: "run"}
	store.Append(ctx, event)

	events, _ := store.Query(ctx, QueryOptions{})
	if events[0].ID != "custom-123" {
		t.Errorf("ID = %q, want custom-123", events[0].ID)
	}
}
