package search

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// clipboardCapacity is the maximum number of snapshots retained; the
// oldest is evicted once a new one arrives past this size.
const clipboardCapacity = 50

// ClipboardHistory is an LRU-ish ring of clipboard snapshots, appended
// to by a polling timer (see cmd/nova) and read by the clipboard
// history provider.
type ClipboardHistory struct {
	mu      sync.Mutex
	entries []clipboardEntry
}

type clipboardEntry struct {
	id      string
	content string
	at      time.Time
}

// NewClipboardHistory creates an empty history.
func NewClipboardHistory() *ClipboardHistory {
	return &ClipboardHistory{}
}

// Append records a new clipboard snapshot, ignoring consecutive
// duplicates (the poller samples every 500ms and would otherwise
// flood the history with repeats of an unchanged clipboard).
func (h *ClipboardHistory) Append(content string) {
	if content == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) > 0 && h.entries[len(h.entries)-1].content == content {
		return
	}

	h.entries = append(h.entries, clipboardEntry{id: uuid.NewString(), content: content, at: time.Now()})
	if len(h.entries) > clipboardCapacity {
		h.entries = h.entries[len(h.entries)-clipboardCapacity:]
	}
}

// Items returns up to n most recent entries, most recent first.
func (h *ClipboardHistory) Items(n int) []ClipboardItem {
	h.mu.Lock()
	defer h.mu.Unlock()

	count := len(h.entries)
	if n < count {
		count = n
	}

	now := time.Now()
	items := make([]ClipboardItem, 0, count)
	for i := 0; i < count; i++ {
		e := h.entries[len(h.entries)-1-i]
		items = append(items, ClipboardItem{
			ID:      e.id,
			Index:   i,
			Content: e.content,
			Preview: previewOf(e.content),
			Age:     humanAge(now.Sub(e.at)),
		})
	}
	return items
}

func previewOf(content string) string {
	const maxLen = 80
	trimmed := content
	if len(trimmed) > maxLen {
		trimmed = trimmed[:maxLen] + "…"
	}
	return trimmed
}

func humanAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
