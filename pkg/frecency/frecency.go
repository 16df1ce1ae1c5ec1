// Package frecency scores search results by a blend of usage frequency
// and recency, and persists the usage log as debounced JSON under the
// platform config directory.
package frecency

import (
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Kind classifies the item a frecency entry tracks, since different kinds
// are weighted differently when ranking.
type Kind string

const (
	KindApp       Kind = "app"
	KindScript    Kind = "script"
	KindAlias     Kind = "alias"
	KindCommand   Kind = "command"
	KindQuicklink Kind = "quicklink"
	KindFile      Kind = "file"
	KindClipboard Kind = "clipboard"
	KindExtension Kind = "extension"
)

// kindWeight returns the per-kind multiplier applied on top of the raw
// frecency score. Clipboard items are never ranked by frecency: they are
// always fresh and their order is governed by recency alone, so their
// weight is zero.
func kindWeight(k Kind) float64 {
	switch k {
	case KindApp:
		return 1.0
	case KindScript:
		return 1.2
	case KindAlias:
		return 0.9
	case KindCommand:
		return 0.8
	case KindQuicklink:
		return 0.7
	case KindFile:
		return 0.5
	case KindClipboard:
		return 0.0
	case KindExtension:
		return 1.0
	default:
		return 0.0
	}
}

const (
	pruneAfter   = 90 * 24 * time.Hour
	halfLifeDays = 14.0
	saveEvery    = 5
)

// decayLambda is ln(2) / halfLifeDays: the exponential decay constant such
// that a score computed halfLifeDays after last use is half of its value
// at last use.
var decayLambda = math.Ln2 / halfLifeDays

// Entry is one tracked item's usage history.
type Entry struct {
	ID        string `json:"id"`
	Kind      Kind   `json:"kind"`
	Count     int    `json:"count"`
	FirstUsed int64  `json:"first_used"`
	LastUsed  int64  `json:"last_used"`
}

// Stats summarizes the store's contents.
type Stats struct {
	TotalEntries int
	TotalUsage   int
	OldestUsed   int64
	NewestUsed   int64
}

// nowFunc is overridable in tests.
var nowFunc = time.Now

// Store is a usage log keyed by stable result id, backed by a JSON file.
// All exported methods are safe for concurrent use.
type Store struct {
	mu          sync.Mutex
	path        string
	entries     map[string]*Entry
	logger      *slog.Logger
	dirtyCount  int
}

// New creates an empty, unpersisted store. Use Load to populate one from
// disk.
func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		path:    path,
		entries: make(map[string]*Entry),
		logger:  logger,
	}
}

// DefaultPath returns "<configDir>/nova/frecency.json", the location the
// reference implementation uses: frecency lives next to configuration,
// not in the (potentially much larger) data directory.
func DefaultPath(configDir string) string {
	return filepath.Join(configDir, "nova", "frecency.json")
}

// Load reads the store from disk, pruning stale entries. A missing,
// corrupt, or unreadable file is never fatal: the store silently resets
// to empty and will be recreated on the next Flush.
func Load(path string, logger *slog.Logger) *Store {
	s := New(path, logger)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("frecency: failed to read store, starting empty", "path", path, "error", err)
		}
		return s
	}

	var raw map[string]*Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("frecency: failed to parse store, starting empty", "path", path, "error", err)
		return s
	}

	s.entries = raw
	s.prune()
	return s
}

// prune drops entries unused for more than pruneAfter. Callers must hold
// s.mu or call this only before the store is shared (as Load does).
func (s *Store) prune() {
	cutoff := nowFunc().Add(-pruneAfter).Unix()
	for id, e := range s.entries {
		if e.LastUsed < cutoff {
			delete(s.entries, id)
		}
	}
}

// Score computes the frecency score for id: 0 if unknown.
func (s *Store) Score(id string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return 0
	}
	return scoreEntry(e, nowFunc())
}

func scoreEntry(e *Entry, now time.Time) float64 {
	ageDays := now.Sub(time.Unix(e.LastUsed, 0)).Hours() / 24
	if ageDays < 0 {
		ageDays = 0
	}

	frequency := 0.4 * math.Log(float64(e.Count)+1) * 10
	recency := 0.6 * math.Exp(-decayLambda*ageDays) * 100

	return (frequency + recency) * kindWeight(e.Kind)
}

// LogUsage records one use of id. Every saveEvery calls, the store is
// flushed to disk.
func (s *Store) LogUsage(id string, kind Kind) {
	s.mu.Lock()
	now := nowFunc().Unix()

	e, ok := s.entries[id]
	if !ok {
		e = &Entry{ID: id, Kind: kind, FirstUsed: now}
		s.entries[id] = e
	}
	e.Kind = kind
	e.Count++
	e.LastUsed = now

	s.dirtyCount++
	shouldFlush := s.dirtyCount >= saveEvery
	if shouldFlush {
		s.dirtyCount = 0
	}
	s.mu.Unlock()

	if shouldFlush {
		if err := s.Flush(); err != nil {
			s.logger.Warn("frecency: debounced flush failed", "error", err)
		}
	}
}

// Boost manually increases an id's effective count, used by callers that
// want to pin an item above its organic usage (e.g. a "favorite" toggle)
// without going through the normal usage-log path.
func (s *Store) Boost(id string, kind Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		e = &Entry{ID: id, Kind: kind, FirstUsed: nowFunc().Unix()}
		s.entries[id] = e
	}
	e.Count += 10
	e.LastUsed = nowFunc().Unix()
}

// Penalize manually decreases an id's effective count, used to de-rank an
// item (e.g. a "hide" toggle) without deleting its history outright.
func (s *Store) Penalize(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return
	}
	e.Count -= 5
	if e.Count < 0 {
		e.Count = 0
	}
}

// GetEntry returns a copy of the raw entry for id, for diagnostics.
func (s *Store) GetEntry(id string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// TopByScore returns the n ids with the highest score, in descending
// order. Empty-query app listings use this to surface the 8 most-used
// apps.
func (s *Store) TopByScore(n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := nowFunc()
	type scored struct {
		id    string
		score float64
	}
	all := make([]scored, 0, len(s.entries))
	for id, e := range s.entries {
		all = append(all, scored{id, scoreEntry(e, now)})
	}

	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[j].score > all[i].score {
				all[i], all[j] = all[j], all[i]
			}
		}
	}

	if n > len(all) {
		n = len(all)
	}
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = all[i].id
	}
	return ids
}

// Clear resets the store to empty. Does not write to disk until Flush is
// called.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*Entry)
}

// ComputeStats summarizes the store.
func (s *Store) ComputeStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st Stats
	st.TotalEntries = len(s.entries)
	for _, e := range s.entries {
		st.TotalUsage += e.Count
		if st.OldestUsed == 0 || e.FirstUsed < st.OldestUsed {
			st.OldestUsed = e.FirstUsed
		}
		if e.LastUsed > st.NewestUsed {
			st.NewestUsed = e.LastUsed
		}
	}
	return st
}

// Flush forces an immediate write of the store to disk.
func (s *Store) Flush() error {
	s.mu.Lock()
	data, err := json.MarshalIndent(s.entries, "", "  ")
	path := s.path
	s.mu.Unlock()

	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0o644)
}

// Close flushes any pending writes. Safe to call more than once.
func (s *Store) Close() error {
	return s.Flush()
}
