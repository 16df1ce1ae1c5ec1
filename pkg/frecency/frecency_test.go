package frecency

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "frecency.json"), nil)
}

func TestNewEntryScoresZero(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, 0.0, s.Score("unknown"))
}

func TestLogUsageCreatesEntry(t *testing.T) {
	s := newTestStore(t)
	s.LogUsage("firefox", KindApp)

	e, ok := s.GetEntry("firefox")
	require.True(t, ok)
	assert.Equal(t, 1, e.Count)
	assert.Equal(t, KindApp, e.Kind)
}

func TestFrequentUseIncreasesScore(t *testing.T) {
	s := newTestStore(t)
	s.LogUsage("a", KindApp)
	once := s.Score("a")

	for i := 0; i < 5; i++ {
		s.LogUsage("a", KindApp)
	}
	many := s.Score("a")

	assert.Greater(t, many, once)
}

func TestScoreMonotonicInCount(t *testing.T) {
	now := time.Now()
	lowCount := &Entry{Count: 1, LastUsed: now.Unix()}
	highCount := &Entry{Count: 20, LastUsed: now.Unix()}
	assert.Greater(t, scoreEntry(highCount, now), scoreEntry(lowCount, now))
}

func TestScoreMonotonicInAge(t *testing.T) {
	now := time.Now()
	fresh := &Entry{Count: 5, LastUsed: now.Unix()}
	stale := &Entry{Count: 5, LastUsed: now.Add(-30 * 24 * time.Hour).Unix()}
	assert.Greater(t, scoreEntry(fresh, now), scoreEntry(stale, now))
}

func TestClipboardNeverScored(t *testing.T) {
	now := time.Now()
	e := &Entry{Count: 1000, LastUsed: now.Unix(), Kind: KindClipboard}
	assert.Equal(t, 0.0, scoreEntry(e, now))
}

func TestKindWeights(t *testing.T) {
	now := time.Now()
	base := Entry{Count: 3, LastUsed: now.Unix()}

	script := base
	script.Kind = KindScript
	app := base
	app.Kind = KindApp

	assert.Greater(t, scoreEntry(&script, now), scoreEntry(&app, now))
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frecency.json")
	s := New(path, nil)
	s.LogUsage("a", KindApp)
	s.LogUsage("b", KindScript)
	require.NoError(t, s.Flush())

	loaded := Load(path, nil)
	before := s.Score("a")
	after := loaded.Score("a")
	assert.InDelta(t, before, after, 1e-9)
}

func TestLoadPrunesOldEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frecency.json")
	stale := map[string]*Entry{
		"old": {ID: "old", Kind: KindApp, Count: 5, LastUsed: time.Now().Add(-100 * 24 * time.Hour).Unix()},
		"new": {ID: "new", Kind: KindApp, Count: 5, LastUsed: time.Now().Unix()},
	}
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded := Load(path, nil)
	_, oldOK := loaded.GetEntry("old")
	_, newOK := loaded.GetEntry("new")
	assert.False(t, oldOK)
	assert.True(t, newOK)
}

func TestLoadCorruptFileResetsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frecency.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	loaded := Load(path, nil)
	assert.Equal(t, 0, loaded.ComputeStats().TotalEntries)
}

func TestTopByScore(t *testing.T) {
	s := newTestStore(t)
	s.LogUsage("rare", KindApp)
	for i := 0; i < 10; i++ {
		s.LogUsage("popular", KindApp)
	}

	top := s.TopByScore(2)
	require.Len(t, top, 2)
	assert.Equal(t, "popular", top[0])
}

func TestClearRemovesAllEntries(t *testing.T) {
	s := newTestStore(t)
	s.LogUsage("a", KindApp)
	s.Clear()
	assert.Equal(t, 0, s.ComputeStats().TotalEntries)
}

func TestBoostAndPenalize(t *testing.T) {
	s := newTestStore(t)
	s.LogUsage("a", KindApp)
	base := s.Score("a")

	s.Boost("a", KindApp)
	assert.Greater(t, s.Score("a"), base)

	s.Penalize("a")
	s.Penalize("a")
	s.Penalize("a")
	assert.GreaterOrEqual(t, s.Score("a"), 0.0) // still non-negative

	e, _ := s.GetEntry("a")
	assert.GreaterOrEqual(t, e.Count, 0)
}

func TestGetEntryUnknown(t *testing.T) {
	s := newTestStore(t)
	_, ok := s.GetEntry("nope")
	assert.False(t, ok)
}
