package extensions

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageGetMissingKey(t *testing.T) {
	s := NewStorage(t.TempDir())
	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorageSetAndGet(t *testing.T) {
	s := NewStorage(t.TempDir())
	require.NoError(t, s.Set("count", json.RawMessage(`42`)))

	value, ok, err := s.Get("count")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, "42", string(value))
}

func TestStorageDelete(t *testing.T) {
	s := NewStorage(t.TempDir())
	require.NoError(t, s.Set("key", json.RawMessage(`"value"`)))
	require.NoError(t, s.Delete("key"))

	_, ok, err := s.Get("key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorageDeleteMissingKeyIsNoop(t *testing.T) {
	s := NewStorage(t.TempDir())
	assert.NoError(t, s.Delete("missing"))
}

func TestStoragePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewStorage(dir).Set("k", json.RawMessage(`"v"`)))

	value, ok, err := NewStorage(dir).Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `"v"`, string(value))
}
