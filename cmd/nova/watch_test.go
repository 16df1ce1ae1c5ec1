package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nova-launcher/nova/pkg/config"
)

func TestWatchConfigReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[behavior]\nmax_results = 8\n"), 0o644))

	reloaded := make(chan config.Config, 1)
	stop := watchConfig(path, func(cfg config.Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("[behavior]\nmax_results = 15\n"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 15, cfg.Behavior.MaxResults)
	case <-time.After(5 * time.Second):
		t.Fatal("watchConfig did not reload within 5s of a config file write")
	}
}

func TestWatchConfigMissingFileIsNoop(t *testing.T) {
	stop := watchConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"), nil)
	assert.NotPanics(t, stop)
}
