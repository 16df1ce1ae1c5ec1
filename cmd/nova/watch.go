package main

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"

	"github.com/nova-launcher/nova/pkg/config"
)

// StartWatching turns on live-reload for the long-running run command:
// the extensions directory is watched by the extension host itself
// (WatchForChanges re-registers background tasks after each reload),
// and configPath is watched here so editing config.toml while `nova
// run` is already attached to a client takes effect without a
// restart. Both watchers degrade to a no-op, logged, if the
// filesystem can't be watched (e.g. an inotify instance limit); a
// stale config or extension set is recoverable, a crashed daemon is
// not.
func (a *App) StartWatching(configPath string) (stop func()) {
	stopExtensions := a.extHost.WatchForChanges(a.registerBackgroundExtensions)
	stopConfig := watchConfig(configPath, a.SetConfig)

	return func() {
		stopExtensions()
		stopConfig()
	}
}

func watchConfig(path string, onReload func(config.Config)) (stop func()) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Warn("config file watch disabled", "error", err)
		return func() {}
	}
	if err := watcher.Add(path); err != nil {
		// A missing config file is normal (defaults apply); there is
		// nothing to watch until it's created, so this isn't logged
		// at warn level.
		slog.Debug("config file watch disabled", "path", path, "error", err)
		watcher.Close()
		return func() {}
	}

	done := make(chan struct{})
	var stopped bool

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-done:
				return
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				onReload(config.LoadFrom(path))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("config file watch error", "error", err)
			}
		}
	}()

	return func() {
		if stopped {
			return
		}
		stopped = true
		close(done)
	}
}
