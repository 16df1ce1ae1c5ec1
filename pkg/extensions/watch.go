package extensions

import (
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce collapses a burst of filesystem events into a single
// Reload. Editors commonly write a file via temp-file-then-rename,
// firing two or three fsnotify events per save.
const watchDebounce = 300 * time.Millisecond

// WatchForChanges starts a goroutine that watches config.ExtensionsDir
// and calls Reload when entries directly inside it change (an extension
// directory added, removed, or renamed), debounced so one change doesn't
// trigger a rescan per fsnotify event. The watch is not recursive:
// editing a file inside an existing extension's directory does not
// trigger a Reload.
// onReloaded, if non-nil, runs after each successful reload so the
// caller can re-register background tasks against the new extension
// set. The returned stop func must be called once to release the
// watcher; calling it more than once is a no-op.
//
// A watch failure (directory missing, inotify instance limit reached)
// is logged and treated as a no-op stop func: live reload is a
// convenience on top of the explicit Reload call, not something any
// other operation depends on.
func (h *ExtensionHost) WatchForChanges(onReloaded func()) (stop func()) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Warn("extension directory watch disabled", "error", err)
		return func() {}
	}
	if err := watcher.Add(h.config.ExtensionsDir); err != nil {
		slog.Warn("extension directory watch disabled", "dir", h.config.ExtensionsDir, "error", err)
		watcher.Close()
		return func() {}
	}

	done := make(chan struct{})
	var stopped bool

	go func() {
		defer watcher.Close()

		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-done:
				if timer != nil {
					timer.Stop()
				}
				return

			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				if timer == nil {
					timer = time.NewTimer(watchDebounce)
				} else {
					timer.Reset(watchDebounce)
				}
				fire = timer.C

			case <-fire:
				fire = nil
				if err := h.Reload(); err != nil {
					slog.Warn("extension directory reload failed", "error", err)
					continue
				}
				if onReloaded != nil {
					onReloaded()
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("extension directory watch error", "error", err)
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
