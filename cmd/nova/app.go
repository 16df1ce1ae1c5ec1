package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/nova-launcher/nova/pkg/audit"
	"github.com/nova-launcher/nova/pkg/commandmode"
	"github.com/nova-launcher/nova/pkg/config"
	"github.com/nova-launcher/nova/pkg/customcommands"
	"github.com/nova-launcher/nova/pkg/executor"
	"github.com/nova-launcher/nova/pkg/extensions"
	"github.com/nova-launcher/nova/pkg/frecency"
	"github.com/nova-launcher/nova/pkg/observability"
	"github.com/nova-launcher/nova/pkg/platform"
	"github.com/nova-launcher/nova/pkg/platform/linuxplatform"
	"github.com/nova-launcher/nova/pkg/search"
)

// clipboardPollInterval is how often the clipboard is sampled into
// history, per the launcher's resource budget for background polling.
const clipboardPollInterval = 500 * time.Millisecond

// App wires every core subsystem together behind the surface the
// cobra commands in this package call into: one search engine, one
// extension host, one background scheduler, one command-mode
// controller, sharing a single platform shim and frecency store.
type App struct {
	cfg      atomic.Pointer[config.Config]
	plat     platform.Platform
	log      *slog.Logger
	frecency *frecency.Store
	commands *customcommands.Index
	clipbd   *search.ClipboardHistory
	engine   *search.Engine
	extHost  *extensions.ExtensionHost
	scheduler *extensions.BackgroundScheduler
	mode     *commandmode.Controller
	audit    *audit.Logger
	metrics  *observability.NovaMetrics

	apps []platform.AppEntry

	clipboardStop chan struct{}
	lastResults   []search.Result
}

// NewApp constructs every subsystem and registers background-enabled
// extensions with the scheduler. extensionsDir overrides
// "<dataDir>/nova/extensions" when non-empty.
func NewApp(cfg config.Config, extensionsDir string, log *slog.Logger) (*App, error) {
	plat := linuxplatform.New(log)

	apps, err := plat.DiscoverApps()
	if err != nil {
		log.Warn("app discovery failed", "error", err)
	}

	frStore := frecency.Load(frecency.DefaultPath(plat.ConfigDir()), log)
	cmdIndex := customcommands.New(cfg, log)
	clip := search.NewClipboardHistory()

	if extensionsDir == "" {
		extensionsDir = filepath.Join(plat.DataDir(), "nova", "extensions")
	}

	auditStore := audit.NewFileStore(filepath.Join(plat.ConfigDir(), "nova", "audit"))
	auditLog := audit.NewLogger(auditStore, "local")
	metrics := observability.NewNovaMetrics()

	extHost, err := extensions.NewExtensionHost(extensions.ExtensionHostConfig{
		ExtensionsDir:   extensionsDir,
		PermissionsPath: filepath.Join(plat.ConfigDir(), "nova", "permissions.json"),
		Platform:        plat,
		Auditor:         auditLog,
		OnCircuitTrip:   func(extensionID string) { metrics.BackgroundCircuitTrips.Inc() },
	})
	if err != nil {
		return nil, fmt.Errorf("start extension host: %w", err)
	}

	a := &App{
		plat:          plat,
		log:           log,
		frecency:      frStore,
		commands:      cmdIndex,
		clipbd:        clip,
		engine:        search.NewEngine(),
		extHost:       extHost,
		mode:          commandmode.New(),
		audit:         auditLog,
		metrics:       metrics,
		apps:          apps,
		clipboardStop: make(chan struct{}),
	}
	a.cfg.Store(&cfg)

	a.scheduler = extensions.NewBackgroundScheduler(extensions.BackgroundSchedulerConfig{
		SettingsDir: filepath.Join(plat.ConfigDir(), "nova"),
	}, a.runExtensionBackground)
	a.registerBackgroundExtensions()

	go a.pollClipboard()

	return a, nil
}

func (a *App) runExtensionBackground(extensionID string) error {
	a.metrics.BackgroundTicks.Inc()

	err := a.extHost.RunBackground(extensionID)
	result := &audit.EventResult{Status: "success"}
	if err != nil {
		a.metrics.BackgroundTickErrors.Inc()
		result = &audit.EventResult{Status: "failure", Error: err.Error()}
	}
	if logErr := a.audit.LogExtensionBackground(context.Background(), extensionID, result); logErr != nil {
		a.log.Warn("audit log write failed", "error", logErr)
	}
	return err
}

func (a *App) registerBackgroundExtensions() {
	for _, id := range a.extHost.Extensions() {
		manifest, ok := a.extHost.Manifest(id)
		if !ok || manifest.Background == nil {
			continue
		}
		a.scheduler.Register(id, *manifest.Background)
	}
}

func (a *App) pollClipboard() {
	ticker := time.NewTicker(clipboardPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-a.clipboardStop:
			return
		case <-ticker.C:
			a.metrics.ClipboardPolls.Inc()
			if content, ok := a.plat.ClipboardRead(); ok {
				a.clipbd.Append(content)
			}
		}
	}
}

// Close stops every background goroutine and flushes persisted state.
func (a *App) Close() error {
	close(a.clipboardStop)
	a.scheduler.Shutdown()

	if err := a.extHost.Close(); err != nil {
		a.log.Warn("extension host close failed", "error", err)
	}
	return a.frecency.Close()
}

// searchApps converts the discovered platform apps into search.App
// once per call rather than caching, since Reload may re-scan.
func (a *App) searchApps() []search.App {
	out := make([]search.App, len(a.apps))
	for i, app := range a.apps {
		out[i] = search.App{
			ID:          app.ID,
			DisplayName: app.Name,
			Exec:        app.Exec,
			Icon:        app.Icon,
			Desc:        app.Description,
			Keywords:    app.Keywords,
		}
	}
	return out
}

// Query runs the full search pipeline and remembers the results so a
// later Select(index) can refer back to them.
func (a *App) Query(text string) []search.Result {
	a.metrics.SearchQueries.Inc()
	start := time.Now()
	defer func() { a.metrics.SearchLatency.Observe(time.Since(start).Seconds()) }()

	ctx := &search.Context{
		Frecency:   a.frecency,
		Apps:       a.searchApps(),
		Extensions: a.extHost,
		Commands:   a.commands,
		Clipboard:  a.clipbd,
		MaxResults: a.currentConfig().Behavior.MaxResults,
	}
	a.lastResults = a.engine.Search(text, ctx)
	return a.lastResults
}

// Select executes result and logs its frecency usage and, for
// extension commands, an audit record.
func (a *App) Select(result search.Result) executor.Result {
	if id, kind := result.FrecencyID(); id != "" {
		a.frecency.LogUsage(id, frecency.Kind(kind))
	}

	start := time.Now()
	outcome := executor.Execute(result, a.plat, a.extHost)
	a.auditExtensionExecute(result, outcome, time.Since(start))
	return outcome
}

func (a *App) auditExtensionExecute(result search.Result, outcome executor.Result, elapsed time.Duration) {
	var extensionID, commandID string
	switch r := result.(type) {
	case search.ExtensionCommand:
		extensionID, commandID = r.ExtensionID, r.CommandID
	case search.ExtensionCommandWithArg:
		extensionID, commandID = r.ExtensionID, r.CommandID
	default:
		return
	}

	a.metrics.ExtensionExecs.Inc()
	a.metrics.ExtensionExecLatency.Observe(elapsed.Seconds())

	auditResult := &audit.EventResult{Status: "success"}
	if outcome.Outcome == executor.ActionError {
		a.metrics.ExtensionExecErrors.Inc()
		auditResult = &audit.EventResult{Status: "failure", Error: outcome.Message}
	}
	if err := a.audit.LogExtensionExecute(context.Background(), extensionID, commandID, auditResult); err != nil {
		a.log.Warn("audit log write failed", "error", err)
	}
}

// ReloadExtensions rescans the extensions directory and re-registers
// background tasks for the extensions it finds. A removed extension's
// registration stays in the scheduler; its ticks fail in RunBackground
// with ErrCommandNotFound.
func (a *App) ReloadExtensions() error {
	if err := a.extHost.Reload(); err != nil {
		return err
	}
	a.registerBackgroundExtensions()
	return nil
}

// keywordResolver adapts App's custom commands and extension index to
// commandmode.KeywordResolver.
type keywordResolver struct{ app *App }

func (r keywordResolver) ResolveKeyword(keyword string) (search.Result, bool) {
	for _, q := range r.app.commands.Quicklinks {
		if q.Keyword == keyword {
			return search.Quicklink{
				Keyword:     q.Keyword,
				DisplayName: q.Name,
				URLTemplate: q.URL,
				HasQuery:    q.HasQueryPlaceholder(),
			}, true
		}
	}
	for _, s := range r.app.commands.Scripts {
		for _, k := range s.Keywords {
			if k == keyword {
				return search.Script{
					ID:          s.ID,
					DisplayName: s.Name,
					Desc:        s.Description,
					Path:        s.Path,
					HasArgument: s.HasArgument,
					OutputMode:  s.OutputMode.String(),
				}, true
			}
		}
	}
	for _, c := range r.app.extHost.SearchCommands("") {
		for _, k := range c.Keywords {
			if k == keyword {
				return c, true
			}
		}
	}
	return nil, false
}

func (a *App) resolver() commandmode.KeywordResolver { return keywordResolver{app: a} }

// currentConfig returns the config in effect right now. Reading through
// an atomic.Pointer rather than a plain field lets StartWatching swap
// in a freshly-reloaded config without a mutex on every Query.
func (a *App) currentConfig() config.Config {
	return *a.cfg.Load()
}

// SetConfig replaces the config in effect. Exported for the config-file
// watcher started by StartWatching; tests can also use it to simulate
// a reload without touching the filesystem.
func (a *App) SetConfig(cfg config.Config) {
	a.cfg.Store(&cfg)
}
