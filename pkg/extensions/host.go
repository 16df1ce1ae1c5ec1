package extensions

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/nova-launcher/nova/pkg/fuzzy"
	"github.com/nova-launcher/nova/pkg/platform"
	"github.com/nova-launcher/nova/pkg/resilience"
	"github.com/nova-launcher/nova/pkg/search"
)

// PermissionAuditor records a permission grant made the first time an
// extension is loaded. Kept narrow so this package doesn't import
// pkg/audit directly.
type PermissionAuditor interface {
	LogPermissionDecision(ctx context.Context, extensionID string, granted []string) error
}

// backgroundBreakerMaxFailures is how many consecutive failed ticks a
// background task gets before its circuit opens and the scheduler's
// tick is short-circuited without touching the isolate.
const backgroundBreakerMaxFailures = 3

// backgroundBreakerResetTimeout is how long an open circuit stays
// open before a tick is allowed through again to test recovery.
const backgroundBreakerResetTimeout = 5 * time.Minute

// ExtensionHostConfig configures an ExtensionHost.
type ExtensionHostConfig struct {
	ExtensionsDir    string
	PermissionsPath  string
	MaxIsolates      int
	IdleTimeout      time.Duration
	ExecutionTimeout time.Duration
	Platform         platform.Platform
	Auditor          PermissionAuditor

	// OnCircuitTrip, if set, is called whenever a background task's
	// circuit breaker opens (MaxFailures consecutive failures). Kept
	// narrow so this package doesn't import pkg/observability.
	OnCircuitTrip func(extensionID string)
}

func (c ExtensionHostConfig) withDefaults() ExtensionHostConfig {
	if c.MaxIsolates <= 0 {
		c.MaxIsolates = 10
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = 30 * time.Second
	}
	if c.ExecutionTimeout <= 0 {
		c.ExecutionTimeout = 30 * time.Second
	}
	return c
}

// indexedExtension is one successfully loaded, validated extension.
type indexedExtension struct {
	id       string
	dir      string
	manifest Manifest
}

// indexedCommand is a (extension, command) pair flattened for search.
type indexedCommand struct {
	extensionID    string
	extensionTitle string
	command        CommandConfig
	searchText     string
}

// ExtensionHost scans an extensions directory, indexes every command
// for search, and manages a bounded pool of V8 isolates loaded
// on demand and evicted least-recently-used.
//
// ExtensionHost implements search.ExtensionSource.
type ExtensionHost struct {
	config ExtensionHostConfig
	perms  *PermissionStore

	mu         sync.Mutex
	extensions map[string]indexedExtension
	commands   []indexedCommand
	isolates   map[string]*Isolate
	loadOrder  []string // least-recently-used first

	backgroundBreakers map[string]*resilience.CircuitBreaker
}

// NewExtensionHost scans config.ExtensionsDir and builds the command
// index. Extensions with a missing or invalid manifest are logged and
// skipped; a bad extension never prevents the rest from loading.
func NewExtensionHost(config ExtensionHostConfig) (*ExtensionHost, error) {
	config = config.withDefaults()

	h := &ExtensionHost{
		config:             config,
		perms:              NewPermissionStore(config.PermissionsPath),
		extensions:         map[string]indexedExtension{},
		isolates:           map[string]*Isolate{},
		backgroundBreakers: map[string]*resilience.CircuitBreaker{},
	}

	if err := h.scan(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *ExtensionHost) scan() error {
	entries, err := os.ReadDir(h.config.ExtensionsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("scan extensions dir: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.extensions = map[string]indexedExtension{}
	h.commands = nil
	h.backgroundBreakers = map[string]*resilience.CircuitBreaker{}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(h.config.ExtensionsDir, entry.Name())

		manifest, err := LoadManifest(dir)
		if err != nil {
			slog.Warn("skipping extension", "dir", dir, "error", err)
			continue
		}
		if err := manifest.Validate(); err != nil {
			slog.Warn("skipping extension with invalid manifest", "dir", dir, "error", err)
			continue
		}

		id := manifest.Extension.Name
		h.extensions[id] = indexedExtension{id: id, dir: dir, manifest: manifest}

		for _, cmd := range manifest.Commands {
			h.commands = append(h.commands, indexedCommand{
				extensionID:    id,
				extensionTitle: manifest.Extension.Title,
				command:        cmd,
				searchText: strings.Join([]string{
					cmd.Title, cmd.Description, strings.Join(cmd.Keywords, " "), manifest.Extension.Title,
				}, " "),
			})
		}
	}

	return nil
}

// SearchCommands implements search.ExtensionSource. An empty query
// returns every indexed command, unranked; otherwise it's a fuzzy
// match over each command's title, description, keywords, and parent
// extension title, sorted by descending score.
func (h *ExtensionHost) SearchCommands(query string) []search.ExtensionCommand {
	h.mu.Lock()
	commands := make([]indexedCommand, len(h.commands))
	copy(commands, h.commands)
	h.mu.Unlock()

	type scored struct {
		cmd   indexedCommand
		score int
	}

	var matches []scored
	trimmed := strings.TrimSpace(query)
	for _, c := range commands {
		if trimmed == "" {
			matches = append(matches, scored{cmd: c, score: 0})
			continue
		}
		if score, ok := fuzzy.Match(trimmed, c.searchText); ok {
			matches = append(matches, scored{cmd: c, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	out := make([]search.ExtensionCommand, len(matches))
	for i, m := range matches {
		out[i] = search.ExtensionCommand{
			ExtensionID: m.cmd.extensionID,
			CommandID:   m.cmd.command.Name,
			DisplayName: m.cmd.command.Title,
			Desc:        m.cmd.command.Description,
			Keywords:    m.cmd.command.Keywords,
			HasArgument: m.cmd.command.HasArgument(),
			OutputMode:  string(m.cmd.command.Mode),
		}
	}
	return out
}

// ExecuteCommand runs a command by (extensionID, commandID), loading
// the extension's isolate on demand.
func (h *ExtensionHost) ExecuteCommand(extensionID, commandID string, argument string, hasArgument bool) (string, error) {
	h.mu.Lock()
	ext, ok := h.extensions[extensionID]
	if !ok {
		h.mu.Unlock()
		return "", fmt.Errorf("%w: extension %q", ErrCommandNotFound, extensionID)
	}

	var cmd *CommandConfig
	for i := range ext.manifest.Commands {
		if ext.manifest.Commands[i].Name == commandID {
			cmd = &ext.manifest.Commands[i]
			break
		}
	}
	if cmd == nil {
		h.mu.Unlock()
		return "", fmt.Errorf("%w: %s/%s", ErrCommandNotFound, extensionID, commandID)
	}

	iso, err := h.getOrLoadIsolateLocked(ext)
	h.mu.Unlock()
	if err != nil {
		return "", err
	}

	return iso.ExecuteCommand(commandID, argument, hasArgument, h.config.ExecutionTimeout)
}

// RunBackground loads extensionID's isolate if needed and invokes its
// registerBackground handler. This is what a BackgroundScheduler
// callback calls on each due tick; it bypasses command lookup entirely
// since a background handler is not one of the manifest's [[commands]].
//
// Each extension's ticks run behind their own circuit breaker: a
// background task that fails backgroundBreakerMaxFailures ticks in a
// row stops loading its isolate entirely until backgroundBreakerResetTimeout
// passes, so one broken extension can't burn a reload/execute cycle
// every scheduler tick forever.
func (h *ExtensionHost) RunBackground(extensionID string) error {
	h.mu.Lock()
	ext, ok := h.extensions[extensionID]
	if !ok {
		h.mu.Unlock()
		return fmt.Errorf("%w: extension %q", ErrCommandNotFound, extensionID)
	}
	cb, ok := h.backgroundBreakers[extensionID]
	if !ok {
		cb = resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
			Name:         extensionID,
			MaxFailures:  backgroundBreakerMaxFailures,
			ResetTimeout: backgroundBreakerResetTimeout,
			OnStateChange: func(name string, from, to resilience.CircuitState) {
				slog.Warn("background task circuit breaker changed state", "extension", name, "from", from, "to", to)
				if to == resilience.CircuitOpen && h.config.OnCircuitTrip != nil {
					h.config.OnCircuitTrip(name)
				}
			},
		})
		h.backgroundBreakers[extensionID] = cb
	}
	h.mu.Unlock()

	return cb.Execute(func() error {
		h.mu.Lock()
		iso, err := h.getOrLoadIsolateLocked(ext)
		h.mu.Unlock()
		if err != nil {
			return err
		}
		return iso.RunBackground(h.config.ExecutionTimeout)
	})
}

// getOrLoadIsolateLocked must be called with h.mu held.
func (h *ExtensionHost) getOrLoadIsolateLocked(ext indexedExtension) (*Isolate, error) {
	if iso, ok := h.isolates[ext.id]; ok {
		h.touchLocked(ext.id)
		return iso, nil
	}

	if len(h.isolates) >= h.config.MaxIsolates {
		h.evictLRULocked()
	}

	permissions := PermissionSetFromManifest(ext.manifest.Permissions)
	if !h.perms.HasGrants(ext.id) {
		h.perms.Grant(ext.id, permissions, ext.manifest.Extension.Version)
		if h.config.Auditor != nil {
			if err := h.config.Auditor.LogPermissionDecision(context.Background(), ext.id, permissions.EnabledPermissions()); err != nil {
				slog.Warn("permission audit log write failed", "extension", ext.id, "error", err)
			}
		}
	} else {
		permissions = h.perms.GetPermissions(ext.id)
	}

	storage := NewStorage(filepath.Join(ext.dir, "storage"))
	hostCtx := NewContext(ext.id, h.config.Platform, storage, permissions, nil)

	iso := NewIsolate(ext.id, ext.manifest, ext.dir)
	if err := iso.Load(hostCtx); err != nil {
		return nil, err
	}

	h.isolates[ext.id] = iso
	h.loadOrder = append(h.loadOrder, ext.id)
	return iso, nil
}

func (h *ExtensionHost) touchLocked(id string) {
	for i, existing := range h.loadOrder {
		if existing == id {
			h.loadOrder = append(h.loadOrder[:i], h.loadOrder[i+1:]...)
			break
		}
	}
	h.loadOrder = append(h.loadOrder, id)
}

func (h *ExtensionHost) evictLRULocked() {
	if len(h.loadOrder) == 0 {
		return
	}
	victim := h.loadOrder[0]
	h.loadOrder = h.loadOrder[1:]
	if iso, ok := h.isolates[victim]; ok {
		iso.Unload()
		delete(h.isolates, victim)
	}
}

// CleanupIdle unloads every isolate that has been idle longer than
// config.IdleTimeout.
func (h *ExtensionHost) CleanupIdle() {
	h.mu.Lock()
	defer h.mu.Unlock()

	var keep []string
	for _, id := range h.loadOrder {
		iso, ok := h.isolates[id]
		if !ok {
			continue
		}
		if iso.IsIdle(h.config.IdleTimeout) {
			iso.Unload()
			delete(h.isolates, id)
			continue
		}
		keep = append(keep, id)
	}
	h.loadOrder = keep
}

// Reload unloads every isolate and rescans the extensions directory.
func (h *ExtensionHost) Reload() error {
	h.mu.Lock()
	for id, iso := range h.isolates {
		iso.Unload()
		delete(h.isolates, id)
	}
	h.loadOrder = nil
	h.mu.Unlock()

	return h.scan()
}

// Manifest returns the parsed manifest for extensionID, for callers
// (the background scheduler wiring) that need to read its
// [background] table rather than dispatch a command.
func (h *ExtensionHost) Manifest(extensionID string) (Manifest, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	ext, ok := h.extensions[extensionID]
	if !ok {
		return Manifest{}, false
	}
	return ext.manifest, true
}

// Extensions returns the ids of every currently indexed extension.
func (h *ExtensionHost) Extensions() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.extensions))
	for id := range h.extensions {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Close unloads every isolate and persists the permission store.
func (h *ExtensionHost) Close() error {
	h.mu.Lock()
	for id, iso := range h.isolates {
		iso.Unload()
		delete(h.isolates, id)
	}
	h.loadOrder = nil
	h.mu.Unlock()

	return h.perms.Save()
}

var _ search.ExtensionSource = (*ExtensionHost)(nil)
