package extensions

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/nova-launcher/nova/pkg/platform"
)

// PermissionError reports a denied permission, carrying enough detail
// for the caller to surface it to the user and for the JS isolate to
// throw it as a named exception.
type PermissionError struct {
	ExtensionID string
	Permission  string
	Detail      string
}

func (e *PermissionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("permission %q denied for extension %q: %s", e.Permission, e.ExtensionID, e.Detail)
	}
	return fmt.Sprintf("permission %q denied for extension %q", e.Permission, e.ExtensionID)
}

// ErrPermissionDenied is the sentinel every *PermissionError wraps, so
// callers can test with errors.Is without matching on message text.
var ErrPermissionDenied = errors.New("permission denied")

func denied(extensionID, permission, detail string) error {
	return fmt.Errorf("%w: %w", ErrPermissionDenied, &PermissionError{
		ExtensionID: extensionID, Permission: permission, Detail: detail,
	})
}

// NetworkPermission is the runtime form of a manifest's network grant.
type NetworkPermission struct {
	Enabled        bool     `json:"enabled"`
	AllowedDomains []string `json:"allowed_domains"`
}

// FilesystemPermission is the runtime form of a manifest's filesystem grant.
type FilesystemPermission struct {
	Enabled      bool     `json:"enabled"`
	AllowedPaths []string `json:"allowed_paths"`
	Read         bool     `json:"read"`
	Write        bool     `json:"write"`
}

// PermissionSet is the set of permissions granted to one extension.
type PermissionSet struct {
	Clipboard  bool                  `json:"clipboard"`
	Network    NetworkPermission     `json:"network"`
	Filesystem FilesystemPermission  `json:"filesystem"`
	System     bool                  `json:"system"`
	Storage    bool                  `json:"storage"`
	Background bool                  `json:"background"`
}

// NewPermissionSet returns an all-denied permission set.
func NewPermissionSet() PermissionSet { return PermissionSet{} }

// PermissionSetFromManifest derives the permission set an extension
// requests from its manifest's [permissions] table. Notifications maps
// to the broader "system" permission, matching the reference
// implementation's op surface (system covers notify + open-url).
func PermissionSetFromManifest(cfg PermissionsConfig) PermissionSet {
	return PermissionSet{
		Clipboard: cfg.Clipboard,
		Network: NetworkPermission{
			Enabled:        len(cfg.Network) > 0,
			AllowedDomains: cfg.Network,
		},
		Filesystem: FilesystemPermission{
			Enabled:      cfg.Filesystem.Enabled,
			AllowedPaths: cfg.Filesystem.AllowedPaths,
			Read:         cfg.Filesystem.Read,
			Write:        cfg.Filesystem.Write,
		},
		System:     cfg.Notifications,
		Storage:    cfg.Storage,
		Background: cfg.Background,
	}
}

func (p PermissionSet) checkClipboard(extID string) error {
	if p.Clipboard {
		return nil
	}
	return denied(extID, "clipboard", "")
}

// checkNetwork validates network access to domain for extID.
func (p PermissionSet) checkNetwork(extID, domain string) error {
	if !p.Network.Enabled {
		return denied(extID, "network", "")
	}
	if !p.isDomainAllowed(domain) {
		return denied(extID, "network", fmt.Sprintf("domain %q not allowed", domain))
	}
	return nil
}

func (p PermissionSet) isDomainAllowed(domain string) bool {
	for _, pattern := range p.Network.AllowedDomains {
		if pattern == "*" {
			return true
		}
		if strings.HasPrefix(pattern, "*.") {
			suffix := pattern[1:] // ".example.com"
			if strings.HasSuffix(domain, suffix) || domain == pattern[2:] {
				return true
			}
			continue
		}
		if domain == pattern {
			return true
		}
	}
	return false
}

// checkFilesystem validates access to path for extID, expanding `~` on
// both the requested path and the allowed-path entries before comparing.
func (p PermissionSet) checkFilesystem(extID, path string, write bool) error {
	if !p.Filesystem.Enabled {
		return denied(extID, "filesystem", "")
	}
	if write && !p.Filesystem.Write {
		return denied(extID, "filesystem.write", "")
	}
	if !write && !p.Filesystem.Read {
		return denied(extID, "filesystem.read", "")
	}
	if !p.isPathAllowed(path) {
		return denied(extID, "filesystem", fmt.Sprintf("path %q not allowed", path))
	}
	return nil
}

func (p PermissionSet) isPathAllowed(path string) bool {
	home, _ := os.UserHomeDir()
	expanded := platform.ExpandHome(path, home)

	for _, allowed := range p.Filesystem.AllowedPaths {
		expandedAllowed := platform.ExpandHome(allowed, home)
		if strings.HasPrefix(expanded, expandedAllowed) {
			return true
		}
	}
	return false
}

func (p PermissionSet) checkSystem(extID string) error {
	if p.System {
		return nil
	}
	return denied(extID, "system", "")
}

func (p PermissionSet) checkStorage(extID string) error {
	if p.Storage {
		return nil
	}
	return denied(extID, "storage", "")
}

func (p PermissionSet) checkBackground(extID string) error {
	if p.Background {
		return nil
	}
	return denied(extID, "background", "")
}

// EnabledPermissions lists every permission this set currently grants,
// used for consent-UI display (out of scope here, but part of the
// public surface).
func (p PermissionSet) EnabledPermissions() []string {
	var out []string
	if p.Clipboard {
		out = append(out, "clipboard")
	}
	if p.Network.Enabled {
		out = append(out, "network")
	}
	if p.Filesystem.Enabled {
		out = append(out, "filesystem")
	}
	if p.System {
		out = append(out, "system")
	}
	if p.Storage {
		out = append(out, "storage")
	}
	if p.Background {
		out = append(out, "background")
	}
	return out
}

// ExtensionGrants is the persisted record of one extension's granted
// permissions.
type ExtensionGrants struct {
	Permissions      PermissionSet `json:"permissions"`
	UpdatedAt        int64         `json:"updated_at"`
	ExtensionVersion string        `json:"extension_version,omitempty"`
}

// PermissionStore persists granted permissions across restarts, keyed
// by extension id. Safe for concurrent use.
type PermissionStore struct {
	mu     sync.Mutex
	path   string
	grants map[string]ExtensionGrants
	dirty  bool
}

// NewPermissionStore loads a store from path, tolerating a missing or
// malformed file by starting empty (consistent with the rest of the
// codebase's load-with-defaults-on-error policy).
func NewPermissionStore(path string) *PermissionStore {
	return &PermissionStore{path: path, grants: loadGrants(path)}
}

func loadGrants(path string) map[string]ExtensionGrants {
	data, err := os.ReadFile(path)
	if err != nil {
		return map[string]ExtensionGrants{}
	}
	var grants map[string]ExtensionGrants
	if err := json.Unmarshal(data, &grants); err != nil {
		return map[string]ExtensionGrants{}
	}
	return grants
}

// HasGrants reports whether extensionID has any recorded permissions.
func (s *PermissionStore) HasGrants(extensionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.grants[extensionID]
	return ok
}

// GetGrants returns the full grant record for extensionID.
func (s *PermissionStore) GetGrants(extensionID string) (ExtensionGrants, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.grants[extensionID]
	return g, ok
}

// GetPermissions returns the granted permission set for extensionID, or
// an all-denied set if nothing has been granted yet.
func (s *PermissionStore) GetPermissions(extensionID string) PermissionSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grants[extensionID].Permissions
}

// Grant records permissions for extensionID and marks the store dirty.
func (s *PermissionStore) Grant(extensionID string, permissions PermissionSet, version string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grants[extensionID] = ExtensionGrants{
		Permissions:      permissions,
		UpdatedAt:        time.Now().Unix(),
		ExtensionVersion: version,
	}
	s.dirty = true
}

// Revoke removes all granted permissions for extensionID.
func (s *PermissionStore) Revoke(extensionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.grants[extensionID]; ok {
		delete(s.grants, extensionID)
		s.dirty = true
	}
}

// RevokePermission clears a single named permission for extensionID.
func (s *PermissionStore) RevokePermission(extensionID, permission string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.grants[extensionID]
	if !ok {
		return
	}
	switch permission {
	case "clipboard":
		g.Permissions.Clipboard = false
	case "network":
		g.Permissions.Network.Enabled = false
	case "filesystem":
		g.Permissions.Filesystem.Enabled = false
	case "system":
		g.Permissions.System = false
	case "storage":
		g.Permissions.Storage = false
	case "background":
		g.Permissions.Background = false
	default:
		return
	}
	g.UpdatedAt = time.Now().Unix()
	s.grants[extensionID] = g
	s.dirty = true
}

// AllExtensions lists every extension id with a grant record.
func (s *PermissionStore) AllExtensions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.grants))
	for id := range s.grants {
		out = append(out, id)
	}
	return out
}

// NeedsConsent returns the names of permissions in requested that are
// not yet granted to extensionID.
func (s *PermissionStore) NeedsConsent(extensionID string, requested PermissionSet) []string {
	granted := s.GetPermissions(extensionID)
	var needs []string
	if requested.Clipboard && !granted.Clipboard {
		needs = append(needs, "clipboard")
	}
	if requested.Network.Enabled && !granted.Network.Enabled {
		needs = append(needs, "network")
	}
	if requested.Filesystem.Enabled && !granted.Filesystem.Enabled {
		needs = append(needs, "filesystem")
	}
	if requested.System && !granted.System {
		needs = append(needs, "system")
	}
	if requested.Storage && !granted.Storage {
		needs = append(needs, "storage")
	}
	if requested.Background && !granted.Background {
		needs = append(needs, "background")
	}
	return needs
}

// Save persists the store to disk if it has unsaved changes.
func (s *PermissionStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create permission store dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(s.grants, "", "  ")
	if err != nil {
		return fmt.Errorf("encode permission store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write permission store: %w", err)
	}
	s.dirty = false
	return nil
}

// Reload discards in-memory grants and reloads from disk.
func (s *PermissionStore) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grants = loadGrants(s.path)
	s.dirty = false
}

// PermissionDescription returns a human-readable description of a
// permission name, used by the (out of scope) consent UI.
func PermissionDescription(permission string) string {
	switch permission {
	case "clipboard":
		return "Read and write to the system clipboard"
	case "network":
		return "Make network requests to allowed domains"
	case "filesystem":
		return "Access files on your computer"
	case "system":
		return "Show notifications and open URLs"
	case "storage":
		return "Store data persistently"
	case "background":
		return "Run in the background"
	default:
		return "Unknown permission"
	}
}
