// Package extensions implements Nova's extension host: manifest
// parsing, permission enforcement, a V8-sandboxed command runtime, and
// the background scheduler that drives periodic extension ticks.
package extensions

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adhocore/gronx"
	"github.com/pelletier/go-toml/v2"
)

// ErrManifestNotFound is returned when an extension directory has no
// nova.toml. The scanner logs it like any other manifest error and
// skips the directory.
var ErrManifestNotFound = errors.New("extension manifest not found")

// ManifestError wraps a validation or parse failure with the manifest
// path, so callers can report which extension misbehaved.
type ManifestError struct {
	Path    string
	Message string
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest %s: %s", e.Path, e.Message)
}

// Manifest is the parsed contents of an extension's nova.toml.
type Manifest struct {
	Extension   ExtensionMeta      `toml:"extension"`
	Permissions PermissionsConfig  `toml:"permissions"`
	Background  *BackgroundConfig  `toml:"background"`
	Commands    []CommandConfig    `toml:"commands"`
	Preferences []PreferenceConfig `toml:"preferences"`
}

// ExtensionMeta is the required [extension] table.
type ExtensionMeta struct {
	Name        string   `toml:"name"`
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Version     string   `toml:"version"`
	Author      string   `toml:"author"`
	Repo        string   `toml:"repo"`
	Homepage    string   `toml:"homepage"`
	License     string   `toml:"license"`
	Icon        string   `toml:"icon"`
	Keywords    []string `toml:"keywords"`
	NovaVersion string   `toml:"nova_version"`
}

// PermissionsConfig is the manifest's declared [permissions] table, as
// written by the extension author. PermissionSet (permissions.go) is
// the runtime, grantable form derived from it.
type PermissionsConfig struct {
	Network       []string             `toml:"network"`
	Clipboard     bool                 `toml:"clipboard"`
	Storage       bool                 `toml:"storage"`
	Notifications bool                 `toml:"notifications"`
	Background    bool                 `toml:"background"`
	Filesystem    FilesystemPermConfig `toml:"filesystem"`
}

// FilesystemPermConfig is the manifest's [permissions.filesystem] subtable.
type FilesystemPermConfig struct {
	Enabled      bool     `toml:"enabled"`
	Read         bool     `toml:"read"`
	Write        bool     `toml:"write"`
	AllowedPaths []string `toml:"allowed_paths"`
}

// BackgroundConfig is the manifest's optional [background] table.
// Schedule, when set, is a cron expression that overrides the flat
// Interval entirely (see backgroundTaskState.cronDue).
type BackgroundConfig struct {
	Interval  uint64 `toml:"interval"`
	RunOnLoad bool   `toml:"run_on_load"`
	Schedule  string `toml:"schedule"`
}

// CommandMode is the UI mode a command renders its results in.
type CommandMode string

const (
	CommandModeList   CommandMode = "list"
	CommandModeDetail CommandMode = "detail"
	CommandModeForm   CommandMode = "form"
)

// CommandConfig is one [[commands]] entry.
type CommandConfig struct {
	Name        string           `toml:"name"`
	Title       string           `toml:"title"`
	Description string           `toml:"description"`
	Mode        CommandMode      `toml:"mode"`
	Keywords    []string         `toml:"keywords"`
	Arguments   []ArgumentConfig `toml:"arguments"`
}

// HasArgument reports whether the command declares at least one argument.
func (c CommandConfig) HasArgument() bool { return len(c.Arguments) > 0 }

// ArgumentConfig describes one command argument.
type ArgumentConfig struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"`
	Required bool   `toml:"required"`
}

// PreferenceType is the input widget a preference renders as.
type PreferenceType string

const (
	PreferenceText     PreferenceType = "text"
	PreferencePassword PreferenceType = "password"
	PreferenceCheckbox PreferenceType = "checkbox"
	PreferenceDropdown PreferenceType = "dropdown"
)

// PreferenceConfig is one [[preferences]] entry.
type PreferenceConfig struct {
	Name        string             `toml:"name"`
	Title       string             `toml:"title"`
	Description string             `toml:"description"`
	Type        PreferenceType     `toml:"type"`
	Required    bool               `toml:"required"`
	Default     string             `toml:"default"`
	Options     []PreferenceOption `toml:"options"`
}

// PreferenceOption is one dropdown choice.
type PreferenceOption struct {
	Value string `toml:"value"`
	Title string `toml:"title"`
}

// LoadManifest reads and parses nova.toml from extensionDir. It returns
// ErrManifestNotFound (wrapped) if the file is absent, and a
// *ManifestError (wrapped) if it exists but fails to parse.
func LoadManifest(extensionDir string) (Manifest, error) {
	path := filepath.Join(extensionDir, "nova.toml")

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return Manifest{}, fmt.Errorf("read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(content, &m); err != nil {
		return Manifest{}, fmt.Errorf("%w", &ManifestError{Path: path, Message: err.Error()})
	}
	return m, nil
}

// Validate checks the manifest for the required fields and constraints
// every extension must satisfy before it's indexed.
func (m Manifest) Validate() error {
	if m.Extension.Name == "" {
		return fmt.Errorf("%w", &ManifestError{Path: "nova.toml", Message: "extension.name is required"})
	}
	if m.Extension.Title == "" {
		return fmt.Errorf("%w", &ManifestError{Path: "nova.toml", Message: "extension.title is required"})
	}
	if m.Extension.Version == "" {
		return fmt.Errorf("%w", &ManifestError{Path: "nova.toml", Message: "extension.version is required"})
	}

	for _, cmd := range m.Commands {
		if cmd.Name == "" {
			return fmt.Errorf("%w", &ManifestError{Path: "nova.toml", Message: "command.name is required"})
		}
		if cmd.Title == "" {
			return fmt.Errorf("%w", &ManifestError{Path: "nova.toml", Message: fmt.Sprintf("command %q requires a title", cmd.Name)})
		}
	}

	if m.Background != nil {
		if m.Background.Schedule != "" {
			if !gronx.IsValid(m.Background.Schedule) {
				return fmt.Errorf("%w", &ManifestError{Path: "nova.toml", Message: "background.schedule is not a valid cron expression"})
			}
		} else if m.Background.Interval < 60 {
			return fmt.Errorf("%w", &ManifestError{Path: "nova.toml", Message: "background.interval must be at least 60 seconds"})
		}
	}

	return nil
}
