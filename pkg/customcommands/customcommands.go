// Package customcommands loads the user-defined aliases, quicklinks,
// and scripts that several search providers trigger on, and flags
// keyword collisions between them so a misconfigured script doesn't
// silently shadow a built-in alias.
package customcommands

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nova-launcher/nova/pkg/config"
	"github.com/nova-launcher/nova/pkg/platform"
)

// OutputMode controls what a script's stdout is used for once it
// finishes running.
type OutputMode int

const (
	// OutputSilent discards stdout; the script is expected to have its
	// own side effects (e.g. toggling something, writing a file).
	OutputSilent OutputMode = iota
	// OutputNotification shows stdout as a desktop notification.
	OutputNotification
	// OutputClipboard copies stdout to the clipboard and notifies.
	OutputClipboard
	// OutputInline behaves like OutputNotification today; reserved for
	// a future in-window result render.
	OutputInline
)

func (m OutputMode) String() string {
	switch m {
	case OutputNotification:
		return "notification"
	case OutputClipboard:
		return "clipboard"
	case OutputInline:
		return "inline"
	default:
		return "silent"
	}
}

// ScriptEntry is a discovered custom script, described by a "# nova:"
// metadata header in its own source.
type ScriptEntry struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Path        string
	Keywords    []string
	HasArgument bool
	OutputMode  OutputMode
}

// Index holds the user's aliases, quicklinks, and discovered scripts.
type Index struct {
	Aliases    []config.AliasConfig
	Quicklinks []config.QuicklinkConfig
	Scripts    []ScriptEntry

	log *slog.Logger
}

// New builds an Index from cfg, scanning cfg.Scripts.Directory for
// scripts if cfg.Scripts.Enabled. log may be nil.
func New(cfg config.Config, log *slog.Logger) *Index {
	if log == nil {
		log = slog.Default()
	}

	idx := &Index{
		Aliases:    cfg.Aliases,
		Quicklinks: cfg.Quicklinks,
		log:        log,
	}
	if cfg.Scripts.Enabled {
		idx.Scripts = loadScripts(cfg.Scripts.Directory, log)
	}
	idx.warnKeywordCollisions()
	return idx
}

// Reload re-scans the scripts directory, leaving aliases/quicklinks
// untouched (those only change when the config file is reloaded).
func (idx *Index) Reload(cfg config.Config) {
	if cfg.Scripts.Enabled {
		idx.Scripts = loadScripts(cfg.Scripts.Directory, idx.log)
	} else {
		idx.Scripts = nil
	}
	idx.warnKeywordCollisions()
}

func loadScripts(directory string, log *slog.Logger) []ScriptEntry {
	home, _ := os.UserHomeDir()
	dir := platform.ExpandHome(directory, home)

	if _, err := os.Stat(dir); err != nil {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Warn("failed to create scripts directory", "dir", dir, "error", err)
		}
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warn("failed to read scripts directory", "dir", dir, "error", err)
		return nil
	}

	var scripts []ScriptEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		script, ok := parseScriptMetadata(path)
		if !ok {
			continue
		}
		scripts = append(scripts, script)
	}

	log.Info("loaded scripts", "count", len(scripts), "dir", dir)
	return scripts
}

// parseScriptMetadata reads path's "# nova:" header comments. A script
// with no such header is not a Nova command and is skipped.
func parseScriptMetadata(path string) (ScriptEntry, bool) {
	f, err := os.Open(path)
	if err != nil {
		return ScriptEntry{}, false
	}
	defer f.Close()

	metadata := extractMetadataHeader(f)
	if len(metadata) == 0 {
		return ScriptEntry{}, false
	}

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	name := metadata["name"]
	if name == "" {
		name = id
	}

	var keywords []string
	if raw, ok := metadata["keywords"]; ok {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keywords = append(keywords, k)
			}
		}
	}

	outputMode := OutputSilent
	switch metadata["output"] {
	case "notification":
		outputMode = OutputNotification
	case "clipboard":
		outputMode = OutputClipboard
	case "inline":
		outputMode = OutputInline
	}

	return ScriptEntry{
		ID:          id,
		Name:        name,
		Description: metadata["description"],
		Icon:        metadata["icon"],
		Path:        path,
		Keywords:    keywords,
		HasArgument: metadata["argument"] == "true",
		OutputMode:  outputMode,
	}, true
}

// extractMetadataHeader reads "# nova: key = value" lines from the
// leading comment block of a script, stopping at the first line that
// is neither blank, a shebang, nor a comment.
func extractMetadataHeader(r *os.File) map[string]string {
	metadata := make(map[string]string)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())

		if !strings.HasPrefix(trimmed, "#") && trimmed != "" {
			break
		}
		if strings.HasPrefix(trimmed, "#!") {
			continue
		}

		rest, ok := strings.CutPrefix(strings.TrimSpace(strings.TrimPrefix(trimmed, "#")), "nova:")
		if !ok {
			continue
		}
		key, value, ok := strings.Cut(rest, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"`)
		metadata[key] = value
	}

	return metadata
}

// warnKeywordCollisions logs when two aliases, quicklinks, or scripts
// share a trigger keyword. The index keeps every colliding entry and the
// search providers return all of them; no entry takes precedence.
func (idx *Index) warnKeywordCollisions() {
	seen := make(map[string]string)

	register := func(keyword, source string) {
		if keyword == "" {
			return
		}
		if prior, exists := seen[keyword]; exists {
			idx.log.Warn("keyword collision between custom commands",
				"keyword", keyword, "first", prior, "second", source)
			return
		}
		seen[keyword] = source
	}

	for _, a := range idx.Aliases {
		register(a.Keyword, "alias:"+a.Name)
	}
	for _, q := range idx.Quicklinks {
		register(q.Keyword, "quicklink:"+q.Name)
	}
	for _, s := range idx.Scripts {
		for _, k := range s.Keywords {
			register(k, "script:"+s.Name)
		}
	}
}
