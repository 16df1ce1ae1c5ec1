// Package linuxplatform implements platform.Platform for Linux using XDG
// desktop files, xdg-open, notify-send, and systemd/logind.
package linuxplatform

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/nova-launcher/nova/pkg/platform"
)

// LinuxPlatform implements platform.Platform for Linux.
type LinuxPlatform struct {
	log *slog.Logger
}

// New creates a Linux platform shim. log may be nil, in which case
// slog.Default() is used.
func New(log *slog.Logger) *LinuxPlatform {
	if log == nil {
		log = slog.Default()
	}
	return &LinuxPlatform{log: log}
}

var _ platform.Platform = (*LinuxPlatform)(nil)

// appDirs returns the standard XDG application directories to scan, in
// scan order. User-local and Flatpak directories take priority over
// system ones so a user override wins the id-dedup race in DiscoverApps.
func (p *LinuxPlatform) appDirs() []string {
	home, _ := os.UserHomeDir()
	dirs := []string{}
	if home != "" {
		dirs = append(dirs,
			filepath.Join(home, ".local/share/applications"),
			filepath.Join(home, ".local/share/flatpak/exports/share/applications"),
		)
	}
	dirs = append(dirs,
		"/usr/local/share/applications",
		"/usr/share/applications",
		"/var/lib/snapd/desktop/applications",
	)
	return dirs
}

// DiscoverApps scans the XDG application directories for .desktop files.
func (p *LinuxPlatform) DiscoverApps() ([]platform.AppEntry, error) {
	seen := make(map[string]bool)
	var entries []platform.AppEntry

	for _, dir := range p.appDirs() {
		infos, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, info := range infos {
			if info.IsDir() || !strings.HasSuffix(info.Name(), ".desktop") {
				continue
			}
			full := filepath.Join(dir, info.Name())
			entry, ok := parseDesktopFile(full)
			if !ok {
				continue
			}
			if seen[entry.ID] {
				continue
			}
			seen[entry.ID] = true
			entries = append(entries, entry)
		}
	}

	sortAppsByName(entries)
	return entries, nil
}

// desktopEntry holds the subset of a .desktop file's [Desktop Entry]
// group this launcher cares about.
type desktopEntry struct {
	Name       string
	Exec       string
	Icon       string
	Comment    string
	Keywords   string
	NoDisplay  bool
	Hidden     bool
}

// parseDesktopFile reads and parses a single .desktop file. It returns
// ok=false for entries that are malformed or marked NoDisplay/Hidden,
// matching the reference launcher's filtering.
func parseDesktopFile(path string) (platform.AppEntry, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return platform.AppEntry{}, false
	}

	entry := parseDesktopEntryGroup(string(raw))
	if entry.NoDisplay || entry.Hidden {
		return platform.AppEntry{}, false
	}
	if entry.Name == "" || entry.Exec == "" {
		return platform.AppEntry{}, false
	}

	id := strings.TrimSuffix(filepath.Base(path), ".desktop")

	keywords := []string{}
	if entry.Keywords != "" {
		for _, k := range strings.Split(entry.Keywords, ";") {
			if k = strings.TrimSpace(k); k != "" {
				keywords = append(keywords, strings.ToLower(k))
			}
		}
	}
	for _, w := range strings.Fields(entry.Name) {
		keywords = append(keywords, strings.ToLower(w))
	}

	return platform.AppEntry{
		ID:          id,
		Name:        entry.Name,
		Exec:        entry.Exec,
		Icon:        entry.Icon,
		Description: entry.Comment,
		Keywords:    keywords,
	}, true
}

// parseDesktopEntryGroup is a minimal .desktop ([Desktop Entry] group)
// line parser. The format is INI-like but not valid TOML/INI in the
// general case (unescaped "=" in values, no quoting), so it is parsed
// by hand rather than through a structured decoder; only the
// [Desktop Entry] group is read, matching what the launcher needs.
func parseDesktopEntryGroup(content string) desktopEntry {
	var e desktopEntry
	inGroup := false

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inGroup = line == "[Desktop Entry]"
			continue
		}
		if !inGroup {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		// Skip localized keys like Name[de].
		if idx := strings.Index(key, "["); idx != -1 {
			continue
		}

		switch key {
		case "Name":
			e.Name = value
		case "Exec":
			e.Exec = value
		case "Icon":
			e.Icon = value
		case "Comment":
			e.Comment = value
		case "Keywords":
			e.Keywords = value
		case "NoDisplay":
			e.NoDisplay = value == "true"
		case "Hidden":
			e.Hidden = value == "true"
		}
	}
	return e
}

func sortAppsByName(entries []platform.AppEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && strings.ToLower(entries[j-1].Name) > strings.ToLower(entries[j].Name); j-- {
			entries[j-1], entries[j] = entries[j], entries[j-1]
		}
	}
}

// ClipboardRead returns the current clipboard text, via atotto/clipboard
// (which shells out to xclip/xsel/wl-clipboard as available).
func (p *LinuxPlatform) ClipboardRead() (string, bool) {
	content, err := clipboard.ReadAll()
	if err != nil || strings.TrimSpace(content) == "" {
		return "", false
	}
	return content, true
}

// ClipboardWrite writes content to the clipboard.
func (p *LinuxPlatform) ClipboardWrite(content string) error {
	return clipboard.WriteAll(content)
}

// OpenURL opens a URL in the default handler via xdg-open.
func (p *LinuxPlatform) OpenURL(url string) error {
	return p.spawn("xdg-open", url)
}

// OpenFile opens a file in its default handler via xdg-open.
func (p *LinuxPlatform) OpenFile(path string) error {
	return p.spawn("xdg-open", path)
}

// ShowNotification displays a desktop notification via notify-send.
func (p *LinuxPlatform) ShowNotification(title, body string) error {
	return p.spawn("notify-send", title, body)
}

// SystemCommand runs a power/session action, falling back to
// loginctl terminate-user for Logout if gnome-session-quit is absent.
func (p *LinuxPlatform) SystemCommand(cmd platform.SystemCommand) error {
	var name string
	var args []string

	switch cmd {
	case platform.Lock:
		name, args = "loginctl", []string{"lock-session"}
	case platform.Sleep:
		name, args = "systemctl", []string{"suspend"}
	case platform.Logout:
		name, args = "gnome-session-quit", []string{"--logout", "--no-prompt"}
	case platform.Restart:
		name, args = "systemctl", []string{"reboot"}
	case platform.Shutdown:
		name, args = "systemctl", []string{"poweroff"}
	default:
		return fmt.Errorf("unknown system command %v", cmd)
	}

	if err := exec.Command(name, args...).Run(); err != nil {
		if cmd == platform.Logout {
			user := os.Getenv("USER")
			if fallbackErr := exec.Command("loginctl", "terminate-user", user).Run(); fallbackErr != nil {
				return fmt.Errorf("logout fallback failed: %w", fallbackErr)
			}
			return nil
		}
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

// LaunchApp strips desktop-entry field codes from app.Exec and spawns
// the resulting command, detached from this process.
func (p *LinuxPlatform) LaunchApp(app platform.AppEntry) error {
	exec := platform.StripFieldCodes(app.Exec)
	fields := strings.Fields(exec)
	if len(fields) == 0 {
		return fmt.Errorf("empty exec command for %s", app.Name)
	}
	if err := p.spawn(fields[0], fields[1:]...); err != nil {
		return fmt.Errorf("launch %s: %w", app.Name, err)
	}
	return nil
}

// RunShellCommand runs command through sh -c, detached.
func (p *LinuxPlatform) RunShellCommand(command string) error {
	return p.spawn("sh", "-c", command)
}

// spawn starts name with args and does not wait for it to finish.
func (p *LinuxPlatform) spawn(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			p.log.Debug("detached process exited non-zero", "command", name, "error", err)
		}
	}()
	return nil
}

// ConfigDir returns $XDG_CONFIG_HOME/nova (or ~/.config/nova).
func (p *LinuxPlatform) ConfigDir() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "nova")
}

// DataDir returns $XDG_DATA_HOME/nova (or ~/.local/share/nova).
func (p *LinuxPlatform) DataDir() string {
	return filepath.Join(xdgDir("XDG_DATA_HOME", ".local/share"), "nova")
}

// RuntimeDir returns $XDG_RUNTIME_DIR, falling back to /tmp.
func (p *LinuxPlatform) RuntimeDir() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir
	}
	return "/tmp"
}

func xdgDir(envVar, fallbackRelative string) string {
	if dir := os.Getenv(envVar); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("/tmp", fallbackRelative)
	}
	return filepath.Join(home, fallbackRelative)
}
