// Package platform defines the narrow capability surface through which
// the rest of Nova's core reaches the operating system: application
// discovery, clipboard access, notifications, URL/file opening, process
// launch, system power actions, and standard directories.
//
// The core never talks to the OS directly; every extension host op and
// every executor action goes through a Platform so that permission
// checks and platform differences stay in one place.
package platform

import "path/filepath"

// AppEntry is an installed application discovered on the system.
type AppEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Exec        string   `json:"exec"`
	Icon        string   `json:"icon,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// SystemCommand is a power/session action the shim can invoke.
type SystemCommand int

const (
	Lock SystemCommand = iota
	Sleep
	Logout
	Restart
	Shutdown
)

func (c SystemCommand) String() string {
	switch c {
	case Lock:
		return "lock"
	case Sleep:
		return "sleep"
	case Logout:
		return "logout"
	case Restart:
		return "restart"
	case Shutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Platform is implemented once per target OS. Every method fails with a
// descriptive error rather than panicking; callers (the executor, the
// extension host ops) propagate that error to the user as a transient
// notification rather than crashing the launcher.
type Platform interface {
	// DiscoverApps enumerates installed applications, ordered
	// case-insensitively by name with id collisions coalesced
	// (first occurrence wins).
	DiscoverApps() ([]AppEntry, error)

	ClipboardRead() (string, bool)
	ClipboardWrite(content string) error

	OpenURL(url string) error
	OpenFile(path string) error

	ShowNotification(title, body string) error

	SystemCommand(cmd SystemCommand) error

	// LaunchApp strips desktop-entry field codes (%f %F %u %U %i %c %k)
	// from app.Exec before running it.
	LaunchApp(app AppEntry) error

	RunShellCommand(command string) error

	ConfigDir() string
	DataDir() string
	RuntimeDir() string
}

// ExpandHome expands a leading "~" or "~/" in path against home.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if len(path) >= 2 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}

// StripFieldCodes removes XDG desktop-entry field codes (%f, %F, %u, %U,
// %i, %c, %k, and the literal %%) from a .desktop Exec= line.
func StripFieldCodes(exec string) string {
	out := make([]rune, 0, len(exec))
	runes := []rune(exec)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '%' && i+1 < len(runes) {
			switch runes[i+1] {
			case 'f', 'F', 'u', 'U', 'i', 'c', 'k':
				i++
				continue
			case '%':
				out = append(out, '%')
				i++
				continue
			}
		}
		out = append(out, runes[i])
	}
	return trimSpaceRunes(out)
}

func trimSpaceRunes(rs []rune) string {
	start, end := 0, len(rs)
	for start < end && isBlank(rs[start]) {
		start++
	}
	for end > start && isBlank(rs[end-1]) {
		end--
	}
	return string(rs[start:end])
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}
