// Package search implements Nova's query pipeline: a fixed, ordered
// set of providers each examine the query, a fan-out collects their
// results, and a frecency-aware reranker produces the final list shown
// to the user.
package search

// Kind identifies which frecency weight class a Result belongs to.
// It intentionally mirrors frecency.Kind rather than importing it, so
// that a Result that carries no stable id (Calculation, Emoji,
// UnitConversion) can still report KindNone without pkg/search depending on the
// frecency package's zero value semantics.
type Kind string

const (
	KindApp       Kind = "app"
	KindScript    Kind = "script"
	KindAlias     Kind = "alias"
	KindCommand   Kind = "command"
	KindQuicklink Kind = "quicklink"
	KindFile      Kind = "file"
	KindClipboard Kind = "clipboard"
	KindExtension Kind = "extension"
	KindNone      Kind = ""
)

// Result is the tagged union every provider produces. Exactly one
// concrete type from this file implements it per value; callers type-
// switch on the concrete type to render or execute it.
type Result interface {
	// Name is the primary display string. Never empty.
	Name() string
	// Description is a secondary display string; may be empty.
	Description() string
	// FrecencyID is the key frecency scoring keys off of, and its
	// weight class. A Result with no stable identity (a one-off
	// calculation, a clipboard snapshot) returns an empty id and is
	// scored 0 by the engine; Calculation reports KindNone,
	// ClipboardItem reports KindClipboard.
	FrecencyID() (id string, kind Kind)
}

// App is an installed application.
type App struct {
	ID          string
	DisplayName string
	Exec        string
	Icon        string
	Desc        string
	Keywords    []string
}

func (a App) Name() string        { return a.DisplayName }
func (a App) Description() string { return a.Desc }
func (a App) FrecencyID() (string, Kind) { return "app:" + a.ID, KindApp }

// BuiltinCommand is one of the fixed system/app actions (settings,
// quit, lock, sleep, logout, restart, shutdown).
type BuiltinCommand struct {
	ID          string // namespaced: "nova:*" or "system:*"
	Title       string
	Desc        string
}

func (b BuiltinCommand) Name() string        { return b.Title }
func (b BuiltinCommand) Description() string { return b.Desc }
func (b BuiltinCommand) FrecencyID() (string, Kind) { return "command:" + b.ID, KindCommand }

// Alias resolves a keyword to a shell target.
type Alias struct {
	Keyword     string
	DisplayName string
	Target      string
}

func (a Alias) Name() string        { return a.DisplayName }
func (a Alias) Description() string { return a.Target }
func (a Alias) FrecencyID() (string, Kind) { return "alias:" + a.Keyword, KindAlias }

// Quicklink is shown when the user has typed (or partially typed) its
// keyword but not yet supplied the query the URL template needs.
type Quicklink struct {
	Keyword     string
	DisplayName string
	URLTemplate string
	HasQuery    bool
}

func (q Quicklink) Name() string        { return q.DisplayName }
func (q Quicklink) Description() string { return q.URLTemplate }
func (q Quicklink) FrecencyID() (string, Kind) { return "quicklink:" + q.Keyword, KindQuicklink }

// ResolvedQuicklink carries the fully substituted URL, produced only
// when the originating Quicklink had HasQuery set and the user
// supplied remaining text.
type ResolvedQuicklink struct {
	Keyword     string
	DisplayName string
	URLTemplate string
	Query       string
	URL         string
}

func (r ResolvedQuicklink) Name() string        { return r.DisplayName }
func (r ResolvedQuicklink) Description() string { return r.URL }
func (r ResolvedQuicklink) FrecencyID() (string, Kind) { return "quicklink:" + r.Keyword, KindQuicklink }

// Script is an unresolved custom script entry (no argument captured
// yet, or it takes none).
type Script struct {
	ID          string
	DisplayName string
	Desc        string
	Path        string
	HasArgument bool
	OutputMode  string
}

func (s Script) Name() string        { return s.DisplayName }
func (s Script) Description() string { return s.Desc }
func (s Script) FrecencyID() (string, Kind) { return "script:" + s.ID, KindScript }

// ScriptWithArg is a Script plus the argument text the user typed
// after the triggering keyword. Only constructible when the
// originating Script.HasArgument was true.
type ScriptWithArg struct {
	Script
	Argument string
}

func (s ScriptWithArg) Description() string {
	if s.Argument == "" {
		return s.Script.Description()
	}
	return s.Script.Description() + " — " + s.Argument
}

// ExtensionCommand references a command an extension host indexed,
// not yet bound to a captured argument.
type ExtensionCommand struct {
	ExtensionID string
	CommandID   string
	DisplayName string
	Desc        string
	Keywords    []string
	HasArgument bool
	OutputMode  string
}

func (e ExtensionCommand) Name() string        { return e.DisplayName }
func (e ExtensionCommand) Description() string { return e.Desc }
func (e ExtensionCommand) FrecencyID() (string, Kind) {
	return "extension:" + e.ExtensionID + ":" + e.CommandID, KindExtension
}

// ExtensionCommandWithArg is an ExtensionCommand plus the argument
// captured in command mode. Only constructible when HasArgument was
// true on the originating command.
type ExtensionCommandWithArg struct {
	ExtensionCommand
	Argument string
}

func (e ExtensionCommandWithArg) Description() string {
	if e.Argument == "" {
		return e.ExtensionCommand.Description()
	}
	return e.ExtensionCommand.Description() + " — " + e.Argument
}

// Calculation is the result of evaluating an arithmetic expression.
// It carries no stable id: every calculation is transient.
type Calculation struct {
	Expression string
	Formatted  string // e.g. "= 14"
}

func (c Calculation) Name() string        { return c.Expression }
func (c Calculation) Description() string { return c.Formatted }
func (c Calculation) FrecencyID() (string, Kind) { return "", KindNone }

// ClipboardItem is a past clipboard snapshot. ID is a stable uuid
// identifying the underlying history entry, distinct from Index (which
// shifts as new entries arrive).
type ClipboardItem struct {
	ID      string
	Index   int
	Content string
	Preview string
	Age     string // human-readable, e.g. "3m ago"
}

func (c ClipboardItem) Name() string        { return c.Preview }
func (c ClipboardItem) Description() string { return c.Age }
func (c ClipboardItem) FrecencyID() (string, Kind) { return "", KindClipboard }

// FileHit is a filesystem path matched by a glob-prefix search.
type FileHit struct {
	DisplayName string
	DisplayPath string
	IsDir       bool
}

func (f FileHit) Name() string        { return f.DisplayName }
func (f FileHit) Description() string { return f.DisplayPath }
func (f FileHit) FrecencyID() (string, Kind) { return "file:" + f.DisplayPath, KindFile }

// Emoji is an emoji picker hit.
type Emoji struct {
	Glyph   string
	Primary string
	Aliases string // comma-joined
}

func (e Emoji) Name() string        { return e.Glyph + " " + e.Primary }
func (e Emoji) Description() string { return e.Aliases }
func (e Emoji) FrecencyID() (string, Kind) { return "", KindNone }

// UnitConversion is a natural-language unit conversion hit.
type UnitConversion struct {
	Display string // "10 km = 6.21371 mi"
	Result  string // "6.21371 mi"
}

func (u UnitConversion) Name() string        { return u.Display }
func (u UnitConversion) Description() string { return u.Result }
func (u UnitConversion) FrecencyID() (string, Kind) { return "", KindNone }
