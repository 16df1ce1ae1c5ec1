// Package commandmode implements the Free/Captured controller that
// governs when the search box is handed over entirely to a single
// keyword-triggered target (a quicklink, a custom script, or an
// extension command) instead of running the full search engine on
// every keystroke.
package commandmode

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/nova-launcher/nova/pkg/search"
)

// State is one of the two controller states.
type State int

const (
	// Free runs the full search engine on each keystroke.
	Free State = iota
	// Captured restricts results to the pending target; the search
	// text becomes that target's argument.
	Captured
)

func (s State) String() string {
	if s == Captured {
		return "captured"
	}
	return "free"
}

// ErrNotCaptured is returned by Resolve when called outside Captured mode.
var ErrNotCaptured = errors.New("commandmode: not in captured mode")

// AcceptsQuery reports whether r is a "needs input" variant eligible
// to drive Captured mode: a Quicklink with HasQuery, a Script with
// HasArgument, or an ExtensionCommand with HasArgument.
func AcceptsQuery(r search.Result) bool {
	switch v := r.(type) {
	case search.Quicklink:
		return v.HasQuery
	case search.Script:
		return v.HasArgument
	case search.ExtensionCommand:
		return v.HasArgument
	default:
		return false
	}
}

// Controller tracks Free/Captured state for one search session. It is
// not safe for concurrent use; the UI loop owns it.
type Controller struct {
	state   State
	pending search.Result
}

// New returns a controller starting in Free mode.
func New() *Controller {
	return &Controller{state: Free}
}

// State reports the current mode.
func (c *Controller) State() State { return c.state }

// IsCaptured reports whether the controller is in Captured mode.
func (c *Controller) IsCaptured() bool { return c.state == Captured }

// Pending returns the captured target, or nil in Free mode.
func (c *Controller) Pending() search.Result { return c.pending }

// PillText is the label shown in the command pill while captured, and
// the empty string in Free mode.
func (c *Controller) PillText() string {
	if c.pending == nil {
		return ""
	}
	return c.pending.Name()
}

// Placeholder is the input placeholder text shown while captured.
func (c *Controller) Placeholder() string {
	if c.pending == nil {
		return ""
	}
	return "Type to search " + c.pending.Name()
}

// KeywordResolver looks up the extension (quicklink, script, or
// extension command) bound to an exact keyword, mirroring the
// extension index's keyword lookup.
type KeywordResolver interface {
	ResolveKeyword(keyword string) (search.Result, bool)
}

// TryEnterFromKeyword implements the Free-mode "<keyword><space>"
// trigger: if query is exactly a known keyword followed by one
// trailing space, and the resolved target accepts a query, enters
// Captured mode and reports true. Returns false (no state change)
// otherwise, including while already Captured.
func (c *Controller) TryEnterFromKeyword(query string, resolver KeywordResolver) bool {
	if c.state == Captured {
		return false
	}
	if !strings.HasSuffix(query, " ") {
		return false
	}
	keyword := strings.TrimSpace(query)
	if keyword == "" {
		return false
	}

	target, ok := resolver.ResolveKeyword(keyword)
	if !ok || !AcceptsQuery(target) {
		return false
	}

	c.enter(target)
	return true
}

// Advance implements the Tab-key trigger: promotes the currently
// selected result into Captured mode if it is a "needs input"
// variant. Returns false (no state change) if selected is nil, does
// not accept a query, or the controller is already Captured.
func (c *Controller) Advance(selected search.Result) bool {
	if c.state == Captured || selected == nil || !AcceptsQuery(selected) {
		return false
	}
	c.enter(selected)
	return true
}

// Back implements the Backspace-on-empty-input trigger: returns to
// Free mode when inputEmpty is true and the controller is Captured.
// Reports whether a transition occurred.
func (c *Controller) Back(inputEmpty bool) bool {
	if c.state != Captured || !inputEmpty {
		return false
	}
	c.exit()
	return true
}

// Dismiss implements the Escape-key trigger while Captured: returns to
// Free mode and reports that the input should be cleared. In Free
// mode it reports false, leaving window-hide handling to the caller.
func (c *Controller) Dismiss() bool {
	if c.state != Captured {
		return false
	}
	c.exit()
	return true
}

func (c *Controller) enter(target search.Result) {
	c.state = Captured
	c.pending = target
}

func (c *Controller) exit() {
	c.state = Free
	c.pending = nil
}

// Resolve builds the fully-resolved result for the pending captured
// target given the text the user entered, ready for the executor. It
// does not change controller state; callers exit Captured mode
// themselves once the result is dispatched.
func (c *Controller) Resolve(argument string) (search.Result, error) {
	if c.state != Captured {
		return nil, ErrNotCaptured
	}

	switch v := c.pending.(type) {
	case search.Quicklink:
		return search.ResolvedQuicklink{
			Keyword:     v.Keyword,
			DisplayName: v.DisplayName,
			URLTemplate: v.URLTemplate,
			Query:       argument,
			URL:         resolveQuicklinkURL(v.URLTemplate, argument),
		}, nil
	case search.Script:
		return search.ScriptWithArg{Script: v, Argument: argument}, nil
	case search.ExtensionCommand:
		return search.ExtensionCommandWithArg{ExtensionCommand: v, Argument: argument}, nil
	default:
		return nil, fmt.Errorf("commandmode: unsupported captured result type %T", c.pending)
	}
}

// resolveQuicklinkURL substitutes the percent-encoded query into the
// URL template's "{query}" placeholder, matching
// config.QuicklinkConfig.ResolveURL's substitution rule.
func resolveQuicklinkURL(template, query string) string {
	if !strings.Contains(template, "{query}") {
		return template
	}
	return strings.ReplaceAll(template, "{query}", url.PathEscape(query))
}
