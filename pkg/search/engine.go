package search

import (
	"github.com/nova-launcher/nova/pkg/customcommands"
	"github.com/nova-launcher/nova/pkg/frecency"
)

// ExtensionSource is the slice of the extension host a search provider
// needs: looking up indexed commands by query. Kept as a narrow
// interface here (rather than importing pkg/extensions directly) so
// search stays usable in tests without constructing a real host.
type ExtensionSource interface {
	SearchCommands(query string) []ExtensionCommand
}

// Context carries everything a provider needs to produce results for
// one query.
type Context struct {
	Frecency   *frecency.Store
	Apps       []App
	Extensions ExtensionSource
	Commands   *customcommands.Index
	Clipboard  *ClipboardHistory
	MaxResults int
}

// Provider is one stage of the search pipeline.
type Provider interface {
	// ShouldTrigger is a cheap predicate deciding whether Produce is
	// worth calling at all for this query.
	ShouldTrigger(query string) bool
	// Produce returns this provider's results for query. Only called
	// when ShouldTrigger returned true.
	Produce(query string, ctx *Context) []Result
}

// Engine runs the fixed, ordered provider pipeline and reranks the
// fan-out by frecency.
type Engine struct {
	providers []Provider
}

// NewEngine builds the default Nova pipeline, in spec-mandated trigger
// order: Alias, Calculator, Unit converter, Clipboard history, File
// search, Emoji picker, Quicklink, Script, Built-in commands,
// Extension commands, Apps.
func NewEngine() *Engine {
	return &Engine{providers: []Provider{
		aliasProvider{},
		calculatorProvider{},
		unitProvider{},
		clipboardProvider{},
		fileProvider{},
		emojiProvider{},
		quicklinkProvider{},
		scriptProvider{},
		builtinProvider{},
		extensionProvider{},
		appsProvider{},
	}}
}

// Search runs every triggered provider, reranks the combined output by
// descending frecency score, and truncates to ctx.MaxResults (clamped
// to [1,20], defaulting to 8 if unset).
func (e *Engine) Search(query string, ctx *Context) []Result {
	var all []Result
	for _, p := range e.providers {
		if !p.ShouldTrigger(query) {
			continue
		}
		all = append(all, p.Produce(query, ctx)...)
	}

	scored := make([]scoredResult, len(all))
	for i, r := range all {
		scored[i] = scoredResult{result: r, score: scoreOf(r, ctx.Frecency)}
	}
	stableSortByScoreDesc(scored)

	max := ctx.MaxResults
	if max <= 0 {
		max = 8
	}
	if max > 20 {
		max = 20
	}
	if max > len(scored) {
		max = len(scored)
	}

	out := make([]Result, max)
	for i := 0; i < max; i++ {
		out[i] = scored[i].result
	}
	return out
}

type scoredResult struct {
	result Result
	score  float64
}

// scoreOf looks up a result's frecency score. frecency.Store already
// applies the per-kind weight internally (search.Kind and
// frecency.Kind share the same string values by construction), so no
// further scaling happens here.
func scoreOf(r Result, store *frecency.Store) float64 {
	if store == nil {
		return 0
	}
	id, _ := r.FrecencyID()
	if id == "" {
		return 0
	}
	return store.Score(id)
}

// stableSortByScoreDesc is an insertion sort over the whole fan-out
// (truncation to MaxResults happens after it). The fan-out is small,
// so O(n^2) is not a concern, and insertion sort is stable by
// construction, preserving each provider's internal ordering among
// equal scores.
func stableSortByScoreDesc(s []scoredResult) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j].score > s[j-1].score; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

