package commandmode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nova-launcher/nova/pkg/search"
)

type fakeResolver map[string]search.Result

func (f fakeResolver) ResolveKeyword(keyword string) (search.Result, bool) {
	r, ok := f[keyword]
	return r, ok
}

func TestAcceptsQuery(t *testing.T) {
	assert.True(t, AcceptsQuery(search.Quicklink{HasQuery: true}))
	assert.False(t, AcceptsQuery(search.Quicklink{HasQuery: false}))
	assert.True(t, AcceptsQuery(search.Script{HasArgument: true}))
	assert.False(t, AcceptsQuery(search.Script{HasArgument: false}))
	assert.True(t, AcceptsQuery(search.ExtensionCommand{HasArgument: true}))
	assert.False(t, AcceptsQuery(search.Alias{}))
	assert.False(t, AcceptsQuery(search.App{}))
}

func TestNewStartsFree(t *testing.T) {
	c := New()
	assert.Equal(t, Free, c.State())
	assert.False(t, c.IsCaptured())
	assert.Equal(t, "", c.PillText())
}

func TestTryEnterFromKeywordEntersCaptured(t *testing.T) {
	c := New()
	resolver := fakeResolver{
		"gh": search.Quicklink{Keyword: "gh", DisplayName: "GitHub", URLTemplate: "https://github.com/search?q={query}", HasQuery: true},
	}
	assert.True(t, c.TryEnterFromKeyword("gh ", resolver))
	assert.True(t, c.IsCaptured())
	assert.Equal(t, "GitHub", c.PillText())
	assert.Equal(t, "Type to search GitHub", c.Placeholder())
}

func TestTryEnterFromKeywordRejectsNonAcceptingTarget(t *testing.T) {
	c := New()
	resolver := fakeResolver{
		"gh": search.Quicklink{Keyword: "gh", DisplayName: "GitHub", URLTemplate: "https://github.com", HasQuery: false},
	}
	assert.False(t, c.TryEnterFromKeyword("gh ", resolver))
	assert.False(t, c.IsCaptured())
}

func TestTryEnterFromKeywordRequiresTrailingSpace(t *testing.T) {
	c := New()
	resolver := fakeResolver{"gh": search.Quicklink{HasQuery: true}}
	assert.False(t, c.TryEnterFromKeyword("gh", resolver))
}

func TestTryEnterFromKeywordUnknownKeyword(t *testing.T) {
	c := New()
	assert.False(t, c.TryEnterFromKeyword("nope ", fakeResolver{}))
}

func TestTryEnterFromKeywordNoOpWhileCaptured(t *testing.T) {
	c := New()
	resolver := fakeResolver{
		"gh": search.Quicklink{Keyword: "gh", DisplayName: "GitHub", HasQuery: true},
		"x":  search.Quicklink{Keyword: "x", DisplayName: "X", HasQuery: true},
	}
	require.True(t, c.TryEnterFromKeyword("gh ", resolver))
	assert.False(t, c.TryEnterFromKeyword("x ", resolver))
	assert.Equal(t, "GitHub", c.PillText())
}

func TestAdvancePromotesSelectedResult(t *testing.T) {
	c := New()
	script := search.Script{ID: "deploy", DisplayName: "Deploy", HasArgument: true}
	assert.True(t, c.Advance(script))
	assert.True(t, c.IsCaptured())
	assert.Equal(t, "Deploy", c.PillText())
}

func TestAdvanceRejectsResultNotAcceptingQuery(t *testing.T) {
	c := New()
	assert.False(t, c.Advance(search.App{DisplayName: "Firefox"}))
	assert.False(t, c.IsCaptured())
}

func TestAdvanceRejectsNilSelection(t *testing.T) {
	c := New()
	assert.False(t, c.Advance(nil))
}

func TestBackReturnsToFreeOnlyWhenInputEmpty(t *testing.T) {
	c := New()
	c.Advance(search.Script{DisplayName: "Deploy", HasArgument: true})
	require.True(t, c.IsCaptured())

	assert.False(t, c.Back(false))
	assert.True(t, c.IsCaptured())

	assert.True(t, c.Back(true))
	assert.False(t, c.IsCaptured())
}

func TestBackNoOpInFreeMode(t *testing.T) {
	c := New()
	assert.False(t, c.Back(true))
}

func TestDismissExitsCapturedAndReportsTrue(t *testing.T) {
	c := New()
	c.Advance(search.Script{DisplayName: "Deploy", HasArgument: true})
	assert.True(t, c.Dismiss())
	assert.False(t, c.IsCaptured())
}

func TestDismissNoOpInFreeMode(t *testing.T) {
	c := New()
	assert.False(t, c.Dismiss())
}

func TestResolveQuicklinkSubstitutesQuery(t *testing.T) {
	c := New()
	c.Advance(search.Quicklink{Keyword: "gh", DisplayName: "GitHub", URLTemplate: "https://github.com/search?q={query}", HasQuery: true})

	result, err := c.Resolve("go generics")
	require.NoError(t, err)
	resolved, ok := result.(search.ResolvedQuicklink)
	require.True(t, ok)
	assert.Equal(t, "https://github.com/search?q=go%20generics", resolved.URL)
	assert.Equal(t, "go generics", resolved.Query)
}

func TestResolveScriptCarriesArgument(t *testing.T) {
	c := New()
	c.Advance(search.Script{ID: "deploy", DisplayName: "Deploy", Path: "/usr/local/bin/deploy", HasArgument: true})

	result, err := c.Resolve("staging")
	require.NoError(t, err)
	withArg, ok := result.(search.ScriptWithArg)
	require.True(t, ok)
	assert.Equal(t, "staging", withArg.Argument)
	assert.Equal(t, "/usr/local/bin/deploy", withArg.Path)
}

func TestResolveExtensionCommandCarriesArgument(t *testing.T) {
	c := New()
	c.Advance(search.ExtensionCommand{ExtensionID: "todo", CommandID: "add", DisplayName: "Add todo", HasArgument: true})

	result, err := c.Resolve("buy milk")
	require.NoError(t, err)
	withArg, ok := result.(search.ExtensionCommandWithArg)
	require.True(t, ok)
	assert.Equal(t, "buy milk", withArg.Argument)
	assert.Equal(t, "todo", withArg.ExtensionID)
}

func TestResolveErrorsOutsideCapturedMode(t *testing.T) {
	c := New()
	_, err := c.Resolve("anything")
	assert.ErrorIs(t, err, ErrNotCaptured)
}
