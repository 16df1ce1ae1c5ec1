package search

import "strings"

// extensionProvider matches the query against the extension host's
// indexed commands, by keyword prefix or name substring.
type extensionProvider struct{}

func (extensionProvider) ShouldTrigger(query string) bool {
	return strings.TrimSpace(query) != ""
}

func (extensionProvider) Produce(query string, ctx *Context) []Result {
	if ctx.Extensions == nil {
		return nil
	}

	candidates := ctx.Extensions.SearchCommands(query)
	out := make([]Result, len(candidates))
	for i, c := range candidates {
		out[i] = c
	}
	return out
}
