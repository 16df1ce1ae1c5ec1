package search

import "strings"

// aliasProvider matches the user's query against configured aliases,
// by exact keyword first, then by keyword/name substring.
type aliasProvider struct{}

func (aliasProvider) ShouldTrigger(query string) bool {
	return strings.TrimSpace(query) != ""
}

func (aliasProvider) Produce(query string, ctx *Context) []Result {
	if ctx.Commands == nil {
		return nil
	}
	q := strings.ToLower(strings.TrimSpace(query))

	var exact, partial []Result
	for _, a := range ctx.Commands.Aliases {
		keyword := strings.ToLower(a.Keyword)
		name := strings.ToLower(a.Name)

		result := Alias{Keyword: a.Keyword, DisplayName: a.Name, Target: a.Target}
		switch {
		case keyword == q:
			exact = append(exact, result)
		case strings.Contains(keyword, q) || strings.Contains(name, q):
			partial = append(partial, result)
		}
	}
	return append(exact, partial...)
}
