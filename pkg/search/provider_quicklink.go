package search

import "strings"

// quicklinkProvider matches the query's leading keyword against
// configured quicklinks. An exact keyword match with remaining text
// and a "{query}" placeholder resolves immediately; anything else
// surfaces an informational entry awaiting input.
type quicklinkProvider struct{}

func (quicklinkProvider) ShouldTrigger(query string) bool {
	return strings.TrimSpace(query) != ""
}

func (quicklinkProvider) Produce(query string, ctx *Context) []Result {
	if ctx.Commands == nil {
		return nil
	}

	trimmed := strings.TrimSpace(query)
	firstWord, rest, _ := strings.Cut(trimmed, " ")
	firstWordLower := strings.ToLower(firstWord)
	queryLower := strings.ToLower(trimmed)

	var out []Result
	for _, q := range ctx.Commands.Quicklinks {
		keywordLower := strings.ToLower(q.Keyword)
		nameLower := strings.ToLower(q.Name)

		switch {
		case keywordLower == firstWordLower && strings.TrimSpace(rest) != "" && q.HasQueryPlaceholder():
			arg := strings.TrimSpace(rest)
			out = append(out, ResolvedQuicklink{
				Keyword:     q.Keyword,
				DisplayName: q.Name,
				URLTemplate: q.URL,
				Query:       arg,
				URL:         q.ResolveURL(arg),
			})
		case keywordLower == firstWordLower:
			out = append(out, Quicklink{
				Keyword:     q.Keyword,
				DisplayName: q.Name,
				URLTemplate: q.URL,
				HasQuery:    q.HasQueryPlaceholder(),
			})
		case strings.Contains(keywordLower, queryLower) || strings.Contains(nameLower, queryLower):
			out = append(out, Quicklink{
				Keyword:     q.Keyword,
				DisplayName: q.Name,
				URLTemplate: q.URL,
				HasQuery:    q.HasQueryPlaceholder(),
			})
		}
	}
	return out
}
