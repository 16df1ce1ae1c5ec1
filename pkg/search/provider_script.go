package search

import "strings"

// scriptProvider matches the query's leading keyword (or a name/id
// substring) against discovered custom scripts.
type scriptProvider struct{}

func (scriptProvider) ShouldTrigger(query string) bool {
	return strings.TrimSpace(query) != ""
}

func (scriptProvider) Produce(query string, ctx *Context) []Result {
	if ctx.Commands == nil {
		return nil
	}

	trimmed := strings.TrimSpace(query)
	firstWord, rest, _ := strings.Cut(trimmed, " ")
	firstWordLower := strings.ToLower(firstWord)
	queryLower := strings.ToLower(trimmed)

	var out []Result
	for _, s := range ctx.Commands.Scripts {
		matchesKeyword := false
		for _, k := range s.Keywords {
			if strings.ToLower(k) == firstWordLower {
				matchesKeyword = true
				break
			}
		}
		matchesName := strings.Contains(strings.ToLower(s.Name), queryLower) ||
			strings.Contains(strings.ToLower(s.ID), queryLower)

		if !matchesKeyword && !matchesName {
			continue
		}

		base := Script{
			ID:          s.ID,
			DisplayName: s.Name,
			Desc:        s.Description,
			Path:        s.Path,
			HasArgument: s.HasArgument,
			OutputMode:  s.OutputMode.String(),
		}

		if matchesKeyword && s.HasArgument && strings.TrimSpace(rest) != "" {
			out = append(out, ScriptWithArg{Script: base, Argument: strings.TrimSpace(rest)})
		} else {
			out = append(out, base)
		}
	}
	return out
}
