package search

import (
	"strings"

	"github.com/nova-launcher/nova/pkg/fuzzy"
)

const emptyQueryAppCount = 8

// appsProvider always triggers: an empty query still surfaces the
// most-used apps by frecency.
type appsProvider struct{}

func (appsProvider) ShouldTrigger(query string) bool { return true }

func (appsProvider) Produce(query string, ctx *Context) []Result {
	trimmed := strings.TrimSpace(query)

	if trimmed == "" {
		return emptyQueryApps(ctx)
	}

	type scored struct {
		app   App
		score int
	}
	var matches []scored

	for _, a := range ctx.Apps {
		best := 0
		hit := false

		if s, ok := fuzzy.Match(trimmed, a.DisplayName); ok {
			hit = true
			best = s
		}
		for _, k := range a.Keywords {
			if s, ok := fuzzy.Match(trimmed, k); ok {
				hit = true
				if s > best {
					best = s
				}
			}
		}
		if a.Desc != "" {
			if s, ok := fuzzy.Match(trimmed, a.Desc); ok {
				hit = true
				if half := s / 2; half > best {
					best = half
				}
			}
		}
		if !hit {
			continue
		}
		// fuzzy.Match already adds its own prefix boost whenever the
		// tested string (name, keyword, or description) starts with
		// the query, so the "+100 for name prefix matches" rule falls
		// out of taking the best of those per-string scores.
		matches = append(matches, scored{app: a, score: best})
	}

	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && appRanksAbove(trimmed, matches[j], matches[j-1]); j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	out := make([]Result, len(matches))
	for i, m := range matches {
		out[i] = m.app
	}
	return out
}

// appRanksAbove reports whether candidate a should sort above b: a higher
// skimScore always wins, and an exact tie falls through to fuzzy.Rank
// against the query so two apps that both match as a name prefix (e.g.
// "term" against "Terminal" and "Terminator") don't just keep whatever
// order DiscoverApps happened to return them in.
func appRanksAbove(query string, a, b struct {
	app   App
	score int
}) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	return fuzzy.Rank(query, a.app.DisplayName, b.app.DisplayName) > 0
}

func emptyQueryApps(ctx *Context) []Result {
	if ctx.Frecency == nil || len(ctx.Apps) == 0 {
		return appsAsResults(firstN(ctx.Apps, emptyQueryAppCount))
	}

	byID := make(map[string]App, len(ctx.Apps))
	for _, a := range ctx.Apps {
		byID["app:"+a.ID] = a
	}

	var out []Result
	for _, id := range ctx.Frecency.TopByScore(emptyQueryAppCount) {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	if len(out) >= emptyQueryAppCount || len(out) == len(ctx.Apps) {
		return out
	}

	seen := make(map[string]bool, len(out))
	for _, r := range out {
		id, _ := r.FrecencyID()
		seen[id] = true
	}
	for _, a := range ctx.Apps {
		if len(out) >= emptyQueryAppCount {
			break
		}
		if seen["app:"+a.ID] {
			continue
		}
		out = append(out, a)
	}
	return out
}

func appsAsResults(apps []App) []Result {
	out := make([]Result, len(apps))
	for i, a := range apps {
		out[i] = a
	}
	return out
}

func firstN(apps []App, n int) []App {
	if n > len(apps) {
		n = len(apps)
	}
	return apps[:n]
}
