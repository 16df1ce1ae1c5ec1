package search

import (
	"strings"

	"github.com/nova-launcher/nova/pkg/fuzzy"
)

const emojiResultLimit = 24

// emojiEntry is one picker entry: a glyph and its searchable names,
// the first of which is the primary display name.
type emojiEntry struct {
	Glyph string
	Names []string
}

// emojiProvider triggers on a leading ':' followed by at least one
// character, then fuzzy-matches the suffix against every emoji name.
type emojiProvider struct{}

func (emojiProvider) ShouldTrigger(query string) bool {
	return strings.HasPrefix(query, ":") && len(query) > 1
}

func (emojiProvider) Produce(query string, ctx *Context) []Result {
	suffix := strings.TrimPrefix(query, ":")

	type scored struct {
		entry emojiEntry
		score int
	}
	var matches []scored

	for _, e := range emojiTable {
		best, ok := 0, false
		// fuzzy.Match already adds its own prefix boost whenever a given
		// name starts with the suffix, so taking the best per-name score
		// is enough; no extra boost needed here.
		for _, name := range e.Names {
			if s, matched := fuzzy.Match(suffix, name); matched {
				ok = true
				if s > best {
					best = s
				}
			}
		}
		if !ok {
			continue
		}
		matches = append(matches, scored{entry: e, score: best})
	}

	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && emojiRanksAbove(suffix, matches[j], matches[j-1]); j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	if len(matches) > emojiResultLimit {
		matches = matches[:emojiResultLimit]
	}

	out := make([]Result, len(matches))
	for i, m := range matches {
		primary := "emoji"
		if len(m.entry.Names) > 0 {
			primary = m.entry.Names[0]
		}
		out[i] = Emoji{Glyph: m.entry.Glyph, Primary: primary, Aliases: strings.Join(m.entry.Names, ", ")}
	}
	return out
}

// emojiRanksAbove breaks skimScore ties between two emoji entries using
// their primary name's fuzzy.Rank against the query suffix, so ":smile"
// doesn't depend on emojiTable's declaration order to put "smile" ahead
// of "smiling_face" when both score identically.
func emojiRanksAbove(suffix string, a, b struct {
	entry emojiEntry
	score int
}) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	nameA, nameB := "", ""
	if len(a.entry.Names) > 0 {
		nameA = a.entry.Names[0]
	}
	if len(b.entry.Names) > 0 {
		nameB = b.entry.Names[0]
	}
	return fuzzy.Rank(suffix, nameA, nameB) > 0
}
