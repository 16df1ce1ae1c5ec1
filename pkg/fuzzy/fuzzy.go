// Package fuzzy implements the character-skimming matcher the search
// providers use to rank free-text queries against app names, emoji names,
// and extension command metadata.
//
// The scorer is a Smith-Waterman-style subsequence matcher: pattern
// characters must appear in order in the text, not contiguously, and the
// score rewards runs of consecutive matches and matches that start at a
// word boundary. It never returns a negative score; a non-match is
// reported as (0, false), never as a negative score, so callers can treat
// "not a match" uniformly whether or not they care about the score.
package fuzzy

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"github.com/xrash/smetrics"
)

const (
	scorePerMatch        = 16
	scoreConsecutiveBonus = 8
	scoreWordStartBonus  = 12
	scoreFirstCharBonus  = 24
	prefixBoost          = 100
)

// Match reports whether pattern fuzzy-matches text (case-insensitive
// subsequence match) and, if so, a nonnegative score where higher is
// better. A text that starts with pattern (case-insensitively) receives
// an additional prefixBoost, matching the "+100 score boost for prefix
// matches" rule the app and emoji providers rely on.
func Match(pattern, text string) (score int, ok bool) {
	if pattern == "" {
		return 0, true
	}
	if text == "" {
		return 0, false
	}

	p := []rune(strings.ToLower(pattern))
	t := []rune(strings.ToLower(text))

	score, ok = skimScore(p, t)
	if !ok {
		return 0, false
	}

	if len(t) >= len(p) && string(t[:len(p)]) == string(p) {
		score += prefixBoost
	}

	return score, true
}

// skimScore performs a single greedy left-to-right subsequence scan,
// taking the earliest match for each pattern character: each matched
// character scores scorePerMatch, consecutive matches add
// scoreConsecutiveBonus on top, a match at text index 0 adds
// scoreFirstCharBonus, and a match anywhere else immediately after a
// non-alphanumeric separator adds scoreWordStartBonus.
func skimScore(pattern, text []rune) (int, bool) {
	pi := 0
	total := 0
	consecutive := 0

	for ti := 0; ti < len(text) && pi < len(pattern); ti++ {
		if text[ti] != pattern[pi] {
			consecutive = 0
			continue
		}

		total += scorePerMatch
		if consecutive > 0 {
			total += scoreConsecutiveBonus
		}
		if ti == 0 {
			total += scoreFirstCharBonus
		} else if isWordBoundary(text[ti-1]) {
			total += scoreWordStartBonus
		}

		consecutive++
		pi++
	}

	if pi < len(pattern) {
		return 0, false
	}
	return total, true
}

func isWordBoundary(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Similarity returns a secondary Jaro-Winkler similarity in [0,1] between
// a and b, used to break ties between candidates that skimScore rates
// equally (for example two extension commands whose titles both contain
// the query as a prefix).
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	score, err := edlib.StringsSimilarity(strings.ToLower(a), strings.ToLower(b), edlib.JaroWinkler)
	if err != nil {
		return 0
	}
	return float64(score)
}

// Rank reports which of candidateA and candidateB is the better match for
// query: +1 if a ranks above b, -1 if b ranks above a, 0 if they are
// indistinguishable. It only consults query; callers compare two
// already-tied skimScore results. The first tie-break is Similarity; if
// that also ties (the common case for short strings, where edlib's
// Jaro-Winkler saturates at 1.0 for near-identical prefixes), a second,
// independently-implemented Jaro-Winkler settles it, so a single
// library's rounding doesn't have the last word twice.
func Rank(query, candidateA, candidateB string) int {
	simA, simB := Similarity(query, candidateA), Similarity(query, candidateB)
	if simA > simB {
		return 1
	}
	if simB > simA {
		return -1
	}

	jwA := smetrics.JaroWinkler(strings.ToLower(query), strings.ToLower(candidateA), 0.7, 4)
	jwB := smetrics.JaroWinkler(strings.ToLower(query), strings.ToLower(candidateB), 0.7, 4)
	if jwA > jwB {
		return 1
	}
	if jwB > jwA {
		return -1
	}
	return 0
}
