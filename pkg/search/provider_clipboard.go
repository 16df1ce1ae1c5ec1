package search

import "strings"

var clipboardTriggerWords = []string{"clip", "clipboard", "paste", "history"}

// clipboardProvider triggers on a small set of trigger words, with any
// remaining text filtering the preview.
type clipboardProvider struct{}

func (clipboardProvider) ShouldTrigger(query string) bool {
	lower := strings.ToLower(strings.TrimSpace(query))
	for _, w := range clipboardTriggerWords {
		if lower == w || strings.HasPrefix(lower, w+" ") {
			return true
		}
	}
	return false
}

func (clipboardProvider) Produce(query string, ctx *Context) []Result {
	if ctx.Clipboard == nil {
		return nil
	}

	filter := remainderAfterTriggerWord(query, clipboardTriggerWords)
	items := ctx.Clipboard.Items(clipboardLimit)

	if filter == "" {
		return itemsToResults(items)
	}

	filterLower := strings.ToLower(filter)
	var matched []ClipboardItem
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Content), filterLower) {
			matched = append(matched, it)
		}
	}
	return itemsToResults(matched)
}

const clipboardLimit = 10

func itemsToResults(items []ClipboardItem) []Result {
	out := make([]Result, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

// remainderAfterTriggerWord strips the leading trigger word (and any
// following space) from query, returning the trimmed remainder.
func remainderAfterTriggerWord(query string, words []string) string {
	lower := strings.ToLower(strings.TrimSpace(query))
	for _, w := range words {
		if lower == w {
			return ""
		}
		if strings.HasPrefix(lower, w+" ") {
			return strings.TrimSpace(strings.TrimSpace(query)[len(w):])
		}
	}
	return ""
}
