package search

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/nova-launcher/nova/pkg/platform"
)

const fileResultLimit = 10

// fileProvider triggers on an absolute path or home-relative prefix
// and produces filesystem matches for it.
type fileProvider struct{}

func (fileProvider) ShouldTrigger(query string) bool {
	return strings.HasPrefix(query, "~") || strings.HasPrefix(query, "/")
}

func (fileProvider) Produce(query string, ctx *Context) []Result {
	home, _ := os.UserHomeDir()
	expanded := platform.ExpandHome(query, home)

	dir := filepath.Dir(expanded)
	base := filepath.Base(expanded)
	if strings.HasSuffix(expanded, "/") {
		dir = strings.TrimSuffix(expanded, "/")
		base = ""
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if base == "" {
			names = append(names, name)
			continue
		}
		matched, _ := doublestar.Match(base+"*", name)
		if matched || strings.HasPrefix(strings.ToLower(name), strings.ToLower(base)) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var hits []Result
	for _, name := range names {
		if len(hits) >= fileResultLimit {
			break
		}
		full := filepath.Join(dir, name)
		info, err := os.Stat(full)
		isDir := err == nil && info.IsDir()
		hits = append(hits, FileHit{DisplayName: name, DisplayPath: full, IsDir: isDir})
	}
	return hits
}
