package agents

import (
	"regexp"
	"strings"
)

var (
	listPrefixRe = regexp.MustCompile(`^\s*[-*\d.]+\s*`)
	arrowRe      = regexp.MustCompile(`\s*(?:->|→)\s*`)
)

// ExtractPath parses a model's free-form answer into a path of page titles.
// It accepts the requested one-title-per-line format, tolerating bullets,
// numbering, quoting and leading commentary, and falls back to a single
// arrow-separated line. The starting page is dropped if the model repeats it,
// and the target is normalized into the last position.
func ExtractPath(text, startPage, targetPage string) []string {
	var path []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		if arrowRe.MatchString(s) {
			// Arrow-separated lines are handled by the fallback below.
			continue
		}
		s = listPrefixRe.ReplaceAllString(s, "")
		s = strings.Trim(s, `"'`)
		lower := strings.ToLower(s)
		if strings.HasPrefix(lower, "here") || strings.HasPrefix(lower, "path") || strings.HasPrefix(lower, "the path") {
			continue
		}
		if strings.EqualFold(s, startPage) {
			continue
		}
		if s == "" {
			continue
		}
		path = append(path, s)
	}

	if len(path) > 0 && !strings.EqualFold(path[len(path)-1], targetPage) {
		if idx := indexFold(path, targetPage); idx >= 0 {
			path = path[:idx+1]
		} else {
			path = append(path, targetPage)
		}
	}

	if len(path) == 0 && arrowRe.MatchString(text) {
		path = extractArrowPath(text, startPage, targetPage)
	}
	return path
}

func extractArrowPath(text, startPage, targetPage string) []string {
	var path []string
	for _, piece := range arrowRe.Split(text, -1) {
		p := strings.Trim(strings.TrimSpace(piece), `"'`)
		if p == "" || strings.EqualFold(p, startPage) {
			continue
		}
		// Long chunks are commentary, not page titles.
		if len(strings.Fields(p)) > 7 {
			continue
		}
		path = append(path, p)
	}
	if len(path) > 0 && !strings.EqualFold(path[len(path)-1], targetPage) {
		path = append(path, targetPage)
	}
	return path
}

func indexFold(items []string, want string) int {
	for i, s := range items {
		if strings.EqualFold(s, want) {
			return i
		}
	}
	return -1
}
