package eval

import (
	"context"
	"strings"
)

// PathValidator checks that every consecutive hop in a proposed path is
// backed by an actual link on the source page.
type PathValidator struct {
	source LinkSource
}

func NewPathValidator(source LinkSource) *PathValidator {
	return &PathValidator{source: source}
}

// IsValid reports whether path can be walked from startPage following only
// real links. An empty path is invalid by definition, and one unmatched hop
// invalidates the whole path.
//
// Titles are compared case-insensitively. Fetch failures are treated as
// invalidity rather than surfaced: the validator never returns an error.
func (v *PathValidator) IsValid(ctx context.Context, startPage string, path []string) bool {
	if len(path) == 0 {
		return false
	}
	current := startPage
	for _, next := range path {
		links, err := v.source.Links(ctx, v.source.PageURL(current))
		if err != nil {
			return false
		}
		if !containsTitle(links, next) {
			return false
		}
		current = next
	}
	return true
}

func containsTitle(links []Link, title string) bool {
	for _, l := range links {
		if strings.EqualFold(l.Title, title) {
			return true
		}
	}
	return false
}
