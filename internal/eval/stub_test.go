package eval

import (
	"context"
	"errors"
	"strings"
)

// stubSource is an in-memory LinkSource keyed by page URL.
type stubSource struct {
	randomTitle string
	randomErr   error
	links       map[string][]Link
	linksErr    map[string]error
	fetches     int
}

func (s *stubSource) RandomPage(ctx context.Context) (string, string, error) {
	if s.randomErr != nil {
		return "", "", s.randomErr
	}
	return s.randomTitle, s.PageURL(s.randomTitle), nil
}

func (s *stubSource) Links(ctx context.Context, url string) ([]Link, error) {
	s.fetches++
	if err, ok := s.linksErr[url]; ok {
		return nil, err
	}
	links, ok := s.links[url]
	if !ok {
		return nil, errors.New("page not found: " + url)
	}
	return links, nil
}

func (s *stubSource) PageURL(title string) string {
	return "https://wiki.test/wiki/" + strings.ReplaceAll(title, " ", "_")
}

// linkChain wires each page to link to the next one, so [pages[0]..pages[n]]
// forms a fully valid path.
func linkChain(s *stubSource, pages ...string) {
	if s.links == nil {
		s.links = map[string][]Link{}
	}
	for i := 0; i < len(pages)-1; i++ {
		url := s.PageURL(pages[i])
		s.links[url] = append(s.links[url], Link{Title: pages[i+1], URL: s.PageURL(pages[i+1])})
	}
	last := s.PageURL(pages[len(pages)-1])
	if _, ok := s.links[last]; !ok {
		s.links[last] = nil
	}
}

// pathAgent returns a fixed path, or an error when err is set.
type pathAgent struct {
	name string
	path []string
	err  error
}

func (a *pathAgent) Name() string { return a.name }

func (a *pathAgent) Solve(ctx context.Context, startPage, startURL string, mode Mode) ([]string, error) {
	return a.path, a.err
}
