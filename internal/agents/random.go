package agents

import (
	"context"
	"math/rand/v2"
	"strings"

	"wikibench/internal/eval"
)

const defaultRandomMaxSteps = 10

// randomAgent walks random links. It is the baseline every other agent
// should beat.
type randomAgent struct {
	source     eval.LinkSource
	targetPage string
	maxSteps   int
}

func NewRandom(source eval.LinkSource, targetPage string, maxSteps int) eval.Agent {
	return &randomAgent{source: source, targetPage: targetPage, maxSteps: maxSteps}
}

func (a *randomAgent) Name() string {
	return "random"
}

func (a *randomAgent) Solve(ctx context.Context, startPage, startURL string, mode eval.Mode) ([]string, error) {
	if mode == eval.ModeConceptual {
		return a.conceptualPath(), nil
	}

	currentURL := startURL
	var path []string
	for step := 0; step < a.maxSteps; step++ {
		links, err := a.source.Links(ctx, currentURL)
		if err != nil || len(links) == 0 {
			break
		}
		if containsTarget(links, a.targetPage) {
			return append(path, a.targetPage), nil
		}
		pick := links[rand.IntN(len(links))]
		path = append(path, pick.Title)
		currentURL = pick.URL
	}
	return path, nil
}

func (a *randomAgent) conceptualPath() []string {
	pool := []string{
		"Actor", "Film", "Hollywood", a.targetPage,
		"Celebrity", "Movie", "Entertainment", a.targetPage,
	}
	length := 2 + rand.IntN(5)
	path := make([]string, length)
	for i := range path {
		path[i] = pool[rand.IntN(len(pool))]
	}
	return path
}

// containsTarget reports whether any link title contains the target page name.
func containsTarget(links []eval.Link, target string) bool {
	for _, l := range links {
		if strings.Contains(l.Title, target) {
			return true
		}
	}
	return false
}
