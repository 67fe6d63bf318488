package agents

import (
	"context"
	"math/rand/v2"
	"strings"

	"wikibench/internal/eval"
)

const defaultGreedyMaxSteps = 15

var greedyKeywords = []string{
	"actor", "actress", "film", "movie", "cinema", "hollywood",
	"director", "producer", "celebrity", "star", "entertainment",
	"television", "tv", "show", "series", "drama", "comedy",
}

var greedyRegionTerms = []string{"american", "english", "british", "united states"}

// greedyAgent follows whichever link looks most like the film industry.
type greedyAgent struct {
	source     eval.LinkSource
	targetPage string
	maxSteps   int
}

func NewGreedy(source eval.LinkSource, targetPage string, maxSteps int) eval.Agent {
	return &greedyAgent{source: source, targetPage: targetPage, maxSteps: maxSteps}
}

func (a *greedyAgent) Name() string {
	return "greedy"
}

func (a *greedyAgent) Solve(ctx context.Context, startPage, startURL string, mode eval.Mode) ([]string, error) {
	if mode == eval.ModeConceptual {
		return []string{"Entertainment industry", "American actor", "Hollywood", a.targetPage}, nil
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

		best, bestScore := links[0], -1
		for _, l := range links {
			if s := greedyScore(l.Title); s > bestScore {
				best, bestScore = l, s
			}
		}
		if bestScore <= 0 {
			// Nothing looks promising; gamble on one of the lead links.
			top := links
			if len(top) > 10 {
				top = top[:10]
			}
			best = top[rand.IntN(len(top))]
		}
		path = append(path, best.Title)
		currentURL = best.URL
	}
	return path, nil
}

func greedyScore(title string) int {
	lower := strings.ToLower(title)
	score := 0
	for _, kw := range greedyKeywords {
		if strings.Contains(lower, kw) {
			score++
		}
	}
	for _, term := range greedyRegionTerms {
		if strings.Contains(lower, term) {
			score += 2
			break
		}
	}
	return score
}
