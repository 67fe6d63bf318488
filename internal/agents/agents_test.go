package agents

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wikibench/internal/eval"
)

// stubSource serves a fixed link graph keyed by page URL.
type stubSource struct {
	links map[string][]eval.Link
}

func (s *stubSource) RandomPage(ctx context.Context) (string, string, error) {
	return "Bradawl", s.PageURL("Bradawl"), nil
}

func (s *stubSource) Links(ctx context.Context, url string) ([]eval.Link, error) {
	return s.links[url], nil
}

func (s *stubSource) PageURL(title string) string {
	return "https://wiki.test/wiki/" + strings.ReplaceAll(title, " ", "_")
}

func (s *stubSource) add(page string, titles ...string) {
	if s.links == nil {
		s.links = map[string][]eval.Link{}
	}
	url := s.PageURL(page)
	for _, t := range titles {
		s.links[url] = append(s.links[url], eval.Link{Title: t, URL: s.PageURL(t)})
	}
}

func TestRegistryNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"cheat", "giveup", "greedy", "heuristic", "random"}, Names())
}

func TestBuildUnknownAgent(t *testing.T) {
	t.Parallel()

	_, err := Build("perfect", BuildContext{Source: &stubSource{}, TargetPage: "Kevin Bacon"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown agent")
}

func TestBuildAllCoversRegistry(t *testing.T) {
	t.Parallel()

	all := BuildAll(BuildContext{Source: &stubSource{}, TargetPage: "Kevin Bacon"})
	require.Len(t, all, len(Names()))
	for i, name := range Names() {
		require.Equal(t, name, all[i].Name())
	}
}

func TestCheatAgentReturnsConfiguredTarget(t *testing.T) {
	t.Parallel()

	agent := NewCheat("Barack Obama")
	path, err := agent.Solve(context.Background(), "Bradawl", "", eval.ModeToolUse)
	require.NoError(t, err)
	require.Equal(t, []string{"Barack Obama"}, path)
}

func TestGiveUpAgentReturnsNothing(t *testing.T) {
	t.Parallel()

	agent := NewGiveUp()
	for _, mode := range []eval.Mode{eval.ModeConceptual, eval.ModeToolUse} {
		path, err := agent.Solve(context.Background(), "Bradawl", "", mode)
		require.NoError(t, err)
		require.Empty(t, path)
	}
}

func TestRandomAgentStopsWhenTargetIsLinked(t *testing.T) {
	t.Parallel()

	src := &stubSource{}
	src.add("Bradawl", "Kevin Bacon filmography")

	agent := NewRandom(src, "Kevin Bacon", 10)
	path, err := agent.Solve(context.Background(), "Bradawl", src.PageURL("Bradawl"), eval.ModeToolUse)
	require.NoError(t, err)
	require.Equal(t, []string{"Kevin Bacon"}, path)
}

func TestRandomAgentConceptualPathShape(t *testing.T) {
	t.Parallel()

	agent := NewRandom(&stubSource{}, "Kevin Bacon", 10)
	path, err := agent.Solve(context.Background(), "Bradawl", "", eval.ModeConceptual)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(path), 2)
	require.LessOrEqual(t, len(path), 6)
}

func TestRandomAgentStopsAtDeadEnd(t *testing.T) {
	t.Parallel()

	src := &stubSource{}
	src.add("Bradawl", "Awl")
	// "Awl" has no links at all.

	agent := NewRandom(src, "Kevin Bacon", 10)
	path, err := agent.Solve(context.Background(), "Bradawl", src.PageURL("Bradawl"), eval.ModeToolUse)
	require.NoError(t, err)
	require.Equal(t, []string{"Awl"}, path)
}

func TestGreedyAgentPrefersKeywordLinks(t *testing.T) {
	t.Parallel()

	src := &stubSource{}
	src.add("Bradawl", "Metalworking", "American film actor", "Chisel")
	src.add("American film actor", "Kevin Bacon")

	agent := NewGreedy(src, "Kevin Bacon", 15)
	path, err := agent.Solve(context.Background(), "Bradawl", src.PageURL("Bradawl"), eval.ModeToolUse)
	require.NoError(t, err)
	require.Equal(t, []string{"American film actor", "Kevin Bacon"}, path)
}

func TestGreedyScoreWeighsRegionTerms(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, greedyScore("Chisel"))
	require.Equal(t, 1, greedyScore("Film stock"))
	require.Greater(t, greedyScore("American actor"), greedyScore("Actor"))
}

func TestHeuristicAgentAvoidsRevisiting(t *testing.T) {
	t.Parallel()

	src := &stubSource{}
	// "Hollywood" links back to itself plus one exit; the visited set must
	// force the agent onto the exit instead of looping.
	src.add("Bradawl", "Hollywood")
	src.add("Hollywood", "Hollywood", "Los Angeles")
	src.add("Los Angeles", "Kevin Bacon")

	agent := NewHeuristic(src, "Kevin Bacon", 20)
	path, err := agent.Solve(context.Background(), "Bradawl", src.PageURL("Bradawl"), eval.ModeToolUse)
	require.NoError(t, err)
	require.Equal(t, []string{"Hollywood", "Los Angeles", "Kevin Bacon"}, path)
}

func TestHeuristicConceptualPathEndsOnTarget(t *testing.T) {
	t.Parallel()

	agent := NewHeuristic(&stubSource{}, "Barack Obama", 20)
	path, err := agent.Solve(context.Background(), "Bradawl", "", eval.ModeConceptual)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	require.Equal(t, "Barack Obama", path[len(path)-1])
}
