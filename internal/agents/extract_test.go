package agents

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractPathPlainLines(t *testing.T) {
	t.Parallel()

	text := "Woodworking\nHand tool\nKevin Bacon\n"
	path := ExtractPath(text, "Bradawl", "Kevin Bacon")
	require.Equal(t, []string{"Woodworking", "Hand tool", "Kevin Bacon"}, path)
}

func TestExtractPathStripsBulletsAndCommentary(t *testing.T) {
	t.Parallel()

	text := `Here is the path I would take:
1. "Woodworking"
2. Hand tool
- Kevin Bacon`
	path := ExtractPath(text, "Bradawl", "Kevin Bacon")
	require.Equal(t, []string{"Woodworking", "Hand tool", "Kevin Bacon"}, path)
}

func TestExtractPathDropsRepeatedStartPage(t *testing.T) {
	t.Parallel()

	text := "bradawl\nWoodworking\nKevin Bacon"
	path := ExtractPath(text, "Bradawl", "Kevin Bacon")
	require.Equal(t, []string{"Woodworking", "Kevin Bacon"}, path)
}

func TestExtractPathAppendsMissingTarget(t *testing.T) {
	t.Parallel()

	text := "Woodworking\nHollywood"
	path := ExtractPath(text, "Bradawl", "Kevin Bacon")
	require.Equal(t, []string{"Woodworking", "Hollywood", "Kevin Bacon"}, path)
}

func TestExtractPathTruncatesAfterEarlyTarget(t *testing.T) {
	t.Parallel()

	text := "Hollywood\nkevin bacon\nFootloose\nTrivia"
	path := ExtractPath(text, "Bradawl", "Kevin Bacon")
	require.Equal(t, []string{"Hollywood", "kevin bacon"}, path)
}

func TestExtractPathArrowFallback(t *testing.T) {
	t.Parallel()

	text := `Bradawl -> Woodworking -> "Hand tool" -> Kevin Bacon`
	path := ExtractPath(text, "Bradawl", "Kevin Bacon")
	require.Equal(t, []string{"Woodworking", "Hand tool", "Kevin Bacon"}, path)
}

func TestExtractPathEmptyInput(t *testing.T) {
	t.Parallel()

	require.Empty(t, ExtractPath("", "Bradawl", "Kevin Bacon"))
	require.Empty(t, ExtractPath("   \n \n", "Bradawl", "Kevin Bacon"))
}
