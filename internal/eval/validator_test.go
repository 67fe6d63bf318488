package eval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmptyPath(t *testing.T) {
	t.Parallel()

	v := NewPathValidator(&stubSource{})
	require.False(t, v.IsValid(context.Background(), "Bradawl", nil))
	require.False(t, v.IsValid(context.Background(), "Bradawl", []string{}))
}

func TestIsValidFullChain(t *testing.T) {
	t.Parallel()

	src := &stubSource{}
	linkChain(src, "Bradawl", "Woodworking", "Hand tool", "Kevin Bacon")

	v := NewPathValidator(src)
	ok := v.IsValid(context.Background(), "Bradawl", []string{"Woodworking", "Hand tool", "Kevin Bacon"})
	require.True(t, ok)
	require.Equal(t, 3, src.fetches)
}

func TestIsValidBrokenHopShortCircuits(t *testing.T) {
	t.Parallel()

	src := &stubSource{}
	linkChain(src, "Bradawl", "Woodworking", "Hand tool")

	v := NewPathValidator(src)
	// "Hollywood" is not linked from Woodworking; the later valid-looking hop
	// must not rescue the path, and validation stops at the broken step.
	ok := v.IsValid(context.Background(), "Bradawl", []string{"Woodworking", "Hollywood", "Hand tool"})
	require.False(t, ok)
	require.Equal(t, 2, src.fetches)
}

func TestIsValidMatchesCaseInsensitively(t *testing.T) {
	t.Parallel()

	src := &stubSource{}
	linkChain(src, "Bradawl", "Hand tool")

	v := NewPathValidator(src)
	require.True(t, v.IsValid(context.Background(), "Bradawl", []string{"hand TOOL"}))
}

func TestIsValidFetchErrorMeansInvalid(t *testing.T) {
	t.Parallel()

	src := &stubSource{}
	linkChain(src, "Bradawl", "Woodworking")
	src.linksErr = map[string]error{
		src.PageURL("Bradawl"): errors.New("connection reset"),
	}

	v := NewPathValidator(src)
	require.False(t, v.IsValid(context.Background(), "Bradawl", []string{"Woodworking"}))
}

func TestIsValidDeadEndPage(t *testing.T) {
	t.Parallel()

	src := &stubSource{links: map[string][]Link{}}
	src.links[src.PageURL("Bradawl")] = nil

	v := NewPathValidator(src)
	require.False(t, v.IsValid(context.Background(), "Bradawl", []string{"Woodworking"}))
}
