package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/npuzzle/internal/domain"
	"svw.info/npuzzle/internal/puzzle"
)

func TestHintSuggestsSolvingMove(t *testing.T) {
	p, err := puzzle.New(3)
	require.NoError(t, err)
	g := NewGreedy(p, puzzle.Manhattan)

	// Blank one step left of home; moving it right solves the board.
	h, found, err := g.Hint(context.Background(), domain.State{1, 2, 3, 4, 5, 6, 7, 0, 8})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "right", h.Move)
	assert.Equal(t, p.Goal().Encode(), h.Next)
	assert.Equal(t, 0, h.Estimate)
}

func TestHintOnGoalFindsNothing(t *testing.T) {
	p, err := puzzle.New(3)
	require.NoError(t, err)
	g := NewGreedy(p, puzzle.Manhattan)

	_, found, err := g.Hint(context.Background(), p.Goal())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHintPrefersLowerEstimate(t *testing.T) {
	p, err := puzzle.New(3)
	require.NoError(t, err)
	g := NewGreedy(p, puzzle.Manhattan)
	goal := p.Goal()

	s := domain.State{1, 2, 3, 4, 5, 6, 0, 7, 8}
	h, found, err := g.Hint(context.Background(), s)
	require.NoError(t, err)
	require.True(t, found)
	next, err := p.Decode(h.Next)
	require.NoError(t, err)
	for _, m := range p.Moves(s) {
		assert.LessOrEqual(t, puzzle.Manhattan(next, goal), puzzle.Manhattan(m.State, goal))
	}
}

func TestHintHonorsContext(t *testing.T) {
	p, err := puzzle.New(3)
	require.NoError(t, err)
	g := NewGreedy(p, puzzle.Manhattan)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = g.Hint(ctx, p.Goal())
	assert.ErrorIs(t, err, context.Canceled)
}
