package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/fitcube/internal/domain"
	"svw.info/fitcube/internal/solver"
)

func TestHintFollowsSolution(t *testing.T) {
	seq := domain.Sequence()
	s := solver.NewBacktrackingSolver()
	full, _, err := s.Solve(context.Background(), seq)
	require.NoError(t, err)

	h := NewNextMove(s)
	for _, n := range []int{2, 10, len(full) - 1} {
		mv, ok, err := h.Hint(context.Background(), seq, full[:n])
		require.NoError(t, err)
		require.True(t, ok, "prefix length %d", n)
		assert.Equal(t, full[n], mv)
	}

	// With only a start cell every direction is open, so just the
	// amount is fixed.
	mv, ok, err := h.Hint(context.Background(), seq, full[:1])
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.KindTravel, mv.Kind)
	assert.Equal(t, seq[0], mv.Amount)
}

func TestHintCompletePath(t *testing.T) {
	seq := domain.Sequence()
	s := solver.NewBacktrackingSolver()
	full, _, err := s.Solve(context.Background(), seq)
	require.NoError(t, err)

	_, ok, err := NewNextMove(s).Hint(context.Background(), seq, full)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHintDeadEnd(t *testing.T) {
	// From the centre a travel of 2 leaves the cube in every direction.
	prefix := []domain.Move{domain.StartAt(domain.Position{X: 1, Y: 1, Z: 1})}
	_, ok, err := NewNextMove(solver.NewBacktrackingSolver()).Hint(context.Background(), domain.Sequence(), prefix)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHintInvalidPrefix(t *testing.T) {
	prefix := []domain.Move{domain.Travel(domain.East, 2)}
	_, _, err := NewNextMove(solver.NewBacktrackingSolver()).Hint(context.Background(), domain.Sequence(), prefix)
	assert.Error(t, err)
}
