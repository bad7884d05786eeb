package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/fitcube/internal/cube"
	"svw.info/fitcube/internal/domain"
	"svw.info/fitcube/internal/validator"
)

func TestBacktrackingSolveUnder1s(t *testing.T) {
	seq := domain.Sequence()
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	path, st, err := s.Solve(ctx, seq)
	require.NoError(t, err, "nodes=%d dur=%v", st.Nodes, st.Duration)
	require.Len(t, path, len(seq)+1)

	assert.Equal(t, domain.StartAt(Origin), path[0])
	assert.Equal(t, domain.Travel(domain.East, seq[0]), path[1])

	// Replay on a fresh grid: every move must apply and the cube ends full.
	g := cube.New()
	for i, m := range path {
		require.True(t, g.Apply(m), "move %d %s", i, m)
		if i > 0 {
			assert.Equal(t, seq[i-1], m.Amount)
		}
	}
	assert.True(t, g.Full())

	ok, conflicts, err := validator.New().Validate(ctx, seq, path)
	require.NoError(t, err)
	assert.True(t, ok, "conflicts: %v", conflicts)
	t.Logf("Solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestSolveIsDeterministic(t *testing.T) {
	s := NewBacktrackingSolver()
	a, _, err := s.Solve(context.Background(), domain.Sequence())
	require.NoError(t, err)
	b, _, err := s.Solve(context.Background(), domain.Sequence())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSolveNoSolution(t *testing.T) {
	s := NewBacktrackingSolver()
	cases := map[string][]int{
		"empty":        nil,
		"too long":     {3},
		"cannot cover": {2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
	}
	for name, seq := range cases {
		t.Run(name, func(t *testing.T) {
			path, _, err := s.Solve(context.Background(), seq)
			assert.ErrorIs(t, err, domain.ErrNoSolution)
			assert.Nil(t, path)
		})
	}
}

// A failed search must leave only the start cell occupied, with the cursor
// back at the origin and the path holding just the StartAt.
func TestFailedSearchRestoresGrid(t *testing.T) {
	cases := map[string]struct {
		seq  []int
		done func() bool
	}{
		"cannot cover":     {seq: []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2}},
		"too long":         {seq: []int{3}},
		"every path fails": {seq: domain.Sequence(), done: func() bool { return false }},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := newSearch(context.Background(), tc.seq)
			if tc.done != nil {
				s.done = tc.done
			}
			_, err := s.replay([]domain.Move{domain.StartAt(Origin)})
			require.NoError(t, err)

			assert.False(t, s.try(rootDirection, 0))
			assert.Positive(t, s.nodes)
			assert.Equal(t, 1, s.grid.Count())
			assert.True(t, s.grid.Occupied(Origin))
			assert.Equal(t, Origin, s.grid.Cursor())
			require.Len(t, s.path, 1)
			assert.Equal(t, domain.StartAt(Origin), s.path[0])
		})
	}
}

func TestSolveShortSequence(t *testing.T) {
	// Coverage is not enforced by the search: a short sequence that fits
	// is a solution.
	path, _, err := NewBacktrackingSolver().Solve(context.Background(), []int{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []domain.Move{
		domain.StartAt(Origin),
		domain.Travel(domain.East, 2),
		domain.Travel(domain.Up, 2),
	}, path)
}

func TestSolveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewBacktrackingSolver().Solve(ctx, domain.Sequence())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtend(t *testing.T) {
	seq := domain.Sequence()
	s := NewBacktrackingSolver()
	full, _, err := s.Solve(context.Background(), seq)
	require.NoError(t, err)

	t.Run("completes a solution prefix", func(t *testing.T) {
		prefix := append([]domain.Move(nil), full[:6]...)
		path, _, err := s.Extend(context.Background(), seq, prefix)
		require.NoError(t, err)
		assert.Equal(t, full, path)
	})

	t.Run("complete path is returned as is", func(t *testing.T) {
		path, st, err := s.Extend(context.Background(), seq, full)
		require.NoError(t, err)
		assert.Equal(t, full, path)
		assert.Zero(t, st.Nodes)
	})

	t.Run("start only tries every direction", func(t *testing.T) {
		path, _, err := s.Extend(context.Background(), seq, []domain.Move{domain.StartAt(Origin)})
		require.NoError(t, err)
		assert.Len(t, path, len(seq)+1)
	})

	t.Run("rejects bad prefixes", func(t *testing.T) {
		bad := [][]domain.Move{
			nil,
			{domain.Travel(domain.East, 2)},
			{domain.StartAt(Origin), domain.Travel(domain.East, 1)},
			{domain.StartAt(Origin), domain.Travel(domain.East, 2), domain.Travel(domain.West, 1)},
		}
		for _, p := range bad {
			_, _, err := s.Extend(context.Background(), seq, p)
			assert.Error(t, err, "%v", p)
		}
	})

	t.Run("unplayable prefix", func(t *testing.T) {
		_, _, err := s.Extend(context.Background(), seq,
			[]domain.Move{domain.StartAt(Origin), domain.Travel(domain.West, 2)})
		assert.ErrorIs(t, err, domain.ErrOutOfBounds)
	})
}
