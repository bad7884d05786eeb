package solver

import (
	"context"

	"svw.info/fitcube/internal/cube"
	"svw.info/fitcube/internal/domain"
)

// BacktrackingSolver is a straightforward recursive solver.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// Origin is the corner every full search starts from.
var Origin = domain.Position{}

// rootDirection is the direction of the first travel of a full search.
// From a corner any choice is equivalent up to symmetry.
const rootDirection = domain.East

// search is one depth-first exploration. The grid and path are only
// touched by the frame currently running and are restored on every
// failing return.
type search struct {
	ctx   context.Context
	seq   []int
	grid  *cube.Grid
	path  []domain.Move
	nodes int
	// done is called once the last travel is placed. Returning false
	// rejects the path and keeps exploring.
	done func() bool
}

func newSearch(ctx context.Context, seq []int) *search {
	return &search{
		ctx:  ctx,
		seq:  seq,
		grid: cube.New(),
		path: make([]domain.Move, 0, len(seq)+1),
		done: func() bool { return true },
	}
}

// replay applies a prefix onto the empty grid. It returns the index of
// the first move that cannot be applied, with the reason.
func (s *search) replay(prefix []domain.Move) (int, error) {
	for i, m := range prefix {
		if _, err := s.grid.Check(m); err != nil {
			return i, err
		}
		s.grid.Apply(m)
		s.path = append(s.path, m)
	}
	return -1, nil
}

// try places travel i of the sequence in direction dir and recurses.
func (s *search) try(dir domain.Direction, i int) bool {
	if s.ctx.Err() != nil || i >= len(s.seq) {
		return false
	}
	s.nodes++
	mv := domain.Travel(dir, s.seq[i])
	if !s.grid.Apply(mv) {
		return false
	}
	s.path = append(s.path, mv)

	if i == len(s.seq)-1 {
		if s.done() {
			return true
		}
	} else {
		for _, next := range dir.Next() {
			if s.try(next, i+1) {
				return true
			}
		}
	}

	s.path = s.path[:len(s.path)-1]
	s.grid.Revert(mv)
	return false
}

// travels counts the Travel moves in path.
func travels(path []domain.Move) int {
	n := 0
	for _, m := range path {
		if m.Kind == domain.KindTravel {
			n++
		}
	}
	return n
}
