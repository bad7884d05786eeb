package hint

import (
	"context"
	"errors"

	"svw.info/fitcube/internal/domain"
	"svw.info/fitcube/internal/ports"
)

// extender completes a path prefix; solver.BacktrackingSolver is one.
type extender interface {
	Extend(ctx context.Context, seq []int, prefix []domain.Move) ([]domain.Move, ports.Stats, error)
}

// NextMove implements a Hinter that suggests the move following a prefix
// on some complete path.
type NextMove struct {
	Solver extender
}

func NewNextMove(s extender) *NextMove { return &NextMove{Solver: s} }

// Hint returns the next move if the prefix can still be completed. A
// prefix that is already complete or is a dead end yields no hint.
func (h *NextMove) Hint(ctx context.Context, seq []int, prefix []domain.Move) (domain.Move, bool, error) {
	path, _, err := h.Solver.Extend(ctx, seq, prefix)
	if errors.Is(err, domain.ErrNoSolution) {
		return domain.Move{}, false, nil
	}
	if err != nil {
		return domain.Move{}, false, err
	}
	if len(path) <= len(prefix) {
		return domain.Move{}, false, nil
	}
	return path[len(prefix)], true, nil
}
