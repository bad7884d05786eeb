package validator

import (
	"context"
	"errors"
	"fmt"

	"svw.info/fitcube/internal/cube"
	"svw.info/fitcube/internal/domain"
)

// Conflict reasons.
const (
	ReasonNoStart     = "path must begin with a start move"
	ReasonExtraStart  = "only the first move may be a start"
	ReasonOutOfBounds = "leaves the cube"
	ReasonOccupied    = "enters an occupied cell"
	ReasonBadMove     = "malformed move"
	ReasonAmount      = "amount differs from the sequence"
	ReasonNoTurn      = "does not turn from the previous travel"
	ReasonLength      = "number of travels differs from the sequence"
	ReasonIncomplete  = "cube not fully covered"
)

// ReplayValidator plays a path on an empty grid and collects conflicts.
type ReplayValidator struct{}

func New() *ReplayValidator { return &ReplayValidator{} }

// Validate reports ok only when the path starts with a single StartAt,
// follows seq move for move with a turn at every step, and fills the
// cube. Moves that cannot be played are reported and skipped.
func (v *ReplayValidator) Validate(ctx context.Context, seq []int, moves []domain.Move) (bool, []domain.Conflict, error) {
	conf := make([]domain.Conflict, 0, 4)
	g := cube.New()

	if len(moves) == 0 || moves[0].Kind != domain.KindStartAt {
		conf = append(conf, domain.Conflict{Step: 0, Reason: ReasonNoStart})
		return false, conf, nil
	}

	var prev *domain.Move
	for i, m := range moves {
		if err := ctx.Err(); err != nil {
			return false, nil, err
		}
		at := g.Cursor()
		amountSeen := false
		if i > 0 {
			switch {
			case m.Kind == domain.KindStartAt:
				conf = append(conf, domain.Conflict{Step: i, At: at, Reason: ReasonExtraStart})
				continue
			case i-1 < len(seq) && m.Amount != seq[i-1]:
				conf = append(conf, domain.Conflict{Step: i, At: at, Reason: ReasonAmount})
				amountSeen = true
			}
			if prev != nil && (m.Dir == prev.Dir || m.Dir == prev.Dir.Reverse()) {
				conf = append(conf, domain.Conflict{Step: i, At: at, Reason: ReasonNoTurn})
			}
		}
		p, err := g.Check(m)
		if err != nil {
			if !(amountSeen && errors.Is(err, domain.ErrBadAmount)) {
				conf = append(conf, domain.Conflict{Step: i, At: p, Reason: reason(err)})
			}
			continue
		}
		g.Apply(m)
		if m.Kind == domain.KindTravel {
			mm := m
			prev = &mm
		}
	}

	if n := len(moves) - 1; n != len(seq) {
		conf = append(conf, domain.Conflict{Step: len(moves), At: g.Cursor(), Reason: ReasonLength})
	}
	if !g.Full() {
		conf = append(conf, domain.Conflict{
			Step:   len(moves),
			At:     g.Cursor(),
			Reason: fmt.Sprintf("%s (%d of %d cells)", ReasonIncomplete, g.Count(), domain.Cells),
		})
	}
	return len(conf) == 0, conf, nil
}

func reason(err error) string {
	switch err {
	case domain.ErrOutOfBounds:
		return ReasonOutOfBounds
	case domain.ErrOccupied:
		return ReasonOccupied
	case domain.ErrBadAmount:
		return ReasonAmount
	}
	return ReasonBadMove
}
