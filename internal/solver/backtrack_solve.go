package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/fitcube/internal/domain"
	"svw.info/fitcube/internal/ports"
)

// Solve returns the first path found from the origin corner whose
// travels follow seq, beginning with StartAt(Origin).
func (s *BacktrackingSolver) Solve(ctx context.Context, seq []int) ([]domain.Move, ports.Stats, error) {
	start := time.Now()
	sr := newSearch(ctx, seq)
	sr.replay([]domain.Move{domain.StartAt(Origin)})

	ok := sr.try(rootDirection, 0)
	st := ports.Stats{Nodes: sr.nodes, Duration: time.Since(start)}
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, domain.ErrNoSolution
	}
	return sr.path, st, nil
}

// Extend completes prefix, which must start with a StartAt followed by
// travels matching the head of seq. When prefix holds no travel yet,
// all six directions are tried for the first one.
func (s *BacktrackingSolver) Extend(ctx context.Context, seq []int, prefix []domain.Move) ([]domain.Move, ports.Stats, error) {
	start := time.Now()
	if err := checkPrefix(seq, prefix); err != nil {
		return nil, ports.Stats{}, err
	}
	sr := newSearch(ctx, seq)
	if i, err := sr.replay(prefix); err != nil {
		return nil, ports.Stats{}, fmt.Errorf("prefix move %d (%s): %w", i, prefix[i], err)
	}

	k := travels(prefix)
	if k == len(seq) {
		return sr.path, ports.Stats{Duration: time.Since(start)}, nil
	}

	candidates := domain.Directions[:]
	if last := prefix[len(prefix)-1]; last.Kind == domain.KindTravel {
		next := last.Dir.Next()
		candidates = next[:]
	}
	ok := false
	for _, d := range candidates {
		if sr.try(d, k) {
			ok = true
			break
		}
	}
	st := ports.Stats{Nodes: sr.nodes, Duration: time.Since(start)}
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, domain.ErrNoSolution
	}
	return sr.path, st, nil
}

func checkPrefix(seq []int, prefix []domain.Move) error {
	if len(prefix) == 0 || prefix[0].Kind != domain.KindStartAt {
		return fmt.Errorf("prefix must begin with a start move")
	}
	travel := prefix[1:]
	if len(travel) > len(seq) {
		return fmt.Errorf("prefix has %d travels, sequence only %d", len(travel), len(seq))
	}
	for i, m := range travel {
		if m.Kind != domain.KindTravel {
			return fmt.Errorf("prefix move %d: only the first move may be a start", i+1)
		}
		if m.Amount != seq[i] {
			return fmt.Errorf("prefix move %d: amount %d, sequence expects %d", i+1, m.Amount, seq[i])
		}
		if i > 0 && (m.Dir == travel[i-1].Dir || m.Dir == travel[i-1].Dir.Reverse()) {
			return fmt.Errorf("prefix move %d: %s does not turn from %s", i+1, m.Dir, travel[i-1].Dir)
		}
	}
	return nil
}
