package solver

import (
	"context"
	"time"

	"svw.info/fitcube/internal/domain"
	"svw.info/fitcube/internal/ports"
)

// Unique counts paths from the origin up to 2 and reports whether
// exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, seq []int) (bool, ports.Stats, error) {
	start := time.Now()
	count := 0

	sr := newSearch(ctx, seq)
	sr.done = func() bool {
		count++
		return count >= 2 // stop early
	}
	sr.replay([]domain.Move{domain.StartAt(Origin)})
	_ = sr.try(rootDirection, 0)

	st := ports.Stats{Nodes: sr.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return count == 1, st, nil
}
