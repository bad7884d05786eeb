package ports

import (
	"context"
	"time"

	"svw.info/fitcube/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver searches for a path covering the cube and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, seq []int) ([]domain.Move, Stats, error)
	Unique(ctx context.Context, seq []int) (bool, Stats, error)
}

// Validator replays a path and reports every step that breaks the rules.
type Validator interface {
	Validate(ctx context.Context, seq []int, moves []domain.Move) (ok bool, conflicts []domain.Conflict, err error)
}

// Hinter returns the next move of some completion of a path prefix.
type Hinter interface {
	Hint(ctx context.Context, seq []int, prefix []domain.Move) (domain.Move, bool, error)
}

// Storage persists and retrieves solutions.
type Storage interface {
	Save(ctx context.Context, s *domain.Solution) error
	Load(ctx context.Context, id string) (*domain.Solution, error)
	List(ctx context.Context) ([]domain.SolutionMeta, error)
}

// Recorder observes solver runs.
type Recorder interface {
	ObserveSolve(outcome string, st Stats)
}
