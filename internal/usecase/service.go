package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"svw.info/fitcube/internal/domain"
	"svw.info/fitcube/internal/metrics"
	"svw.info/fitcube/internal/ports"
)

type Service struct {
	Sequence  []int
	Solver    ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
	Recorder  ports.Recorder
}

// NewService wires the ports around the fixed distance sequence seq.
// Recorder is optional and may be set afterwards.
func NewService(seq []int, s ports.Solver, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Sequence: seq, Solver: s, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context) ([]domain.Move, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	moves, st, err := u.Solver.Solve(ctx, u.Sequence)
	u.observe(err, st)
	return moves, st, err
}

func (u *Service) observe(err error, st ports.Stats) {
	if u.Recorder == nil {
		return
	}
	switch {
	case err == nil:
		u.Recorder.ObserveSolve(metrics.OutcomeSolved, st)
	case errors.Is(err, domain.ErrNoSolution):
		u.Recorder.ObserveSolve(metrics.OutcomeNoSolution, st)
	default:
		u.Recorder.ObserveSolve(metrics.OutcomeError, st)
	}
}

func (u *Service) Unique(ctx context.Context) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Unique(ctx, u.Sequence)
}

func (u *Service) Validate(ctx context.Context, moves []domain.Move) (bool, []domain.Conflict, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, u.Sequence, moves)
}

func (u *Service) Hint(ctx context.Context, prefix []domain.Move) (domain.Move, bool, error) {
	if u.Hinter == nil {
		return domain.Move{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, u.Sequence, prefix)
}

// SolveAndSave solves and persists the result under a new ID.
func (u *Service) SolveAndSave(ctx context.Context, name string) (*domain.Solution, error) {
	moves, st, err := u.Solve(ctx)
	if err != nil {
		return nil, err
	}
	sol := &domain.Solution{Name: name, Sequence: u.Sequence, Moves: moves, Nodes: st.Nodes}
	if err := u.Save(ctx, sol); err != nil {
		return nil, err
	}
	return sol, nil
}

// Persistence

// Save validates s, assigns an ID and timestamp when missing, and stores it.
func (u *Service) Save(ctx context.Context, s *domain.Solution) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	if s == nil {
		return errors.New("invalid solution: nil")
	}
	if len(s.Sequence) == 0 {
		s.Sequence = u.Sequence
	}
	if u.Validator != nil {
		ok, conf, err := u.Validator.Validate(ctx, s.Sequence, s.Moves)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("invalid solution: step %d: %s", conf[0].Step, conf[0].Reason)
		}
	}
	if s.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generate id: %w", err)
		}
		s.ID = id.String()
	}
	if s.CreatedAt == 0 {
		s.CreatedAt = time.Now().UnixNano()
	}
	return u.Storage.Save(ctx, s)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Solution, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.SolutionMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
