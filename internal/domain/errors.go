package domain

import "errors"

var (
	ErrNoSolution  = errors.New("no solution exists for the distance sequence")
	ErrNotFound    = errors.New("solution not found")
	ErrOutOfBounds = errors.New("move leaves the cube")
	ErrOccupied    = errors.New("cell already occupied")
	ErrBadAmount   = errors.New("travel amount must be positive")
	ErrBadMove     = errors.New("unknown move kind")
)
