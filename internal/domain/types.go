package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Size is the edge length of the cube; Cells is its volume.
const (
	Size  = 3
	Cells = Size * Size * Size
)

// Position addresses a cell: X is east/west, Y is north/south, Z is up/down.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

// InBounds reports whether every axis lies in 0..Size-1.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size && p.Z >= 0 && p.Z < Size
}

// Step returns p moved n cells along d.
func (p Position) Step(d Direction, n int) Position {
	dx, dy, dz := d.Unit()
	return Position{X: p.X + dx*n, Y: p.Y + dy*n, Z: p.Z + dz*n}
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z) }

// Move is either a StartAt (At set) or a Travel (Dir and Amount set).
type Move struct {
	Kind   MoveKind
	At     *Position
	Dir    Direction
	Amount int
}

// moveWire is the serialized form; Dir is only present for travels.
type moveWire struct {
	Kind   MoveKind   `json:"kind" yaml:"kind"`
	At     *Position  `json:"at,omitempty" yaml:"at,omitempty"`
	Dir    *Direction `json:"dir,omitempty" yaml:"dir,omitempty"`
	Amount int        `json:"amount,omitempty" yaml:"amount,omitempty"`
}

func (m Move) wire() moveWire {
	w := moveWire{Kind: m.Kind, At: m.At}
	if m.Kind == KindTravel {
		d := m.Dir
		w.Dir = &d
		w.Amount = m.Amount
	}
	return w
}

func (m Move) MarshalJSON() ([]byte, error) { return json.Marshal(m.wire()) }

func (m Move) MarshalYAML() (interface{}, error) { return m.wire(), nil }

func (m *Move) UnmarshalJSON(b []byte) error {
	var w moveWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	switch {
	case w.Kind == KindStartAt && w.At == nil:
		return errors.New(`start move without "at"`)
	case w.Kind == KindTravel && w.Dir == nil:
		return errors.New(`travel move without "dir"`)
	}
	*m = Move{Kind: w.Kind, At: w.At, Amount: w.Amount}
	if w.Dir != nil {
		m.Dir = *w.Dir
	}
	return nil
}

// StartAt builds the move that occupies the first cell.
func StartAt(p Position) Move { return Move{Kind: KindStartAt, At: &p} }

// Travel builds the move that advances n cells along d.
func Travel(d Direction, n int) Move { return Move{Kind: KindTravel, Dir: d, Amount: n} }

func (m Move) String() string {
	if m.Kind == KindStartAt {
		if m.At == nil {
			return "StartAt(?)"
		}
		return "StartAt" + m.At.String()
	}
	return fmt.Sprintf("Travel(%s, %d)", m.Dir, m.Amount)
}

// Solution is a complete path persisted with metadata.
type Solution struct {
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Sequence  []int  `json:"sequence" yaml:"sequence"`
	Moves     []Move `json:"moves" yaml:"moves"`
	Nodes     int    `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

// SolutionMeta is a lightweight listing entry.
type SolutionMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Moves     int    `json:"moves"`
	CreatedAt int64  `json:"createdAt"`
}

// Meta summarizes s for listings.
func (s *Solution) Meta() SolutionMeta {
	return SolutionMeta{ID: s.ID, Name: s.Name, Moves: len(s.Moves), CreatedAt: s.CreatedAt}
}

// Conflict reports why a path step cannot be played.
type Conflict struct {
	Step   int      `json:"step"`
	At     Position `json:"at"`
	Reason string   `json:"reason"`
}
