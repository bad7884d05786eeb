// Package cube holds the occupancy state of the 3x3x3 grid and the
// reversible application of moves to it.
package cube

import "svw.info/fitcube/internal/domain"

// Grid is the occupancy of every cell plus the cursor, the cell the
// path currently ends in. The zero value is an empty grid.
type Grid struct {
	cells  [domain.Size][domain.Size][domain.Size]bool
	cursor domain.Position
}

func New() *Grid { return &Grid{} }

// Cursor returns the cell the path currently ends in.
func (g *Grid) Cursor() domain.Position { return g.cursor }

// Occupied reports whether p is inside the grid and taken.
func (g *Grid) Occupied(p domain.Position) bool {
	return p.InBounds() && g.cells[p.X][p.Y][p.Z]
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for x := range g.cells {
		for y := range g.cells[x] {
			for z := range g.cells[x][y] {
				if g.cells[x][y][z] {
					n++
				}
			}
		}
	}
	return n
}

// Full reports whether every cell is occupied.
func (g *Grid) Full() bool { return g.Count() == domain.Cells }

func (g *Grid) set(p domain.Position, v bool) { g.cells[p.X][p.Y][p.Z] = v }

// Check reports why m cannot be applied, or nil if it can. It never
// mutates the grid. The returned position is the offending cell.
func (g *Grid) Check(m domain.Move) (domain.Position, error) {
	switch m.Kind {
	case domain.KindStartAt:
		if m.At == nil {
			return domain.Position{}, domain.ErrBadMove
		}
		p := *m.At
		if !p.InBounds() {
			return p, domain.ErrOutOfBounds
		}
		if g.cells[p.X][p.Y][p.Z] {
			return p, domain.ErrOccupied
		}
		return p, nil
	case domain.KindTravel:
		if !m.Dir.Valid() {
			return g.cursor, domain.ErrBadMove
		}
		if m.Amount < 1 {
			return g.cursor, domain.ErrBadAmount
		}
		end := g.cursor.Step(m.Dir, m.Amount)
		if !end.InBounds() {
			return end, domain.ErrOutOfBounds
		}
		for k := 1; k <= m.Amount; k++ {
			p := g.cursor.Step(m.Dir, k)
			if g.cells[p.X][p.Y][p.Z] {
				return p, domain.ErrOccupied
			}
		}
		return end, nil
	}
	return g.cursor, domain.ErrBadMove
}

// Apply plays m. On failure nothing is changed and false is returned.
func (g *Grid) Apply(m domain.Move) bool {
	if _, err := g.Check(m); err != nil {
		return false
	}
	switch m.Kind {
	case domain.KindStartAt:
		g.set(*m.At, true)
		g.cursor = *m.At
	case domain.KindTravel:
		for k := 1; k <= m.Amount; k++ {
			g.set(g.cursor.Step(m.Dir, k), true)
		}
		g.cursor = g.cursor.Step(m.Dir, m.Amount)
	}
	return true
}

// Revert undoes m, which must be the most recent successfully applied
// move. Reverting a StartAt clears its cell but leaves the cursor alone;
// there is no earlier cell to return to.
func (g *Grid) Revert(m domain.Move) {
	switch m.Kind {
	case domain.KindStartAt:
		g.set(*m.At, false)
	case domain.KindTravel:
		back := m.Dir.Reverse()
		for k := 0; k < m.Amount; k++ {
			g.set(g.cursor.Step(back, k), false)
		}
		g.cursor = g.cursor.Step(back, m.Amount)
	}
}
