package domain

import (
	"fmt"
	"strings"
)

// Direction is one of the six axis-aligned moves through the cube.
type Direction int

const (
	Up Direction = iota
	Down
	North
	East
	South
	West
)

// Directions lists every direction in declaration order.
var Directions = [6]Direction{Up, Down, North, East, South, West}

var directionNames = [6]string{"Up", "Down", "North", "East", "South", "West"}

// directionLetters are the one-letter forms used by the path notation.
var directionLetters = [6]string{"U", "D", "N", "E", "S", "W"}

// Valid reports whether d is one of the six defined directions.
func (d Direction) Valid() bool { return d >= Up && d <= West }

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Letter returns the one-letter notation form (U, D, N, E, S, W).
func (d Direction) Letter() string {
	if !d.Valid() {
		return "?"
	}
	return directionLetters[d]
}

// Unit returns the displacement of a single step: x is east/west,
// y is north/south, z is up/down.
func (d Direction) Unit() (dx, dy, dz int) {
	switch d {
	case Up:
		return 0, 0, 1
	case Down:
		return 0, 0, -1
	case North:
		return 0, -1, 0
	case East:
		return 1, 0, 0
	case South:
		return 0, 1, 0
	case West:
		return -1, 0, 0
	}
	return 0, 0, 0
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

// nextDirections is filled once at init and only read afterwards.
var nextDirections = buildNextDirections()

func buildNextDirections() [6][4]Direction {
	var table [6][4]Direction
	for _, d := range Directions {
		i := 0
		for _, pair := range [3][2]Direction{{Up, Down}, {North, South}, {East, West}} {
			if d == pair[0] || d == pair[1] {
				continue
			}
			table[d][i], table[d][i+1] = pair[0], pair[1]
			i += 2
		}
	}
	return table
}

// Next returns the four directions allowed after a travel in d: every
// direction except d itself and its reverse. The order is fixed.
func (d Direction) Next() [4]Direction {
	return nextDirections[d]
}

// ParseDirection accepts full names or single letters, case-insensitive.
func ParseDirection(s string) (Direction, error) {
	s = strings.TrimSpace(s)
	for _, d := range Directions {
		if strings.EqualFold(s, directionNames[d]) || strings.EqualFold(s, directionLetters[d]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// MarshalText encodes d by its full name.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(directionNames[d]), nil
}

// UnmarshalText accepts anything ParseDirection does.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MoveKind tags the two move variants.
type MoveKind int

const (
	KindStartAt MoveKind = iota // place the first occupied cell
	KindTravel                  // advance the cursor in a direction
)

func (k MoveKind) String() string {
	switch k {
	case KindStartAt:
		return "start"
	case KindTravel:
		return "travel"
	}
	return fmt.Sprintf("MoveKind(%d)", int(k))
}

// MarshalText encodes k as "start" or "travel".
func (k MoveKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText is the inverse of MarshalText.
func (k *MoveKind) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "start":
		*k = KindStartAt
	case "travel":
		*k = KindTravel
	default:
		return fmt.Errorf("unknown move kind %q", string(b))
	}
	return nil
}
