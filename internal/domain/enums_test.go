package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseIsInvolutionWithoutFixedPoints(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Reverse().Reverse(), d.String())
		assert.NotEqual(t, d, d.Reverse(), d.String())
	}
}

func TestNextExcludesSelfAndReverse(t *testing.T) {
	for _, d := range Directions {
		next := d.Next()
		assert.Len(t, next, 4)
		seen := map[Direction]bool{}
		for _, n := range next {
			assert.NotEqual(t, d, n)
			assert.NotEqual(t, d.Reverse(), n)
			seen[n] = true
		}
		assert.Len(t, seen, 4, "duplicates in %v", next)
	}
}

func TestNextOrderIsFixed(t *testing.T) {
	assert.Equal(t, [4]Direction{Up, Down, North, South}, East.Next())
	assert.Equal(t, [4]Direction{North, South, East, West}, Up.Next())
	assert.Equal(t, [4]Direction{Up, Down, East, West}, South.Next())
}

func TestUnitHasSingleUnitComponent(t *testing.T) {
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	for _, d := range Directions {
		dx, dy, dz := d.Unit()
		nonzero := 0
		for _, v := range []int{dx, dy, dz} {
			if v != 0 {
				nonzero++
			}
		}
		assert.Equal(t, 1, nonzero, d.String())
		assert.Equal(t, 1, abs(dx)+abs(dy)+abs(dz), d.String())

		rx, ry, rz := d.Reverse().Unit()
		assert.Equal(t, [3]int{-dx, -dy, -dz}, [3]int{rx, ry, rz})
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)

		got, err = ParseDirection(d.Letter())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := ParseDirection(" north ")
	require.NoError(t, err)
	assert.Equal(t, North, got)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func TestSequenceCoversCube(t *testing.T) {
	seq := Sequence()
	assert.Len(t, seq, 22)
	assert.Equal(t, Cells, Covered(seq))

	seq[0] = 99
	assert.Equal(t, 2, Sequence()[0], "Sequence must hand out a copy")
}

func TestMoveJSON(t *testing.T) {
	moves := []Move{StartAt(Position{X: 1, Y: 2, Z: 0}), Travel(Up, 2), Travel(West, 1)}
	b, err := json.Marshal(moves)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"kind":"start","at":{"x":1,"y":2,"z":0}},{"kind":"travel","dir":"Up","amount":2},{"kind":"travel","dir":"West","amount":1}]`,
		string(b))

	var back []Move
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, moves, back)
}

func TestMoveJSONRejectsIncomplete(t *testing.T) {
	cases := map[string]struct{ in, msg string }{
		"travel without dir": {`{"kind":"travel","amount":2}`, `"dir"`},
		"start without at":   {`{"kind":"start"}`, `"at"`},
		"no kind, no at":     {`{}`, `"at"`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var m Move
			err := json.Unmarshal([]byte(tc.in), &m)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestPositionStep(t *testing.T) {
	p := Position{X: 2, Y: 2, Z: 2}
	assert.Equal(t, Position{X: 2, Y: 2, Z: 1}, p.Step(Down, 1))
	assert.Equal(t, Position{X: 0, Y: 2, Z: 2}, p.Step(West, 2))
	assert.False(t, p.Step(East, 1).InBounds())
	assert.True(t, p.InBounds())
}
