// Package notation reads and writes paths in a compact text form:
//
//	@(0,0,0) E2 U1 S1 D1
//
// The start cell comes first, then one direction letter and amount per
// travel. Letters are U, D, N, E, S, W; whitespace is free.
package notation

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"svw.info/fitcube/internal/domain"
)

type pathAST struct {
	Start *startAST  `parser:"'@' '(' @@ ')'"`
	Steps []*stepAST `parser:"@@*"`
}

type startAST struct {
	X int `parser:"@Int ','"`
	Y int `parser:"@Int ','"`
	Z int `parser:"@Int"`
}

type stepAST struct {
	Dir    string `parser:"@Dir"`
	Amount int    `parser:"@Int"`
}

var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Dir", Pattern: `[UDNESWudnesw]`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[@(),]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[pathAST](
	participle.Lexer(pathLexer),
	participle.Elide("Whitespace"),
)

// Parse reads a path. Coordinates and amounts are not range checked.
func Parse(s string) ([]domain.Move, error) {
	ast, err := parser.ParseString("path", s)
	if err != nil {
		return nil, err
	}
	moves := make([]domain.Move, 0, len(ast.Steps)+1)
	moves = append(moves, domain.StartAt(domain.Position{X: ast.Start.X, Y: ast.Start.Y, Z: ast.Start.Z}))
	for _, st := range ast.Steps {
		d, err := domain.ParseDirection(st.Dir)
		if err != nil {
			return nil, err
		}
		moves = append(moves, domain.Travel(d, st.Amount))
	}
	return moves, nil
}

// Format writes moves in the form Parse reads. The first move must be
// the only StartAt.
func Format(moves []domain.Move) (string, error) {
	var b strings.Builder
	for i, m := range moves {
		switch {
		case i == 0 && m.Kind == domain.KindStartAt && m.At != nil:
			fmt.Fprintf(&b, "@(%d,%d,%d)", m.At.X, m.At.Y, m.At.Z)
		case i > 0 && m.Kind == domain.KindTravel:
			fmt.Fprintf(&b, " %s%d", m.Dir.Letter(), m.Amount)
		default:
			return "", fmt.Errorf("move %d (%s) cannot be written", i, m)
		}
	}
	return b.String(), nil
}
