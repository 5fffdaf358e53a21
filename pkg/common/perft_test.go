package common

import (
	"testing"
)

// Reference values for the opening position are the published Xiangqi
// perft series (44, 1920, 79666, 3290240, ...).
func TestPerft(t *testing.T) {
	var tests = []struct {
		fen   string
		depth int
		nodes int
	}{
		{
			fen:   InitialPositionFen,
			depth: 1,
			nodes: 44,
		},
		{
			fen:   InitialPositionFen,
			depth: 2,
			nodes: 1920,
		},
		{
			fen:   InitialPositionFen,
			depth: 3,
			nodes: 79666,
		},
		{
			fen:   InitialPositionFen,
			depth: 4,
			nodes: 3290240,
		},
	}
	for i, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(i, err)
		}
		var nodes = Perft(&p, test.depth)
		if nodes != test.nodes {
			t.Error(i, test, nodes)
		}
	}
}

func Perft(p *Position, depth int) int {
	var result = 0
	var buffer [MaxMoves]OrderedMove
	var child Position
	for _, om := range p.GenerateMoves(buffer[:]) {
		if p.MakeMove(om.Move, &child) {
			if depth > 1 {
				result += Perft(&child, depth-1)
			} else {
				result++
			}
		}
	}
	return result
}

// Bare-general endgames are small enough to count by hand.
func TestPerftEndgames(t *testing.T) {
	var tests = []struct {
		fen   string
		depth int
		nodes int
	}{
		// Red general e0, black general d9. e0d0 would face the black
		// general on the open d-file, so only e0f0 and e0e1 remain.
		{
			fen:   "3k5/9/9/9/9/9/9/9/9/4K4 w - - 0 1",
			depth: 1,
			nodes: 2,
		},
		// Facing generals with a single screen. The cannon may slide
		// along the file (7 squares) but never off it, and the general
		// keeps d0, e1 and f0.
		{
			fen:   "4k4/9/9/9/9/9/9/4C4/9/4K4 w - - 0 1",
			depth: 1,
			nodes: 10,
		},
	}
	for i, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(i, err)
		}
		var nodes = Perft(&p, test.depth)
		if nodes != test.nodes {
			t.Error(i, test, nodes)
		}
	}
}
