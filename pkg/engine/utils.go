package engine

import (
	"math"

	. "github.com/hienduc/JiangGo/pkg/common"
)

const (
	stackSize     = 128
	maxHeight     = stackSize - 1
	valueDraw     = 0
	valueMate     = 30000
	valueInfinity = valueMate + 1
	valueWin      = valueMate - 2*maxHeight
	valueLoss     = -valueWin
)

func winIn(height int) int {
	return valueMate - height
}

func lossIn(height int) int {
	return -valueMate + height
}

func valueToTT(v, height int) int {
	if v >= valueWin {
		return v + height
	}

	if v <= valueLoss {
		return v - height
	}

	return v
}

func valueFromTT(v, height int) int {
	if v >= valueWin {
		return v - height
	}

	if v <= valueLoss {
		return v + height
	}

	return v
}

func newUciScore(v int) UciScore {
	if v >= valueWin {
		return UciScore{Mate: (valueMate - v + 1) / 2}
	} else if v <= valueLoss {
		return UciScore{Mate: (-valueMate - v) / 2}
	} else {
		return UciScore{Centipawns: v}
	}
}

// hasAttackingPieces reports whether side still owns material that can
// deliver mate on its own. Null-move pruning is unsound without it.
func hasAttackingPieces(p *Position, side bool) bool {
	for sq := 0; sq < 90; sq++ {
		var pieceType, pieceSide, ok = p.PieceAt(sq)
		if !ok || pieceSide != side {
			continue
		}
		switch pieceType {
		case Chariot, Cannon, Horse, Soldier:
			return true
		}
	}
	return false
}

func initLmr(f func(d, m float64) float64) func(d, m int) int {
	var reductions [64][64]int
	for d := 1; d < 64; d++ {
		for m := 1; m < 64; m++ {
			reductions[d][m] = int(f(float64(d), float64(m)))
		}
	}
	return func(d, m int) int {
		return reductions[Min(d, 63)][Min(m, 63)]
	}
}

func lmrMult(d, m float64) float64 {
	return lirp(math.Log(d)*math.Log(m), math.Log(5)*math.Log(22), math.Log(63)*math.Log(63), 3, 8)
}

func lirp(x, x1, x2, y1, y2 float64) float64 {
	return y1 + (y2-y1)*(x-x1)/(x2-x1)
}
