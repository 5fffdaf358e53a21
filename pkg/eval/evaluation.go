package eval

import (
	"github.com/hienduc/JiangGo/pkg/common"
)

const (
	horseMobility   = 2
	cannonMobility  = 1
	chariotMobility = 2
)

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate returns a score in centipawns from the point of view of the
// side to move. Material is folded into the piece-square tables.
func (e *EvaluationService) Evaluate(p *common.Position) int {
	var score int
	for sq := 0; sq < 90; sq++ {
		var pieceType, side, ok = p.PieceAt(sq)
		if !ok {
			continue
		}
		if side {
			score += pieceSquare[pieceType][sq]
			score += mobility(p, pieceType, sq, side)
		} else {
			score -= pieceSquare[pieceType][common.FlipSquare(sq)]
			score -= mobility(p, pieceType, sq, side)
		}
	}
	if !p.RedMove {
		score = -score
	}
	return score
}

var (
	lineDirs  = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	horseDirs = [8][2]int{
		{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
		{2, 1}, {-2, 1}, {2, -1}, {-2, -1},
	}
)

// mobility samples how freely the long-range pieces move. Only horse,
// cannon and chariot are counted; the close pieces get their positional
// weight from the tables alone.
func mobility(p *common.Position, pieceType, sq int, side bool) int {
	var file, rank = common.File(sq), common.Rank(sq)
	switch pieceType {
	case common.Horse:
		var count = 0
		for _, d := range horseDirs {
			var f, r = file + d[0], rank + d[1]
			if !onBoard(f, r) {
				continue
			}
			var legFile, legRank = file + d[0]/2, rank + d[1]/2
			if p.WhatPiece(common.MakeSquare(legFile, legRank)) != common.Empty {
				continue
			}
			if _, toSide, occupied := p.PieceAt(common.MakeSquare(f, r)); occupied && toSide == side {
				continue
			}
			count++
		}
		return count * horseMobility
	case common.Cannon, common.Chariot:
		var count = 0
		for _, d := range lineDirs {
			var screen = false
			for f, r := file+d[0], rank+d[1]; onBoard(f, r); f, r = f+d[0], r+d[1] {
				var _, toSide, occupied = p.PieceAt(common.MakeSquare(f, r))
				if !occupied {
					if !screen {
						count++
					}
					continue
				}
				if pieceType == common.Chariot {
					if toSide != side {
						count++
					}
					break
				}
				if screen {
					if toSide != side {
						count++
					}
					break
				}
				screen = true
			}
		}
		if pieceType == common.Chariot {
			return count * chariotMobility
		}
		return count * cannonMobility
	}
	return 0
}

func onBoard(file, rank int) bool {
	return file >= 0 && file <= 8 && rank >= 0 && rank <= 9
}
