package common

import (
	"math/rand"
	"strings"
)

func (p *Position) WhatPiece(sq int) int {
	var piece = int(p.Squares[sq])
	if piece == 0 {
		return Empty
	}
	pieceType, _ := GetPieceTypeAndSide(piece)
	return pieceType
}

func (p *Position) PieceAt(sq int) (pieceType int, side bool, ok bool) {
	var piece = int(p.Squares[sq])
	if piece == 0 {
		return Empty, false, false
	}
	pieceType, side = GetPieceTypeAndSide(piece)
	return pieceType, side, true
}

func (p *Position) IsCheck() bool {
	return p.checked
}

func (p *Position) KingSquare(side bool) int {
	return p.kings[sideIndex(side)]
}

func createPosition(board [90]int8, redMove bool, rule50 int) (Position, bool) {
	var p = Position{
		RedMove:  redMove,
		Rule50:   rule50,
		LastMove: MoveEmpty,
	}
	p.kings[0] = SquareNone
	p.kings[1] = SquareNone

	for sq := range board {
		if board[sq] == 0 {
			continue
		}
		var pieceType, side = GetPieceTypeAndSide(int(board[sq]))
		if pieceType == General {
			if p.kings[sideIndex(side)] != SquareNone ||
				!InPalace(sq, side) {
				return Position{}, false
			}
			p.kings[sideIndex(side)] = sq
		}
		xorPiece(&p, pieceType, side, sq)
	}
	if p.kings[0] == SquareNone || p.kings[1] == SquareNone {
		return Position{}, false
	}
	if redMove {
		p.Key ^= sideKey
	}

	// side that just moved must not be left in check
	if p.isAttackedBySide(p.kings[sideIndex(!redMove)], redMove) {
		return Position{}, false
	}
	p.checked = p.isAttackedBySide(p.kings[sideIndex(redMove)], !redMove)
	return p, true
}

// MakeMove applies move to a copy of src. It returns false when the move
// leaves the mover's own general attacked, including the flying-general
// case, and result must then be ignored.
func (src *Position) MakeMove(move Move, result *Position) bool {
	*result = *src

	var from = move.From()
	var to = move.To()
	var movingPiece = move.MovingPiece()
	var capturedPiece = move.CapturedPiece()
	var side = src.RedMove

	if capturedPiece != Empty {
		xorPiece(result, capturedPiece, !side, to)
		result.Rule50 = 0
	} else {
		result.Rule50 = src.Rule50 + 1
	}
	movePiece(result, movingPiece, side, from, to)
	if movingPiece == General {
		result.kings[sideIndex(side)] = to
	}

	result.RedMove = !side
	result.Key ^= sideKey

	if result.isAttackedBySide(result.kings[sideIndex(side)], !side) {
		return false
	}
	result.checked = result.isAttackedBySide(result.kings[sideIndex(!side)], side)
	result.LastMove = move
	return true
}

func (src *Position) MakeNullMove(result *Position) {
	*result = *src
	result.Rule50 = src.Rule50 + 1
	result.RedMove = !src.RedMove
	result.Key = src.Key ^ sideKey
	result.checked = false
	result.LastMove = MoveEmpty
}

func (p *Position) MakeMoveLAN(lan string) (Position, bool) {
	var buffer [MaxMoves]OrderedMove
	var ml = p.GenerateMoves(buffer[:])
	for i := range ml {
		var mv = ml[i].Move
		if strings.EqualFold(mv.String(), lan) {
			var newPosition = Position{}
			if p.MakeMove(mv, &newPosition) {
				return newPosition, true
			}
			return Position{}, false
		}
	}
	return Position{}, false
}

func xorPiece(p *Position, pieceType int, side bool, sq int) {
	p.Squares[sq] ^= int8(MakePiece(pieceType, side))
	p.Key ^= PieceSquareKey(pieceType, side, sq)
}

func movePiece(p *Position, pieceType int, side bool, from, to int) {
	var piece = int8(MakePiece(pieceType, side))
	p.Squares[from] ^= piece
	p.Squares[to] ^= piece
	p.Key ^= PieceSquareKey(pieceType, side, from) ^ PieceSquareKey(pieceType, side, to)
}

// isAttackedBySide reports whether sq is attacked by the given side. It is
// only ever asked about general squares, so advisors and elephants (which
// can never reach the enemy palace) are not considered. A general "attacks"
// the enemy general along an open file, which encodes the flying-general
// rule.
func (p *Position) isAttackedBySide(sq int, side bool) bool {
	var f = File(sq)
	var r = Rank(sq)

	// soldier ahead of the target, from the attacker's point of view
	var dir = 1
	if !side {
		dir = -1
	}
	if r-dir >= Rank0 && r-dir <= Rank9 {
		if p.pieceIs(MakeSquare(f, r-dir), Soldier, side) {
			return true
		}
	}
	// soldier beside the target; only attacks sideways once across the river
	for _, df := range [2]int{-1, 1} {
		if f+df < FileA || f+df > FileI {
			continue
		}
		var from = MakeSquare(f+df, r)
		if p.pieceIs(from, Soldier, side) && CrossedRiver(from, side) {
			return true
		}
	}

	// horses, checking the leg next to the horse
	for _, d := range horseDeltas {
		var hf, hr = f + d[0], r + d[1]
		if hf < FileA || hf > FileI || hr < Rank0 || hr > Rank9 {
			continue
		}
		var from = MakeSquare(hf, hr)
		if !p.pieceIs(from, Horse, side) {
			continue
		}
		if p.Squares[horseLeg(from, sq)] == 0 {
			return true
		}
	}

	// chariots and the facing general on open lines, cannons behind one screen
	for _, d := range lineDeltas {
		var nf, nr = f + d[0], r + d[1]
		var vertical = d[0] == 0
		for nf >= FileA && nf <= FileI && nr >= Rank0 && nr <= Rank9 {
			var piece = int(p.Squares[MakeSquare(nf, nr)])
			if piece != 0 {
				var pieceType, pieceSide = GetPieceTypeAndSide(piece)
				if pieceSide == side &&
					(pieceType == Chariot || (vertical && pieceType == General)) {
					return true
				}
				break
			}
			nf += d[0]
			nr += d[1]
		}
		// skip the screen and look for a cannon
		nf += d[0]
		nr += d[1]
		for nf >= FileA && nf <= FileI && nr >= Rank0 && nr <= Rank9 {
			var piece = int(p.Squares[MakeSquare(nf, nr)])
			if piece != 0 {
				var pieceType, pieceSide = GetPieceTypeAndSide(piece)
				if pieceSide == side && pieceType == Cannon {
					return true
				}
				break
			}
			nf += d[0]
			nr += d[1]
		}
	}

	return false
}

func (p *Position) pieceIs(sq, pieceType int, side bool) bool {
	return int(p.Squares[sq]) == MakePiece(pieceType, side)
}

// horseLeg returns the blocking square for a horse jump from from to to.
func horseLeg(from, to int) int {
	var df = File(to) - File(from)
	var dr = Rank(to) - Rank(from)
	if df == 2 || df == -2 {
		return MakeSquare(File(from)+df/2, Rank(from))
	}
	return MakeSquare(File(from), Rank(from)+dr/2)
}

func (p *Position) IsRepetition(other *Position) bool {
	return p.Squares == other.Squares && p.RedMove == other.RedMove
}

// MirrorPosition swaps colors and reflects the board across the river.
// Evaluation must negate under this transformation.
func MirrorPosition(p *Position) Position {
	var board [90]int8
	for sq := range board {
		var pieceType, side, ok = p.PieceAt(sq)
		if ok {
			board[FlipSquare(sq)] = int8(MakePiece(pieceType, !side))
		}
	}
	var pos, _ = createPosition(board, !p.RedMove, p.Rule50)
	return pos
}

var (
	sideKey        uint64
	pieceSquareKey [16 * 90]uint64
)

func PieceSquareKey(pieceType int, side bool, sq int) uint64 {
	return pieceSquareKey[MakePiece(pieceType, side)*90+sq]
}

func initKeys() {
	var r = rand.New(rand.NewSource(0))
	sideKey = r.Uint64()
	for i := range pieceSquareKey {
		pieceSquareKey[i] = r.Uint64()
	}
}

func init() {
	initKeys()
}
