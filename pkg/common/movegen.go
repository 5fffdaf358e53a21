package common

var (
	lineDeltas    = [4][2]int{{0, 1}, {0, -1}, {-1, 0}, {1, 0}}
	advisorDeltas = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	elephantJumps = [4][2]int{{-2, -2}, {-2, 2}, {2, -2}, {2, 2}}
	horseDeltas   = [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
)

// GenerateMoves writes the pseudo-legal moves of the side to move into ml
// and returns the filled prefix. Moves that expose the own general are
// rejected later by MakeMove. Generation order is deterministic: squares
// ascending, fixed delta tables.
func (p *Position) GenerateMoves(ml []OrderedMove) []OrderedMove {
	return p.generateMoves(ml, false)
}

// GenerateCaptures is GenerateMoves restricted to capturing moves.
func (p *Position) GenerateCaptures(ml []OrderedMove) []OrderedMove {
	return p.generateMoves(ml, true)
}

func (p *Position) generateMoves(ml []OrderedMove, capturesOnly bool) []OrderedMove {
	var count = 0
	var side = p.RedMove

	var add = func(from, to, movingPiece int) {
		var capturedPiece, capturedSide, occupied = p.PieceAt(to)
		if occupied {
			if capturedSide == side {
				return
			}
		} else {
			capturedPiece = Empty
			if capturesOnly {
				return
			}
		}
		ml[count] = OrderedMove{Move: makeMove(from, to, movingPiece, capturedPiece)}
		count++
	}

	for from := 0; from < 90; from++ {
		var piece = int(p.Squares[from])
		if piece == 0 {
			continue
		}
		var pieceType, pieceSide = GetPieceTypeAndSide(piece)
		if pieceSide != side {
			continue
		}
		var f = File(from)
		var r = Rank(from)

		switch pieceType {
		case General:
			for _, d := range lineDeltas {
				var to = MakeSquare(f+d[0], r+d[1])
				if onBoard(f+d[0], r+d[1]) && InPalace(to, side) {
					add(from, to, General)
				}
			}
		case Advisor:
			for _, d := range advisorDeltas {
				var to = MakeSquare(f+d[0], r+d[1])
				if onBoard(f+d[0], r+d[1]) && InPalace(to, side) {
					add(from, to, Advisor)
				}
			}
		case Elephant:
			for _, d := range elephantJumps {
				var nf, nr = f + d[0], r + d[1]
				if !onBoard(nf, nr) {
					continue
				}
				var to = MakeSquare(nf, nr)
				if !OwnHalf(to, side) {
					continue
				}
				// the elephant's eye
				if p.Squares[MakeSquare(f+d[0]/2, r+d[1]/2)] != 0 {
					continue
				}
				add(from, to, Elephant)
			}
		case Horse:
			for _, d := range horseDeltas {
				var nf, nr = f + d[0], r + d[1]
				if !onBoard(nf, nr) {
					continue
				}
				var to = MakeSquare(nf, nr)
				if p.Squares[horseLeg(from, to)] != 0 {
					continue
				}
				add(from, to, Horse)
			}
		case Chariot:
			for _, d := range lineDeltas {
				for nf, nr := f+d[0], r+d[1]; onBoard(nf, nr); nf, nr = nf+d[0], nr+d[1] {
					var to = MakeSquare(nf, nr)
					add(from, to, Chariot)
					if p.Squares[to] != 0 {
						break
					}
				}
			}
		case Cannon:
			for _, d := range lineDeltas {
				var nf, nr = f + d[0], r + d[1]
				for ; onBoard(nf, nr); nf, nr = nf+d[0], nr+d[1] {
					var to = MakeSquare(nf, nr)
					if p.Squares[to] != 0 {
						break
					}
					if !capturesOnly {
						add(from, to, Cannon)
					}
				}
				// past the screen: the first piece beyond it may be captured
				for nf, nr = nf+d[0], nr+d[1]; onBoard(nf, nr); nf, nr = nf+d[0], nr+d[1] {
					var to = MakeSquare(nf, nr)
					if p.Squares[to] != 0 {
						add(from, to, Cannon)
						break
					}
				}
			}
		case Soldier:
			var dir = 1
			if !side {
				dir = -1
			}
			if onBoard(f, r+dir) {
				add(from, MakeSquare(f, r+dir), Soldier)
			}
			if CrossedRiver(from, side) {
				if f > FileA {
					add(from, MakeSquare(f-1, r), Soldier)
				}
				if f < FileI {
					add(from, MakeSquare(f+1, r), Soldier)
				}
			}
		}
	}

	return ml[:count]
}

func onBoard(file, rank int) bool {
	return file >= FileA && file <= FileI && rank >= Rank0 && rank <= Rank9
}

// GenerateLegalMoves is the allocation-friendly entry point for callers
// outside the search hot path.
func (p *Position) GenerateLegalMoves() []Move {
	var buffer [MaxMoves]OrderedMove
	var child Position
	var result []Move
	for _, om := range p.GenerateMoves(buffer[:]) {
		if p.MakeMove(om.Move, &child) {
			result = append(result, om.Move)
		}
	}
	return result
}
