package common

func Min(l, r int) int {
	if l < r {
		return l
	}
	return r
}

func Max(l, r int) int {
	if l > r {
		return l
	}
	return r
}

func MakePiece(pieceType int, side bool) int {
	if side {
		return pieceType
	}
	return pieceType + 8
}

func GetPieceTypeAndSide(piece int) (pieceType int, side bool) {
	if piece < 8 {
		return piece, true
	}
	return piece - 8, false
}

func sideIndex(side bool) int {
	if side {
		return 0
	}
	return 1
}

func makeMove(from, to, movingPiece, capturedPiece int) Move {
	return Move(from ^ (to << 7) ^ (movingPiece << 14) ^ (capturedPiece << 17))
}

func (m Move) From() int {
	return int(m & 127)
}

func (m Move) To() int {
	return int((m >> 7) & 127)
}

func (m Move) MovingPiece() int {
	return int((m >> 14) & 7)
}

func (m Move) CapturedPiece() int {
	return int((m >> 17) & 7)
}

func (m Move) IsCapture() bool {
	return m.CapturedPiece() != Empty
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	return SquareName(m.From()) + SquareName(m.To())
}
