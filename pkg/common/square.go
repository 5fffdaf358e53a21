package common

import "strings"

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileI
)

const (
	Rank0 = iota
	Rank1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
)

const SquareNone = -1

func File(sq int) int {
	return sq % 9
}

func Rank(sq int) int {
	return sq / 9
}

func MakeSquare(file, rank int) int {
	return rank*9 + file
}

// FlipSquare mirrors a square across the river.
func FlipSquare(sq int) int {
	return MakeSquare(File(sq), Rank9-Rank(sq))
}

func AbsDelta(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

// InPalace reports whether sq lies in the 3x3 palace of the given side
// (side=true for Red).
func InPalace(sq int, side bool) bool {
	var f = File(sq)
	if f < FileD || f > FileF {
		return false
	}
	if side {
		return Rank(sq) <= Rank2
	}
	return Rank(sq) >= Rank7
}

// CrossedRiver reports whether a soldier of the given side standing on sq
// has crossed the river.
func CrossedRiver(sq int, side bool) bool {
	if side {
		return Rank(sq) >= Rank5
	}
	return Rank(sq) <= Rank4
}

// OwnHalf reports whether sq is on the given side's own half of the board.
// Elephants may never leave it.
func OwnHalf(sq int, side bool) bool {
	return !CrossedRiver(sq, side)
}

const (
	fileNames = "abcdefghi"
	rankNames = "0123456789"
)

func SquareName(sq int) string {
	var file = fileNames[File(sq)]
	var rank = rankNames[Rank(sq)]
	return string(file) + string(rank)
}

func ParseSquare(s string) int {
	if s == "-" {
		return SquareNone
	}
	var file = strings.Index(fileNames, s[0:1])
	var rank = strings.Index(rankNames, s[1:2])
	if file < 0 || rank < 0 {
		return SquareNone
	}
	return MakeSquare(file, rank)
}
