package common

import "time"

// Position is a full board state. Squares holds a MakePiece value per
// square, indexed rank*9+file with rank 0 at Red's back rank.
type Position struct {
	Squares  [90]int8
	RedMove  bool
	Rule50   int
	Key      uint64
	LastMove Move
	kings    [2]int
	checked  bool
}

const InitialPositionFen = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"

// Piece types in ascending order of value. A Squares entry stores the
// type for Red and type+8 for Black.
const (
	Empty int = iota
	Soldier
	Advisor
	Elephant
	Horse
	Cannon
	Chariot
	General
)

const (
	MaxMoves = 128
)

type Move int32

const MoveEmpty = Move(0)

type OrderedMove struct {
	Move Move
	Key  int32
}

type LimitsType struct {
	Ponder         bool
	Infinite       bool
	RedTime        int
	BlackTime      int
	RedIncrement   int
	BlackIncrement int
	MoveTime       int
	MovesToGo      int
	Depth          int
	Nodes          int
	Mate           int
}

type SearchParams struct {
	Positions []Position
	Limits    LimitsType
	Progress  func(si SearchInfo)
}

type SearchInfo struct {
	Score    UciScore
	Depth    int
	Nodes    int64
	Time     time.Duration
	MainLine []Move
}

type UciScore struct {
	Centipawns int
	Mate       int
}
