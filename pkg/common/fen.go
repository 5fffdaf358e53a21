package common

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// NewPositionFromFEN parses a Xiangqi FEN: ten ranks from Black's back rank
// down to Red's, then the side to move. The castling/en-passant fields of
// the chess layout are accepted and ignored so GUI-produced strings work
// unchanged. H and E are accepted as aliases for the horse and elephant
// letters.
func NewPositionFromFEN(fen string) (Position, error) {
	var tokens = strings.Split(fen, " ")
	if len(tokens) < 2 {
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}

	var board [90]int8
	var ranks = strings.Split(tokens[0], "/")
	if len(ranks) != 10 {
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}
	for rankIdx, rankStr := range ranks {
		var rank = Rank9 - rankIdx
		var file = 0
		for _, ch := range rankStr {
			if unicode.IsDigit(ch) {
				file += int(ch - '0')
				continue
			}
			var piece = parsePiece(ch)
			if piece == 0 || file > FileI {
				return Position{}, fmt.Errorf("parse fen failed %v", fen)
			}
			board[MakeSquare(file, rank)] = piece
			file++
		}
		if file != 9 {
			return Position{}, fmt.Errorf("parse fen failed %v", fen)
		}
	}

	var redMove bool
	switch tokens[1] {
	case "w", "r":
		redMove = true
	case "b":
		redMove = false
	default:
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}

	var rule50 = 0
	if len(tokens) > 4 {
		rule50, _ = strconv.Atoi(tokens[4])
	}

	var pos, ok = createPosition(board, redMove, rule50)
	if !ok {
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}
	return pos, nil
}

func (p *Position) String() string {
	var sb strings.Builder

	for rank := Rank9; rank >= Rank0; rank-- {
		var emptyCount = 0
		for file := FileA; file <= FileI; file++ {
			var pieceType, side, ok = p.PieceAt(MakeSquare(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteString(pieceToChar(pieceType, side))
		}
		if emptyCount != 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if rank != Rank0 {
			sb.WriteString("/")
		}
	}

	if p.RedMove {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - ")
	sb.WriteString(strconv.Itoa(p.Rule50))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.Rule50/2 + 1))

	return sb.String()
}

const pieceChars = "pabncrk"

func pieceToChar(pieceType int, side bool) string {
	var result = string(pieceChars[pieceType-Soldier])
	if side {
		result = strings.ToUpper(result)
	}
	return result
}

func parsePiece(ch rune) int8 {
	var side = unicode.IsUpper(ch)
	switch unicode.ToLower(ch) {
	case 'p':
		return int8(MakePiece(Soldier, side))
	case 'a':
		return int8(MakePiece(Advisor, side))
	case 'b', 'e':
		return int8(MakePiece(Elephant, side))
	case 'n', 'h':
		return int8(MakePiece(Horse, side))
	case 'c':
		return int8(MakePiece(Cannon, side))
	case 'r':
		return int8(MakePiece(Chariot, side))
	case 'k':
		return int8(MakePiece(General, side))
	}
	return 0
}
