package engine

import (
	"testing"

	. "github.com/hienduc/JiangGo/pkg/common"
)

func someMoves(t *testing.T) []Move {
	t.Helper()
	var p, err = NewPositionFromFEN(InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	var ml = p.GenerateLegalMoves()
	if len(ml) < 2 {
		t.Fatal("expected moves in initial position")
	}
	return ml
}

func TestTransTableRoundTrip(t *testing.T) {
	var moves = someMoves(t)
	var tt = newTransTable(1)
	var key = uint64(0xdeadbeefcafebabe)

	tt.Update(key, 7, 123, boundExact, moves[0])
	var depth, score, bound, move, ok = tt.Read(key)
	if !ok {
		t.Fatal("stored entry not found")
	}
	if depth != 7 || score != 123 || bound != boundExact || move != moves[0] {
		t.Errorf("got depth=%v score=%v bound=%v move=%v", depth, score, bound, move)
	}

	// Same bucket, different verification bits.
	if _, _, _, _, ok := tt.Read(key ^ (uint64(0xffff) << 40)); ok {
		t.Error("key collision reported as hit")
	}
}

func TestTransTableReplacement(t *testing.T) {
	var moves = someMoves(t)
	var tt = newTransTable(1)
	var key = uint64(0x123456789abcdef0)

	tt.Update(key, 10, 50, boundLower, moves[0])
	// Much shallower entry for the same key must not evict the deep one.
	tt.Update(key, 2, -50, boundLower, moves[1])
	var depth, score, _, move, ok = tt.Read(key)
	if !ok || depth != 10 || score != 50 || move != moves[0] {
		t.Errorf("deep entry lost: depth=%v score=%v move=%v ok=%v", depth, score, move, ok)
	}

	// Near-depth entries do replace.
	tt.Update(key, 8, -50, boundLower, moves[1])
	depth, score, _, move, ok = tt.Read(key)
	if !ok || depth != 8 || score != -50 || move != moves[1] {
		t.Errorf("near-depth entry not stored: depth=%v score=%v move=%v ok=%v", depth, score, move, ok)
	}

	// Exact entries always replace.
	tt.Update(key, 2, 7, boundExact, moves[0])
	depth, score, _, _, ok = tt.Read(key)
	if !ok || depth != 2 || score != 7 {
		t.Errorf("exact entry not stored: depth=%v score=%v ok=%v", depth, score, ok)
	}

	tt.Clear()
	if _, _, _, _, ok := tt.Read(key); ok {
		t.Error("entry survived Clear")
	}
}
