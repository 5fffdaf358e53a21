package engine

import (
	"context"
	"testing"
	"time"

	eval "github.com/hienduc/JiangGo/pkg/eval"

	. "github.com/hienduc/JiangGo/pkg/common"
)

func newTestEngine() *Engine {
	var e = NewEngine(func() IEvaluator { return eval.NewEvaluationService() })
	e.Hash = 16
	e.Threads = 1
	return e
}

func searchFen(t *testing.T, fen string, limits LimitsType) SearchInfo {
	t.Helper()
	var p, err = NewPositionFromFEN(fen)
	if err != nil {
		t.Fatal(fen, err)
	}
	var e = newTestEngine()
	return e.Search(context.Background(), SearchParams{
		Positions: []Position{p},
		Limits:    limits,
	})
}

func TestSearchMateInOne(t *testing.T) {
	var si = searchFen(t, "4k4/R8/4P4/9/9/9/9/9/9/5K3 w - - 0 1",
		LimitsType{Depth: 5})
	if si.Score.Mate != 1 {
		t.Errorf("score %+v, want mate in 1", si.Score)
	}
	if len(si.MainLine) == 0 || si.MainLine[0].String() != "a8a9" {
		t.Errorf("best move %v, want a8a9", si.MainLine)
	}
}

func TestSearchMated(t *testing.T) {
	// Black to move, already mated by the chariot on the back rank.
	var p, err = NewPositionFromFEN("R3k4/9/4P4/9/9/9/9/9/9/5K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if ml := p.GenerateLegalMoves(); len(ml) != 0 {
		t.Skipf("position unexpectedly has moves: %v", ml)
	}
	var e = newTestEngine()
	var si = e.Search(context.Background(), SearchParams{
		Positions: []Position{p},
		Limits:    LimitsType{Depth: 3},
	})
	if len(si.MainLine) != 0 {
		t.Errorf("main line %v, want empty for mated side", si.MainLine)
	}
}

func TestSearchDeterminism(t *testing.T) {
	const fen = "2bakab2/9/2n1c1n2/p1p1p3p/6p2/2P6/P3P1P1P/2C3N2/9/RNBAKAB1R w - - 0 1"
	var limits = LimitsType{Depth: 6}
	var first = searchFen(t, fen, limits)
	var second = searchFen(t, fen, limits)
	if first.Nodes != second.Nodes {
		t.Errorf("nodes differ between runs: %v vs %v", first.Nodes, second.Nodes)
	}
	if len(first.MainLine) == 0 || len(second.MainLine) == 0 ||
		first.MainLine[0] != second.MainLine[0] {
		t.Errorf("best move differs: %v vs %v", first.MainLine, second.MainLine)
	}
	if first.Score != second.Score {
		t.Errorf("score differs: %+v vs %+v", first.Score, second.Score)
	}
}

func TestSearchDeeperSearchesMore(t *testing.T) {
	const fen = InitialPositionFen
	var shallow = searchFen(t, fen, LimitsType{Depth: 3})
	var deep = searchFen(t, fen, LimitsType{Depth: 6})
	if deep.Nodes < shallow.Nodes {
		t.Errorf("depth 6 searched %v nodes, depth 3 searched %v", deep.Nodes, shallow.Nodes)
	}
	if deep.Depth < shallow.Depth {
		t.Errorf("deep search reported depth %v < %v", deep.Depth, shallow.Depth)
	}
}

func TestSearchRespectsMoveTime(t *testing.T) {
	var started = time.Now()
	var si = searchFen(t, InitialPositionFen, LimitsType{MoveTime: 100})
	var elapsed = time.Since(started)
	if elapsed > time.Second {
		t.Errorf("movetime 100 took %v", elapsed)
	}
	if len(si.MainLine) == 0 {
		t.Error("no best move")
	}
}

func TestSearchStopsOnCancel(t *testing.T) {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	var e = newTestEngine()
	var ctx, cancel = context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()
	var started = time.Now()
	var si = e.Search(ctx, SearchParams{
		Positions: []Position{p},
		Limits:    LimitsType{Infinite: true},
	})
	if elapsed := time.Since(started); elapsed > 2*time.Second {
		t.Errorf("cancelled infinite search took %v", elapsed)
	}
	if len(si.MainLine) == 0 {
		t.Fatal("no best move")
	}
	var legal = false
	for _, m := range p.GenerateLegalMoves() {
		if m == si.MainLine[0] {
			legal = true
			break
		}
	}
	if !legal {
		t.Errorf("best move %v is not legal", si.MainLine[0])
	}
}

func TestSearchNodeLimit(t *testing.T) {
	var si = searchFen(t, InitialPositionFen, LimitsType{Nodes: 20000})
	if si.Nodes > 40000 {
		t.Errorf("node limit 20000 overshot: %v", si.Nodes)
	}
	if len(si.MainLine) == 0 {
		t.Error("no best move")
	}
}

func TestMateScoreRoundTrip(t *testing.T) {
	for _, height := range []int{0, 1, 5, 40} {
		for _, v := range []int{winIn(height + 3), lossIn(height + 3), 125, -125, 0} {
			if got := valueFromTT(valueToTT(v, height), height); got != v {
				t.Errorf("height %v value %v came back as %v", height, v, got)
			}
		}
	}
}
