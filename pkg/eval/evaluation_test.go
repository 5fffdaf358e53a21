package eval

import (
	"testing"

	"github.com/hienduc/JiangGo/pkg/common"
)

func TestEvaluateSymmetry(t *testing.T) {
	var fens = []string{
		common.InitialPositionFen,
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR b - - 0 1",
		"2bakab2/9/2n1c1n2/p1p1p3p/6p2/2P6/P3P1P1P/2C3N2/9/RNBAKAB1R w - - 0 1",
		"3k5/9/9/9/9/9/9/9/9/4K4 w - - 0 1",
		"4k4/9/9/9/9/9/9/4C4/9/4K4 b - - 0 1",
		"2baka3/9/4b4/p3p3p/9/2r6/P3P3P/2N1B4/9/2BAKA3 w - - 0 1",
	}
	var service = NewEvaluationService()
	for _, fen := range fens {
		var p, err = common.NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(fen, err)
		}
		var mirror = common.MirrorPosition(&p)
		var got, want = service.Evaluate(&mirror), -service.Evaluate(&p)
		if got != want {
			t.Errorf("fen %v: mirror eval %v, want %v", fen, got, want)
		}
	}
}

func TestEvaluateMaterial(t *testing.T) {
	var service = NewEvaluationService()
	var balanced, err = common.NewPositionFromFEN(common.InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	if score := service.Evaluate(&balanced); score != 0 {
		t.Errorf("initial position eval %v, want 0", score)
	}
	// Red is up a chariot.
	var ahead, err2 = common.NewPositionFromFEN("1nbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1")
	if err2 != nil {
		t.Fatal(err2)
	}
	if score := service.Evaluate(&ahead); score < 150 {
		t.Errorf("chariot-up eval %v, want clearly positive", score)
	}
}
