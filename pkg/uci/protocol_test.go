package uci

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hienduc/JiangGo/pkg/common"
)

type nullEngine struct{}

func (nullEngine) Prepare() {}
func (nullEngine) Clear()   {}
func (nullEngine) Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo {
	return common.SearchInfo{}
}

func newTestProtocol() *Protocol {
	return New("test", "tester", "dev", nullEngine{}, nil)
}

func TestParseLimits(t *testing.T) {
	var limits = parseLimits(strings.Fields("wtime 300000 btime 300000 winc 2000 binc 2000 movestogo 30"))
	if limits.RedTime != 300000 || limits.BlackTime != 300000 ||
		limits.RedIncrement != 2000 || limits.BlackIncrement != 2000 ||
		limits.MovesToGo != 30 {
		t.Errorf("bad limits: %+v", limits)
	}

	limits = parseLimits(strings.Fields("depth 12"))
	if limits.Depth != 12 {
		t.Errorf("bad limits: %+v", limits)
	}

	limits = parseLimits(strings.Fields("movetime 5000"))
	if limits.MoveTime != 5000 {
		t.Errorf("bad limits: %+v", limits)
	}

	limits = parseLimits(strings.Fields("infinite"))
	if !limits.Infinite {
		t.Errorf("bad limits: %+v", limits)
	}
}

func TestParseLimitsTruncated(t *testing.T) {
	// A token with a missing argument is ignored, never a panic.
	for _, input := range []string{
		"movetime",
		"depth",
		"wtime",
		"nodes",
		"wtime 300000 btime",
	} {
		var limits = parseLimits(strings.Fields(input))
		if limits.MoveTime != 0 || limits.Depth != 0 ||
			limits.BlackTime != 0 || limits.Nodes != 0 {
			t.Errorf("%q: bad limits: %+v", input, limits)
		}
	}

	var limits = parseLimits(strings.Fields("movetime 5000 depth"))
	if limits.MoveTime != 5000 || limits.Depth != 0 {
		t.Errorf("bad limits: %+v", limits)
	}
}

func TestBestMoveToUci(t *testing.T) {
	var p, err = common.NewPositionFromFEN(common.InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	var child, ok = p.MakeMoveLAN("h2e2")
	if !ok {
		t.Fatal("make move failed")
	}
	var si = common.SearchInfo{MainLine: []common.Move{child.LastMove}}
	if got := bestMoveToUci(si); got != "bestmove h2e2" {
		t.Errorf("best move line: %v", got)
	}
	// Mated or stalemated root: no move, but the GUI still needs a line.
	if got := bestMoveToUci(common.SearchInfo{}); got != "bestmove none" {
		t.Errorf("best move line: %v", got)
	}
}

func TestStopCommand(t *testing.T) {
	var uci = newTestProtocol()
	var cancelled = false
	uci.thinking = true
	uci.cancel = func() { cancelled = true }

	if err := uci.handle("go infinite"); err == nil {
		t.Error("go accepted while thinking")
	}
	if err := uci.handle("stop"); err != nil {
		t.Fatal(err)
	}
	if !cancelled {
		t.Error("stop did not cancel the search")
	}
}

func TestPositionCommand(t *testing.T) {
	var uci = newTestProtocol()

	if err := uci.positionCommand(strings.Fields("startpos")); err != nil {
		t.Fatal(err)
	}
	if len(uci.positions) != 1 {
		t.Fatalf("positions: %v", len(uci.positions))
	}

	if err := uci.positionCommand(strings.Fields("startpos moves h2e2 h9g7")); err != nil {
		t.Fatal(err)
	}
	if len(uci.positions) != 3 {
		t.Fatalf("positions: %v", len(uci.positions))
	}
	if last := &uci.positions[2]; !last.RedMove {
		t.Error("expected red to move after two moves")
	}

	var fen = "4k4/9/9/9/9/9/9/4C4/9/4K4 w - - 0 1"
	if err := uci.positionCommand(strings.Fields("fen " + fen)); err != nil {
		t.Fatal(err)
	}
	if got := uci.positions[0].String(); got != fen {
		t.Errorf("fen %v, want %v", got, fen)
	}

	if err := uci.positionCommand(strings.Fields("startpos moves e0e2")); err == nil {
		t.Error("illegal move accepted")
	}
	if err := uci.positionCommand(strings.Fields("junk")); err == nil {
		t.Error("bad token accepted")
	}
}

func TestSetOptionCommand(t *testing.T) {
	var hash = 16
	var experiment = false
	var uci = New("test", "tester", "dev", nullEngine{}, []Option{
		&IntOption{Name: "Hash", Min: 4, Max: 1024, Value: &hash},
		&BoolOption{Name: "ExperimentSettings", Value: &experiment},
	})

	if err := uci.setOptionCommand(strings.Fields("name Hash value 128")); err != nil {
		t.Fatal(err)
	}
	if hash != 128 {
		t.Errorf("hash %v, want 128", hash)
	}
	if err := uci.setOptionCommand(strings.Fields("name Hash value 100000")); err == nil {
		t.Error("out of range value accepted")
	}
	if err := uci.setOptionCommand(strings.Fields("name ExperimentSettings value true")); err != nil {
		t.Fatal(err)
	}
	if !experiment {
		t.Error("bool option not set")
	}
	if err := uci.setOptionCommand(strings.Fields("name Nonsense value 1")); err == nil {
		t.Error("unknown option accepted")
	}
}

func TestComboOption(t *testing.T) {
	var style = "normal"
	var opt = &ComboOption{Name: "Style",
		Choices: []string{"solid", "normal", "risky"},
		Value:   &style}

	var want = "option name Style type combo default normal var solid var normal var risky"
	if got := opt.UciString(); got != want {
		t.Errorf("uci string: %v", got)
	}
	if err := opt.Set("risky"); err != nil {
		t.Fatal(err)
	}
	if style != "risky" {
		t.Errorf("style %v, want risky", style)
	}
	if err := opt.Set("Solid"); err != nil {
		t.Fatal(err)
	}
	if style != "solid" {
		t.Error("combo match should be case insensitive")
	}
	if err := opt.Set("berserk"); err == nil {
		t.Error("unknown choice accepted")
	}
	if style != "solid" {
		t.Errorf("style %v changed by rejected value", style)
	}
}

func TestSearchInfoToUci(t *testing.T) {
	var p, err = common.NewPositionFromFEN(common.InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	var ml = p.GenerateLegalMoves()
	var si = common.SearchInfo{
		Depth:    8,
		Score:    common.UciScore{Centipawns: 33},
		Nodes:    100000,
		Time:     time.Second,
		MainLine: ml[:1],
	}
	var line = searchInfoToUci(si)
	if !strings.HasPrefix(line, "info depth 8 score cp 33 nodes 100000 time 1000") {
		t.Errorf("info line: %v", line)
	}
	if !strings.Contains(line, " pv "+ml[0].String()) {
		t.Errorf("info line: %v", line)
	}

	si.Score = common.UciScore{Mate: 2}
	line = searchInfoToUci(si)
	if !strings.Contains(line, "score mate 2") {
		t.Errorf("info line: %v", line)
	}
}
