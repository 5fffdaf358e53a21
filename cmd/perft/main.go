package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hienduc/JiangGo/pkg/common"
)

func main() {
	var fen string
	var depth int
	flag.StringVar(&fen, "fen", common.InitialPositionFen, "position to expand")
	flag.IntVar(&depth, "depth", 5, "perft depth")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags)

	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		logger.Fatal(err)
	}
	if depth < 1 {
		logger.Fatal("depth must be at least 1")
	}

	var started = time.Now()
	var total int64

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for _, move := range p.GenerateLegalMoves() {
		var move = move
		var child common.Position
		p.MakeMove(move, &child)
		g.Go(func() error {
			var nodes = perft(&child, depth-1)
			atomic.AddInt64(&total, nodes)
			fmt.Printf("%v: %v\n", move, nodes)
			return nil
		})
	}
	g.Wait()

	var elapsed = time.Since(started)
	fmt.Printf("nodes %v time %v nps %v\n",
		total, elapsed.Round(time.Millisecond),
		int64(float64(total)/elapsed.Seconds()))
}

func perft(p *common.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var result int64
	var buffer [common.MaxMoves]common.OrderedMove
	var child common.Position
	for _, mv := range p.GenerateMoves(buffer[:]) {
		if p.MakeMove(mv.Move, &child) {
			result += perft(&child, depth-1)
		}
	}
	return result
}
