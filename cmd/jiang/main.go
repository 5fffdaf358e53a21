package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/hienduc/JiangGo/pkg/engine"
	"github.com/hienduc/JiangGo/pkg/eval"
	"github.com/hienduc/JiangGo/pkg/uci"
)

const (
	name   = "JiangGo"
	author = "Hien Duc"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

func main() {
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
		"NumCPU", runtime.NumCPU(),
	)

	var eng = engine.NewEngine(func() engine.IEvaluator {
		return eval.NewEvaluationService()
	})

	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.IntOption{Name: "Hash", Min: 4, Max: 1 << 16, Value: &eng.Hash},
			&uci.IntOption{Name: "Threads", Min: 1, Max: runtime.NumCPU(), Value: &eng.Threads},
			&uci.ComboOption{Name: "Style",
				Choices: []string{engine.StyleSolid, engine.StyleNormal, engine.StyleRisky},
				Value:   &eng.Style},
			&uci.BoolOption{Name: "ExperimentSettings", Value: &eng.ExperimentSettings},
		},
	)
	protocol.Run(logger)
}
