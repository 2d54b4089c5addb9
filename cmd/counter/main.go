package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/ChizhovVadim/CounterXO/internal/config"
	"github.com/ChizhovVadim/CounterXO/internal/logging"
	"github.com/ChizhovVadim/CounterXO/internal/play"
	"github.com/ChizhovVadim/CounterXO/pkg/engine"
	"github.com/ChizhovVadim/CounterXO/pkg/uci"
)

/*
Counter Copyright (C) 2017-2023 Vadim Chizhov
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

const (
	name   = "CounterXO"
	author = "Vadim Chizhov"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

var (
	flgPvP      bool
	flgPvC      bool
	flgUci      bool
	flgParallel bool
	flgConfig   string
)

func main() {
	flag.BoolVar(&flgPvP, "pvp", false, "Enables Player vs Player mode")
	flag.BoolVar(&flgPvC, "pvc", true, "Enables Player vs Computer mode")
	flag.BoolVar(&flgUci, "uci", false, "Runs the engine line protocol on stdin")
	flag.BoolVar(&flgParallel, "parallel", false, "Searches root moves in parallel")
	flag.StringVar(&flgConfig, "config", "", "Path to config file")
	flag.Parse()

	var cfg, err = config.Load(flgConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Debugw(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
		"NumCPU", runtime.NumCPU(),
	)

	var options = engine.NewOptions()
	options.Threads = cfg.Threads
	options.Parallel = cfg.Parallel || flgParallel
	var eng = engine.NewEngine(options)

	if err = run(logger, eng); err != nil {
		logger.Errorw("counter failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *zap.SugaredLogger, eng *engine.Engine) error {
	switch {
	case flgUci:
		var protocol = uci.New(name, author, versionName, eng,
			[]uci.Option{
				&uci.IntOption{Name: "Threads", Min: 0, Max: runtime.NumCPU(), Value: &eng.Options.Threads},
				&uci.BoolOption{Name: "Parallel", Value: &eng.Options.Parallel},
			},
			os.Stdin, os.Stdout,
		)
		protocol.Run(logger)
		return nil
	case flgPvP:
		return play.PlayPvP(os.Stdin, os.Stdout)
	default:
		var rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		return play.PlayPvC(os.Stdin, os.Stdout, rng, eng)
	}
}
