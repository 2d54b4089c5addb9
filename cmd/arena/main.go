package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChizhovVadim/CounterXO/internal/arena"
	"github.com/ChizhovVadim/CounterXO/internal/config"
	"github.com/ChizhovVadim/CounterXO/internal/logging"
	"github.com/ChizhovVadim/CounterXO/pkg/engine"
)

var (
	flgConfig   string
	flgOpponent string
	flgGames    int
)

func main() {
	flag.StringVar(&flgConfig, "config", "", "Path to config file")
	flag.StringVar(&flgOpponent, "opponent", "random", "Opponent of minimax: random or minimax")
	flag.IntVar(&flgGames, "games", 0, "Number of games, overrides config")
	flag.Parse()

	var err = run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg, err = config.Load(flgConfig)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var options = engine.NewOptions()
	options.Threads = cfg.Threads
	options.Parallel = cfg.Parallel

	var opponent arena.EngineBuilder
	switch flgOpponent {
	case "random":
		opponent = func(rng *rand.Rand) arena.IEngine {
			return engine.NewRandomPlayer(rng)
		}
	case "minimax":
		opponent = func(rng *rand.Rand) arena.IEngine {
			return engine.NewEngine(options)
		}
	default:
		return fmt.Errorf("unknown opponent %q", flgOpponent)
	}

	var games = cfg.Arena.Games
	if flgGames > 0 {
		games = flgGames
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := arena.Run(ctx, logger, arena.Config{
		Games:       games,
		Concurrency: cfg.Arena.Concurrency,
		Seed:        cfg.Arena.Seed,
		EngineA: func(rng *rand.Rand) arena.IEngine {
			return engine.NewEngine(options)
		},
		EngineB: opponent,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Minimax: %v, %v: %v, Draws: %v\n",
		summary.Wins, flgOpponent, summary.Losses, summary.Draws)
	fmt.Printf("Minimax win rate: %.1f%%\n",
		100*float64(summary.Wins)/float64(max(1, summary.Games)))
	if summary.Losses != 0 {
		return fmt.Errorf("minimax lost %v games", summary.Losses)
	}
	return nil
}
