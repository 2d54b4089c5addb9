package arena

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/CounterXO/pkg/common"
)

type IEngine interface {
	Search(ctx context.Context, searchParams common.SearchParams) (common.SearchInfo, error)
}

// EngineBuilder gets the random source of the game it builds a player for.
type EngineBuilder func(rng *rand.Rand) IEngine

type Config struct {
	Games       int
	Concurrency int
	Seed        int64
	EngineA     EngineBuilder
	EngineB     EngineBuilder
}

// Run plays cfg.Games games between engine A and engine B and reports the score of A.
// The side that moves first is chosen at random for every game.
func Run(ctx context.Context, logger *zap.SugaredLogger, cfg Config) (Summary, error) {
	if cfg.EngineA == nil || cfg.EngineB == nil {
		return Summary{}, errors.New("arena: engine builder missing")
	}
	var concurrency = max(1, cfg.Concurrency)

	logger.Infow("arena started",
		"games", cfg.Games,
		"concurrency", concurrency,
		"seed", cfg.Seed)

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var summary Summary

	g.Go(func() error {
		defer close(gameInfos)
		return generateGames(ctx, cfg.Games, cfg.Seed, gameInfos)
	})

	g.Go(func() error {
		summary = collectResults(logger, gameResults)
		return nil
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, cfg, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	logger.Infow("arena finished",
		"games", summary.Games,
		"wins", summary.Wins,
		"losses", summary.Losses,
		"draws", summary.Draws,
		"score", summary.WinningFraction())
	return summary, nil
}

func playGames(
	ctx context.Context,
	cfg Config,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	for info := range gameInfos {
		var rng = rand.New(rand.NewSource(info.seed))
		var res, err = playGame(ctx, cfg.EngineA(rng), cfg.EngineB(rng), info)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
