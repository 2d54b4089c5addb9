package arena

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
)

type gameInfo struct {
	id           uuid.UUID
	gameNumber   int
	engineAFirst bool
	seed         int64
}

func generateGames(
	ctx context.Context,
	games int,
	seed int64,
	gameInfos chan<- gameInfo,
) error {
	var rng = rand.New(rand.NewSource(seed))
	for i := 0; i < games; i++ {
		var info = gameInfo{
			id:           uuid.New(),
			gameNumber:   i + 1,
			engineAFirst: rng.Intn(2) == 0,
			seed:         rng.Int63(),
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- info:
		}
	}
	return nil
}
