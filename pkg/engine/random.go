package engine

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ChizhovVadim/CounterXO/pkg/common"
)

// RandomPlayer plays a uniformly random legal move. It is not safe for concurrent use.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(rng *rand.Rand) *RandomPlayer {
	return &RandomPlayer{rng: rng}
}

func (p *RandomPlayer) Search(ctx context.Context, params common.SearchParams) (common.SearchInfo, error) {
	var move, err = RandomMove(p.rng, &params.Board)
	if err != nil {
		return common.SearchInfo{}, err
	}
	return common.SearchInfo{Move: move}, nil
}

func RandomMove(rng *rand.Rand, b *common.Board) (common.Position, error) {
	var moves = b.AvailableMoves()
	if len(moves) == 0 {
		return common.Position{}, fmt.Errorf("%w: %v", ErrNoLegalMoves, b)
	}
	return moves[rng.Intn(len(moves))], nil
}
