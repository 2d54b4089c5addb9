package engine

import (
	"errors"
	"fmt"

	"github.com/ChizhovVadim/CounterXO/pkg/common"
)

const (
	valueDraw     = 0
	valueWin      = 1000
	valueLoss     = -valueWin
	valueInfinity = valueWin + 1
)

var (
	// ErrNoLegalMoves means search was asked to move on a full board.
	ErrNoLegalMoves = errors.New("no legal moves")
	ErrGameOver     = errors.New("game is over")
)

func checkRoot(b *common.Board, moves []common.Position) error {
	if len(moves) == 0 {
		return fmt.Errorf("%w: %v", ErrNoLegalMoves, b)
	}
	if winner, won := b.Winner(); won {
		return fmt.Errorf("%w: %v won %v", ErrGameOver, winner, b)
	}
	return nil
}

// bestResult returns the first candidate with the maximum score.
func bestResult(candidates []common.SearchResult) common.SearchResult {
	var best = candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return best
}

// recoverSearch turns an invariant panic raised below the root into an error.
func recoverSearch(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok && errors.Is(e, ErrNoLegalMoves) {
			*err = e
			return
		}
		panic(r)
	}
}
