package engine

import (
	"context"
	"time"

	"github.com/ChizhovVadim/CounterXO/pkg/common"
)

type Engine struct {
	Options Options
}

func NewEngine(options Options) *Engine {
	return &Engine{
		Options: options,
	}
}

// Search picks a move for params.Piece. The board must have a legal move and no winner.
func (e *Engine) Search(ctx context.Context, params common.SearchParams) (common.SearchInfo, error) {
	var start = time.Now()
	var info common.SearchInfo
	var err error
	if e.Options.Parallel {
		info, err = searchParallel(ctx, params.Board, params.Piece, e.Options.Threads)
	} else {
		info, err = searchRoot(params.Board, params.Piece)
	}
	info.Time = time.Since(start)
	return info, err
}

// PickBestMove runs the sequential search.
func PickBestMove(board common.Board, piece common.Piece) (common.Position, error) {
	var info, err = searchRoot(board, piece)
	if err != nil {
		return common.Position{}, err
	}
	return info.Move, nil
}

// PickBestMovePar searches every root candidate in its own goroutine.
// It returns the same move as PickBestMove.
func PickBestMovePar(board common.Board, piece common.Piece) (common.Position, error) {
	var info, err = searchParallel(context.Background(), board, piece, 0)
	if err != nil {
		return common.Position{}, err
	}
	return info.Move, nil
}
