package arena

import (
	"context"
	"fmt"

	"github.com/ChizhovVadim/CounterXO/pkg/common"
)

const (
	gameResultDraw = iota
	gameResultEngineAWins
	gameResultEngineBWins
)

type gameResult struct {
	gameInfo gameInfo
	moves    []common.Position
	board    common.Board
	result   int
}

func playGame(
	ctx context.Context,
	engineA, engineB IEngine,
	info gameInfo,
) (gameResult, error) {
	var board = common.NewBoard()
	var piece = common.X
	var pieceA = common.X
	if !info.engineAFirst {
		pieceA = common.O
	}
	var moves []common.Position

	for {
		if winner, won := board.Winner(); won {
			var result = gameResultEngineBWins
			if winner == pieceA {
				result = gameResultEngineAWins
			}
			return gameResult{gameInfo: info, moves: moves, board: board, result: result}, nil
		}
		if board.NoMoreMoves() {
			return gameResult{gameInfo: info, moves: moves, board: board, result: gameResultDraw}, nil
		}

		var eng = engineB
		if piece == pieceA {
			eng = engineA
		}
		var si, err = eng.Search(ctx, common.SearchParams{
			Board: board,
			Piece: piece,
		})
		if err != nil {
			return gameResult{}, fmt.Errorf("game %v: %w", info.id, err)
		}
		if err = board.MakeMove(si.Move, piece); err != nil {
			return gameResult{}, fmt.Errorf("game %v: bad move: %w", info.id, err)
		}
		moves = append(moves, si.Move)
		piece = piece.Opponent()
	}
}
