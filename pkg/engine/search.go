package engine

import (
	"fmt"

	"github.com/ChizhovVadim/CounterXO/pkg/common"
)

// thread is the private state of one search. It is never shared between goroutines.
type thread struct {
	nodes int64
}

// minimax searches board after lastMover has played. Every child gets its own copy of the board.
func (t *thread) minimax(board common.Board, depth, maxDepth int,
	perspective, lastMover common.Piece, alpha, beta int) int {
	t.nodes++
	if depth == maxDepth || board.IsGameOver() {
		return Evaluate(&board, perspective)
	}

	var mover = lastMover.Opponent()
	var moves = board.AvailableMoves()
	if len(moves) == 0 {
		panic(fmt.Errorf("%w: non-terminal node %v", ErrNoLegalMoves, board))
	}

	if mover == perspective {
		var best = -valueInfinity
		for _, move := range moves {
			var child = board
			child.ApplyMove(move, mover)
			var score = t.minimax(child, depth+1, maxDepth, perspective, mover, alpha, beta)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	var best = valueInfinity
	for _, move := range moves {
		var child = board
		child.ApplyMove(move, mover)
		var score = t.minimax(child, depth+1, maxDepth, perspective, mover, alpha, beta)
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// searchRoot keeps one alpha-beta window for all root candidates,
// so later candidates are cut against the best score found so far.
// A candidate that cannot beat alpha reports an upper bound, not its exact value.
func searchRoot(board common.Board, piece common.Piece) (info common.SearchInfo, err error) {
	var moves = board.AvailableMoves()
	if err = checkRoot(&board, moves); err != nil {
		return
	}
	defer recoverSearch(&err)

	var t thread
	var maxDepth = len(moves)
	var alpha, beta = -valueInfinity, valueInfinity
	info.Candidates = make([]common.SearchResult, 0, len(moves))
	for _, move := range moves {
		var child = board
		child.ApplyMove(move, piece)
		var score = t.minimax(child, 1, maxDepth, piece, piece, alpha, beta)
		info.Candidates = append(info.Candidates, common.SearchResult{Move: move, Score: score})
		if score > alpha {
			alpha = score
		}
	}

	var best = bestResult(info.Candidates)
	info.Move = best.Move
	info.Score = best.Score
	info.Nodes = t.nodes
	return
}
