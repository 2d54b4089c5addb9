package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/CounterXO/pkg/common"
)

// searchParallel runs one task per root candidate. Every task gets its own board
// and a full window, so no pruning crosses candidates.
// threads limits concurrent tasks, 0 means no limit.
func searchParallel(ctx context.Context, board common.Board, piece common.Piece,
	threads int) (common.SearchInfo, error) {
	var moves = board.AvailableMoves()
	if err := checkRoot(&board, moves); err != nil {
		return common.SearchInfo{}, err
	}

	var maxDepth = len(moves)
	var results = make([]common.SearchResult, len(moves))
	var nodes = make([]int64, len(moves))

	var g, gctx = errgroup.WithContext(ctx)
	if threads > 0 {
		g.SetLimit(threads)
	}
	for i, move := range moves {
		if gctx.Err() != nil {
			break
		}
		var child = board
		child.ApplyMove(move, piece)
		g.Go(func() (err error) {
			defer recoverSearch(&err)
			var t thread
			var score = t.minimax(child, 1, maxDepth, piece, piece, -valueInfinity, valueInfinity)
			results[i] = common.SearchResult{Move: move, Score: score}
			nodes[i] = t.nodes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return common.SearchInfo{}, err
	}
	if err := ctx.Err(); err != nil {
		return common.SearchInfo{}, err
	}

	var best = bestResult(results)
	var info = common.SearchInfo{
		Move:       best.Move,
		Score:      best.Score,
		Candidates: results,
	}
	for _, n := range nodes {
		info.Nodes += n
	}
	return info, nil
}
