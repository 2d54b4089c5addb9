package engine

import (
	"context"
	"testing"

	"github.com/ChizhovVadim/CounterXO/pkg/common"
)

var benchmarkBoards = []string{
	".../.../...",
	"X../.../...",
	"X../.O./...",
	"X.X/.O./...",
}

func benchmarkSearch(b *testing.B, eng *Engine) {
	var ctx = context.Background()
	var params []common.SearchParams
	for _, s := range benchmarkBoards {
		var board, err = common.ParseBoard(s)
		if err != nil {
			b.Fatal(err)
		}
		var piece, _ = board.SideToMove()
		params = append(params, common.SearchParams{Board: board, Piece: piece})
	}
	var nodes int64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range params {
			var si, err = eng.Search(ctx, p)
			if err != nil {
				b.Fatal(err)
			}
			nodes += si.Nodes
		}
	}
	b.ReportMetric(float64(nodes)/float64(b.N), "nodes/op")
}

func BenchmarkSequential(b *testing.B) {
	benchmarkSearch(b, NewEngine(Options{}))
}

func BenchmarkParallel(b *testing.B) {
	benchmarkSearch(b, NewEngine(Options{Parallel: true}))
}

func BenchmarkParallelTwoThreads(b *testing.B) {
	benchmarkSearch(b, NewEngine(Options{Parallel: true, Threads: 2}))
}
