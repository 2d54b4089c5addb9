package engine

import "github.com/ChizhovVadim/CounterXO/pkg/common"

// Evaluate scores a finished or cut-off board for perspective.
// Wins are not scaled by depth: a slow win is worth as much as a fast one.
func Evaluate(b *common.Board, perspective common.Piece) int {
	var winner, won = b.Winner()
	if !won {
		return valueDraw
	}
	if winner == perspective {
		return valueWin
	}
	return valueLoss
}
