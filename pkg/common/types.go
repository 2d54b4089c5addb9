package common

import "time"

type SearchParams struct {
	Board Board
	Piece Piece
}

// SearchResult is the score of a single root candidate.
type SearchResult struct {
	Move  Position
	Score int
}

type SearchInfo struct {
	Move       Position
	Score      int
	Candidates []SearchResult
	Nodes      int64
	Time       time.Duration
}
