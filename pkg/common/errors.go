package common

import "errors"

var (
	ErrInvalidMoveCode = errors.New("invalid move code")
	ErrInvalidPiece    = errors.New("invalid piece")
	ErrInvalidBoard    = errors.New("invalid board")
	ErrIllegalMove     = errors.New("illegal move")
)
