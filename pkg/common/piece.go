package common

import "fmt"

type Piece int8

const (
	X Piece = iota
	O
)

func (p Piece) Opponent() Piece {
	return p ^ 1
}

func (p Piece) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	}
	return fmt.Sprintf("Piece(%d)", int8(p))
}

func ParsePiece(s string) (Piece, error) {
	switch s {
	case "X", "x":
		return X, nil
	case "O", "o":
		return O, nil
	}
	return X, fmt.Errorf("%w: %q", ErrInvalidPiece, s)
}
