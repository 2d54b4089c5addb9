package common

import (
	"fmt"
	"strings"
)

type cell struct {
	piece    Piece
	occupied bool
}

// Board is a value type: assigning a board copies every cell.
// The zero value is an empty board.
type Board struct {
	cells [Size][Size]cell
}

var winningLines = func() [][Size]Position {
	var lines [][Size]Position
	for i := 0; i < Size; i++ {
		var row, column [Size]Position
		for j := 0; j < Size; j++ {
			row[j] = Position{X: j, Y: i}
			column[j] = Position{X: i, Y: j}
		}
		lines = append(lines, row, column)
	}
	var diagonal, antiDiagonal [Size]Position
	for i := 0; i < Size; i++ {
		diagonal[i] = Position{X: i, Y: i}
		antiDiagonal[i] = Position{X: Size - 1 - i, Y: i}
	}
	return append(lines, diagonal, antiDiagonal)
}()

func NewBoard() Board {
	return Board{}
}

// ParseBoard reads rows top to bottom separated by '/', e.g. "X.O/.X./..O".
func ParseBoard(s string) (Board, error) {
	var b Board
	var rows = strings.Split(s, "/")
	if len(rows) != Size {
		return b, fmt.Errorf("%w: want %d rows in %q", ErrInvalidBoard, Size, s)
	}
	for y, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("%w: bad row %q", ErrInvalidBoard, row)
		}
		for x, ch := range row {
			switch ch {
			case '.', '-', ' ':
			case 'X', 'x':
				b.ApplyMove(Position{X: x, Y: y}, X)
			case 'O', 'o', '0':
				b.ApplyMove(Position{X: x, Y: y}, O)
			default:
				return b, fmt.Errorf("%w: bad cell %q", ErrInvalidBoard, ch)
			}
		}
	}
	return b, nil
}

func (b *Board) Piece(pos Position) (Piece, bool) {
	var c = b.cells[pos.Y][pos.X]
	return c.piece, c.occupied
}

func (b *Board) ApplyMove(pos Position, piece Piece) {
	b.cells[pos.Y][pos.X] = cell{piece: piece, occupied: true}
}

// MakeMove is ApplyMove for untrusted input.
func (b *Board) MakeMove(pos Position, piece Piece) error {
	if !b.IsValidMove(pos) {
		return fmt.Errorf("%w: %v", ErrIllegalMove, pos)
	}
	b.ApplyMove(pos, piece)
	return nil
}

func (b *Board) IsValidMove(pos Position) bool {
	return pos.IsValid() && !b.cells[pos.Y][pos.X].occupied
}

// AvailableMoves returns the empty cells in row-major order.
func (b *Board) AvailableMoves() []Position {
	var moves = make([]Position, 0, Size*Size)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if !b.cells[y][x].occupied {
				moves = append(moves, Position{X: x, Y: y})
			}
		}
	}
	return moves
}

func (b *Board) EmptyCount() int {
	var n = 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if !b.cells[y][x].occupied {
				n++
			}
		}
	}
	return n
}

func (b *Board) Winner() (Piece, bool) {
	for _, line := range winningLines {
		var first = b.cells[line[0].Y][line[0].X]
		if !first.occupied {
			continue
		}
		var won = true
		for _, pos := range line[1:] {
			if b.cells[pos.Y][pos.X] != first {
				won = false
				break
			}
		}
		if won {
			return first.piece, true
		}
	}
	return X, false
}

func (b *Board) NoMoreMoves() bool {
	return b.EmptyCount() == 0
}

func (b *Board) IsGameOver() bool {
	if _, won := b.Winner(); won {
		return true
	}
	return b.NoMoreMoves()
}

// SideToMove assumes X always starts. ok is false when the piece counts
// cannot come from a legal game.
func (b *Board) SideToMove() (piece Piece, ok bool) {
	var xCount, oCount int
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			var c = b.cells[y][x]
			if !c.occupied {
				continue
			}
			if c.piece == X {
				xCount++
			} else {
				oCount++
			}
		}
	}
	switch xCount - oCount {
	case 0:
		return X, true
	case 1:
		return O, true
	}
	return X, false
}

func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		for x := 0; x < Size; x++ {
			var c = b.cells[y][x]
			if !c.occupied {
				sb.WriteByte('.')
			} else {
				sb.WriteString(c.piece.String())
			}
		}
	}
	return sb.String()
}
