package common

import (
	"fmt"
	"strconv"
)

const Size = 3

// Position is a cell coordinate, x is the column and y the row from the top.
type Position struct {
	X, Y int
}

// numpad layout: 7 8 9 is the top row
var moveCodes = [Size][Size]int{
	{7, 8, 9},
	{4, 5, 6},
	{1, 2, 3},
}

func (pos Position) IsValid() bool {
	return pos.X >= 0 && pos.X < Size &&
		pos.Y >= 0 && pos.Y < Size
}

func (pos Position) MoveCode() (int, bool) {
	if !pos.IsValid() {
		return 0, false
	}
	return moveCodes[pos.Y][pos.X], true
}

func (pos Position) String() string {
	var code, ok = pos.MoveCode()
	if !ok {
		return fmt.Sprintf("(%d,%d)", pos.X, pos.Y)
	}
	return strconv.Itoa(code)
}

func ParseMoveCode(s string) (Position, error) {
	if len(s) != 1 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidMoveCode, s)
	}
	var code, err = strconv.Atoi(s)
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidMoveCode, s)
	}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if moveCodes[y][x] == code {
				return Position{X: x, Y: y}, nil
			}
		}
	}
	return Position{}, fmt.Errorf("%w: %q", ErrInvalidMoveCode, s)
}
