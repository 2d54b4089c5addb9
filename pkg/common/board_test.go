package common

import (
	"errors"
	"testing"
)

func TestParseBoard(t *testing.T) {
	var tests = []string{
		".../.../...",
		"X.O/.X./..O",
		"XOX/OXO/OXO",
	}
	for _, test := range tests {
		var b, err = ParseBoard(test)
		if err != nil {
			t.Fatal(test, err)
		}
		if b.String() != test {
			t.Error(test, b.String())
		}
	}
	for _, test := range []string{"", "XXX/OOO", "XX/OOO/...", "XAX/.../..."} {
		if _, err := ParseBoard(test); !errors.Is(err, ErrInvalidBoard) {
			t.Error(test, err)
		}
	}
}

func TestAvailableMovesOrder(t *testing.T) {
	var b, _ = ParseBoard("X.O/.X./...")
	var want = []Position{{1, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	var got = b.AvailableMoves()
	if len(got) != len(want) {
		t.Fatal(got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Error(i, got[i], want[i])
		}
	}
	if b.EmptyCount() != len(want) {
		t.Error(b.EmptyCount())
	}
}

func TestWinner(t *testing.T) {
	var tests = []struct {
		board  string
		winner Piece
		won    bool
	}{
		{".../.../...", X, false},
		{"XXX/OO./...", X, true},
		{"XO./XO./.O.", O, true},
		{"O.X/.X./X.O", X, true},
		{"O.X/.O./X.O", O, true},
		{"XOX/XOO/OXX", X, false},
		{"XX./OO./...", X, false},
	}
	for _, test := range tests {
		var b, err = ParseBoard(test.board)
		if err != nil {
			t.Fatal(err)
		}
		var winner, won = b.Winner()
		if won != test.won || (won && winner != test.winner) {
			t.Error(test.board, winner, won)
		}
	}
}

func TestGameOver(t *testing.T) {
	var draw, _ = ParseBoard("XOX/XOO/OXX")
	if !draw.NoMoreMoves() || !draw.IsGameOver() {
		t.Error("full board must be over")
	}
	var open, _ = ParseBoard("XO./.../...")
	if open.NoMoreMoves() || open.IsGameOver() {
		t.Error("open board must not be over")
	}
}

func TestBoardIsValue(t *testing.T) {
	var parent = NewBoard()
	var child = parent
	child.ApplyMove(Position{1, 1}, X)
	if _, occupied := parent.Piece(Position{1, 1}); occupied {
		t.Error("copy aliases parent")
	}
	if err := child.MakeMove(Position{1, 1}, O); !errors.Is(err, ErrIllegalMove) {
		t.Error(err)
	}
	if err := child.MakeMove(Position{3, 0}, O); !errors.Is(err, ErrIllegalMove) {
		t.Error(err)
	}
}

func TestSideToMove(t *testing.T) {
	var tests = []struct {
		board string
		piece Piece
		ok    bool
	}{
		{".../.../...", X, true},
		{"X../.../...", O, true},
		{"X../.O./...", X, true},
		{"XX./.../...", X, false},
		{"O../.../...", X, false},
	}
	for _, test := range tests {
		var b, _ = ParseBoard(test.board)
		var piece, ok = b.SideToMove()
		if ok != test.ok || (ok && piece != test.piece) {
			t.Error(test.board, piece, ok)
		}
	}
}

func TestMoveCodes(t *testing.T) {
	for code := 1; code <= 9; code++ {
		var s = string(rune('0' + code))
		var pos, err = ParseMoveCode(s)
		if err != nil {
			t.Fatal(err)
		}
		if pos.String() != s {
			t.Error(code, pos)
		}
	}
	if pos, _ := ParseMoveCode("7"); pos != (Position{0, 0}) {
		t.Error(pos)
	}
	if pos, _ := ParseMoveCode("3"); pos != (Position{2, 2}) {
		t.Error(pos)
	}
	for _, s := range []string{"", "0", "10", "a"} {
		if _, err := ParseMoveCode(s); !errors.Is(err, ErrInvalidMoveCode) {
			t.Error(s, err)
		}
	}
}

func TestPiece(t *testing.T) {
	if X.Opponent() != O || O.Opponent() != X {
		t.Error("opponent")
	}
	if p, err := ParsePiece("o"); err != nil || p != O {
		t.Error(p, err)
	}
	if _, err := ParsePiece("Z"); !errors.Is(err, ErrInvalidPiece) {
		t.Error(err)
	}
}
