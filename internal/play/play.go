package play

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/muesli/termenv"

	"github.com/ChizhovVadim/CounterXO/pkg/common"
)

type IEngine interface {
	Search(ctx context.Context, searchParams common.SearchParams) (common.SearchInfo, error)
}

type game struct {
	scanner *bufio.Scanner
	output  *termenv.Output
	board   common.Board
	piece   common.Piece
}

func newGame(in io.Reader, out io.Writer) *game {
	return &game{
		scanner: bufio.NewScanner(in),
		output:  termenv.NewOutput(out),
		board:   common.NewBoard(),
		piece:   common.X,
	}
}

// PlayPvP lets two people take turns at one terminal.
func PlayPvP(in io.Reader, out io.Writer) error {
	var g = newGame(in, out)
	for {
		g.Print()
		var pos, ok = g.readMove()
		if !ok {
			return nil
		}
		if err := g.board.MakeMove(pos, g.piece); err != nil {
			g.println("Invalid move, try again.")
			continue
		}
		if g.finished(func(winner common.Piece) string {
			return fmt.Sprintf("Player %v wins!", winner)
		}) {
			return nil
		}
		g.piece = g.piece.Opponent()
	}
}

// PlayPvC plays a person against eng. rng decides who moves first.
func PlayPvC(in io.Reader, out io.Writer, rng *rand.Rand, eng IEngine) error {
	var g = newGame(in, out)
	var computerTurn = rng.Intn(2) == 0
	if computerTurn {
		g.println("Computer goes first!")
	} else {
		g.println("Player goes first!")
	}
	for {
		var pos common.Position
		if computerTurn {
			var si, err = eng.Search(context.Background(), common.SearchParams{
				Board: g.board,
				Piece: g.piece,
			})
			if err != nil {
				return err
			}
			pos = si.Move
			g.println(fmt.Sprintf("Computer chose position %v", pos))
		} else {
			g.Print()
			var ok bool
			pos, ok = g.readMove()
			if !ok {
				return nil
			}
		}
		if err := g.board.MakeMove(pos, g.piece); err != nil {
			if computerTurn {
				return err
			}
			g.println("Invalid move, try again.")
			continue
		}
		var computerMoved = computerTurn
		if g.finished(func(winner common.Piece) string {
			if computerMoved {
				return "Computer wins!"
			}
			return fmt.Sprintf("Player %v wins!", winner)
		}) {
			return nil
		}
		g.piece = g.piece.Opponent()
		computerTurn = !computerTurn
	}
}

// readMove prompts until it gets a move code. ok is false on quit or end of input.
func (g *game) readMove() (pos common.Position, ok bool) {
	for {
		g.println(fmt.Sprintf("Player %v, enter your move [1..9]:", g.piece))
		if !g.scanner.Scan() {
			return pos, false
		}
		var input = strings.TrimSpace(g.scanner.Text())
		if input == "quit" {
			return pos, false
		}
		var err error
		pos, err = common.ParseMoveCode(input)
		if err == nil {
			return pos, true
		}
		g.println("Invalid input, try again.")
	}
}

func (g *game) finished(winMessage func(winner common.Piece) string) bool {
	if winner, won := g.board.Winner(); won {
		g.Print()
		g.println(winMessage(winner))
		return true
	}
	if g.board.NoMoreMoves() {
		g.Print()
		g.println("Game over! It's a draw!")
		return true
	}
	return false
}

func (g *game) println(s string) {
	fmt.Fprintln(g.output, s)
}

func (g *game) Print() {
	for y := 0; y < common.Size; y++ {
		var sb strings.Builder
		for x := 0; x < common.Size; x++ {
			var pos = common.Position{X: x, Y: y}
			sb.WriteString(g.cellString(pos))
		}
		g.println(sb.String())
	}
}

func (g *game) cellString(pos common.Position) string {
	var piece, occupied = g.board.Piece(pos)
	if !occupied {
		return g.output.String(pos.String()).Faint().String()
	}
	var style = g.output.String(piece.String()).Bold()
	if piece == common.X {
		style = style.Foreground(termenv.ANSIRed)
	} else {
		style = style.Foreground(termenv.ANSIBlue)
	}
	return style.String()
}
