package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/ChizhovVadim/CounterXO/pkg/common"
)

type Engine interface {
	Search(ctx context.Context, searchParams common.SearchParams) (common.SearchInfo, error)
}

type searchOutput struct {
	info common.SearchInfo
	err  error
}

type Protocol struct {
	name         string
	author       string
	version      string
	options      []Option
	engine       Engine
	board        common.Board
	piece        common.Piece
	thinking     bool
	engineOutput chan searchOutput
	in           io.Reader
	out          io.Writer
}

func New(name, author, version string, engine Engine, options []Option,
	in io.Reader, out io.Writer) *Protocol {
	return &Protocol{
		name:    name,
		author:  author,
		version: version,
		engine:  engine,
		options: options,
		board:   common.NewBoard(),
		piece:   common.X,
		in:      in,
		out:     out,
	}
}

func (uci *Protocol) Run(logger *zap.SugaredLogger) {
	var commands = make(chan string)

	go func() {
		defer close(commands)
		readCommands(uci.in, commands)
	}()

	for {
		select {
		case so := <-uci.engineOutput:
			uci.searchFinished(logger, so)
		case commandLine, ok := <-commands:
			if !ok {
				//quit: let a running search report first
				if uci.thinking {
					uci.searchFinished(logger, <-uci.engineOutput)
				}
				return
			}
			var err = uci.handle(commandLine)
			if err != nil {
				logger.Warnw("command failed",
					"command", commandLine,
					"error", err)
			}
		}
	}
}

func readCommands(in io.Reader, commands chan<- string) {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = strings.TrimSpace(scanner.Text())
		if commandLine == "quit" {
			return
		}
		if commandLine != "" {
			commands <- commandLine
		}
	}
}

func (uci *Protocol) searchFinished(logger *zap.SugaredLogger, so searchOutput) {
	uci.thinking = false
	uci.engineOutput = nil
	if so.err != nil {
		logger.Errorw("search failed", "board", uci.board, "error", so.err)
		fmt.Fprintln(uci.out, "bestmove (none)")
		return
	}
	fmt.Fprintln(uci.out, searchInfoToUci(so.info))
	fmt.Fprintf(uci.out, "bestmove %v\n", so.info.Move)
}

func (uci *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if uci.thinking {
		return errors.New("search still run")
	}

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "ucinewgame":
		h = uci.uciNewGameCommand
	case "show":
		h = uci.showCommand
	}

	if h == nil {
		return errors.New("command not found")
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	fmt.Fprintf(uci.out, "id name %s %s\n", uci.name, uci.version)
	fmt.Fprintf(uci.out, "id author %s\n", uci.author)
	for _, option := range uci.options {
		fmt.Fprintln(uci.out, option.UciString())
	}
	fmt.Fprintln(uci.out, "uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 {
		return errors.New("invalid setoption arguments")
	}
	var name, value = fields[1], fields[3]
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return errors.New("unhandled option")
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	fmt.Fprintln(uci.out, "readyok")
	return nil
}

// position startpos [moves 5 1 ...]
// position board X../.O./... [moves ...]
func (uci *Protocol) positionCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("unknown position command")
	}
	var movesIndex = findIndexString(fields, "moves")
	var board common.Board
	switch fields[0] {
	case "startpos":
		board = common.NewBoard()
	case "board":
		if len(fields) < 2 || movesIndex == 1 {
			return errors.New("missing board")
		}
		var b, err = common.ParseBoard(fields[1])
		if err != nil {
			return err
		}
		board = b
	default:
		return errors.New("unknown position command")
	}
	var piece, ok = board.SideToMove()
	if !ok {
		return fmt.Errorf("%w: bad piece count %v", common.ErrInvalidBoard, board)
	}
	if movesIndex >= 0 {
		for _, smove := range fields[movesIndex+1:] {
			if board.IsGameOver() {
				return fmt.Errorf("move %v after game over", smove)
			}
			var pos, err = common.ParseMoveCode(smove)
			if err != nil {
				return err
			}
			if err = board.MakeMove(pos, piece); err != nil {
				return err
			}
			piece = piece.Opponent()
		}
	}
	uci.board = board
	uci.piece = piece
	return nil
}

func (uci *Protocol) goCommand(fields []string) error {
	uci.thinking = true
	uci.engineOutput = make(chan searchOutput, 1)
	var params = common.SearchParams{
		Board: uci.board,
		Piece: uci.piece,
	}
	var output = uci.engineOutput
	go func() {
		var info, err = uci.engine.Search(context.Background(), params)
		output <- searchOutput{info: info, err: err}
	}()
	return nil
}

func (uci *Protocol) uciNewGameCommand(fields []string) error {
	uci.board = common.NewBoard()
	uci.piece = common.X
	return nil
}

func (uci *Protocol) showCommand(fields []string) error {
	fmt.Fprintf(uci.out, "board %v tomove %v\n", uci.board, uci.piece)
	return nil
}

func searchInfoToUci(si common.SearchInfo) string {
	var sb = &strings.Builder{}
	var timeMs = si.Time.Milliseconds()
	fmt.Fprintf(sb, "info score %v nodes %v time %v", si.Score, si.Nodes, timeMs)
	if len(si.Candidates) != 0 {
		fmt.Fprintf(sb, " candidates")
		for _, c := range si.Candidates {
			fmt.Fprintf(sb, " %v:%v", c.Move, c.Score)
		}
	}
	return sb.String()
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
