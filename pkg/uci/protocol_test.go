package uci

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ChizhovVadim/CounterXO/pkg/engine"
)

func runProtocol(t *testing.T, input string) (string, *observer.ObservedLogs, *engine.Engine) {
	t.Helper()
	var core, logs = observer.New(zapcore.DebugLevel)
	var eng = engine.NewEngine(engine.NewOptions())
	var out bytes.Buffer
	var protocol = New("Counter", "test", "dev", eng,
		[]Option{
			&IntOption{Name: "Threads", Min: 0, Max: 64, Value: &eng.Options.Threads},
			&BoolOption{Name: "Parallel", Value: &eng.Options.Parallel},
		},
		strings.NewReader(input), &out)
	protocol.Run(zap.New(core).Sugar())
	return out.String(), logs, eng
}

func TestHandshake(t *testing.T) {
	var out, logs, _ = runProtocol(t, "uci\nisready\nquit\n")
	for _, want := range []string{
		"id name Counter dev",
		"option name Threads type spin default 0 min 0 max 64",
		"option name Parallel type check default false",
		"uciok",
		"readyok",
	} {
		if !strings.Contains(out, want) {
			t.Error(want, out)
		}
	}
	if logs.Len() != 0 {
		t.Error(logs.All())
	}
}

func TestBlockAfterMoves(t *testing.T) {
	var out, logs, eng = runProtocol(t,
		"setoption name Parallel value true\nsetoption name Threads value 2\nposition startpos moves 7 5 9\ngo\n")
	if !eng.Options.Parallel || eng.Options.Threads != 2 {
		t.Error(eng.Options)
	}
	if !strings.Contains(out, "bestmove 8\n") {
		t.Error(out)
	}
	if logs.Len() != 0 {
		t.Error(logs.All())
	}
}

func TestWinFromBoard(t *testing.T) {
	var out, _, _ = runProtocol(t, "position board XX./OO./X..\nshow\ngo\n")
	if !strings.Contains(out, "board XX./OO./X.. tomove O") {
		t.Error(out)
	}
	if !strings.Contains(out, "bestmove 6\n") {
		t.Error(out)
	}
}

func TestBadCommands(t *testing.T) {
	var out, logs, _ = runProtocol(t, strings.Join([]string{
		"hello",
		"position board XXX/.../...",
		"position startpos moves 7 7",
		"position fen abc",
		"setoption name Threads value 100",
		"setoption name Hash value 1",
	}, "\n"))
	if out != "" {
		t.Error(out)
	}
	if logs.FilterMessage("command failed").Len() != 6 {
		t.Error(logs.All())
	}
}

func TestSearchOnFinishedGame(t *testing.T) {
	var out, logs, _ = runProtocol(t, "position startpos moves 7 4 8 5 9\ngo\n")
	if !strings.Contains(out, "bestmove (none)") {
		t.Error(out)
	}
	if logs.FilterMessage("search failed").Len() != 1 {
		t.Error(logs.All())
	}
}
