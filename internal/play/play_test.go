package play

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/ChizhovVadim/CounterXO/pkg/engine"
)

func TestPlayPvP(t *testing.T) {
	var in = strings.NewReader("7\nabc\n7\n4\n8\n5\n9\n")
	var out bytes.Buffer
	if err := PlayPvP(in, &out); err != nil {
		t.Fatal(err)
	}
	var s = out.String()
	for _, want := range []string{
		"Player X, enter your move [1..9]:",
		"Invalid input, try again.",
		"Invalid move, try again.",
		"XXX",
		"Player X wins!",
	} {
		if !strings.Contains(s, want) {
			t.Error(want, s)
		}
	}
}

func TestPlayPvPDraw(t *testing.T) {
	var in = strings.NewReader("5\n7\n9\n1\n4\n6\n8\n2\n3\n")
	var out bytes.Buffer
	if err := PlayPvP(in, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Game over! It's a draw!") {
		t.Error(out.String())
	}
}

func TestPlayPvPQuit(t *testing.T) {
	var out bytes.Buffer
	if err := PlayPvP(strings.NewReader("5\nquit\n"), &out); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "wins") {
		t.Error(out.String())
	}
}

func TestPlayPvCNeverLoses(t *testing.T) {
	var input = strings.Repeat("1\n2\n3\n4\n5\n6\n7\n8\n9\n", 9)
	for seed := int64(0); seed < 4; seed++ {
		var out bytes.Buffer
		var eng = engine.NewEngine(engine.NewOptions())
		var err = PlayPvC(strings.NewReader(input), &out, rand.New(rand.NewSource(seed)), eng)
		if err != nil {
			t.Fatal(err)
		}
		var s = out.String()
		if strings.Contains(s, "Player X wins!") || strings.Contains(s, "Player O wins!") {
			t.Error(seed, s)
		}
		if !strings.Contains(s, "Computer wins!") && !strings.Contains(s, "It's a draw!") {
			t.Error(seed, s)
		}
		if !strings.Contains(s, "Computer chose position") {
			t.Error(seed, s)
		}
	}
}
