package bots

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/timpalpant/go-rps"
)

func playMoves(t *testing.T, b Bot, prevs []rps.Move) []rps.Move {
	b.OnMatchStart()
	result := make([]rps.Move, 0, len(prevs))
	for _, prev := range prevs {
		m, err := b.ChooseMove(prev)
		if err != nil {
			t.Fatal(err)
		}

		if !m.IsValid() {
			t.Fatalf("%s played invalid move %v", b.Name(), m)
		}

		result = append(result, m)
	}

	return result
}

func TestCycle(t *testing.T) {
	c := NewCycle("c", rps.Rock, rps.Scissors)
	got := playMoves(t, c, make([]rps.Move, 5))
	expected := []rps.Move{rps.Rock, rps.Scissors, rps.Rock, rps.Scissors, rps.Rock}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("move %d: expected %v, got %v", i, expected[i], got[i])
		}
	}

	if m := playMoves(t, c, make([]rps.Move, 1)); m[0] != rps.Rock {
		t.Errorf("expected OnMatchStart to rewind the cycle, got %v", m[0])
	}
}

func TestBeatLastAndCopycat(t *testing.T) {
	prevs := []rps.Move{rps.None, rps.Rock, rps.Scissors}

	beat := playMoves(t, BeatLast{}, prevs)
	if beat[0] != rps.Rock || beat[1] != rps.Paper || beat[2] != rps.Rock {
		t.Errorf("unexpected beat-last moves: %v", beat)
	}

	copied := playMoves(t, Copycat{}, prevs)
	if copied[0] != rps.Rock || copied[1] != rps.Rock || copied[2] != rps.Scissors {
		t.Errorf("unexpected copycat moves: %v", copied)
	}
}

func TestBiased_ReplaysPerMatch(t *testing.T) {
	b := NewRandom(42)
	first := playMoves(t, b, make([]rps.Move, 20))
	second := playMoves(t, b, make([]rps.Move, 20))
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical sequences for the same seed, got %v and %v", first, second)
		}
	}
}

func TestBiased_Weights(t *testing.T) {
	b := &Biased{Label: "only-paper", Weights: [rps.NumMoves]float64{0, 1, 0}, Seed: 7}
	for i, m := range playMoves(t, b, make([]rps.Move, 50)) {
		if m != rps.Paper {
			t.Errorf("move %d: expected Paper, got %v", i, m)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		b, err := ByName(name, 1)
		if err != nil {
			t.Fatal(err)
		}

		if b.Name() != name {
			t.Errorf("expected name %q, got %q", name, b.Name())
		}

		playMoves(t, b, []rps.Move{rps.None, rps.Paper, rps.Rock})
	}

	if _, err := ByName("lizard", 1); errors.Cause(err) != ErrUnknownBot {
		t.Errorf("expected ErrUnknownBot, got %v", err)
	}
}
