package rps

import (
	"testing"
)

// stateOf returns a match state in which the opponent has played moves.
func stateOf(moves ...Move) *State {
	s := NewState(len(moves), AwareNever)
	for _, m := range moves {
		s.RecordOpponent(m)
	}

	return s
}

func TestMode(t *testing.T) {
	cases := []struct {
		moves    []Move
		expected Move
	}{
		{[]Move{Scissors, Paper, Paper, Scissors}, Paper},
		{[]Move{Scissors, Scissors, Paper, Paper}, Paper},
		{[]Move{Paper, Scissors, Rock}, Rock},
		{[]Move{Scissors}, Scissors},
		{[]Move{Scissors, Scissors, Rock}, Scissors},
	}

	for _, tc := range cases {
		got, ok := Mode(tc.moves)
		if !ok || got != tc.expected {
			t.Errorf("Mode(%v): expected %v, got %v (ok=%t)", tc.moves, tc.expected, got, ok)
		}
	}

	if _, ok := Mode(nil); ok {
		t.Error("expected Mode to abstain on an empty sequence")
	}
}

func TestMode_IsMaximal(t *testing.T) {
	seqs := [][]Move{
		{Rock, Paper, Paper, Scissors, Scissors, Scissors},
		{Paper, Rock, Scissors, Paper, Rock},
		{Scissors, Rock, Rock, Scissors},
	}

	for _, seq := range seqs {
		m, _ := Mode(seq)
		counts := make(map[Move]int)
		for _, x := range seq {
			counts[x]++
		}

		for _, other := range Moves {
			if counts[other] > counts[m] {
				t.Errorf("Mode(%v) = %v, but %v is more frequent", seq, m, other)
			}
		}
	}
}

func TestFrequency_OverOwn(t *testing.T) {
	s := stateOf(Rock, Rock)
	s.RecordOwn(Scissors)

	if m, ok := (Frequency{OverOwn: true}).Predict(s); !ok || m != Scissors {
		t.Errorf("expected Scissors from own moves, got %v (ok=%t)", m, ok)
	}

	if m, _ := (Frequency{}).Predict(s); m != Rock {
		t.Errorf("expected Rock from opponent moves, got %v", m)
	}
}

func TestMarkov_FollowsTransitions(t *testing.T) {
	// Paper is always followed by Scissors, even though Rock is the
	// most frequent move overall.
	s := stateOf(Rock, Rock, Rock, Paper, Scissors, Rock, Paper)
	m, ok := Markov{}.Predict(s)
	if !ok || m != Scissors {
		t.Errorf("expected Scissors after Paper, got %v (ok=%t)", m, ok)
	}
}

func TestMarkov_SingleTransition(t *testing.T) {
	s := stateOf(Scissors, Paper, Scissors)
	if m, _ := (Markov{}).Predict(s); m != Paper {
		t.Errorf("expected Paper after Scissors, got %v", m)
	}
}

func TestMarkov_FallsBackToFrequency(t *testing.T) {
	if _, ok := (Markov{}).Predict(stateOf()); ok {
		t.Error("expected Markov to abstain with no history")
	}

	// Scissors has never been followed by anything.
	s := stateOf(Paper, Paper, Scissors)
	if m, ok := (Markov{}).Predict(s); !ok || m != Paper {
		t.Errorf("expected fallback to Paper, got %v (ok=%t)", m, ok)
	}
}

func TestPattern_PrefersLongestContext(t *testing.T) {
	s := stateOf(Rock, Paper, Rock, Paper, Rock, Paper)
	if m, ok := (Pattern{MaxLength: 2}).Predict(s); !ok || m != Rock {
		t.Errorf("expected Rock, got %v (ok=%t)", m, ok)
	}

	if m, _ := (Pattern{}).Predict(s); m != Rock {
		t.Errorf("expected Rock with default length, got %v", m)
	}

	// Length 2 context (Rock, Rock) was followed by Paper, but a single
	// Rock was followed by Rock more often.
	s = stateOf(Rock, Rock, Paper, Paper, Rock, Rock)
	if m, _ := (Pattern{MaxLength: 2}).Predict(s); m != Paper {
		t.Errorf("expected Paper from length-2 context, got %v", m)
	}

	if m, _ := (Pattern{MaxLength: 1}).Predict(s); m != Rock {
		t.Errorf("expected Rock from length-1 context, got %v", m)
	}
}

func TestMatchSuffix(t *testing.T) {
	cases := []struct {
		history  []Move
		expected Move
		ok       bool
	}{
		{nil, None, false},
		{[]Move{Rock}, None, false},
		{[]Move{Rock, Paper}, None, false},
		{[]Move{Rock, Rock}, Rock, true},
		{[]Move{Rock, Paper, Scissors, Rock, Paper}, Scissors, true},
		{[]Move{Rock, Paper, Scissors}, None, false},
	}

	for _, tc := range cases {
		got, ok := MatchSuffix(tc.history, DefaultMaxPatternLength)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("MatchSuffix(%v): expected %v (ok=%t), got %v (ok=%t)",
				tc.history, tc.expected, tc.ok, got, ok)
		}
	}
}

func TestDeterministic_Commits(t *testing.T) {
	s := stateOf(Rock, Paper, Rock, Scissors, Rock, Paper, Rock)
	m, ok := Deterministic{}.Predict(s)
	if !ok || m != Scissors {
		t.Errorf("expected Scissors, got %v (ok=%t)", m, ok)
	}

	if !s.Deterministic() {
		t.Error("expected the match to be marked deterministic")
	}
}

func TestDeterministic_AbstainsOnDisagreement(t *testing.T) {
	// Rock is followed by Rock most of the time, but not always, at
	// every state length.
	s := stateOf(Rock, Rock, Rock, Paper, Rock, Rock, Rock, Scissors, Rock, Rock, Rock)
	if m, ok := (Deterministic{}).Predict(s); ok {
		t.Errorf("expected abstention, got %v", m)
	}

	if s.Deterministic() {
		t.Error("match should not be marked deterministic")
	}

	// Pattern is willing to guess on the same history.
	if _, ok := (Pattern{}).Predict(s); !ok {
		t.Error("expected Pattern to predict")
	}
}

func TestFindRule(t *testing.T) {
	cases := []struct {
		history  []Move
		expected Move
		ok       bool
	}{
		{nil, None, false},
		{[]Move{Rock}, None, false},
		{[]Move{Rock, Paper, Rock}, Paper, true},
		{[]Move{Rock, Paper, Rock, Scissors, Rock, Paper, Rock, Scissors, Rock, Paper, Rock, Paper, Rock}, None, false},
	}

	for _, tc := range cases {
		got, ok := FindRule(tc.history, DefaultMaxStateLength)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("FindRule(%v): expected %v (ok=%t), got %v (ok=%t)",
				tc.history, tc.expected, tc.ok, got, ok)
		}
	}
}

func TestWinStay(t *testing.T) {
	s := NewState(0, AwareNever)
	if m := NextWinStay(s); m != Rock {
		t.Errorf("expected Rock anchor, got %v", m)
	}

	cases := []struct {
		own, opponent Move
		aware         Awareness
		expected      Move
	}{
		{Rock, Scissors, AwareNever, Scissors},  // win
		{Scissors, Scissors, AwareNever, Paper}, // draw counts as a win
		{Paper, Scissors, AwareNever, Rock},     // loss, not aware
		{Rock, Paper, AwareAlways, Paper},       // loss, aware: reverse cycle
		{Paper, Scissors, AwareAlways, Scissors},
		{Scissors, Rock, AwareAlways, Rock},
		{Paper, Rock, AwareAlways, Rock}, // win while aware
	}

	for _, tc := range cases {
		s := NewState(0, tc.aware)
		s.RecordOwn(tc.own)
		s.RecordOpponent(tc.opponent)
		if got := NextWinStay(s); got != tc.expected {
			t.Errorf("%v vs %v (%v): expected %v, got %v", tc.own, tc.opponent, tc.aware, tc.expected, got)
		}

		m, ok := WinStay{}.Predict(s)
		if !ok || Counter(m) != tc.expected {
			t.Errorf("WinStay prediction %v does not counter to %v", m, tc.expected)
		}
	}
}
