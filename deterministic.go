package rps

// DefaultMaxStateLength bounds the state length used by Deterministic.
const DefaultMaxStateLength = 3

// Deterministic looks for a fixed rule "after these s moves the opponent
// always plays X". It only commits when every earlier occurrence of the
// current state was followed by the same move, so it is strictly more
// conservative than Pattern.
//
// When it commits it marks the match as deterministic, which the win-stay
// policy may use as its awareness trigger.
type Deterministic struct {
	// MaxLength bounds the state length. Zero means DefaultMaxStateLength.
	MaxLength int
}

// Name implements Estimator.
func (Deterministic) Name() string { return "deterministic" }

// Predict implements Estimator.
func (d Deterministic) Predict(s *State) (Move, bool) {
	maxLen := d.MaxLength
	if maxLen <= 0 {
		maxLen = DefaultMaxStateLength
	}

	m, ok := FindRule(s.Opponent(), maxLen)
	if ok {
		s.markDeterministic()
	}

	return m, ok
}

// inconsistent marks a state that has been followed by more than one move.
const inconsistent = None

// FindRule returns the successor of the current trailing state of history,
// trying state lengths from maxLen down to 1, for the first length at
// which that state has only ever been followed by a single move.
func FindRule(history []Move, maxLen int) (Move, bool) {
	n := len(history)
	l := n - 1
	if maxLen < l {
		l = maxLen
	}

	for ; l >= 1; l-- {
		rules := make(map[string]Move, n-l)
		for i := 0; i < n-l; i++ {
			key := stateKey(history[i : i+l])
			next := history[i+l]
			if prev, seen := rules[key]; !seen {
				rules[key] = next
			} else if prev != next {
				rules[key] = inconsistent
			}
		}

		if m, ok := rules[stateKey(history[n-l:])]; ok && m != inconsistent {
			return m, true
		}
	}

	return None, false
}

// stateKey encodes a run of moves as a string usable as a map key.
func stateKey(moves []Move) string {
	buf := make([]byte, len(moves))
	for i, m := range moves {
		buf[i] = byte('0' + m)
	}

	return string(buf)
}
