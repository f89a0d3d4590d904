package rps

// Markov models the opponent as a first-order Markov chain: it predicts the
// most common follower of the opponent's last move in the transition table.
//
// Without a last move, or when that move has never been followed by
// anything, it falls back to Frequency over the opponent's moves.
type Markov struct{}

// Name implements Estimator.
func (Markov) Name() string { return "markov" }

// Predict implements Estimator.
func (Markov) Predict(s *State) (Move, bool) {
	last := s.LastOpponent()
	if last == None {
		return Mode(s.Opponent())
	}

	if m, ok := argmax(s.Transitions().Row(last)); ok {
		return m, true
	}

	return Mode(s.Opponent())
}
