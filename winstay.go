package rps

// WinStay is the win-stay/lose-shift meta-heuristic. It ignores opponent
// statistics and only looks at the outcome of the previous round:
//
//	first round:     play Rock
//	win or draw:     Rock -> Scissors -> Paper -> Rock
//	loss, aware:     Rock -> Paper -> Scissors -> Rock
//	loss, not aware: same as a win
//
// "Aware" is State.OpponentAware. WinStay chooses our own move, so to fit
// the Estimator interface it predicts the move that the chosen move beats;
// Counter of the prediction is then the chosen move.
type WinStay struct{}

// Name implements Estimator.
func (WinStay) Name() string { return "win-stay" }

// Predict implements Estimator. It never abstains.
func (WinStay) Predict(s *State) (Move, bool) {
	return NextWinStay(s).Beats(), true
}

// NextWinStay returns the move WinStay wants to play this round.
func NextWinStay(s *State) Move {
	last := s.LastOwn()
	if last == None {
		return Rock
	}

	// An unknown outcome (missed reveal) is treated like a draw.
	if outcome, ok := s.LastOutcome(); ok && outcome == Loss && s.OpponentAware() {
		return Counter(last)
	}

	return last.Beats()
}
