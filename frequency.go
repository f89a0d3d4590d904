package rps

// Mode returns the most frequent move in moves. Ties go to the earliest of
// Rock, Paper, Scissors. It abstains on an empty sequence.
func Mode(moves []Move) (Move, bool) {
	var counts [NumMoves]int
	for _, m := range moves {
		counts[m.index()]++
	}

	return argmax(counts)
}

// argmax returns the move with the highest count, preferring Rock, then
// Paper, then Scissors on ties. Only a strictly greater count displaces the
// current best, which is what fixes the tie order.
func argmax(counts [NumMoves]int) (Move, bool) {
	best, bestCount, total := 0, counts[0], counts[0]
	for i := 1; i < NumMoves; i++ {
		total += counts[i]
		if counts[i] > bestCount {
			best, bestCount = i, counts[i]
		}
	}

	if total == 0 {
		return None, false
	}

	return Moves[best], true
}

// Frequency predicts the globally most frequent move.
type Frequency struct {
	// OverOwn counts the agent's own moves instead of the opponent's.
	OverOwn bool
}

// Name implements Estimator.
func (f Frequency) Name() string {
	if f.OverOwn {
		return "frequency-own"
	}

	return "frequency"
}

// Predict implements Estimator.
func (f Frequency) Predict(s *State) (Move, bool) {
	if f.OverOwn {
		return Mode(s.Own())
	}

	return Mode(s.Opponent())
}
