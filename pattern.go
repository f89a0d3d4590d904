package rps

// DefaultMaxPatternLength bounds the suffix length searched by Pattern.
const DefaultMaxPatternLength = 5

// Pattern finds the longest suffix of the opponent's moves that occurred
// earlier in the match and predicts the move that most often followed it.
//
// Longer contexts are tried first; the first length with any earlier
// occurrence decides, shorter contexts are not consulted.
type Pattern struct {
	// MaxLength bounds the suffix length. Zero means DefaultMaxPatternLength.
	MaxLength int
}

// Name implements Estimator.
func (Pattern) Name() string { return "pattern" }

// Predict implements Estimator.
func (p Pattern) Predict(s *State) (Move, bool) {
	return MatchSuffix(s.Opponent(), p.maxLength())
}

func (p Pattern) maxLength() int {
	if p.MaxLength <= 0 {
		return DefaultMaxPatternLength
	}

	return p.MaxLength
}

// MatchSuffix runs the suffix search over history with suffixes of at most
// maxLen moves.
func MatchSuffix(history []Move, maxLen int) (Move, bool) {
	n := len(history)
	l := n - 1
	if maxLen < l {
		l = maxLen
	}

	for ; l >= 1; l-- {
		suffix := history[n-l:]
		var followers [NumMoves]int
		// Windows start before n-l so that every match has a follower;
		// the suffix itself is the trailing, unterminated occurrence.
		for i := 0; i < n-l; i++ {
			if equalMoves(history[i:i+l], suffix) {
				followers[history[i+l].index()]++
			}
		}

		if m, ok := argmax(followers); ok {
			return m, true
		}
	}

	return None, false
}

func equalMoves(a, b []Move) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
