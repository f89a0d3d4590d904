package rps

// Estimator predicts the opponent's next move from the state of a match.
//
// Predict returns ok == false to abstain when it has too little information.
// Abstaining is never an error; callers are expected to fall back to
// another Estimator or to a default move.
type Estimator interface {
	Name() string
	Predict(s *State) (m Move, ok bool)
}

// Policy selects, each round, which Estimators are consulted and how their
// predictions are combined. A Policy is itself an Estimator, so policies
// may be nested.
//
// Policies may keep per-match state; Reset discards it.
type Policy interface {
	Estimator
	Reset()
}

// State is the per-match state visible to estimators.
type State struct {
	*History

	// Round is the 1-based number of the round being decided.
	// It counts every ChooseMove call, including ones without a reveal.
	Round int

	awareness     Awareness
	deterministic bool
}

// NewState returns the state of a fresh match.
func NewState(capacity int, awareness Awareness) *State {
	return &State{
		History:   NewHistory(capacity),
		awareness: awareness,
	}
}

// OpponentAware reports whether the opponent is considered to have worked
// out our win-stay/lose-shift scheme.
func (s *State) OpponentAware() bool {
	switch s.awareness {
	case AwareAlways:
		return true
	case AwareOnDeterministic:
		return s.deterministic
	}

	return false
}

// Deterministic reports whether the deterministic rule estimator has
// committed to a prediction at any point during this match.
func (s *State) Deterministic() bool {
	return s.deterministic
}

func (s *State) markDeterministic() {
	s.deterministic = true
}
