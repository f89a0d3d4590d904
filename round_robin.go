package rps

// RoundRobinPolicy rotates three predictors on the round number:
//
//	round % 3 == 0: Markov
//	round % 3 == 1: Pattern, falling back to Frequency
//	round % 3 == 2: Markov if it agrees with Pattern (with fallback), else Frequency
type RoundRobinPolicy struct {
	Markov  Markov
	Pattern Pattern
}

// Name implements Estimator.
func (p *RoundRobinPolicy) Name() string { return RoundRobin.String() }

// Predict implements Estimator.
func (p *RoundRobinPolicy) Predict(s *State) (Move, bool) {
	switch s.Round % 3 {
	case 0:
		return p.Markov.Predict(s)
	case 1:
		return p.patternOrFrequency(s)
	}

	markov, markovOk := p.Markov.Predict(s)
	pattern, patternOk := p.patternOrFrequency(s)
	if markovOk && patternOk && markov == pattern {
		return markov, true
	}

	return Mode(s.Opponent())
}

func (p *RoundRobinPolicy) patternOrFrequency(s *State) (Move, bool) {
	if m, ok := p.Pattern.Predict(s); ok {
		return m, true
	}

	return Mode(s.Opponent())
}

// Reset implements Policy.
func (p *RoundRobinPolicy) Reset() {}
