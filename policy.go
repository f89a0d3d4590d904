package rps

import (
	"github.com/pkg/errors"
)

// NewPolicy builds the Policy selected by params.
func NewPolicy(params Params) (Policy, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	params = params.withDefaults()
	pattern := Pattern{MaxLength: params.MaxPatternLength}
	deterministic := Deterministic{MaxLength: params.MaxStateLength}

	switch params.Policy {
	case RoundRobin:
		return &RoundRobinPolicy{Pattern: pattern}, nil
	case PriorityFallback:
		var first Estimator = deterministic
		if params.PreferLongestPattern {
			first = pattern
		}

		return NewPriorityPolicy(first, Frequency{OverOwn: true}), nil
	case WinStayLoseShift:
		p := &WinStayPolicy{}
		if params.Awareness == AwareOnDeterministic {
			p.Probe = deterministic
		}

		return p, nil
	case RegretMatching:
		return NewRegretPolicy(Frequency{}, Markov{}, pattern, deterministic, WinStay{}), nil
	}

	return nil, errors.Wrapf(ErrInvalidConfig, "policy %v", params.Policy)
}

// PriorityPolicy consults its estimators in order and returns the first
// prediction; it abstains only if all of them do.
type PriorityPolicy struct {
	estimators []Estimator
}

// NewPriorityPolicy returns a PriorityPolicy over the given estimators.
func NewPriorityPolicy(estimators ...Estimator) *PriorityPolicy {
	return &PriorityPolicy{estimators: estimators}
}

// Name implements Estimator.
func (p *PriorityPolicy) Name() string { return PriorityFallback.String() }

// Predict implements Estimator.
func (p *PriorityPolicy) Predict(s *State) (Move, bool) {
	for _, e := range p.estimators {
		if m, ok := e.Predict(s); ok {
			return m, true
		}
	}

	return None, false
}

// Reset implements Policy.
func (p *PriorityPolicy) Reset() {}

// WinStayPolicy plays WinStay alone.
type WinStayPolicy struct {
	// Probe, if set, is consulted every round before WinStay and its
	// prediction discarded. It lets Deterministic latch the match's
	// awareness trigger.
	Probe Estimator
}

// Name implements Estimator.
func (p *WinStayPolicy) Name() string { return WinStayLoseShift.String() }

// Predict implements Estimator.
func (p *WinStayPolicy) Predict(s *State) (Move, bool) {
	if p.Probe != nil {
		p.Probe.Predict(s)
	}

	return WinStay{}.Predict(s)
}

// Reset implements Policy.
func (p *WinStayPolicy) Reset() {}
