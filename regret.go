package rps

import (
	"github.com/golang/glog"

	"github.com/timpalpant/go-rps/internal/regret"
)

// RegretPolicy arbitrates among a set of estimators by regret matching.
//
// After each reveal, every estimator that predicted last round is scored
// by the payoff its counter-move would have earned against the revealed
// move; its regret is that payoff minus the payoff of the move actually
// played. Each round the policy follows the non-abstaining estimator with
// the largest regret-matched weight, ties going to the earlier estimator.
// There is no sampling, so play is deterministic.
type RegretPolicy struct {
	estimators []Estimator
	matcher    *regret.Matcher

	// Predictions made for the round awaiting its reveal.
	predictions []Move
	predicted   []bool
	pending     bool
	seen        int // len(s.Opponent()) when predictions were made
	regrets     []float32
}

// NewRegretPolicy returns a RegretPolicy over the given estimators.
func NewRegretPolicy(estimators ...Estimator) *RegretPolicy {
	n := len(estimators)
	return &RegretPolicy{
		estimators:  estimators,
		matcher:     regret.New(n),
		predictions: make([]Move, n),
		predicted:   make([]bool, n),
		regrets:     make([]float32, n),
	}
}

// Name implements Estimator.
func (p *RegretPolicy) Name() string { return RegretMatching.String() }

// Predict implements Estimator.
func (p *RegretPolicy) Predict(s *State) (Move, bool) {
	p.observe(s)

	for i, e := range p.estimators {
		p.predictions[i], p.predicted[i] = e.Predict(s)
	}
	p.pending = true
	p.seen = len(s.Opponent())

	weights := p.matcher.Strategy()
	best := -1
	for i := range p.estimators {
		if !p.predicted[i] {
			continue
		}

		if best < 0 || weights[i] > weights[best] {
			best = i
		}
	}

	if best < 0 {
		return None, false
	}

	if glog.V(3) {
		glog.Infof("Round %d: following %s (weight %.3f) -> %v",
			s.Round, p.estimators[best].Name(), weights[best], p.predictions[best])
	}

	return p.predictions[best], true
}

// observe scores last round's predictions once its reveal has arrived.
func (p *RegretPolicy) observe(s *State) {
	opponent := s.Opponent()
	if !p.pending || len(opponent) == p.seen {
		return
	}

	revealed := opponent[len(opponent)-1]
	played := Play(s.LastOwn(), revealed).Payoff()
	for i := range p.regrets {
		p.regrets[i] = 0
		if p.predicted[i] {
			p.regrets[i] = Play(Counter(p.predictions[i]), revealed).Payoff() - played
		}
	}

	p.matcher.Observe(p.regrets)
	p.pending = false
}

// Weights returns the current regret-matched weight of each estimator.
func (p *RegretPolicy) Weights() map[string]float32 {
	weights := p.matcher.Strategy()
	result := make(map[string]float32, len(weights))
	for i, e := range p.estimators {
		result[e.Name()] = weights[i]
	}

	return result
}

// Reset implements Policy.
func (p *RegretPolicy) Reset() {
	p.matcher.Reset()
	p.pending = false
	p.seen = 0
	for i := range p.predicted {
		p.predicted[i] = false
		p.predictions[i] = None
	}
}
