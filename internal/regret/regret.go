// Package regret implements regret matching over a fixed set of actions.
package regret

import (
	"github.com/timpalpant/go-rps/internal/f32"
)

// Matcher keeps a table of accumulated regrets and strategy weights for
// nActions actions. The current strategy plays each action in proportion
// to its positive accumulated regret.
type Matcher struct {
	currentStrategy []float32
	regretSum       []float32
	strategySum     []float32
	iter            int
}

// New returns a Matcher for nActions actions, starting from the uniform strategy.
func New(nActions int) *Matcher {
	m := &Matcher{
		currentStrategy: make([]float32, nActions),
		regretSum:       make([]float32, nActions),
		strategySum:     make([]float32, nActions),
	}
	m.Reset()
	return m
}

// Reset discards all accumulated regret.
func (m *Matcher) Reset() {
	f32.Fill(0, m.regretSum)
	f32.Fill(0, m.strategySum)
	f32.Fill(1.0/float32(len(m.currentStrategy)), m.currentStrategy)
	m.iter = 0
}

// Strategy returns the current strategy. The slice is owned by the Matcher.
func (m *Matcher) Strategy() []float32 {
	return m.currentStrategy
}

// Observe adds one round of instantaneous regrets and recomputes the
// current strategy. The strategy in effect for that round is added to
// the average with unit weight.
func (m *Matcher) Observe(instantaneousRegrets []float32) {
	f32.AxpyUnitary(1.0, m.currentStrategy, m.strategySum)
	f32.Add(m.regretSum, instantaneousRegrets)
	m.regretMatching()
	m.iter++
}

// Iter returns the number of observed rounds.
func (m *Matcher) Iter() int {
	return m.iter
}

// RegretSum returns the accumulated regrets. The slice is owned by the Matcher.
func (m *Matcher) RegretSum() []float32 {
	return m.regretSum
}

// AverageStrategy returns the average of the strategies played so far,
// or the uniform strategy before the first observation.
func (m *Matcher) AverageStrategy() []float32 {
	avgStrat := make([]float32, len(m.strategySum))

	total := f32.Sum(m.strategySum)
	if total > 0 {
		copy(avgStrat, m.strategySum)
		f32.ScalUnitary(1.0/total, avgStrat)
	} else {
		f32.Fill(1.0/float32(len(avgStrat)), avgStrat)
	}

	return avgStrat
}

func (m *Matcher) regretMatching() {
	f32.ClampNonNegative(m.currentStrategy, m.regretSum)
	total := f32.Sum(m.currentStrategy)
	if total > 0 {
		f32.ScalUnitary(1.0/total, m.currentStrategy)
	} else {
		f32.Fill(1.0/float32(len(m.currentStrategy)), m.currentStrategy)
	}
}
