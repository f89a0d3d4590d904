package rps

import (
	"github.com/pkg/errors"
)

// ErrInvalidConfig is the cause of errors returned for bad Params or
// match parameters.
var ErrInvalidConfig = errors.New("invalid configuration")

// PolicyKind selects the strategy used to pick the prediction each round.
type PolicyKind int

const (
	// RoundRobin rotates Markov, Pattern and a Markov/Pattern agreement
	// check on the round number modulo 3.
	RoundRobin PolicyKind = iota
	// PriorityFallback tries Deterministic, then Frequency over our own moves.
	PriorityFallback
	// WinStayLoseShift plays the WinStay meta-heuristic alone.
	WinStayLoseShift
	// RegretMatching follows whichever estimator has the highest
	// regret-matched weight over the match so far.
	RegretMatching
)

var policyKindStr = [...]string{
	"round-robin",
	"priority",
	"win-stay",
	"regret",
}

func (k PolicyKind) String() string {
	if k < 0 || int(k) >= len(policyKindStr) {
		return "unknown"
	}

	return policyKindStr[k]
}

// ParsePolicyKind returns the PolicyKind with the given String().
func ParsePolicyKind(name string) (PolicyKind, error) {
	for i, s := range policyKindStr {
		if s == name {
			return PolicyKind(i), nil
		}
	}

	return 0, errors.Wrapf(ErrInvalidConfig, "unknown policy %q", name)
}

// Awareness selects when the opponent is considered to know our
// win-stay/lose-shift scheme, which flips WinStay's response to a loss.
type Awareness int

const (
	AwareNever Awareness = iota
	AwareAlways
	// AwareOnDeterministic latches once Deterministic commits in a match.
	AwareOnDeterministic
)

var awarenessStr = [...]string{
	"never",
	"always",
	"on-deterministic",
}

func (a Awareness) String() string {
	if a < 0 || int(a) >= len(awarenessStr) {
		return "unknown"
	}

	return awarenessStr[a]
}

// ParseAwareness returns the Awareness with the given String().
func ParseAwareness(name string) (Awareness, error) {
	for i, s := range awarenessStr {
		if s == name {
			return Awareness(i), nil
		}
	}

	return 0, errors.Wrapf(ErrInvalidConfig, "unknown awareness %q", name)
}

// Params are the configuration options of an Engine. An empty Params
// struct is valid and reproduces the round-robin predictor with a
// maximum pattern length of 5 and a maximum state length of 3.
type Params struct {
	Policy    PolicyKind
	Awareness Awareness

	MaxPatternLength int // Pattern suffix bound (default 5)
	MaxStateLength   int // Deterministic state bound (default 3)

	// PreferLongestPattern makes PriorityFallback try Pattern instead of
	// Deterministic first.
	PreferLongestPattern bool

	// DefaultMove is played when every estimator abstains (default Rock).
	DefaultMove Move
}

// Validate checks that all fields hold known values.
func (p Params) Validate() error {
	if p.Policy < RoundRobin || p.Policy > RegretMatching {
		return errors.Wrapf(ErrInvalidConfig, "policy %d", int(p.Policy))
	}

	if p.Awareness < AwareNever || p.Awareness > AwareOnDeterministic {
		return errors.Wrapf(ErrInvalidConfig, "awareness %d", int(p.Awareness))
	}

	if p.MaxPatternLength < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max pattern length %d", p.MaxPatternLength)
	}

	if p.MaxStateLength < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max state length %d", p.MaxStateLength)
	}

	if p.DefaultMove != None && !p.DefaultMove.IsValid() {
		return errors.Wrapf(ErrInvalidConfig, "default move %v", p.DefaultMove)
	}

	return nil
}

func (p Params) withDefaults() Params {
	if p.MaxPatternLength == 0 {
		p.MaxPatternLength = DefaultMaxPatternLength
	}

	if p.MaxStateLength == 0 {
		p.MaxStateLength = DefaultMaxStateLength
	}

	if p.DefaultMove == None {
		p.DefaultMove = Rock
	}

	return p
}
