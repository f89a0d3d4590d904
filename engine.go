package rps

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Engine plays one match at a time against a single opponent. Each call to
// ChooseMove reveals the opponent's previous move and returns ours for the
// current round.
//
// An Engine is not safe for concurrent use. Concurrent matches each need
// their own Engine; engines share no state.
type Engine struct {
	params Params
	policy Policy

	maxRounds  int
	winsPerSet int

	state *State
}

// Summary describes a finished (or abandoned) match.
type Summary struct {
	Policy        string
	Rounds        int
	Revealed      int
	Wins          int
	Draws         int
	Losses        int
	Deterministic bool
}

// NewEngine returns an Engine ready to play a match with the given parameters.
func NewEngine(params Params) (*Engine, error) {
	policy, err := NewPolicy(params)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		params: params.withDefaults(),
		policy: policy,
	}
	e.reset()
	return e, nil
}

// Name returns the name of the engine's policy.
func (e *Engine) Name() string {
	return e.policy.Name()
}

// Params returns the parameters with defaults filled in.
func (e *Engine) Params() Params {
	return e.params
}

// ConfigureMatch sets the parameters of the next match and resets all
// match state. maxRounds is used as a capacity hint; zero means unknown.
func (e *Engine) ConfigureMatch(maxRounds, winsPerSet int) error {
	if maxRounds < 0 || winsPerSet < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max rounds %d, wins per set %d", maxRounds, winsPerSet)
	}

	e.maxRounds = maxRounds
	e.winsPerSet = winsPerSet
	e.reset()
	glog.V(1).Infof("Configured %s match: max rounds=%d, wins per set=%d",
		e.policy.Name(), maxRounds, winsPerSet)
	return nil
}

// OnMatchStart resets all match state. Afterwards the Engine behaves
// exactly like a freshly configured one.
func (e *Engine) OnMatchStart() {
	e.reset()
	glog.V(1).Infof("Starting %s match", e.policy.Name())
}

// OnMatchEnd logs and returns a summary of the match just played.
// The match state is kept until the next OnMatchStart or ConfigureMatch.
func (e *Engine) OnMatchEnd() Summary {
	s := e.Summary()
	glog.V(1).Infof("Finished %s match: %d rounds, %d-%d-%d (W-D-L)",
		s.Policy, s.Rounds, s.Wins, s.Draws, s.Losses)
	return s
}

// Summary returns the record of the current match so far.
func (e *Engine) Summary() Summary {
	wins, draws, losses := e.state.Tally()
	return Summary{
		Policy:        e.policy.Name(),
		Rounds:        e.state.Round,
		Revealed:      len(e.state.Opponent()),
		Wins:          wins,
		Draws:         draws,
		Losses:        losses,
		Deterministic: e.state.Deterministic(),
	}
}

// ChooseMove records the opponent's previous move and returns our move for
// the current round. prev is None when there is no previous move (the first
// round, or a round whose result the host did not report).
//
// Every call advances the match by one round. A prev outside
// {None, Rock, Paper, Scissors} is rejected with an error whose cause is
// ErrInvalidMove, and the match does not advance.
func (e *Engine) ChooseMove(prev Move) (Move, error) {
	if prev != None && !prev.IsValid() {
		return None, errors.Wrapf(ErrInvalidMove, "round %d: previous opponent move %d", e.state.Round+1, int(prev))
	}

	s := e.state
	if prev != None {
		s.RecordOpponent(prev)
	} else if s.Round > 0 {
		s.MissedReveal()
	}

	s.Round++
	own := e.params.DefaultMove
	predicted, ok := e.policy.Predict(s)
	if ok {
		own = Counter(predicted)
	}

	s.RecordOwn(own)
	if glog.V(2) {
		glog.Infof("Round %d: opponent played %v, predicted %v (ok=%t), playing %v",
			s.Round, prev, predicted, ok, own)
	}

	return own, nil
}

// ChooseMoveCode is ChooseMove using the host's integer move encoding.
func (e *Engine) ChooseMoveCode(prev int) (int, error) {
	m, err := ParseMove(prev)
	if err != nil {
		return 0, errors.Wrapf(err, "round %d", e.state.Round+1)
	}

	own, err := e.ChooseMove(m)
	return int(own), err
}

// State returns the current match state. It must not be modified.
func (e *Engine) State() *State {
	return e.state
}

func (e *Engine) reset() {
	e.state = NewState(e.maxRounds, e.params.Awareness)
	e.policy.Reset()
}
