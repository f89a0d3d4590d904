// Package arena plays Rock/Paper/Scissors matches between players,
// typically an rps.Engine against a scripted bot.
package arena

import (
	"context"
	"fmt"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/go-rps"
	"github.com/timpalpant/go-rps/matchlog"
)

// Player is one side of a match. ChooseMove receives the other player's
// previous move, rps.None in the first round. *rps.Engine is a Player.
type Player interface {
	Name() string
	OnMatchStart()
	ChooseMove(prev rps.Move) (rps.Move, error)
}

// Configurable players are told the match parameters before each match.
// Not all players need them; use a type assertion to check.
type Configurable interface {
	ConfigureMatch(maxRounds, winsPerSet int) error
}

// Summarizer players report their view of the match when it ends.
type Summarizer interface {
	OnMatchEnd() rps.Summary
}

// Recorder receives the transcript of every match. *matchlog.Store is a Recorder.
type Recorder interface {
	AppendRound(r matchlog.Round) error
	PutSummary(s matchlog.MatchSummary) error
}

// Config are the parameters of each match.
type Config struct {
	MaxRounds  int
	WinsPerSet int // first to this many round wins takes the match; 0 disables
}

// Result is the outcome of one match.
type Result struct {
	Match   string
	PlayerA string
	PlayerB string
	Rounds  int
	WinsA   int
	WinsB   int
	Draws   int
}

// Winner returns the name of the player with more round wins, or "" on a tie.
func (r Result) Winner() string {
	switch {
	case r.WinsA > r.WinsB:
		return r.PlayerA
	case r.WinsB > r.WinsA:
		return r.PlayerB
	}

	return ""
}

func (r Result) summary() matchlog.MatchSummary {
	return matchlog.MatchSummary{
		Match:   r.Match,
		PlayerA: r.PlayerA,
		PlayerB: r.PlayerB,
		Rounds:  r.Rounds,
		WinsA:   r.WinsA,
		WinsB:   r.WinsB,
		Draws:   r.Draws,
	}
}

// PlayMatch plays one match between a and b. It stops after cfg.MaxRounds
// rounds, when either player reaches cfg.WinsPerSet wins, or when ctx is
// canceled, in which case the partial result is returned with ctx.Err().
// rec may be nil.
func PlayMatch(ctx context.Context, match string, a, b Player, cfg Config, rec Recorder) (Result, error) {
	result := Result{Match: match, PlayerA: a.Name(), PlayerB: b.Name()}
	for _, p := range []Player{a, b} {
		if c, ok := p.(Configurable); ok {
			if err := c.ConfigureMatch(cfg.MaxRounds, cfg.WinsPerSet); err != nil {
				return result, errors.Wrapf(err, "configure %s", p.Name())
			}
		}

		p.OnMatchStart()
	}

	prevA, prevB := rps.None, rps.None
	for round := 1; round <= cfg.MaxRounds; round++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		moveA, err := a.ChooseMove(prevB)
		if err != nil {
			return result, errors.Wrapf(err, "%s: round %d: %s", match, round, a.Name())
		}

		moveB, err := b.ChooseMove(prevA)
		if err != nil {
			return result, errors.Wrapf(err, "%s: round %d: %s", match, round, b.Name())
		}

		outcome := rps.Play(moveA, moveB)
		switch outcome {
		case rps.Win:
			result.WinsA++
		case rps.Loss:
			result.WinsB++
		default:
			result.Draws++
		}
		result.Rounds = round

		if rec != nil {
			err := rec.AppendRound(matchlog.Round{
				Match:   match,
				Round:   round,
				PlayerA: result.PlayerA,
				PlayerB: result.PlayerB,
				MoveA:   moveA,
				MoveB:   moveB,
				Outcome: outcome,
			})
			if err != nil {
				return result, err
			}
		}

		prevA, prevB = moveA, moveB
		if cfg.WinsPerSet > 0 && (result.WinsA >= cfg.WinsPerSet || result.WinsB >= cfg.WinsPerSet) {
			break
		}
	}

	for _, p := range []Player{a, b} {
		if s, ok := p.(Summarizer); ok {
			sum := s.OnMatchEnd()
			glog.V(1).Infof("%s: %s saw %d reveals, deterministic=%t", match, p.Name(), sum.Revealed, sum.Deterministic)
		}
	}

	if rec != nil {
		if err := rec.PutSummary(result.summary()); err != nil {
			return result, err
		}
	}

	glog.V(1).Infof("%s: %s vs %s %d-%d-%d after %d rounds", match,
		result.PlayerA, result.PlayerB, result.WinsA, result.Draws, result.WinsB, result.Rounds)
	return result, nil
}

// Factory creates a fresh Player for each match.
type Factory func() (Player, error)

// Pairing names two player factories that play each other.
type Pairing struct {
	Label string
	A, B  Factory
}

// Tournament plays every pairing a number of times on a pool of workers.
// Every match gets freshly constructed players, so no state is shared
// between concurrent matches.
type Tournament struct {
	Workers  int
	Matches  int // per pairing
	Config   Config
	Recorder Recorder
}

// Run plays all matches and returns their results, grouped by pairing in
// the order given. It returns the first error encountered.
func (t *Tournament) Run(ctx context.Context, pairings []Pairing) ([]Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type workRequest struct {
		index   int
		pairing Pairing
		match   string
	}

	workers := t.Workers
	if workers < 1 {
		workers = 1
	}

	total := len(pairings) * t.Matches
	results := make([]Result, total)
	workQueue := make(chan workRequest, workers*2)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for req := range workQueue {
				result, err := t.play(ctx, req.pairing, req.match)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
						cancel()
					}
					mu.Unlock()
					continue
				}

				results[req.index] = result
			}
		}()
	}

	i := 0
enqueue:
	for _, p := range pairings {
		for j := 0; j < t.Matches; j++ {
			req := workRequest{index: i, pairing: p, match: fmt.Sprintf("%s/%d", p.Label, j)}
			select {
			case workQueue <- req:
				i++
			case <-ctx.Done():
				break enqueue
			}
		}
	}

	close(workQueue)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	if i < total {
		return results[:i], ctx.Err()
	}

	return results, nil
}

func (t *Tournament) play(ctx context.Context, p Pairing, match string) (Result, error) {
	a, err := p.A()
	if err != nil {
		return Result{}, errors.Wrapf(err, "%s: create player A", match)
	}

	b, err := p.B()
	if err != nil {
		return Result{}, errors.Wrapf(err, "%s: create player B", match)
	}

	return PlayMatch(ctx, match, a, b, t.Config, t.Recorder)
}
