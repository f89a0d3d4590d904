// Package bots implements scripted Rock/Paper/Scissors opponents for
// exercising a predictor. Every bot is deterministic for a given seed.
package bots

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/timpalpant/go-rps"
)

// ErrUnknownBot is the cause of errors returned by ByName.
var ErrUnknownBot = errors.New("unknown bot")

// Bot is a scripted player. ChooseMove receives the other player's
// previous move (rps.None in the first round).
type Bot interface {
	Name() string
	OnMatchStart()
	ChooseMove(prev rps.Move) (rps.Move, error)
}

// Constant always plays the same move.
type Constant struct {
	Move rps.Move
}

func (c *Constant) Name() string  { return strings.ToLower(c.Move.String()) }
func (c *Constant) OnMatchStart() {}

func (c *Constant) ChooseMove(rps.Move) (rps.Move, error) {
	return c.Move, nil
}

// Cycle plays a fixed sequence of moves over and over.
type Cycle struct {
	Label string
	Moves []rps.Move

	i int
}

// NewCycle returns a Cycle over moves.
func NewCycle(label string, moves ...rps.Move) *Cycle {
	return &Cycle{Label: label, Moves: moves}
}

func (c *Cycle) Name() string  { return c.Label }
func (c *Cycle) OnMatchStart() { c.i = 0 }

func (c *Cycle) ChooseMove(rps.Move) (rps.Move, error) {
	m := c.Moves[c.i%len(c.Moves)]
	c.i++
	return m, nil
}

// BeatLast plays the counter to the other player's previous move.
type BeatLast struct{}

func (BeatLast) Name() string  { return "beat-last" }
func (BeatLast) OnMatchStart() {}

func (BeatLast) ChooseMove(prev rps.Move) (rps.Move, error) {
	if prev == rps.None {
		return rps.Rock, nil
	}

	return rps.Counter(prev), nil
}

// Copycat repeats the other player's previous move.
type Copycat struct{}

func (Copycat) Name() string  { return "copycat" }
func (Copycat) OnMatchStart() {}

func (Copycat) ChooseMove(prev rps.Move) (rps.Move, error) {
	if prev == rps.None {
		return rps.Rock, nil
	}

	return prev, nil
}

// Biased plays each move with a fixed probability. The generator is
// reseeded at the start of every match, so every match replays the same
// sequence.
type Biased struct {
	Label   string
	Weights [rps.NumMoves]float64 // Rock, Paper, Scissors
	Seed    int64

	rng *rand.Rand
}

// NewRandom returns a Biased bot with uniform weights.
func NewRandom(seed int64) *Biased {
	return &Biased{Label: "random", Weights: [rps.NumMoves]float64{1, 1, 1}, Seed: seed}
}

func (b *Biased) Name() string { return b.Label }

func (b *Biased) OnMatchStart() {
	b.rng = rand.New(rand.NewSource(b.Seed))
}

func (b *Biased) ChooseMove(rps.Move) (rps.Move, error) {
	if b.rng == nil {
		b.OnMatchStart()
	}

	total := 0.0
	for _, w := range b.Weights {
		total += w
	}

	r := b.rng.Float64() * total
	for i, w := range b.Weights {
		if r < w {
			return rps.Moves[i], nil
		}
		r -= w
	}

	return rps.Moves[rps.NumMoves-1], nil
}

var factories = map[string]func(seed int64) Bot{
	"rock":      func(int64) Bot { return &Constant{Move: rps.Rock} },
	"paper":     func(int64) Bot { return &Constant{Move: rps.Paper} },
	"scissors":  func(int64) Bot { return &Constant{Move: rps.Scissors} },
	"cycle":     func(int64) Bot { return NewCycle("cycle", rps.Rock, rps.Paper, rps.Scissors) },
	"pattern":   func(int64) Bot { return NewCycle("pattern", rps.Rock, rps.Rock, rps.Paper, rps.Scissors, rps.Paper) },
	"beat-last": func(int64) Bot { return BeatLast{} },
	"copycat":   func(int64) Bot { return Copycat{} },
	"random":    func(seed int64) Bot { return NewRandom(seed) },
	"biased": func(seed int64) Bot {
		return &Biased{Label: "biased", Weights: [rps.NumMoves]float64{0.5, 0.3, 0.2}, Seed: seed}
	},
}

// ByName constructs the named bot. Seed is only used by the random bots.
func ByName(name string, seed int64) (Bot, error) {
	f, ok := factories[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownBot, "%q (known: %s)", name, strings.Join(Names(), ", "))
	}

	return f(seed), nil
}

// Names lists the bots known to ByName in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
