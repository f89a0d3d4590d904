package rps

import (
	"fmt"

	"github.com/pkg/errors"
)

// Move is one of the three choices of a round. The numeric values are the
// wire encoding agreed with the host harness: 1, 2 and 3, with 0 (None)
// meaning "no previous move".
type Move int8

const (
	None Move = iota
	Rock
	Paper
	Scissors
)

// NumMoves is the number of concrete moves.
const NumMoves = 3

// Moves lists the concrete moves in tie-break priority order.
// Every estimator that takes a mode resolves ties by this order.
var Moves = [NumMoves]Move{Rock, Paper, Scissors}

var moveStr = [...]string{
	"None",
	"Rock",
	"Paper",
	"Scissors",
}

// ErrInvalidMove is the cause of every error returned for a move code
// outside {None, Rock, Paper, Scissors}.
var ErrInvalidMove = errors.New("invalid move")

// ParseMove converts a harness move code to a Move.
func ParseMove(code int) (Move, error) {
	if code < int(None) || code > int(Scissors) {
		return None, errors.Wrapf(ErrInvalidMove, "code %d", code)
	}

	return Move(code), nil
}

// ParseMoveName converts a move name ("Rock", "rock", "R", ...) to a Move.
func ParseMoveName(name string) (Move, error) {
	switch name {
	case "Rock", "rock", "R", "r":
		return Rock, nil
	case "Paper", "paper", "P", "p":
		return Paper, nil
	case "Scissors", "scissors", "S", "s":
		return Scissors, nil
	case "None", "none", "-":
		return None, nil
	}

	return None, errors.Wrapf(ErrInvalidMove, "name %q", name)
}

// String implements fmt.Stringer.
func (m Move) String() string {
	if m < None || m > Scissors {
		return fmt.Sprintf("Move(%d)", int8(m))
	}

	return moveStr[m]
}

// IsValid reports whether m is a concrete move (not None).
func (m Move) IsValid() bool {
	return m >= Rock && m <= Scissors
}

// index maps a concrete move to 0..2.
func (m Move) index() int {
	if !m.IsValid() {
		panic(errors.Wrapf(ErrInvalidMove, "no index for %d", int(m)))
	}

	return int(m) - 1
}

// Beats returns the move that m defeats.
func (m Move) Beats() Move {
	switch m {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	case Scissors:
		return Paper
	}

	return None
}

// Counter returns the unique move that beats m:
// Rock -> Paper, Paper -> Scissors, Scissors -> Rock.
//
// Counter is a 3-cycle, not an involution: Counter(Counter(Rock)) == Scissors.
func Counter(m Move) Move {
	switch m {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	case Scissors:
		return Rock
	}

	return None
}

// Outcome is the result of one round from the agent's point of view.
type Outcome int8

const (
	Draw Outcome = iota
	Win
	Loss
)

var outcomeStr = [...]string{"Draw", "Win", "Loss"}

func (o Outcome) String() string {
	return outcomeStr[o]
}

// Payoff is +1 for a win, 0 for a draw and -1 for a loss.
func (o Outcome) Payoff() float32 {
	switch o {
	case Win:
		return 1.0
	case Loss:
		return -1.0
	}

	return 0.0
}

// Play returns the outcome of own against opponent.
func Play(own, opponent Move) Outcome {
	switch {
	case own == opponent:
		return Draw
	case own.Beats() == opponent:
		return Win
	}

	return Loss
}
