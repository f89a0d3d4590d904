package rps

// TransitionTable counts, for each opponent move, how often each move
// immediately followed it. Rows and columns are indexed Rock, Paper, Scissors.
type TransitionTable [NumMoves][NumMoves]int

// Count returns how many times from was immediately followed by to.
func (t *TransitionTable) Count(from, to Move) int {
	return t[from.index()][to.index()]
}

// Row returns the follower counts of from.
func (t *TransitionTable) Row(from Move) [NumMoves]int {
	return t[from.index()]
}

func (t *TransitionTable) add(from, to Move) {
	t[from.index()][to.index()]++
}

// History holds the moves of one match. Both sequences are append-only;
// index i of either refers to round i+1.
type History struct {
	opponent []Move
	own      []Move

	transitions TransitionTable
	// Last opponent move, or None if the previous reveal was missing.
	// Only adjacent reveals are counted as transitions.
	last Move

	outcome    Outcome
	hasOutcome bool
	tally      [3]int // indexed by Outcome
}

// NewHistory returns an empty History with room for capacity rounds.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}

	return &History{
		opponent: make([]Move, 0, capacity),
		own:      make([]Move, 0, capacity),
	}
}

// RecordOpponent appends a revealed opponent move and counts the
// transition from the previous one.
func (h *History) RecordOpponent(m Move) {
	_ = m.index()
	if h.last != None {
		h.transitions.add(h.last, m)
	}

	h.opponent = append(h.opponent, m)
	h.last = m

	if len(h.own) > 0 {
		h.outcome = Play(h.LastOwn(), m)
		h.hasOutcome = true
		h.tally[h.outcome]++
	}
}

// MissedReveal marks that a round passed without the opponent's move
// being reported, so the next reveal does not form a transition.
func (h *History) MissedReveal() {
	h.last = None
	h.hasOutcome = false
}

// RecordOwn appends the agent's own move.
func (h *History) RecordOwn(m Move) {
	_ = m.index()
	h.own = append(h.own, m)
}

// Opponent returns the opponent moves seen so far. The slice must not be modified.
func (h *History) Opponent() []Move {
	return h.opponent
}

// Own returns the agent's own moves so far. The slice must not be modified.
func (h *History) Own() []Move {
	return h.own
}

// LastOpponent returns the most recent adjacent opponent move, or None.
func (h *History) LastOpponent() Move {
	return h.last
}

// LastOwn returns the agent's most recent move, or None.
func (h *History) LastOwn() Move {
	if len(h.own) == 0 {
		return None
	}

	return h.own[len(h.own)-1]
}

// Transitions returns the accumulated transition counts.
func (h *History) Transitions() *TransitionTable {
	return &h.transitions
}

// LastOutcome returns the outcome of the most recently revealed round.
// It is unknown before the first reveal and after a missed reveal.
func (h *History) LastOutcome() (Outcome, bool) {
	return h.outcome, h.hasOutcome
}

// Tally returns the number of revealed rounds won, drawn and lost.
func (h *History) Tally() (wins, draws, losses int) {
	return h.tally[Win], h.tally[Draw], h.tally[Loss]
}
