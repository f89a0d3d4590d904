package arena

import (
	"sort"
)

// Standing aggregates the results of one pairing from player A's side.
type Standing struct {
	Label   string
	Matches int
	Won     int // matches
	Lost    int
	Tied    int
	Rounds  int
	WinsA   int // rounds
	WinsB   int
	Draws   int
}

// RoundWinRate is the fraction of rounds won by player A.
func (s *Standing) RoundWinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}

	return float64(s.WinsA) / float64(s.Rounds)
}

// Aggregate groups results by pairing label (the match name up to its
// final "/") and returns the standings sorted by label.
func Aggregate(results []Result) []*Standing {
	byLabel := make(map[string]*Standing)
	for _, r := range results {
		label := pairingLabel(r.Match)
		s, ok := byLabel[label]
		if !ok {
			s = &Standing{Label: label}
			byLabel[label] = s
		}

		s.Matches++
		switch r.Winner() {
		case "":
			s.Tied++
		case r.PlayerA:
			s.Won++
		default:
			s.Lost++
		}

		s.Rounds += r.Rounds
		s.WinsA += r.WinsA
		s.WinsB += r.WinsB
		s.Draws += r.Draws
	}

	standings := make([]*Standing, 0, len(byLabel))
	for _, s := range byLabel {
		standings = append(standings, s)
	}

	sort.Slice(standings, func(i, j int) bool {
		return standings[i].Label < standings[j].Label
	})

	return standings
}

func pairingLabel(match string) string {
	for i := len(match) - 1; i >= 0; i-- {
		if match[i] == '/' {
			return match[:i]
		}
	}

	return match
}
