// Package rounds decides the outcome of a single round.
package rounds

import (
	"sort"

	"github.com/KirkDiggler/minority/internal/models"
)

// Reason explains how the winning side was chosen
type Reason string

const (
	// ReasonMinority means the side with fewer votes won
	ReasonMinority Reason = "minority"

	// ReasonTieParity means the votes were even and the round number decided
	ReasonTieParity Reason = "tie_parity"
)

// Result is the outcome of a settled round
type Result struct {
	// RoundIndex is the round that was settled
	RoundIndex int

	// CountA is the number of A votes
	CountA int

	// CountB is the number of B votes
	CountB int

	// Winner is the winning side
	Winner models.Choice

	// Reason is why Winner won
	Reason Reason

	// Credited lists the players who picked the winning side, sorted by ID
	Credited []string
}

// Settle tallies the choices of a round and picks the winning side.
// The side with fewer votes wins. On a tie, A wins odd rounds and B wins even
// rounds; an empty round is a 0-0 tie.
func Settle(choices map[string]models.Choice, roundIndex int) *Result {
	result := &Result{
		RoundIndex: roundIndex,
		Credited:   []string{},
	}

	for _, choice := range choices {
		switch choice {
		case models.ChoiceA:
			result.CountA++
		case models.ChoiceB:
			result.CountB++
		}
	}

	switch {
	case result.CountA == result.CountB:
		result.Reason = ReasonTieParity
		if roundIndex%2 != 0 {
			result.Winner = models.ChoiceA
		} else {
			result.Winner = models.ChoiceB
		}
	case result.CountA < result.CountB:
		result.Reason = ReasonMinority
		result.Winner = models.ChoiceA
	default:
		result.Reason = ReasonMinority
		result.Winner = models.ChoiceB
	}

	for playerID, choice := range choices {
		if choice == result.Winner {
			result.Credited = append(result.Credited, playerID)
		}
	}
	sort.Strings(result.Credited)

	return result
}
