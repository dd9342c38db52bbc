package scoreboard

import "sort"

// Board maps a player ID to the points they have earned in the current game.
// The zero value is not usable; create one with New.
type Board map[string]int

// Standing is a single row of a final ranking
type Standing struct {
	// PlayerID is the ID of the ranked player
	PlayerID string

	// Score is the player's total points
	Score int

	// Position is the 1-based place in the ranking
	Position int
}

// New creates an empty board
func New() Board {
	return make(Board)
}

// Seed makes sure a player appears on the board, keeping any existing score
func (b Board) Seed(playerID string) {
	if _, ok := b[playerID]; !ok {
		b[playerID] = 0
	}
}

// Credit awards one point to a player
func (b Board) Credit(playerID string) int {
	b[playerID]++
	return b[playerID]
}

// Score returns the points of a player, 0 if absent
func (b Board) Score(playerID string) int {
	return b[playerID]
}

// Leaders returns the players holding the top score, sorted by ID, and that
// score. An empty board has no leaders and a top score of 0.
func (b Board) Leaders() ([]string, int) {
	if len(b) == 0 {
		return []string{}, 0
	}

	top := 0
	first := true
	for _, score := range b {
		if first || score > top {
			top = score
			first = false
		}
	}

	leaders := make([]string, 0, 1)
	for playerID, score := range b {
		if score == top {
			leaders = append(leaders, playerID)
		}
	}
	sort.Strings(leaders)

	return leaders, top
}

// Ranking orders the board by score descending, then player ID ascending
func (b Board) Ranking() []*Standing {
	ranking := make([]*Standing, 0, len(b))
	for playerID, score := range b {
		ranking = append(ranking, &Standing{
			PlayerID: playerID,
			Score:    score,
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Score != ranking[j].Score {
			return ranking[i].Score > ranking[j].Score
		}
		return ranking[i].PlayerID < ranking[j].PlayerID
	})

	for i, standing := range ranking {
		standing.Position = i + 1
	}

	return ranking
}
