package scoreboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredit(t *testing.T) {
	b := New()

	assert.Equal(t, 1, b.Credit("p1"))
	assert.Equal(t, 2, b.Credit("p1"))
	assert.Equal(t, 1, b.Credit("p2"))
	assert.Equal(t, 2, b.Score("p1"))
	assert.Equal(t, 0, b.Score("missing"))
}

func TestCreditIsMonotonic(t *testing.T) {
	b := New()
	players := []string{"p1", "p2", "p3"}
	last := map[string]int{}

	for round := 0; round < 20; round++ {
		b.Credit(players[round%len(players)])
		for _, p := range players {
			assert.GreaterOrEqual(t, b.Score(p), last[p])
			last[p] = b.Score(p)
		}
	}
}

func TestSeedKeepsExistingScore(t *testing.T) {
	b := New()
	b.Credit("p1")

	b.Seed("p1")
	b.Seed("p2")

	assert.Equal(t, 1, b.Score("p1"))
	score, ok := b["p2"]
	assert.True(t, ok)
	assert.Equal(t, 0, score)
}

func TestLeaders(t *testing.T) {
	testCases := []struct {
		name        string
		board       Board
		wantLeaders []string
		wantTop     int
	}{
		{
			name:        "empty board",
			board:       New(),
			wantLeaders: []string{},
			wantTop:     0,
		},
		{
			name:        "single leader",
			board:       Board{"p1": 3, "p2": 1},
			wantLeaders: []string{"p1"},
			wantTop:     3,
		},
		{
			name:        "tied leaders sorted by id",
			board:       Board{"p3": 2, "p1": 2, "p2": 0},
			wantLeaders: []string{"p1", "p3"},
			wantTop:     2,
		},
		{
			name:        "everyone at zero",
			board:       Board{"p1": 0, "p2": 0},
			wantLeaders: []string{"p1", "p2"},
			wantTop:     0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			leaders, top := tc.board.Leaders()
			assert.Equal(t, tc.wantLeaders, leaders)
			assert.Equal(t, tc.wantTop, top)
		})
	}
}

func TestRanking(t *testing.T) {
	b := Board{"carol": 1, "alice": 2, "bob": 2, "dave": 0}

	ranking := b.Ranking()
	require.Len(t, ranking, 4)

	assert.Equal(t, "alice", ranking[0].PlayerID)
	assert.Equal(t, "bob", ranking[1].PlayerID)
	assert.Equal(t, "carol", ranking[2].PlayerID)
	assert.Equal(t, "dave", ranking[3].PlayerID)

	for i, standing := range ranking {
		assert.Equal(t, i+1, standing.Position)
	}
}
