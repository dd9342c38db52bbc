package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseChoice(t *testing.T) {
	for _, in := range []string{"A", "a", " A "} {
		c, ok := ParseChoice(in)
		assert.True(t, ok, in)
		assert.Equal(t, ChoiceA, c)
	}
	for _, in := range []string{"B", "b"} {
		c, ok := ParseChoice(in)
		assert.True(t, ok, in)
		assert.Equal(t, ChoiceB, c)
	}
	for _, in := range []string{"", "C", "ab", "AA"} {
		_, ok := ParseChoice(in)
		assert.False(t, ok, in)
	}
}

func TestNewGameDefaults(t *testing.T) {
	g := NewGame("chan", "")

	assert.Equal(t, "chan", g.ChannelID)
	assert.Equal(t, DefaultTitle, g.Title)
	assert.Equal(t, DefaultTotalRounds, g.TotalRounds)
	assert.Equal(t, GameStatusRegistering, g.Status())
	assert.Empty(t, g.Registered)
	assert.Empty(t, g.Choices)
	assert.Empty(t, g.Scores)
}

func TestResetKeepsChannelAndTitle(t *testing.T) {
	announcedAt := time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC)
	g := NewGame("chan", "Friday Night")
	g.AnnouncedAt = announcedAt
	g.Registered["p1"] = "Alice"
	g.Scores.Credit("p1")
	g.Running = true
	g.InRound = true
	g.RoundIndex = 3
	g.TotalRounds = 7
	g.Overtime = true
	g.Choices["p1"] = ChoiceA

	g.Reset()

	assert.Equal(t, "chan", g.ChannelID)
	assert.Equal(t, "Friday Night", g.Title)
	assert.Equal(t, announcedAt, g.AnnouncedAt)
	assert.False(t, g.Running)
	assert.False(t, g.InRound)
	assert.False(t, g.Overtime)
	assert.Zero(t, g.RoundIndex)
	assert.Equal(t, DefaultTotalRounds, g.TotalRounds)
	assert.Empty(t, g.Registered)
	assert.Empty(t, g.Choices)
	assert.Empty(t, g.Scores)
}

func TestStatusAndLabels(t *testing.T) {
	g := NewGame("chan", "")
	g.Running = true
	g.RoundIndex = 2
	assert.Equal(t, GameStatusSettled, g.Status())
	assert.Equal(t, "Round 2", g.RoundLabel())

	g.InRound = true
	assert.Equal(t, GameStatusInRound, g.Status())

	g.Overtime = true
	assert.Equal(t, "Overtime", g.RoundLabel())
}

func TestPlayerNameAndIDs(t *testing.T) {
	g := NewGame("chan", "")
	g.Registered["p2"] = "Bob"
	g.Registered["p1"] = ""

	assert.Equal(t, "Bob", g.PlayerName("p2"))
	assert.Equal(t, "p1", g.PlayerName("p1"))
	assert.Equal(t, []string{"p1", "p2"}, g.PlayerIDs())
	assert.True(t, g.IsRegistered("p1"))
	assert.False(t, g.IsRegistered("p3"))
}
