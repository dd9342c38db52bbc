package models

import (
	"sort"
	"strconv"
	"time"

	"github.com/KirkDiggler/minority/internal/scoreboard"
)

const (
	// DefaultTitle is used when a game is announced without a title
	DefaultTitle = "Minority Game"

	// DefaultTotalRounds is the regular round count when none is requested
	DefaultTotalRounds = 5
)

// GameStatus represents the current phase of a game
type GameStatus string

const (
	// GameStatusRegistering indicates a game is announced and accepting players
	GameStatusRegistering GameStatus = "registering"

	// GameStatusInRound indicates a round is open for submissions
	GameStatusInRound GameStatus = "in_round"

	// GameStatusSettled indicates the game is running between two rounds
	GameStatusSettled GameStatus = "settled"
)

// Game is the state of the single live game bound to a group channel
type Game struct {
	// ChannelID is the group channel the game was announced in
	ChannelID string

	// Title is the display label of the game
	Title string

	// Registered maps each registered player ID to their display name
	Registered map[string]string

	// Running is true from start until the game finishes
	Running bool

	// RoundIndex is the 1-based number of the current or last round
	RoundIndex int

	// TotalRounds is the number of regular rounds before overtime
	TotalRounds int

	// InRound is true while submissions are accepted
	InRound bool

	// Choices holds the submissions of the current round only
	Choices map[string]Choice

	// Scores is the cumulative score board, overtime included
	Scores scoreboard.Board

	// Overtime is true once the regular rounds ended with tied leaders
	Overtime bool

	// AnnouncedAt is when the game was announced
	AnnouncedAt time.Time

	// StartedAt is when the current game was started
	StartedAt time.Time
}

// NewGame creates a fresh game bound to a channel
func NewGame(channelID, title string) *Game {
	if title == "" {
		title = DefaultTitle
	}

	return &Game{
		ChannelID:   channelID,
		Title:       title,
		Registered:  make(map[string]string),
		TotalRounds: DefaultTotalRounds,
		Choices:     make(map[string]Choice),
		Scores:      scoreboard.New(),
	}
}

// Reset drops everything but the channel binding and the title
func (g *Game) Reset() {
	announcedAt := g.AnnouncedAt
	*g = *NewGame(g.ChannelID, g.Title)
	g.AnnouncedAt = announcedAt
}

// Status derives the current phase from the running flags
func (g *Game) Status() GameStatus {
	switch {
	case g.InRound:
		return GameStatusInRound
	case g.Running:
		return GameStatusSettled
	default:
		return GameStatusRegistering
	}
}

// IsRegistered reports whether a player has registered
func (g *Game) IsRegistered(playerID string) bool {
	_, ok := g.Registered[playerID]
	return ok
}

// PlayerName returns the display name of a player, or the ID when unknown
func (g *Game) PlayerName(playerID string) string {
	if name := g.Registered[playerID]; name != "" {
		return name
	}
	return playerID
}

// PlayerIDs returns the registered player IDs in ascending order
func (g *Game) PlayerIDs() []string {
	ids := make([]string, 0, len(g.Registered))
	for id := range g.Registered {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RoundLabel names the current round for announcements
func (g *Game) RoundLabel() string {
	if g.Overtime {
		return "Overtime"
	}
	return "Round " + strconv.Itoa(g.RoundIndex)
}
