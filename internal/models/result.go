package models

import (
	"time"
)

// Standing is a player's place in a finished game
type Standing struct {
	// PlayerID is the ID of the player
	PlayerID string

	// PlayerName is the display name at the time the game finished
	PlayerName string

	// Score is the final score
	Score int

	// Position is the 1-based rank
	Position int
}

// Result records a finished game
type Result struct {
	// ID is the unique identifier for the result
	ID string

	// ChannelID is the channel the game was played in
	ChannelID string

	// Title is the title of the game
	Title string

	// RoundsPlayed is the number of rounds that were opened, overtime included
	RoundsPlayed int

	// TotalRounds is the regular round target
	TotalRounds int

	// Overtime indicates the game went into overtime
	Overtime bool

	// Forced indicates the game was ended with end_game
	Forced bool

	// WinnerID is the sole leader, empty when the game ended tied or unscored
	WinnerID string

	// Standings is the final ranking
	Standings []*Standing

	// StartedAt is when the game started
	StartedAt time.Time

	// FinishedAt is when the game finished
	FinishedAt time.Time
}
