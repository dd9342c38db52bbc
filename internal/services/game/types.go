package game

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/KirkDiggler/minority/internal/common/uuid"
	"github.com/KirkDiggler/minority/internal/models"
	"github.com/KirkDiggler/minority/internal/repositories/results"
	"github.com/KirkDiggler/minority/internal/rounds"
	"github.com/KirkDiggler/minority/internal/services/messaging"
)

// Config holds configuration for the game service
type Config struct {
	// DefaultRounds is used when start_game has no valid round count
	DefaultRounds int

	// MaxRounds caps a requested round count, 0 for no cap
	MaxRounds int

	// SendReminders sends every registered player a private nudge when a round opens
	SendReminders bool

	// LeaderboardLimit caps the leaderboard entries, 0 for all
	LeaderboardLimit int

	// HistoryLimit caps the games listed by GetHistory, DefaultHistoryLimit when 0
	HistoryLimit int

	// Repository dependencies
	ResultsRepo results.Repository

	// Service dependencies
	Messages      messaging.Service
	Clock         quartz.Clock
	UUIDGenerator uuid.UUID
	Logger        *log.Logger
}

// AnnounceGameInput contains parameters for announcing a game
type AnnounceGameInput struct {
	// ChannelID is the group channel the game is bound to
	ChannelID string

	// Title is the optional display label
	Title string
}

// AnnounceGameOutput contains the result of announcing a game
type AnnounceGameOutput struct {
	Messages []*models.Message
}

// RegisterInput contains parameters for registering a player
type RegisterInput struct {
	// ChannelID is the channel the command was sent in
	ChannelID string

	// PlayerID is the platform user ID of the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string
}

// RegisterOutput contains the result of registering a player
type RegisterOutput struct {
	// AlreadyRegistered indicates the player was registered before
	AlreadyRegistered bool

	// LateJoin indicates the player registered after the game started
	LateJoin bool

	// PlayerCount is the number of registered players
	PlayerCount int

	Messages []*models.Message
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// ChannelID is the channel the command was sent in
	ChannelID string

	// Rounds is the requested number of regular rounds, 0 for the default
	Rounds int
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	TotalRounds int
	PlayerCount int
	Messages    []*models.Message
}

// SubmitChoiceInput contains parameters for submitting a choice
type SubmitChoiceInput struct {
	// PlayerID is the platform user ID of the sender
	PlayerID string

	// Choice is the submitted side
	Choice models.Choice

	// IsDirect is true when the command came from a private channel
	IsDirect bool
}

// SubmitChoiceOutput contains the result of submitting a choice
type SubmitChoiceOutput struct {
	// Ignored is true when the submission came from a group channel
	Ignored bool

	// Changed is true when the player replaced an earlier choice this round
	Changed bool

	Messages []*models.Message
}

// EndRoundInput contains parameters for ending a round
type EndRoundInput struct {
	ChannelID string
}

// EndRoundOutput contains the result of ending a round
type EndRoundOutput struct {
	// Settlement is the outcome of the settled round
	Settlement *rounds.Result

	// EnteredOvertime is true when this round ended the regular phase with tied leaders
	EnteredOvertime bool

	// NextRound is the index of the round that was opened, 0 when the game finished
	NextRound int

	// Finished is true when the game is over
	Finished bool

	// Result is the record of the finished game, nil while the game continues
	Result *models.Result

	Messages []*models.Message
}

// EndGameInput contains parameters for force-ending a game
type EndGameInput struct {
	ChannelID string
}

// EndGameOutput contains the result of force-ending a game
type EndGameOutput struct {
	// Settlement is the outcome of the round that was open, nil if none was
	Settlement *rounds.Result

	// Result is the record of the finished game
	Result *models.Result

	Messages []*models.Message
}

// GetStatusInput contains parameters for describing the game
type GetStatusInput struct {
	ChannelID string
}

// GetStatusOutput describes the bound game
type GetStatusOutput struct {
	Title          string
	Status         models.GameStatus
	RoundIndex     int
	TotalRounds    int
	Overtime       bool
	PlayerCount    int
	SubmittedCount int
	Standings      []*models.Standing
	Messages       []*models.Message
}

// GetLeaderboardInput contains parameters for the all-time leaderboard
type GetLeaderboardInput struct {
	ChannelID string
}

// GetLeaderboardOutput contains the all-time leaderboard
type GetLeaderboardOutput struct {
	Entries  []*models.LeaderboardEntry
	Messages []*models.Message
}

// GetHistoryInput contains parameters for the recent games of a channel
type GetHistoryInput struct {
	ChannelID string
}

// GetHistoryOutput contains the recent games, newest first
type GetHistoryOutput struct {
	Results  []*models.Result
	Messages []*models.Message
}
