package game

import "context"

// Service defines the interface for the minority game state machine.
// Every method returns the outbound messages the transition produced, in
// delivery order.
type Service interface {
	// AnnounceGame replaces any existing game with a fresh one bound to a channel
	AnnounceGame(ctx context.Context, input *AnnounceGameInput) (*AnnounceGameOutput, error)

	// Register adds a player to the announced game
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// StartGame starts the announced game and opens round 1
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// SubmitChoice records a player's A/B choice for the open round
	SubmitChoice(ctx context.Context, input *SubmitChoiceInput) (*SubmitChoiceOutput, error)

	// EndRound settles the open round, then opens the next one, enters overtime or finishes
	EndRound(ctx context.Context, input *EndRoundInput) (*EndRoundOutput, error)

	// EndGame settles an open round and finishes the game without overtime
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// GetStatus describes the bound game
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// GetLeaderboard returns the all-time standings of a channel
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetHistory returns the most recent finished games of a channel
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}
