package results

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/minority/internal/repositories/results Repository

import (
	"context"
)

// Repository defines the interface for the finished game ledger
type Repository interface {
	// SaveResult records a finished game and folds it into the channel leaderboard
	SaveResult(ctx context.Context, input *SaveResultInput) error

	// GetLeaderboard retrieves the all-time standings for a channel
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetRecentResults retrieves the most recent finished games for a channel, newest first
	GetRecentResults(ctx context.Context, input *GetRecentResultsInput) (*GetRecentResultsOutput, error)
}
