package results

import "github.com/KirkDiggler/minority/internal/models"

// DefaultHistoryLimit is how many results are kept per channel when no limit is configured
const DefaultHistoryLimit = 20

// SaveResultInput contains parameters for saving a result
type SaveResultInput struct {
	Result *models.Result
}

// GetLeaderboardInput contains parameters for retrieving a leaderboard
type GetLeaderboardInput struct {
	// ChannelID is the channel to get the leaderboard for
	ChannelID string

	// Limit caps the number of entries, 0 for all
	Limit int
}

// GetLeaderboardOutput contains the leaderboard entries, best first
type GetLeaderboardOutput struct {
	Entries []*models.LeaderboardEntry
}

// GetRecentResultsInput contains parameters for retrieving recent results
type GetRecentResultsInput struct {
	ChannelID string
	Limit     int
}

// GetRecentResultsOutput contains the recent results, newest first
type GetRecentResultsOutput struct {
	Results []*models.Result
}
