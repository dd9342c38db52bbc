package messaging

import (
	"github.com/KirkDiggler/minority/internal/models"
	"github.com/KirkDiggler/minority/internal/rounds"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// CommandPrefix is put in front of command names in instructions, "/" by default
	CommandPrefix string

	// Seed for the greeting picker, 0 for a time based seed
	Seed int64
}

// GetAnnouncementMessageInput contains parameters for the announcement
type GetAnnouncementMessageInput struct {
	Title         string
	DefaultRounds int
}

// GetRegisteredMessageInput contains parameters for the register reply
type GetRegisteredMessageInput struct {
	// PlayerName is the display name of the player
	PlayerName string

	// AlreadyRegistered is true when the player had registered before
	AlreadyRegistered bool

	// LateJoin is true when the player registered after the game started
	LateJoin bool

	// PlayerCount is the number of registered players after this registration
	PlayerCount int
}

// GetGameStartedMessageInput contains parameters for the start announcement
type GetGameStartedMessageInput struct {
	Title       string
	TotalRounds int
	PlayerCount int
}

// GetRoundStartMessageInput contains parameters for a round prompt
type GetRoundStartMessageInput struct {
	Title      string
	RoundLabel string
	RoundIndex int
}

// GetChoiceRecordedMessageInput contains parameters for a submission confirmation
type GetChoiceRecordedMessageInput struct {
	Choice     models.Choice
	RoundLabel string
	Changed    bool
}

// GetSettlementMessageInput contains parameters for a round tally
type GetSettlementMessageInput struct {
	// RoundLabel names the settled round
	RoundLabel string

	// Result is the outcome of the round
	Result *rounds.Result

	// CreditedNames are the display names of the players who scored
	CreditedNames []string
}

// GetOvertimeMessageInput contains parameters for the overtime notice
type GetOvertimeMessageInput struct {
	TotalRounds int
	TopScore    int
	LeaderNames []string
}

// GetFinalRankingMessageInput contains parameters for the final ranking
type GetFinalRankingMessageInput struct {
	Title     string
	Standings []*models.Standing
	Forced    bool
}

// GetStatusMessageInput contains parameters for a status summary
type GetStatusMessageInput struct {
	Title          string
	Status         models.GameStatus
	RoundLabel     string
	TotalRounds    int
	PlayerCount    int
	SubmittedCount int
	Standings      []*models.Standing
}

// GetLeaderboardMessageInput contains parameters for the all-time leaderboard
type GetLeaderboardMessageInput struct {
	Entries []*models.LeaderboardEntry
}

// GetHistoryMessageInput contains parameters for the recent games list
type GetHistoryMessageInput struct {
	Results []*models.Result
}
