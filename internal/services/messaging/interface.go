package messaging

// Service renders every user-facing text of the game
type Service interface {
	// GetAnnouncementMessage returns the registration call posted by announce_game
	GetAnnouncementMessage(input *GetAnnouncementMessageInput) string

	// GetRegisteredMessage returns the reply to register
	GetRegisteredMessage(input *GetRegisteredMessageInput) string

	// GetGameStartedMessage returns the start announcement
	GetGameStartedMessage(input *GetGameStartedMessageInput) string

	// GetRoundStartMessage returns the group prompt that opens a round
	GetRoundStartMessage(input *GetRoundStartMessageInput) string

	// GetReminderMessage returns the private nudge sent to each player when a round opens
	GetReminderMessage(input *GetRoundStartMessageInput) string

	// GetChoiceRecordedMessage returns the private confirmation of a submission
	GetChoiceRecordedMessage(input *GetChoiceRecordedMessageInput) string

	// GetSettlementMessage returns the tally of a settled round
	GetSettlementMessage(input *GetSettlementMessageInput) string

	// GetOvertimeMessage returns the notice that overtime begins
	GetOvertimeMessage(input *GetOvertimeMessageInput) string

	// GetFinalRankingMessage returns the ranking posted when the game finishes
	GetFinalRankingMessage(input *GetFinalRankingMessageInput) string

	// GetStatusMessage returns a summary of the bound game
	GetStatusMessage(input *GetStatusMessageInput) string

	// GetLeaderboardMessage returns the all-time leaderboard of a channel
	GetLeaderboardMessage(input *GetLeaderboardMessageInput) string

	// GetHistoryMessage returns the list of recent games of a channel
	GetHistoryMessage(input *GetHistoryMessageInput) string

	// GetHelpMessage returns the command reference
	GetHelpMessage() string
}
