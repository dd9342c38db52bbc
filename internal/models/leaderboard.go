package models

// LeaderboardEntry is one player's all-time record in a channel
type LeaderboardEntry struct {
	// PlayerID is the ID of the player
	PlayerID string

	// PlayerName is the last known display name of the player
	PlayerName string

	// Points is the sum of final scores over all recorded games
	Points int

	// Wins is the number of games the player finished as sole leader
	Wins int

	// GamesPlayed is the number of recorded games the player appeared in
	GamesPlayed int
}
