package results

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/minority/internal/models"
)

// memoryRepository keeps the ledger in process memory. It is used when no
// Redis address is configured, so history is lost on restart.
type memoryRepository struct {
	mu           sync.RWMutex
	historyLimit int
	results      map[string][]*models.Result
	entries      map[string]map[string]*models.LeaderboardEntry
}

// NewMemory creates an in-memory results repository
func NewMemory(historyLimit int) *memoryRepository {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}

	return &memoryRepository{
		historyLimit: historyLimit,
		results:      make(map[string][]*models.Result),
		entries:      make(map[string]map[string]*models.LeaderboardEntry),
	}
}

// SaveResult records a result and updates the channel aggregates
func (r *memoryRepository) SaveResult(ctx context.Context, input *SaveResultInput) error {
	if input == nil || input.Result == nil {
		return ErrNilResult
	}

	result := input.Result
	if result.ID == "" {
		return errors.New("result ID cannot be empty")
	}
	if result.ChannelID == "" {
		return ErrEmptyChannelID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	history := append([]*models.Result{result}, r.results[result.ChannelID]...)
	if len(history) > r.historyLimit {
		history = history[:r.historyLimit]
	}
	r.results[result.ChannelID] = history

	channelEntries, ok := r.entries[result.ChannelID]
	if !ok {
		channelEntries = make(map[string]*models.LeaderboardEntry)
		r.entries[result.ChannelID] = channelEntries
	}

	for _, standing := range result.Standings {
		entry, ok := channelEntries[standing.PlayerID]
		if !ok {
			entry = &models.LeaderboardEntry{PlayerID: standing.PlayerID}
			channelEntries[standing.PlayerID] = entry
		}
		entry.Points += standing.Score
		entry.GamesPlayed++
		if standing.PlayerName != "" {
			entry.PlayerName = standing.PlayerName
		}
	}

	if result.WinnerID != "" {
		if entry, ok := channelEntries[result.WinnerID]; ok {
			entry.Wins++
		}
	}

	return nil
}

// GetLeaderboard returns copies of the channel entries, best first
func (r *memoryRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*models.LeaderboardEntry, 0, len(r.entries[input.ChannelID]))
	for _, entry := range r.entries[input.ChannelID] {
		copied := *entry
		entries = append(entries, &copied)
	}

	sortEntries(entries)

	if input.Limit > 0 && len(entries) > input.Limit {
		entries = entries[:input.Limit]
	}

	return &GetLeaderboardOutput{
		Entries: entries,
	}, nil
}

// GetRecentResults returns the most recent results, newest first
func (r *memoryRepository) GetRecentResults(ctx context.Context, input *GetRecentResultsInput) (*GetRecentResultsOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.results[input.ChannelID]
	if input.Limit > 0 && len(history) > input.Limit {
		history = history[:input.Limit]
	}

	found := make([]*models.Result, len(history))
	copy(found, history)

	return &GetRecentResultsOutput{
		Results: found,
	}, nil
}
