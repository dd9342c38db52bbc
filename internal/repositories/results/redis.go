package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/minority/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	resultKeyPrefix      = "result:"
	channelResultsPrefix = "results:channel:"
	pointsKeyPrefix      = "leaderboard:channel:"
	winsKeyPrefix        = "wins:channel:"
	gamesKeyPrefix       = "games:channel:"
	namesKeyPrefix       = "names:channel:"
)

var (
	// ErrNilResult is returned when a nil result is saved
	ErrNilResult = errors.New("input and result cannot be nil")

	// ErrEmptyChannelID is returned when a channel ID is required but missing
	ErrEmptyChannelID = errors.New("channel ID cannot be empty")
)

// Config holds configuration for the Redis results repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// HistoryLimit is the number of results kept per channel
	HistoryLimit int
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client       *redis.Client
	historyLimit int
}

// NewRedis creates a new Redis-backed results repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	return &redisRepository{
		client:       cfg.RedisClient,
		historyLimit: limit,
	}, nil
}

// SaveResult stores the result and updates the channel aggregates in one transaction
func (r *redisRepository) SaveResult(ctx context.Context, input *SaveResultInput) error {
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

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	listKey := channelResultsPrefix + result.ChannelID

	// Results that fall off the end of the history once this one is pushed
	dropped, err := r.client.LRange(ctx, listKey, int64(r.historyLimit-1), -1).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to read result history: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, resultKeyPrefix+result.ID, resultJSON, 0)
	pipe.LPush(ctx, listKey, result.ID)
	pipe.LTrim(ctx, listKey, 0, int64(r.historyLimit-1))
	for _, id := range dropped {
		pipe.Del(ctx, resultKeyPrefix+id)
	}

	for _, standing := range result.Standings {
		pipe.ZIncrBy(ctx, pointsKeyPrefix+result.ChannelID, float64(standing.Score), standing.PlayerID)
		pipe.ZIncrBy(ctx, gamesKeyPrefix+result.ChannelID, 1, standing.PlayerID)
		if standing.PlayerName != "" {
			pipe.HSet(ctx, namesKeyPrefix+result.ChannelID, standing.PlayerID, standing.PlayerName)
		}
	}

	if result.WinnerID != "" {
		pipe.ZIncrBy(ctx, winsKeyPrefix+result.ChannelID, 1, result.WinnerID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// GetLeaderboard retrieves the all-time standings for a channel from Redis
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	// The whole set is read so ties at the limit are broken by sortEntries
	points, err := r.client.ZRevRangeWithScores(ctx, pointsKeyPrefix+input.ChannelID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	if len(points) == 0 {
		return &GetLeaderboardOutput{
			Entries: []*models.LeaderboardEntry{},
		}, nil
	}

	playerIDs := make([]string, 0, len(points))
	for _, z := range points {
		playerIDs = append(playerIDs, fmt.Sprint(z.Member))
	}

	// Fetch the side aggregates in one round trip
	pipe := r.client.Pipeline()
	winCmds := make(map[string]*redis.FloatCmd, len(playerIDs))
	gameCmds := make(map[string]*redis.FloatCmd, len(playerIDs))
	for _, playerID := range playerIDs {
		winCmds[playerID] = pipe.ZScore(ctx, winsKeyPrefix+input.ChannelID, playerID)
		gameCmds[playerID] = pipe.ZScore(ctx, gamesKeyPrefix+input.ChannelID, playerID)
	}
	namesCmd := pipe.HMGet(ctx, namesKeyPrefix+input.ChannelID, playerIDs...)

	// Exec reports only the first failure, each command is checked below
	_, _ = pipe.Exec(ctx)

	if err := namesCmd.Err(); err != nil {
		return nil, fmt.Errorf("failed to get leaderboard names: %w", err)
	}
	for _, playerID := range playerIDs {
		if err := scoreErr(winCmds[playerID]); err != nil {
			return nil, fmt.Errorf("failed to get wins for %s: %w", playerID, err)
		}
		if err := scoreErr(gameCmds[playerID]); err != nil {
			return nil, fmt.Errorf("failed to get games for %s: %w", playerID, err)
		}
	}

	names := namesCmd.Val()
	entries := make([]*models.LeaderboardEntry, 0, len(points))
	for i, z := range points {
		playerID := playerIDs[i]
		entry := &models.LeaderboardEntry{
			PlayerID:    playerID,
			Points:      int(z.Score),
			Wins:        int(winCmds[playerID].Val()),
			GamesPlayed: int(gameCmds[playerID].Val()),
		}
		if i < len(names) {
			if name, ok := names[i].(string); ok {
				entry.PlayerName = name
			}
		}
		entries = append(entries, entry)
	}

	sortEntries(entries)
	if input.Limit > 0 && len(entries) > input.Limit {
		entries = entries[:input.Limit]
	}

	return &GetLeaderboardOutput{
		Entries: entries,
	}, nil
}

// scoreErr treats a missing member as a zero score
func scoreErr(cmd *redis.FloatCmd) error {
	if err := cmd.Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

// GetRecentResults retrieves the most recent results for a channel from Redis
func (r *redisRepository) GetRecentResults(ctx context.Context, input *GetRecentResultsInput) (*GetRecentResultsOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	ids, err := r.client.LRange(ctx, channelResultsPrefix+input.ChannelID, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get result IDs: %w", err)
	}

	if len(ids) == 0 {
		return &GetRecentResultsOutput{
			Results: []*models.Result{},
		}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, resultKeyPrefix+id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	found := make([]*models.Result, 0, len(values))
	for i, value := range values {
		resultJSON, ok := value.(string)
		if !ok {
			// Result was removed between reading the list and fetching it
			continue
		}

		var result models.Result
		if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result %s: %w", ids[i], err)
		}
		found = append(found, &result)
	}

	return &GetRecentResultsOutput{
		Results: found,
	}, nil
}

// sortEntries orders entries by points, then wins, then player ID
func sortEntries(entries []*models.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
}
