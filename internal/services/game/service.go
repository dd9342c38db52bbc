package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/KirkDiggler/minority/internal/common/uuid"
	"github.com/KirkDiggler/minority/internal/models"
	"github.com/KirkDiggler/minority/internal/repositories/results"
	"github.com/KirkDiggler/minority/internal/services/messaging"
)

// DefaultHistoryLimit is how many finished games GetHistory lists
const DefaultHistoryLimit = 5

// service implements the Service interface. It owns exactly one game; every
// operation holds mu for its whole duration.
type service struct {
	mu   sync.Mutex
	game *models.Game

	defaultRounds    int
	maxRounds        int
	sendReminders    bool
	leaderboardLimit int
	historyLimit     int

	resultsRepo   results.Repository
	messages      messaging.Service
	clock         quartz.Clock
	uuidGenerator uuid.UUID
	logger        *log.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ResultsRepo == nil {
		return nil, ErrNilResultsRepo
	}

	if cfg.Messages == nil {
		return nil, ErrNilMessaging
	}

	defaultRounds := cfg.DefaultRounds
	if defaultRounds <= 0 {
		defaultRounds = models.DefaultTotalRounds
	}

	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.New()
	}

	historyLimit := cfg.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &service{
		defaultRounds:    defaultRounds,
		maxRounds:        cfg.MaxRounds,
		sendReminders:    cfg.SendReminders,
		leaderboardLimit: cfg.LeaderboardLimit,
		historyLimit:     historyLimit,
		resultsRepo:      cfg.ResultsRepo,
		messages:         cfg.Messages,
		clock:            clock,
		uuidGenerator:    uuidGenerator,
		logger:           logger.WithPrefix("game"),
	}, nil
}

// AnnounceGame replaces any existing game with a fresh one bound to the channel
func (s *service) AnnounceGame(ctx context.Context, input *AnnounceGameInput) (*AnnounceGameOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game != nil && s.game.Running {
		s.logger.Warn("announce replaces a running game",
			"channel", s.game.ChannelID, "round", s.game.RoundIndex)
	}

	g := models.NewGame(input.ChannelID, input.Title)
	g.AnnouncedAt = s.clock.Now()
	s.game = g

	s.logger.Info("game announced", "channel", g.ChannelID, "title", g.Title)

	return &AnnounceGameOutput{
		Messages: []*models.Message{
			models.NewChannelMessage(g.ChannelID, s.messages.GetAnnouncementMessage(&messaging.GetAnnouncementMessageInput{
				Title:         g.Title,
				DefaultRounds: s.defaultRounds,
			})),
		},
	}, nil
}

// Register adds a player to the announced game. Registering twice is a no-op,
// and registering while the game runs is allowed.
func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if g == nil || g.ChannelID == "" {
		return nil, ErrNoActiveAnnouncement
	}

	if input.ChannelID != g.ChannelID {
		return nil, ErrWrongChannel
	}

	output := &RegisterOutput{
		AlreadyRegistered: g.IsRegistered(input.PlayerID),
		LateJoin:          g.Running,
	}

	if output.AlreadyRegistered {
		// Keep the first name unless we never had one
		if input.PlayerName != "" && g.Registered[input.PlayerID] == "" {
			g.Registered[input.PlayerID] = input.PlayerName
		}
		output.LateJoin = false
	} else {
		g.Registered[input.PlayerID] = input.PlayerName
		g.Scores.Seed(input.PlayerID)
		s.logger.Info("player registered",
			"channel", g.ChannelID, "player", input.PlayerID, "late", output.LateJoin)
	}

	output.PlayerCount = len(g.Registered)
	output.Messages = []*models.Message{
		models.NewChannelMessage(g.ChannelID, s.messages.GetRegisteredMessage(&messaging.GetRegisteredMessageInput{
			PlayerName:        g.PlayerName(input.PlayerID),
			AlreadyRegistered: output.AlreadyRegistered,
			LateJoin:          output.LateJoin,
			PlayerCount:       output.PlayerCount,
		})),
	}

	return output, nil
}

// StartGame starts the announced game and opens round 1
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if g == nil || g.ChannelID == "" {
		return nil, ErrNoActiveAnnouncement
	}

	if input.ChannelID != g.ChannelID {
		return nil, ErrWrongChannel
	}

	if g.Running {
		return nil, ErrAlreadyRunning
	}

	if len(g.Registered) == 0 {
		return nil, ErrNoPlayers
	}

	g.TotalRounds = s.resolveRounds(input.Rounds)
	g.Running = true
	g.RoundIndex = 0
	g.Overtime = false
	g.StartedAt = s.clock.Now()

	s.logger.Info("game started",
		"channel", g.ChannelID, "rounds", g.TotalRounds, "players", len(g.Registered))

	messages := []*models.Message{
		models.NewChannelMessage(g.ChannelID, s.messages.GetGameStartedMessage(&messaging.GetGameStartedMessageInput{
			Title:       g.Title,
			TotalRounds: g.TotalRounds,
			PlayerCount: len(g.Registered),
		})),
	}
	messages = append(messages, s.beginRound(g)...)

	return &StartGameOutput{
		TotalRounds: g.TotalRounds,
		PlayerCount: len(g.Registered),
		Messages:    messages,
	}, nil
}

// SubmitChoice records a choice for the open round. Submissions from a group
// channel are ignored without a reply.
func (s *service) SubmitChoice(ctx context.Context, input *SubmitChoiceInput) (*SubmitChoiceOutput, error) {
	if !input.IsDirect {
		return &SubmitChoiceOutput{Ignored: true}, nil
	}

	if !input.Choice.IsValid() {
		return nil, ErrInvalidChoice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if g == nil || !g.Running || !g.InRound {
		return nil, ErrNotInSubmissionPhase
	}

	if !g.IsRegistered(input.PlayerID) {
		return nil, ErrNotRegistered
	}

	_, changed := g.Choices[input.PlayerID]
	g.Choices[input.PlayerID] = input.Choice

	s.logger.Debug("choice recorded",
		"channel", g.ChannelID, "round", g.RoundIndex, "player", input.PlayerID, "changed", changed)

	return &SubmitChoiceOutput{
		Changed: changed,
		Messages: []*models.Message{
			models.NewPlayerMessage(input.PlayerID, s.messages.GetChoiceRecordedMessage(&messaging.GetChoiceRecordedMessageInput{
				Choice:     input.Choice,
				RoundLabel: g.RoundLabel(),
				Changed:    changed,
			})),
		},
	}, nil
}

// EndRound settles the open round and decides what comes next
func (s *service) EndRound(ctx context.Context, input *EndRoundInput) (*EndRoundOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if g == nil || !g.Running || !g.InRound {
		return nil, ErrNoRoundInProgress
	}

	if input.ChannelID != g.ChannelID {
		return nil, ErrWrongChannel
	}

	settlement, messages := s.settleRound(g)
	output := &EndRoundOutput{
		Settlement: settlement,
	}

	switch {
	case !g.Overtime && g.RoundIndex >= g.TotalRounds:
		leaders, top := g.Scores.Leaders()
		if len(leaders) >= 2 {
			g.Overtime = true
			output.EnteredOvertime = true

			s.logger.Info("entering overtime",
				"channel", g.ChannelID, "leaders", leaders, "score", top)

			messages = append(messages, models.NewChannelMessage(g.ChannelID,
				s.messages.GetOvertimeMessage(&messaging.GetOvertimeMessageInput{
					TotalRounds: g.TotalRounds,
					TopScore:    top,
					LeaderNames: s.names(g, leaders),
				})))
			messages = append(messages, s.beginRound(g)...)
			output.NextRound = g.RoundIndex
		} else {
			result, finishMessages := s.finish(ctx, g, false)
			messages = append(messages, finishMessages...)
			output.Finished = true
			output.Result = result
		}
	case g.Overtime:
		leaders, _ := g.Scores.Leaders()
		if len(leaders) >= 2 {
			messages = append(messages, s.beginRound(g)...)
			output.NextRound = g.RoundIndex
		} else {
			result, finishMessages := s.finish(ctx, g, false)
			messages = append(messages, finishMessages...)
			output.Finished = true
			output.Result = result
		}
	default:
		messages = append(messages, s.beginRound(g)...)
		output.NextRound = g.RoundIndex
	}

	output.Messages = messages
	return output, nil
}

// EndGame settles an open round, if any, and finishes the game without
// evaluating overtime
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if g == nil || !g.Running {
		return nil, ErrGameNotRunning
	}

	if input.ChannelID != g.ChannelID {
		return nil, ErrWrongChannel
	}

	output := &EndGameOutput{}
	var messages []*models.Message

	if g.InRound {
		settlement, settleMessages := s.settleRound(g)
		output.Settlement = settlement
		messages = append(messages, settleMessages...)
	}

	s.logger.Info("game ended early", "channel", g.ChannelID, "round", g.RoundIndex)

	result, finishMessages := s.finish(ctx, g, true)
	output.Result = result
	output.Messages = append(messages, finishMessages...)

	return output, nil
}

// GetStatus describes the bound game
func (s *service) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.game
	if g == nil || g.ChannelID == "" {
		return nil, ErrNoActiveAnnouncement
	}

	if input.ChannelID != g.ChannelID {
		return nil, ErrWrongChannel
	}

	output := &GetStatusOutput{
		Title:          g.Title,
		Status:         g.Status(),
		RoundIndex:     g.RoundIndex,
		TotalRounds:    g.TotalRounds,
		Overtime:       g.Overtime,
		PlayerCount:    len(g.Registered),
		SubmittedCount: len(g.Choices),
	}
	if g.Running {
		output.Standings = s.standings(g)
	}

	output.Messages = []*models.Message{
		models.NewChannelMessage(g.ChannelID, s.messages.GetStatusMessage(&messaging.GetStatusMessageInput{
			Title:          output.Title,
			Status:         output.Status,
			RoundLabel:     g.RoundLabel(),
			TotalRounds:    output.TotalRounds,
			PlayerCount:    output.PlayerCount,
			SubmittedCount: output.SubmittedCount,
			Standings:      output.Standings,
		})),
	}

	return output, nil
}

// GetLeaderboard returns the all-time standings recorded for a channel
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	board, err := s.resultsRepo.GetLeaderboard(ctx, &results.GetLeaderboardInput{
		ChannelID: input.ChannelID,
		Limit:     s.leaderboardLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return &GetLeaderboardOutput{
		Entries: board.Entries,
		Messages: []*models.Message{
			models.NewChannelMessage(input.ChannelID, s.messages.GetLeaderboardMessage(&messaging.GetLeaderboardMessageInput{
				Entries: board.Entries,
			})),
		},
	}, nil
}

// GetHistory returns the most recent finished games of a channel
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	recent, err := s.resultsRepo.GetRecentResults(ctx, &results.GetRecentResultsInput{
		ChannelID: input.ChannelID,
		Limit:     s.historyLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get recent results: %w", err)
	}

	return &GetHistoryOutput{
		Results: recent.Results,
		Messages: []*models.Message{
			models.NewChannelMessage(input.ChannelID, s.messages.GetHistoryMessage(&messaging.GetHistoryMessageInput{
				Results: recent.Results,
			})),
		},
	}, nil
}

// resolveRounds applies the default and the cap to a requested round count
func (s *service) resolveRounds(requested int) int {
	if requested <= 0 {
		return s.defaultRounds
	}
	if s.maxRounds > 0 && requested > s.maxRounds {
		return s.maxRounds
	}
	return requested
}
