package game

import (
	"context"

	"github.com/KirkDiggler/minority/internal/models"
	"github.com/KirkDiggler/minority/internal/repositories/results"
	"github.com/KirkDiggler/minority/internal/rounds"
	"github.com/KirkDiggler/minority/internal/services/messaging"
)

// beginRound opens the next round. Callers hold s.mu.
func (s *service) beginRound(g *models.Game) []*models.Message {
	g.RoundIndex++
	g.InRound = true
	g.Choices = make(map[string]models.Choice)

	s.logger.Info("round started",
		"channel", g.ChannelID, "round", g.RoundIndex, "overtime", g.Overtime)

	prompt := &messaging.GetRoundStartMessageInput{
		Title:      g.Title,
		RoundLabel: g.RoundLabel(),
		RoundIndex: g.RoundIndex,
	}

	messages := []*models.Message{
		models.NewChannelMessage(g.ChannelID, s.messages.GetRoundStartMessage(prompt)),
	}

	if s.sendReminders {
		reminder := s.messages.GetReminderMessage(prompt)
		for _, playerID := range g.PlayerIDs() {
			messages = append(messages, models.NewPlayerMessage(playerID, reminder))
		}
	}

	return messages
}

// settleRound tallies the open round, credits the winners and closes the round.
// Callers hold s.mu.
func (s *service) settleRound(g *models.Game) (*rounds.Result, []*models.Message) {
	settlement := rounds.Settle(g.Choices, g.RoundIndex)

	for _, playerID := range settlement.Credited {
		g.Scores.Credit(playerID)
	}

	g.InRound = false
	g.Choices = make(map[string]models.Choice)

	s.logger.Info("round settled",
		"channel", g.ChannelID,
		"round", g.RoundIndex,
		"a", settlement.CountA,
		"b", settlement.CountB,
		"winner", settlement.Winner,
		"reason", settlement.Reason,
	)

	return settlement, []*models.Message{
		models.NewChannelMessage(g.ChannelID, s.messages.GetSettlementMessage(&messaging.GetSettlementMessageInput{
			RoundLabel:    g.RoundLabel(),
			Result:        settlement,
			CreditedNames: s.names(g, settlement.Credited),
		})),
	}
}

// finish posts the final ranking, records the result and resets the game
// while keeping its channel and title. Callers hold s.mu.
func (s *service) finish(ctx context.Context, g *models.Game, forced bool) (*models.Result, []*models.Message) {
	g.Running = false
	g.InRound = false

	standings := s.standings(g)

	result := &models.Result{
		ID:           s.uuidGenerator.NewUUID(),
		ChannelID:    g.ChannelID,
		Title:        g.Title,
		RoundsPlayed: g.RoundIndex,
		TotalRounds:  g.TotalRounds,
		Overtime:     g.Overtime,
		Forced:       forced,
		Standings:    standings,
		StartedAt:    g.StartedAt,
		FinishedAt:   s.clock.Now(),
	}

	if leaders, top := g.Scores.Leaders(); len(leaders) == 1 && top > 0 {
		result.WinnerID = leaders[0]
	}

	s.logger.Info("game finished",
		"channel", g.ChannelID,
		"rounds", g.RoundIndex,
		"overtime", g.Overtime,
		"forced", forced,
		"winner", result.WinnerID,
	)

	// The ledger is a best-effort record, a failure must not undo the finish
	if len(standings) > 0 {
		if err := s.resultsRepo.SaveResult(ctx, &results.SaveResultInput{Result: result}); err != nil {
			s.logger.Error("failed to record result", "channel", g.ChannelID, "result", result.ID, "error", err)
		}
	}

	messages := []*models.Message{
		models.NewChannelMessage(g.ChannelID, s.messages.GetFinalRankingMessage(&messaging.GetFinalRankingMessageInput{
			Title:     g.Title,
			Standings: standings,
			Forced:    forced,
		})),
	}

	g.Reset()

	return result, messages
}

// standings converts the score board into a named ranking
func (s *service) standings(g *models.Game) []*models.Standing {
	ranking := g.Scores.Ranking()

	standings := make([]*models.Standing, 0, len(ranking))
	for _, r := range ranking {
		standings = append(standings, &models.Standing{
			PlayerID:   r.PlayerID,
			PlayerName: g.PlayerName(r.PlayerID),
			Score:      r.Score,
			Position:   r.Position,
		})
	}

	return standings
}

func (s *service) names(g *models.Game, playerIDs []string) []string {
	names := make([]string, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		names = append(names, g.PlayerName(playerID))
	}
	return names
}
