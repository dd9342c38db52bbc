package messaging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/minority/internal/models"
	"github.com/KirkDiggler/minority/internal/rounds"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	svc Service
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{
		CommandPrefix: "!",
		Seed:          42,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestDefaultPrefix() {
	svc, err := NewService(nil)
	s.Require().NoError(err)

	msg := svc.GetAnnouncementMessage(&GetAnnouncementMessageInput{Title: "T"})
	s.Contains(msg, "/register")
	s.Contains(msg, "5 rounds by default")
}

func (s *MessagingServiceTestSuite) TestAnnouncementUsesPrefix() {
	msg := s.svc.GetAnnouncementMessage(&GetAnnouncementMessageInput{
		Title:         "Friday",
		DefaultRounds: 3,
	})

	s.Contains(msg, "[Friday]")
	s.Contains(msg, "!register")
	s.Contains(msg, "!start_game")
	s.Contains(msg, "3 rounds by default")
	s.Contains(msg, "!A")
}

func (s *MessagingServiceTestSuite) TestRegisteredVariants() {
	fresh := s.svc.GetRegisteredMessage(&GetRegisteredMessageInput{PlayerName: "Alice", PlayerCount: 2})
	s.Contains(fresh, "Registered Alice")
	s.Contains(fresh, "2 player(s)")

	again := s.svc.GetRegisteredMessage(&GetRegisteredMessageInput{PlayerName: "Alice", AlreadyRegistered: true, PlayerCount: 2})
	s.Contains(again, "already registered")

	late := s.svc.GetRegisteredMessage(&GetRegisteredMessageInput{PlayerName: "Bob", LateJoin: true, PlayerCount: 3})
	s.Contains(late, "mid-game")
}

func (s *MessagingServiceTestSuite) TestSettlementMinority() {
	msg := s.svc.GetSettlementMessage(&GetSettlementMessageInput{
		RoundLabel: "Round 3",
		Result: &rounds.Result{
			RoundIndex: 3,
			CountA:     2,
			CountB:     1,
			Winner:     models.ChoiceB,
			Reason:     rounds.ReasonMinority,
			Credited:   []string{"p3"},
		},
		CreditedNames: []string{"Carol"},
	})

	s.Equal("Round 3 results:\n"+
		"A votes: 2\n"+
		"B votes: 1\n"+
		"Winner: B (minority wins)\n"+
		"+1 point: Carol", msg)
}

func (s *MessagingServiceTestSuite) TestSettlementTie() {
	msg := s.svc.GetSettlementMessage(&GetSettlementMessageInput{
		RoundLabel: "Overtime",
		Result: &rounds.Result{
			RoundIndex: 4,
			Winner:     models.ChoiceB,
			Reason:     rounds.ReasonTieParity,
			Credited:   []string{},
		},
	})

	s.Contains(msg, "Overtime results:")
	s.Contains(msg, "tie, round 4 is even so B wins")
	s.Contains(msg, "Nobody picked the winning side")
}

func (s *MessagingServiceTestSuite) TestFinalRanking() {
	msg := s.svc.GetFinalRankingMessage(&GetFinalRankingMessageInput{
		Title: "Friday",
		Standings: []*models.Standing{
			{PlayerID: "p1", PlayerName: "Alice", Score: 2, Position: 1},
			{PlayerID: "p2", Score: 0, Position: 2},
		},
	})
	s.Equal("[Friday] Final results\n1. Alice: 2 point(s)\n2. p2: 0 point(s)", msg)

	forced := s.svc.GetFinalRankingMessage(&GetFinalRankingMessageInput{
		Title:     "Friday",
		Standings: []*models.Standing{{PlayerID: "p1", Score: 1, Position: 1}},
		Forced:    true,
	})
	s.Contains(forced, "(ended early)")

	s.Equal("No one scored in this game.", s.svc.GetFinalRankingMessage(&GetFinalRankingMessageInput{Title: "Friday"}))
}

func (s *MessagingServiceTestSuite) TestStatus() {
	msg := s.svc.GetStatusMessage(&GetStatusMessageInput{
		Title:          "Friday",
		Status:         models.GameStatusInRound,
		RoundLabel:     "Round 2",
		TotalRounds:    5,
		PlayerCount:    4,
		SubmittedCount: 3,
		Standings:      []*models.Standing{{PlayerID: "p1", PlayerName: "Alice", Score: 1, Position: 1}},
	})

	s.Contains(msg, "Round 2 of 5 is open: 3 of 4 player(s) have submitted.")
	s.Contains(msg, "1. Alice: 1")
}

func (s *MessagingServiceTestSuite) TestLeaderboard() {
	s.Contains(s.svc.GetLeaderboardMessage(&GetLeaderboardMessageInput{}), "No finished games")

	msg := s.svc.GetLeaderboardMessage(&GetLeaderboardMessageInput{
		Entries: []*models.LeaderboardEntry{
			{PlayerID: "p1", PlayerName: "Alice", Points: 7, Wins: 2, GamesPlayed: 3},
			{PlayerID: "p2", Points: 1, GamesPlayed: 1},
		},
	})
	s.Contains(msg, "1. Alice: 7 point(s), 2 win(s), 3 game(s)")
	s.Contains(msg, "2. p2: 1 point(s), 0 win(s), 1 game(s)")
}

func (s *MessagingServiceTestSuite) TestHelpListsEveryCommand() {
	msg := s.svc.GetHelpMessage()
	for _, name := range []string{"announce_game", "register", "start_game", "!A", "!B", "end_round", "end_game", "status", "leaderboard", "history"} {
		s.Contains(msg, name)
	}
}

func (s *MessagingServiceTestSuite) TestHistory() {
	s.Contains(s.svc.GetHistoryMessage(&GetHistoryMessageInput{}), "No finished games")

	finishedAt := time.Date(2026, 10, 18, 21, 30, 0, 0, time.UTC)
	msg := s.svc.GetHistoryMessage(&GetHistoryMessageInput{
		Results: []*models.Result{
			{
				Title:        "Late Show",
				WinnerID:     "p1",
				RoundsPlayed: 6,
				Overtime:     true,
				FinishedAt:   finishedAt,
				Standings: []*models.Standing{
					{PlayerID: "p1", PlayerName: "Alice", Score: 3, Position: 1},
				},
			},
			{
				Title:        "Quick One",
				RoundsPlayed: 2,
				Forced:       true,
				FinishedAt:   finishedAt,
			},
		},
	})
	s.Contains(msg, "2026-10-18 21:30 [Late Show] won by Alice after 6 round(s) with overtime")
	s.Contains(msg, "[Quick One] no sole winner after 2 round(s) (ended early)")
}
