package messaging

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/minority/internal/models"
	"github.com/KirkDiggler/minority/internal/rounds"
)

// DefaultCommandPrefix is used when no prefix is configured
const DefaultCommandPrefix = "/"

var greetings = []string{
	"Welcome aboard!",
	"A new contender appears!",
	"Fresh blood! Welcome to the game.",
	"Good luck, you'll want to be in the minority.",
	"Welcome! Remember: think like nobody else does.",
}

// service implements the Service interface
type service struct {
	prefix string

	// Random number generator for greetings
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	prefix := config.CommandPrefix
	if prefix == "" {
		prefix = DefaultCommandPrefix
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		prefix: prefix,
		rand:   rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) cmd(name string) string {
	return s.prefix + name
}

func (s *service) greeting() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return greetings[s.rand.Intn(len(greetings))]
}

// GetAnnouncementMessage returns the registration call posted by announce_game
func (s *service) GetAnnouncementMessage(input *GetAnnouncementMessageInput) string {
	defaultRounds := input.DefaultRounds
	if defaultRounds <= 0 {
		defaultRounds = models.DefaultTotalRounds
	}

	return fmt.Sprintf("[%s]\n"+
		"Registration is open! Send %s in this channel to join.\n"+
		"An admin starts the game with %s (%d rounds by default, or e.g. %s 7).\n"+
		"Each round, DM me %s or %s. The minority side wins; on a tie A wins odd rounds and B wins even rounds.",
		input.Title,
		s.cmd("register"),
		s.cmd("start_game"), defaultRounds, s.cmd("start_game"),
		s.cmd("A"), s.cmd("B"),
	)
}

// GetRegisteredMessage returns the reply to register
func (s *service) GetRegisteredMessage(input *GetRegisteredMessageInput) string {
	if input.AlreadyRegistered {
		return fmt.Sprintf("%s, you're already registered. %d player(s) so far.", input.PlayerName, input.PlayerCount)
	}

	if input.LateJoin {
		return fmt.Sprintf("%s joined mid-game and starts at 0 points. DM me %s or %s while a round is open.",
			input.PlayerName, s.cmd("A"), s.cmd("B"))
	}

	return fmt.Sprintf("%s Registered %s. %d player(s) so far, waiting for %s.",
		s.greeting(), input.PlayerName, input.PlayerCount, s.cmd("start_game"))
}

// GetGameStartedMessage returns the start announcement
func (s *service) GetGameStartedMessage(input *GetGameStartedMessageInput) string {
	return fmt.Sprintf("[%s] has started! %d round(s), %d player(s) registered.",
		input.Title, input.TotalRounds, input.PlayerCount)
}

// GetRoundStartMessage returns the group prompt that opens a round
func (s *service) GetRoundStartMessage(input *GetRoundStartMessageInput) string {
	return fmt.Sprintf("%s has begun!\n"+
		"DM me %s or %s (either case works). You can change your mind, the last one counts.\n"+
		"The minority side wins; on a tie A wins odd rounds and B wins even rounds.\n"+
		"An admin closes the round with %s.",
		input.RoundLabel, s.cmd("A"), s.cmd("B"), s.cmd("end_round"))
}

// GetReminderMessage returns the private nudge sent to each player when a round opens
func (s *service) GetReminderMessage(input *GetRoundStartMessageInput) string {
	return fmt.Sprintf("%s of [%s] is open. Reply %s or %s here.",
		input.RoundLabel, input.Title, s.cmd("A"), s.cmd("B"))
}

// GetChoiceRecordedMessage returns the private confirmation of a submission
func (s *service) GetChoiceRecordedMessage(input *GetChoiceRecordedMessageInput) string {
	if input.Changed {
		return fmt.Sprintf("Changed your choice for %s to %s. The last one counts.", input.RoundLabel, input.Choice)
	}
	return fmt.Sprintf("Recorded your choice for %s: %s. You can change it until the round ends.", input.RoundLabel, input.Choice)
}

// GetSettlementMessage returns the tally of a settled round
func (s *service) GetSettlementMessage(input *GetSettlementMessageInput) string {
	result := input.Result

	var reason string
	switch result.Reason {
	case rounds.ReasonTieParity:
		parity := "even"
		if result.RoundIndex%2 != 0 {
			parity = "odd"
		}
		reason = fmt.Sprintf("tie, round %d is %s so %s wins", result.RoundIndex, parity, result.Winner)
	default:
		reason = "minority wins"
	}

	lines := []string{
		fmt.Sprintf("%s results:", input.RoundLabel),
		fmt.Sprintf("A votes: %d", result.CountA),
		fmt.Sprintf("B votes: %d", result.CountB),
		fmt.Sprintf("Winner: %s (%s)", result.Winner, reason),
	}

	if len(input.CreditedNames) == 0 {
		lines = append(lines, "Nobody picked the winning side this round.")
	} else {
		lines = append(lines, fmt.Sprintf("+1 point: %s", strings.Join(input.CreditedNames, ", ")))
	}

	return strings.Join(lines, "\n")
}

// GetOvertimeMessage returns the notice that overtime begins
func (s *service) GetOvertimeMessage(input *GetOvertimeMessageInput) string {
	return fmt.Sprintf("All %d rounds are done and the top score is tied at %d (%s). Overtime!",
		input.TotalRounds, input.TopScore, strings.Join(input.LeaderNames, ", "))
}

// GetFinalRankingMessage returns the ranking posted when the game finishes
func (s *service) GetFinalRankingMessage(input *GetFinalRankingMessageInput) string {
	if len(input.Standings) == 0 {
		return "No one scored in this game."
	}

	header := fmt.Sprintf("[%s] Final results", input.Title)
	if input.Forced {
		header += " (ended early)"
	}

	lines := []string{header}
	for _, standing := range input.Standings {
		lines = append(lines, fmt.Sprintf("%d. %s: %d point(s)", standing.Position, displayName(standing), standing.Score))
	}

	return strings.Join(lines, "\n")
}

// GetStatusMessage returns a summary of the bound game
func (s *service) GetStatusMessage(input *GetStatusMessageInput) string {
	var lines []string

	switch input.Status {
	case models.GameStatusRegistering:
		lines = append(lines,
			fmt.Sprintf("[%s] is taking registrations: %d player(s).", input.Title, input.PlayerCount))
	case models.GameStatusInRound:
		lines = append(lines,
			fmt.Sprintf("[%s] %s of %d is open: %d of %d player(s) have submitted.",
				input.Title, input.RoundLabel, input.TotalRounds, input.SubmittedCount, input.PlayerCount))
	default:
		lines = append(lines,
			fmt.Sprintf("[%s] is running, %s of %d has been settled.", input.Title, input.RoundLabel, input.TotalRounds))
	}

	for _, standing := range input.Standings {
		lines = append(lines, fmt.Sprintf("%d. %s: %d", standing.Position, displayName(standing), standing.Score))
	}

	return strings.Join(lines, "\n")
}

// GetLeaderboardMessage returns the all-time leaderboard of a channel
func (s *service) GetLeaderboardMessage(input *GetLeaderboardMessageInput) string {
	if len(input.Entries) == 0 {
		return "No finished games recorded in this channel yet."
	}

	lines := []string{"All-time leaderboard"}
	for i, entry := range input.Entries {
		name := entry.PlayerName
		if name == "" {
			name = entry.PlayerID
		}
		lines = append(lines, fmt.Sprintf("%d. %s: %d point(s), %d win(s), %d game(s)",
			i+1, name, entry.Points, entry.Wins, entry.GamesPlayed))
	}

	return strings.Join(lines, "\n")
}

// GetHistoryMessage returns the list of recent games of a channel
func (s *service) GetHistoryMessage(input *GetHistoryMessageInput) string {
	if len(input.Results) == 0 {
		return "No finished games recorded in this channel yet."
	}

	lines := []string{"Recent games"}
	for _, result := range input.Results {
		winner := "no sole winner"
		for _, standing := range result.Standings {
			if result.WinnerID != "" && standing.PlayerID == result.WinnerID {
				winner = "won by " + displayName(standing)
				break
			}
		}

		line := fmt.Sprintf("%s [%s] %s after %d round(s)",
			result.FinishedAt.Format("2006-01-02 15:04"), result.Title, winner, result.RoundsPlayed)
		if result.Overtime {
			line += " with overtime"
		}
		if result.Forced {
			line += " (ended early)"
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// GetHelpMessage returns the command reference
func (s *service) GetHelpMessage() string {
	return strings.Join([]string{
		"Minority Game commands:",
		fmt.Sprintf("%s [title]: open registration in this channel", s.cmd("announce_game")),
		fmt.Sprintf("%s: join the announced game", s.cmd("register")),
		fmt.Sprintf("%s [rounds]: start the game", s.cmd("start_game")),
		fmt.Sprintf("%s / %s (in DM): pick a side for the current round", s.cmd("A"), s.cmd("B")),
		fmt.Sprintf("%s: settle the current round", s.cmd("end_round")),
		fmt.Sprintf("%s: settle and finish the game now", s.cmd("end_game")),
		fmt.Sprintf("%s: show the current game", s.cmd("status")),
		fmt.Sprintf("%s: show all-time standings", s.cmd("leaderboard")),
		fmt.Sprintf("%s: list recent games", s.cmd("history")),
	}, "\n")
}

func displayName(standing *models.Standing) string {
	if standing.PlayerName != "" {
		return standing.PlayerName
	}
	return standing.PlayerID
}
