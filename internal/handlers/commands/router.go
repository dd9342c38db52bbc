package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/KirkDiggler/minority/internal/models"
	"github.com/KirkDiggler/minority/internal/services/game"
	"github.com/KirkDiggler/minority/internal/services/messaging"
)

// DefaultDeliveryConcurrency bounds parallel private deliveries
const DefaultDeliveryConcurrency = 8

var (
	ErrNilConfig      = errors.New("config cannot be nil")
	ErrNilGameService = errors.New("game service cannot be nil")
	ErrNilMessaging   = errors.New("messaging service cannot be nil")
	ErrNilSender      = errors.New("sender cannot be nil")
)

// errAnnounceInDirect rejects announce_game sent from a private channel
var errAnnounceInDirect = errors.New("announce_game must be used in a group channel")

// RouterConfig holds configuration for the command router
type RouterConfig struct {
	// Prefix marks a message as a command, "/" by default
	Prefix string

	// DeliveryConcurrency bounds parallel private deliveries
	DeliveryConcurrency int

	// CommandRate is the sustained commands per second allowed per sender, 0 for no limit
	CommandRate float64

	// CommandBurst is how many commands a sender may issue back to back
	CommandBurst int

	GameService game.Service
	Messages    messaging.Service
	Sender      Sender
	Logger      *log.Logger
}

// Router turns chat messages into game operations and delivers the replies
type Router struct {
	prefix      string
	concurrency int
	limits      *senderLimits

	gameService game.Service
	messages    messaging.Service
	sender      Sender
	logger      *log.Logger
}

// NewRouter creates a new command router
func NewRouter(cfg *RouterConfig) (*Router, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}

	if cfg.Messages == nil {
		return nil, ErrNilMessaging
	}

	if cfg.Sender == nil {
		return nil, ErrNilSender
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = messaging.DefaultCommandPrefix
	}

	concurrency := cfg.DeliveryConcurrency
	if concurrency <= 0 {
		concurrency = DefaultDeliveryConcurrency
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Router{
		prefix:      prefix,
		concurrency: concurrency,
		limits:      newSenderLimits(cfg.CommandRate, cfg.CommandBurst),
		gameService: cfg.GameService,
		messages:    cfg.Messages,
		sender:      cfg.Sender,
		logger:      logger.WithPrefix("router"),
	}, nil
}

// Handle runs the command in a chat message, if there is one, and returns how
// many outbound messages were delivered. Delivery failures are logged only.
func (r *Router) Handle(ctx context.Context, in *Inbound) int {
	cmd, ok := Parse(r.prefix, in.Text)
	if !ok {
		return 0
	}

	// choices are never throttled, the last one sent must be the one counted
	if !cmd.IsChoice() && !r.limits.allow(in.SenderID) {
		r.logger.Debug("command throttled", "command", cmd.Name, "sender", in.SenderID)
		return 0
	}

	r.logger.Debug("command received",
		"command", cmd.Name, "sender", in.SenderID, "channel", in.ChannelID, "direct", in.IsDirect)

	messages, err := r.dispatch(ctx, in, cmd)
	if err != nil {
		messages = []*models.Message{r.errorReply(in, cmd, err)}
	}

	return r.deliver(ctx, messages)
}

func (r *Router) dispatch(ctx context.Context, in *Inbound, cmd *Command) ([]*models.Message, error) {
	if cmd.IsChoice() {
		choice, ok := models.ParseChoice(cmd.Name)
		if !ok {
			return nil, game.ErrInvalidChoice
		}

		output, err := r.gameService.SubmitChoice(ctx, &game.SubmitChoiceInput{
			PlayerID: in.SenderID,
			Choice:   choice,
			IsDirect: in.IsDirect,
		})
		if err != nil {
			return nil, err
		}
		return output.Messages, nil
	}

	switch cmd.Name {
	case CommandAnnounceGame:
		if in.IsDirect {
			return nil, errAnnounceInDirect
		}

		channelID := in.ChannelID
		args := cmd.Args
		if len(args) > 0 {
			if mentioned, ok := ParseChannelMention(args[0]); ok {
				channelID = mentioned
				args = args[1:]
			}
		}

		output, err := r.gameService.AnnounceGame(ctx, &game.AnnounceGameInput{
			ChannelID: channelID,
			Title:     strings.Join(args, " "),
		})
		if err != nil {
			return nil, err
		}
		return output.Messages, nil

	case CommandRegister:
		output, err := r.gameService.Register(ctx, &game.RegisterInput{
			ChannelID:  in.ChannelID,
			PlayerID:   in.SenderID,
			PlayerName: in.SenderName,
		})
		if err != nil {
			return nil, err
		}
		return output.Messages, nil

	case CommandStartGame:
		output, err := r.gameService.StartGame(ctx, &game.StartGameInput{
			ChannelID: in.ChannelID,
			Rounds:    parseRounds(cmd.Args),
		})
		if err != nil {
			return nil, err
		}
		return output.Messages, nil

	case CommandEndRound:
		output, err := r.gameService.EndRound(ctx, &game.EndRoundInput{ChannelID: in.ChannelID})
		if err != nil {
			return nil, err
		}
		return output.Messages, nil

	case CommandEndGame:
		output, err := r.gameService.EndGame(ctx, &game.EndGameInput{ChannelID: in.ChannelID})
		if err != nil {
			return nil, err
		}
		return output.Messages, nil

	case CommandStatus:
		output, err := r.gameService.GetStatus(ctx, &game.GetStatusInput{ChannelID: in.ChannelID})
		if err != nil {
			return nil, err
		}
		return output.Messages, nil

	case CommandLeaderboard:
		output, err := r.gameService.GetLeaderboard(ctx, &game.GetLeaderboardInput{ChannelID: in.ChannelID})
		if err != nil {
			return nil, err
		}
		return output.Messages, nil

	case CommandHistory:
		output, err := r.gameService.GetHistory(ctx, &game.GetHistoryInput{ChannelID: in.ChannelID})
		if err != nil {
			return nil, err
		}
		return output.Messages, nil

	case CommandHelp:
		return []*models.Message{r.reply(in, r.messages.GetHelpMessage())}, nil
	}

	return nil, fmt.Errorf("unhandled command %q", cmd.Name)
}

// parseRounds reads the optional round count, anything but an integer means default
func parseRounds(args []string) int {
	if len(args) == 0 {
		return 0
	}

	rounds, err := strconv.Atoi(args[0])
	if err != nil {
		return 0
	}
	return rounds
}

// reply addresses text back to where the command came from
func (r *Router) reply(in *Inbound, text string) *models.Message {
	if in.IsDirect {
		return models.NewPlayerMessage(in.SenderID, text)
	}
	return models.NewChannelMessage(in.ChannelID, text)
}

func (r *Router) errorReply(in *Inbound, cmd *Command, err error) *models.Message {
	text, known := r.errorText(err)
	if known {
		r.logger.Debug("command rejected", "command", cmd.Name, "sender", in.SenderID, "error", err)
	} else {
		r.logger.Error("command failed", "command", cmd.Name, "sender", in.SenderID, "error", err)
	}
	return r.reply(in, text)
}

func (r *Router) errorText(err error) (string, bool) {
	if errors.Is(err, errAnnounceInDirect) {
		return fmt.Sprintf("Use %s%s in the group channel that should host the game.", r.prefix, CommandAnnounceGame), true
	}

	var gameErr game.GameError
	if !errors.As(err, &gameErr) {
		return "Something went wrong, please try again.", false
	}

	switch gameErr {
	case game.ErrNoActiveAnnouncement:
		return fmt.Sprintf("No game has been announced. Use %s%s first.", r.prefix, CommandAnnounceGame), true
	case game.ErrWrongChannel:
		return "That command only works in the game channel.", true
	case game.ErrAlreadyRunning:
		return "The game is already running.", true
	case game.ErrNoRoundInProgress:
		return "There is no round in progress.", true
	case game.ErrGameNotRunning:
		return "There is no game in progress.", true
	case game.ErrNoPlayers:
		return fmt.Sprintf("Nobody has registered yet. Send %s%s to join.", r.prefix, CommandRegister), true
	case game.ErrNotRegistered:
		return "You are not registered for this game.", true
	case game.ErrNotInSubmissionPhase:
		return "Choices are not being accepted right now.", true
	case game.ErrInvalidChoice:
		return fmt.Sprintf("Pick %sA or %sB.", r.prefix, r.prefix), true
	}

	return gameErr.Error(), true
}
