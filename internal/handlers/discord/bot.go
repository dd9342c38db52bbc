package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"github.com/KirkDiggler/minority/internal/handlers/commands"
)

// Session is the part of *discordgo.Session the bot uses
type Session interface {
	Open() error
	Close() error
	AddHandler(handler interface{}) func()
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Handler consumes inbound chat messages
type Handler interface {
	Handle(ctx context.Context, in *commands.Inbound) int
}

// Bot represents the Discord bot instance
type Bot struct {
	session Session
	logger  *log.Logger

	handler Handler
	ctx     context.Context
	remove  func()

	// Maps user ID to their DM channel ID
	mu         sync.Mutex
	dmChannels map[string]string
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Session overrides the gateway session, used by tests
	Session Session

	Logger *log.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	session := cfg.Session
	if session == nil {
		if cfg.Token == "" {
			return nil, errors.New("token cannot be empty")
		}

		dg, err := discordgo.New("Bot " + cfg.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord session: %w", err)
		}
		dg.Identify.Intents = discordgo.IntentsGuildMessages |
			discordgo.IntentsDirectMessages |
			discordgo.IntentsMessageContent
		session = dg
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Bot{
		session:    session,
		logger:     logger.WithPrefix("discord"),
		dmChannels: make(map[string]string),
	}, nil
}

// Start opens the gateway connection and feeds every message to handler
func (b *Bot) Start(ctx context.Context, handler Handler) error {
	if handler == nil {
		return errors.New("handler cannot be nil")
	}

	b.handler = handler
	b.ctx = ctx
	b.remove = b.session.AddHandler(b.handleMessageCreate)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	b.logger.Info("bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	if b.remove != nil {
		b.remove()
	}
	return b.session.Close()
}

func (b *Bot) handleMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	b.onMessage(m.Message)
}

// onMessage converts a Discord message and routes it. Bots, this one
// included, are ignored.
func (b *Bot) onMessage(m *discordgo.Message) {
	if m == nil || m.Author == nil || m.Author.Bot {
		return
	}

	in := &commands.Inbound{
		SenderID:   m.Author.ID,
		SenderName: displayName(m),
		ChannelID:  m.ChannelID,
		IsDirect:   m.GuildID == "",
		Text:       m.Content,
	}

	if in.IsDirect {
		b.rememberDM(m.Author.ID, m.ChannelID)
	}

	ctx := b.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	b.handler.Handle(ctx, in)
}

// SendToChannel posts text to a channel
func (b *Bot) SendToChannel(ctx context.Context, channelID, text string) error {
	if _, err := b.session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send to channel %s: %w", channelID, err)
	}
	return nil
}

// SendToPlayer posts text to a user's DM channel, opening it when needed
func (b *Bot) SendToPlayer(ctx context.Context, playerID, text string) error {
	channelID, err := b.dmChannel(ctx, playerID)
	if err != nil {
		return err
	}
	return b.SendToChannel(ctx, channelID, text)
}

func (b *Bot) dmChannel(ctx context.Context, playerID string) (string, error) {
	b.mu.Lock()
	channelID, ok := b.dmChannels[playerID]
	b.mu.Unlock()
	if ok {
		return channelID, nil
	}

	channel, err := b.session.UserChannelCreate(playerID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to open DM with %s: %w", playerID, err)
	}

	b.rememberDM(playerID, channel.ID)
	return channel.ID, nil
}

func (b *Bot) rememberDM(playerID, channelID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dmChannels[playerID] = channelID
}

// displayName prefers the guild nickname, then the global name, then the username
func displayName(m *discordgo.Message) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}
