package commands

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_sender.go github.com/KirkDiggler/minority/internal/handlers/commands Sender

// Sender delivers text through a chat platform
type Sender interface {
	// SendToChannel posts text to a group or direct channel
	SendToChannel(ctx context.Context, channelID, text string) error

	// SendToPlayer posts text to a player's private channel
	SendToPlayer(ctx context.Context, playerID, text string) error
}

// Inbound is a chat message as seen by the router
type Inbound struct {
	// SenderID is the platform user ID of the author
	SenderID string

	// SenderName is the display name of the author
	SenderName string

	// ChannelID is the channel the message was posted in
	ChannelID string

	// IsDirect is true when the message came from a private channel
	IsDirect bool

	// Text is the raw message content
	Text string
}
