package models

// Recipient tells the adapter where a message goes
type Recipient string

const (
	// RecipientChannel sends to a group channel
	RecipientChannel Recipient = "channel"

	// RecipientPlayer sends to a player's private channel
	RecipientPlayer Recipient = "player"
)

// Message is a single outbound text produced by a game transition
type Message struct {
	// Recipient selects the delivery target
	Recipient Recipient

	// ChannelID is set for channel messages
	ChannelID string

	// PlayerID is set for private messages
	PlayerID string

	// Text is the plain text body
	Text string
}

// NewChannelMessage creates a message for a group channel
func NewChannelMessage(channelID, text string) *Message {
	return &Message{
		Recipient: RecipientChannel,
		ChannelID: channelID,
		Text:      text,
	}
}

// NewPlayerMessage creates a private message for a player
func NewPlayerMessage(playerID, text string) *Message {
	return &Message{
		Recipient: RecipientPlayer,
		PlayerID:  playerID,
		Text:      text,
	}
}
