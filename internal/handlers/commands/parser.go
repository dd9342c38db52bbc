package commands

import "strings"

// Command names understood by the router
const (
	CommandAnnounceGame = "announce_game"
	CommandRegister     = "register"
	CommandStartGame    = "start_game"
	CommandEndRound     = "end_round"
	CommandEndGame      = "end_game"
	CommandStatus       = "status"
	CommandLeaderboard  = "leaderboard"
	CommandHistory      = "history"
	CommandHelp         = "help"
)

var knownCommands = map[string]bool{
	CommandAnnounceGame: true,
	CommandRegister:     true,
	CommandStartGame:    true,
	CommandEndRound:     true,
	CommandEndGame:      true,
	CommandStatus:       true,
	CommandLeaderboard:  true,
	CommandHistory:      true,
	CommandHelp:         true,
	"A":                 true,
	"a":                 true,
	"B":                 true,
	"b":                 true,
}

// Command is a parsed chat command
type Command struct {
	// Name is the command name without the prefix
	Name string

	// Args are the whitespace separated arguments
	Args []string
}

// Parse reads a command from a chat message. Text that does not start with the
// prefix or names an unknown command is not a command.
func Parse(prefix, text string) (*Command, bool) {
	text = strings.TrimSpace(text)
	if prefix == "" || !strings.HasPrefix(text, prefix) {
		return nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(text, prefix))
	if len(fields) == 0 || !knownCommands[fields[0]] {
		return nil, false
	}

	return &Command{
		Name: fields[0],
		Args: fields[1:],
	}, true
}

// IsChoice reports whether the command submits a side
func (c *Command) IsChoice() bool {
	switch c.Name {
	case "A", "a", "B", "b":
		return true
	}
	return false
}

// ParseChannelMention extracts the channel ID from a <#id> mention
func ParseChannelMention(arg string) (string, bool) {
	if !strings.HasPrefix(arg, "<#") || !strings.HasSuffix(arg, ">") {
		return "", false
	}

	channelID := arg[2 : len(arg)-1]
	if channelID == "" {
		return "", false
	}

	return channelID, true
}
