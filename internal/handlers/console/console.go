package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/KirkDiggler/minority/internal/handlers/commands"
)

// Handler consumes inbound chat messages
type Handler interface {
	Handle(ctx context.Context, in *commands.Inbound) int
}

// Config holds the configuration for the console adapter
type Config struct {
	// Input supplies lines of the form "<sender> <#channel|@dm> <text>"
	Input io.Reader

	// Output receives delivered messages as "[#channel] text" or "[@player] text"
	Output io.Writer

	Logger *log.Logger
}

// Console plays the game over line oriented text streams
type Console struct {
	input  io.Reader
	logger *log.Logger

	mu     sync.Mutex
	output io.Writer
}

// New creates a new console adapter
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Input == nil || cfg.Output == nil {
		return nil, errors.New("input and output are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Console{
		input:  cfg.Input,
		output: cfg.Output,
		logger: logger.WithPrefix("console"),
	}, nil
}

// Run routes every input line until the input ends or ctx is done
func (c *Console) Run(ctx context.Context, handler Handler) error {
	scanner := bufio.NewScanner(c.input)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		in, err := ParseLine(line)
		if err != nil {
			c.logger.Warn("skipping line", "line", line, "error", err)
			continue
		}

		handler.Handle(ctx, in)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// ParseLine reads "<sender> <#channel|@dm> <text>"
func ParseLine(line string) (*commands.Inbound, error) {
	fields := strings.SplitN(strings.TrimSpace(line), " ", 3)
	if len(fields) < 3 {
		return nil, errors.New("expected <sender> <#channel|@dm> <text>")
	}

	sender, where, text := fields[0], fields[1], strings.TrimSpace(fields[2])

	in := &commands.Inbound{
		SenderID:   sender,
		SenderName: sender,
		Text:       text,
	}

	switch {
	case where == "@dm":
		in.ChannelID = "@" + sender
		in.IsDirect = true
	case strings.HasPrefix(where, "#") && len(where) > 1:
		in.ChannelID = strings.TrimPrefix(where, "#")
	default:
		return nil, fmt.Errorf("unknown destination %q", where)
	}

	return in, nil
}

// SendToChannel prints a channel message
func (c *Console) SendToChannel(_ context.Context, channelID, text string) error {
	return c.print("#"+channelID, text)
}

// SendToPlayer prints a private message
func (c *Console) SendToPlayer(_ context.Context, playerID, text string) error {
	return c.print("@"+playerID, text)
}

func (c *Console) print(target, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := fmt.Fprintf(c.output, "[%s] %s\n", target, text)
	return err
}
