package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/minority/internal/handlers/console"
)

// ConsoleCmd plays the game over stdin and stdout
type ConsoleCmd struct {
	Script string `arg:"" optional:"" type:"existingfile" help:"Read commands from this file instead of stdin"`
}

func (c *ConsoleCmd) Run(cli *CLI) error {
	logger := cli.logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cli, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	var input io.Reader = os.Stdin
	if c.Script != "" {
		f, err := os.Open(c.Script)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		input = f
		// scripts replay as fast as they are read
		cli.CommandRate = 0
	}

	con, err := console.New(&console.Config{
		Input:  input,
		Output: os.Stdout,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	router, err := a.router(con)
	if err != nil {
		return err
	}

	return con.Run(ctx, router)
}
