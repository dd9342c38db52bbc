package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/minority/internal/handlers/discord"
)

// DiscordCmd runs the bot against the Discord gateway
type DiscordCmd struct {
	Token string `required:"" env:"DISCORD_TOKEN" help:"Discord bot token"`
}

func (c *DiscordCmd) Run(cli *CLI) error {
	logger := cli.logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cli, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	bot, err := discord.New(&discord.Config{
		Token:  c.Token,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	router, err := a.router(bot)
	if err != nil {
		return err
	}

	if err := bot.Start(ctx, router); err != nil {
		return err
	}

	<-ctx.Done()

	if err := bot.Stop(); err != nil {
		logger.Error("error stopping bot", "error", err)
	}
	logger.Info("bot has been shut down")
	return nil
}
