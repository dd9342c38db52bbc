package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/minority/internal/handlers/commands"
	"github.com/KirkDiggler/minority/internal/repositories/results"
	"github.com/KirkDiggler/minority/internal/services/game"
	"github.com/KirkDiggler/minority/internal/services/messaging"
)

// app wires the services shared by every adapter
type app struct {
	cli         *CLI
	logger      *log.Logger
	messages    messaging.Service
	gameService game.Service
	redisClient *redis.Client
}

func newApp(cli *CLI, logger *log.Logger) (*app, error) {
	a := &app{
		cli:    cli,
		logger: logger,
	}

	resultsRepo, err := a.resultsRepo()
	if err != nil {
		return nil, err
	}

	a.messages, err = messaging.NewService(&messaging.ServiceConfig{
		CommandPrefix: cli.Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	a.gameService, err = game.New(&game.Config{
		DefaultRounds:    cli.DefaultRounds,
		MaxRounds:        cli.MaxRounds,
		SendReminders:    cli.Reminders,
		LeaderboardLimit: cli.LeaderboardLimit,
		HistoryLimit:     cli.HistoryShown,
		ResultsRepo:      resultsRepo,
		Messages:         a.messages,
		Logger:           logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}

	return a, nil
}

func (a *app) resultsRepo() (results.Repository, error) {
	if a.cli.RedisAddr == "" {
		a.logger.Info("no redis address, results are kept in memory")
		return results.NewMemory(a.cli.HistoryLimit), nil
	}

	a.redisClient = redis.NewClient(&redis.Options{
		Addr:     a.cli.RedisAddr,
		Password: a.cli.RedisPassword,
		DB:       a.cli.RedisDB,
	})

	repo, err := results.NewRedis(&results.Config{
		RedisClient:  a.redisClient,
		HistoryLimit: a.cli.HistoryLimit,
	})
	if err != nil {
		_ = a.redisClient.Close()
		return nil, fmt.Errorf("failed to create results repository: %w", err)
	}

	a.logger.Info("recording results in redis", "addr", a.cli.RedisAddr, "db", a.cli.RedisDB)
	return repo, nil
}

func (a *app) router(sender commands.Sender) (*commands.Router, error) {
	router, err := commands.NewRouter(&commands.RouterConfig{
		Prefix:              a.cli.Prefix,
		DeliveryConcurrency: a.cli.Concurrency,
		CommandRate:         a.cli.CommandRate,
		CommandBurst:        a.cli.CommandBurst,
		GameService:         a.gameService,
		Messages:            a.messages,
		Sender:              sender,
		Logger:              a.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}
	return router, nil
}

func (a *app) Close() {
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis client", "error", err)
		}
	}
}
