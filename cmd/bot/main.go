package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

// CLI holds the flags shared by every subcommand
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `env:"MINORITY_DEBUG" help:"Enable debug logging"`

	Prefix           string  `default:"/" env:"MINORITY_PREFIX" help:"Command prefix"`
	DefaultRounds    int     `default:"5" env:"MINORITY_DEFAULT_ROUNDS" help:"Rounds played when start_game gives no count"`
	MaxRounds        int     `default:"0" env:"MINORITY_MAX_ROUNDS" help:"Upper bound for a requested round count, 0 for none"`
	Reminders        bool    `env:"MINORITY_REMINDERS" help:"Privately remind every player when a round opens"`
	LeaderboardLimit int     `default:"10" env:"MINORITY_LEADERBOARD_LIMIT" help:"Entries shown by leaderboard, 0 for all"`
	Concurrency      int     `default:"8" env:"MINORITY_DELIVERY_CONCURRENCY" help:"Parallel private message deliveries"`
	CommandRate      float64 `default:"1" env:"MINORITY_COMMAND_RATE" help:"Commands per second allowed per sender, 0 for no limit"`
	CommandBurst     int     `default:"5" env:"MINORITY_COMMAND_BURST" help:"Commands a sender may issue back to back"`

	RedisAddr     string `env:"REDIS_ADDR" help:"Redis address for the results ledger, in-memory when empty"`
	RedisPassword string `env:"REDIS_PASSWORD" help:"Redis password"`
	RedisDB       int    `env:"REDIS_DB" default:"0" help:"Redis database"`
	HistoryLimit  int    `default:"20" env:"MINORITY_HISTORY_LIMIT" help:"Finished games kept per channel"`
	HistoryShown  int    `default:"5" env:"MINORITY_HISTORY_SHOWN" help:"Finished games listed by history"`

	Discord DiscordCmd `cmd:"" help:"Run the game bot on Discord"`
	Console ConsoleCmd `cmd:"" help:"Play in the terminal, one '<sender> <#channel|@dm> <text>' per line"`
}

// logger builds the root logger
func (c *CLI) logger() *log.Logger {
	level := log.InfoLevel
	if c.Debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "minority",
	})
}

func main() {
	// A missing .env is fine, flags and the environment still apply
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("minority"),
		kong.Description("Minority Game chat bot: the side with fewer votes wins"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
