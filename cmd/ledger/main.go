package main

import (
	"log/slog"
	"os"
	_ "time/tzdata"

	"household-ledger/internal/config"
	"household-ledger/internal/dto"

	"github.com/alecthomas/kong"
)

// cliContext holds global options
type cliContext struct {
	LogLevel string `name:"log-level" default:"info" help:"Log level [debug info warn error]."`
	LogJSON  bool   `name:"log-json" help:"Write logs as JSON."`
}

// cli commands / args available
var cli struct {
	Ctx cliContext `embed`

	Serve   serveCmd   `cmd help:"Run the ledger HTTP API."`
	Migrate migrateCmd `cmd help:"Manage the database schema."`
	Seed    seedCmd    `cmd help:"Fill the store with generated household data."`
}

// setup installs the default logger and loads configuration
func (c *cliContext) setup() *config.Config {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if c.LogJSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	cfg := config.Load()
	dto.Location = cfg.Report.Location
	return cfg
}

func main() {
	ctx := kong.Parse(&cli)
	err := ctx.Run(&cli.Ctx)
	ctx.FatalIfErrorf(err)
}
