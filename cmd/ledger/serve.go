package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"household-ledger/internal/database"
	"household-ledger/internal/server"

	"golang.org/x/sync/errgroup"
)

type serveCmd struct{}

func (s *serveCmd) Run(c *cliContext) error {
	cfg := c.setup()

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(ctx, cfg, db.DB)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		return srv.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("Server stopped gracefully")
	return nil
}
