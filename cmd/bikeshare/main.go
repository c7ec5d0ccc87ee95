// Package main is the entry point for the interactive bikeshare explorer.
// It wires configuration, the dataset source and the console together and
// hands control to the session loop.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fjaeril/pdsnd-github/internal/config"
	"github.com/fjaeril/pdsnd-github/internal/prompt"
	"github.com/fjaeril/pdsnd-github/internal/report"
	"github.com/fjaeril/pdsnd-github/internal/repo"
	"github.com/fjaeril/pdsnd-github/internal/service"
	"github.com/fjaeril/pdsnd-github/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr so they never interleave with the report on stdout.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	// A blocked console read does not see ctx; after the first interrupt the
	// default handler is restored so a second Ctrl-C exits immediately.
	go func() {
		<-ctx.Done()
		stop()
	}()

	source := repo.NewCSVRepo(cfg.DataDir, cfg.Cities)
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		source = repo.NewTripRepo(pool)
	}

	ctrl := session.NewController(
		prompt.New(os.Stdin, os.Stdout, prompt.DefaultOptions(cfg.Cities)),
		service.NewLoaderService(source, logger),
		service.NewStatsService(),
		report.NewPrinter(os.Stdout),
		session.Options{PageSize: cfg.PageSize, ChartDir: cfg.ChartDir},
		logger,
	)

	if err := ctrl.Run(ctx); err != nil {
		slog.Info("session interrupted", "error", err)
	}
}
