// Package main imports the configured city CSV files into Postgres.
// It applies pending goose migrations first, then replaces each city's
// trips inside its own transaction. Pass city names as arguments to import
// a subset; with no arguments every configured city is imported.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/fjaeril/pdsnd-github/internal/config"
	"github.com/fjaeril/pdsnd-github/internal/domain"
	"github.com/fjaeril/pdsnd-github/internal/repo"
	"github.com/fjaeril/pdsnd-github/migrations"
)

func main() {
	cfg, err := config.Load()
	if err == nil {
		err = cfg.RequireDatabase()
	}
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()

	if err := migrate(ctx, cfg.DatabaseURL); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	cities, err := selectCities(cfg.Cities, os.Args[1:])
	if err != nil {
		slog.Error("invalid arguments", "error", err)
		os.Exit(2)
	}

	csvSource := repo.NewCSVRepo(cfg.DataDir, cfg.Cities)
	failed := 0
	for _, city := range cities {
		start := time.Now()
		n, err := importCity(ctx, pool, csvSource, city.Name)
		if err != nil {
			slog.Error("import failed", "city", city.Name, "error", err)
			failed++
			continue
		}
		slog.Info("city imported", "city", city.Name, "trips", n, "duration_ms", time.Since(start).Milliseconds())
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// migrate applies all pending migrations using goose over database/sql.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("up: %w", err)
	}
	for _, r := range results {
		slog.Info("migration applied", "version", r.Source.Version, "duration_ms", r.Duration.Milliseconds())
	}
	return nil
}

// importCity reads a city's CSV and replaces its stored trips in one transaction.
func importCity(ctx context.Context, pool *pgxpool.Pool, source repo.DatasetRepo, city string) (int64, error) {
	ds, err := source.Load(ctx, city)
	if err != nil {
		return 0, err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	n, err := repo.NewTripRepo(tx).Import(ctx, ds)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return n, nil
}

// selectCities returns the cities named in args, or the whole table when args is empty.
func selectCities(table domain.CityTable, args []string) (domain.CityTable, error) {
	if len(args) == 0 {
		return table, nil
	}
	out := make(domain.CityTable, 0, len(args))
	for _, a := range args {
		c, ok := table.Lookup(a)
		if !ok {
			return nil, fmt.Errorf("unknown city %q, valid options are %v", a, table.Names())
		}
		out = append(out, c)
	}
	return out, nil
}
