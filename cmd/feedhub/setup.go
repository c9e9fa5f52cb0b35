package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"feedhub/internal/config"
	"feedhub/internal/storage/postgres"
)

func setupLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Str("service", "feedhub").Logger()
}

// bootstrap loads the config, builds the logger and opens the shared pool.
func bootstrap(c *cli.Context) (*config.Config, zerolog.Logger, *sqlx.DB, error) {
	logger := setupLogger("info")

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load config")
		return nil, logger, nil, err
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(c.Context, 30*time.Second)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error().Err(err).Msg("failed to connect to database")
		return nil, logger, nil, err
	}
	logger.Info().
		Str("host", cfg.Database.Host).
		Str("dbname", cfg.Database.DBName).
		Msg("connected to database")

	return cfg, logger, db, nil
}
