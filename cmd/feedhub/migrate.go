package main

import (
	"github.com/urfave/cli/v2"

	"feedhub/internal/storage/postgres"
)

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:        "migrate",
		Usage:       "Run database migrations",
		Description: `Applies every pending migration. With --down, rolls back the most recent one instead.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "down",
				Usage: "roll back the last migration",
			},
		},
		Action: func(c *cli.Context) error {
			_, logger, db, err := bootstrap(c)
			if err != nil {
				return err
			}
			defer db.Close()

			if c.Bool("down") {
				if err := postgres.Rollback(db); err != nil {
					return err
				}
				logger.Info().Msg("rolled back last migration")
				return nil
			}

			if err := postgres.Migrate(db); err != nil {
				return err
			}
			logger.Info().Msg("migrations applied")
			return nil
		},
	}
}
