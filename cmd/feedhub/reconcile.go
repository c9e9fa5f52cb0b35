package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"feedhub/internal/domain"
)

func reconcileCmd() *cli.Command {
	return &cli.Command{
		Name:  "reconcile",
		Usage: "Recompute likes and comments counters",
		Description: `Without flags, walks every feed entry and repairs counter drift, guarded
		by the configured lock. With --type and --id, reconciles a single entry and
		prints the report.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "type",
				Usage: "content type of a single entry (article, community, advertisement)",
			},
			&cli.Int64Flag{
				Name:  "id",
				Usage: "original id of a single entry",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, logger, db, err := bootstrap(c)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := wire(cfg, db, logger)
			defer svc.Close()

			ctx, cancel := context.WithTimeout(c.Context, cfg.Reconcile.Timeout)
			defer cancel()

			if c.IsSet("type") || c.IsSet("id") {
				ct, err := domain.ParseContentType(c.String("type"))
				if err != nil {
					return err
				}
				if c.Int64("id") <= 0 {
					return fmt.Errorf("--id must be positive: %w", domain.ErrValidation)
				}

				rec, err := svc.engagement.Reconcile(ctx, domain.ContentKey{ContentType: ct, OriginalID: c.Int64("id")})
				if err != nil {
					return err
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			}

			stats, err := svc.reconciler.ReconcileAll(ctx)
			if err != nil {
				return err
			}
			if stats.Skipped {
				logger.Warn().Msg("another reconciliation holds the lock")
			}
			return nil
		},
	}
}
