package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"feedhub/internal/api"
	"feedhub/internal/consumer"
	"feedhub/internal/metrics"
	"feedhub/internal/scheduler"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the feed API",
		Description: `Starts the HTTP API. Depending on configuration it also consumes the
		article import queue and runs the periodic counter reconciliation.`,
		Action: func(c *cli.Context) error {
			cfg, logger, db, err := bootstrap(c)
			if err != nil {
				return err
			}
			defer db.Close()

			metrics.MustRegister(prometheus.DefaultRegisterer)

			svc := wire(cfg, db, logger)
			defer svc.Close()

			server := api.NewServer(svc.feed, svc.engagement, svc.ads, svc.content, cfg.HTTP,
				api.WithLogger(logger),
				api.WithHealthCheck(db.PingContext),
				api.WithAdSpacing(cfg.Feed.AdEvery),
			)

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)

			g.Go(server.Start)
			g.Go(func() error {
				<-ctx.Done()
				logger.Info().Msg("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			})

			if cfg.RabbitMQ.Enabled {
				importer := consumer.New(consumer.Config{
					URL:        cfg.RabbitMQ.URL,
					Exchange:   cfg.RabbitMQ.Exchange,
					RoutingKey: cfg.RabbitMQ.RoutingKey,
					QueueName:  cfg.RabbitMQ.QueueName,
					Prefetch:   cfg.RabbitMQ.Prefetch,
				}, svc.content, logger)
				g.Go(func() error { return importer.Run(ctx) })
			}

			if cfg.Reconcile.Interval > 0 {
				sched := scheduler.NewScheduler(svc.reconciler, cfg.Reconcile.Interval, cfg.Reconcile.Timeout, logger)
				g.Go(func() error {
					if err := sched.Start(ctx); err != nil && ctx.Err() == nil {
						return err
					}
					return nil
				})
			}

			logger.Info().
				Str("addr", cfg.HTTP.Addr).
				Bool("import_queue", cfg.RabbitMQ.Enabled).
				Dur("reconcile_interval", cfg.Reconcile.Interval).
				Msg("feedhub started")

			return g.Wait()
		},
	}
}
