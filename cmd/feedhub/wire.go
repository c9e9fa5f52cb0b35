package main

import (
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"feedhub/internal/config"
	"feedhub/internal/service"
	"feedhub/internal/storage/postgres"
	"feedhub/internal/storage/redislock"
)

type services struct {
	feed       *service.FeedService
	engagement *service.EngagementService
	ads        *service.AdSelector
	content    *service.ContentService
	reconciler *service.Reconciler
	entries    *postgres.FeedEntryStore

	closers []func() error
}

func (s *services) Close() {
	for _, c := range s.closers {
		_ = c()
	}
}

func wire(cfg *config.Config, db *sqlx.DB, logger zerolog.Logger) *services {
	entries := postgres.NewFeedEntryStore(db)
	likes := postgres.NewLikeStore(db)
	comments := postgres.NewCommentStore(db)
	articles := postgres.NewArticleStore(db)
	community := postgres.NewCommunityStore(db)
	adStore := postgres.NewAdvertisementStore(db)
	txManager := postgres.NewTransactionManager(db)

	s := &services{entries: entries}

	projector := service.NewProjector(entries, likes, comments, txManager, logger)
	s.engagement = service.NewEngagementService(entries, likes, comments, txManager, logger)
	s.ads = service.NewAdSelector(adStore, logger)
	s.feed = service.NewFeedService(entries, likes, s.ads, cfg.Feed, logger)
	s.content = service.NewContentService(articles, community, adStore, projector, txManager, logger)

	var locker service.Locker
	switch cfg.Reconcile.Lock {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		s.closers = append(s.closers, client.Close)
		locker = redislock.New(client, cfg.Reconcile.LockTTL)
	default:
		locker = postgres.NewAdvisoryLocker(db)
	}
	s.reconciler = service.NewReconciler(entries, s.engagement, locker, cfg.Reconcile, logger)

	return s
}
