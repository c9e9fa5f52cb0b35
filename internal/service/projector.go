package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"feedhub/internal/domain"
	"feedhub/internal/metrics"
)

// Projector keeps feed_entries in step with the canonical tables. It never
// touches counters except by deleting the entry.
type Projector struct {
	entries   FeedEntryStore
	likes     LikeStore
	comments  CommentStore
	txManager TransactionManager
	logger    zerolog.Logger
}

func NewProjector(
	entries FeedEntryStore,
	likes LikeStore,
	comments CommentStore,
	txManager TransactionManager,
	logger zerolog.Logger,
) *Projector {
	return &Projector{
		entries:   entries,
		likes:     likes,
		comments:  comments,
		txManager: txManager,
		logger:    logger.With().Str("component", "projector").Logger(),
	}
}

func (p *Projector) Apply(ctx context.Context, event domain.ContentEvent) error {
	if event == nil {
		return fmt.Errorf("nil content event: %w", domain.ErrValidation)
	}

	var err error
	switch e := event.(type) {
	case domain.ContentCreated:
		err = p.OnContentCreated(ctx, e.Key, e.Fields)
	case domain.ContentUpdated:
		err = p.OnContentUpdated(ctx, e.Key, e.Fields)
	case domain.ContentDeleted:
		err = p.OnContentDeleted(ctx, e.Key)
	default:
		err = fmt.Errorf("unsupported content event %T: %w", event, domain.ErrValidation)
	}

	metrics.IncProjection(domain.EventName(event), string(event.EventKey().ContentType), err)
	return err
}

// OnContentCreated inserts a fresh entry with zero counters. Replays are no-ops.
func (p *Projector) OnContentCreated(ctx context.Context, key domain.ContentKey, fields domain.EntryFields) error {
	if !key.ContentType.Valid() {
		return fmt.Errorf("project %s: %w", key, domain.ErrValidation)
	}

	err := p.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		created, err := p.entries.Insert(ctx, key, fields)
		if err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
		if !created {
			return domain.ErrDuplicateProjection
		}
		return nil
	})
	if errors.Is(err, domain.ErrDuplicateProjection) {
		p.logger.Debug().Stringer("key", key).Msg("entry already projected")
		return nil
	}
	if err != nil {
		return fmt.Errorf("project created %s: %w", key, err)
	}

	p.logger.Debug().Stringer("key", key).Msg("entry created")
	return nil
}

// OnContentUpdated overwrites display fields. A missing entry is created.
func (p *Projector) OnContentUpdated(ctx context.Context, key domain.ContentKey, fields domain.EntryFields) error {
	if !key.ContentType.Valid() {
		return fmt.Errorf("project %s: %w", key, domain.ErrValidation)
	}

	var created bool
	err := p.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = p.entries.UpsertFields(ctx, key, fields)
		return err
	})
	if err != nil {
		return fmt.Errorf("project updated %s: %w", key, err)
	}

	if created {
		p.logger.Warn().Stringer("key", key).Msg("update for unprojected content, entry synthesized")
	}
	return nil
}

// OnContentDeleted removes the entry together with its likes and comments.
func (p *Projector) OnContentDeleted(ctx context.Context, key domain.ContentKey) error {
	err := p.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		likes, err := p.likes.DeleteAll(ctx, key)
		if err != nil {
			return err
		}
		comments, err := p.comments.DeleteAll(ctx, key)
		if err != nil {
			return err
		}
		deleted, err := p.entries.Delete(ctx, key)
		if err != nil {
			return err
		}

		p.logger.Debug().
			Stringer("key", key).
			Bool("existed", deleted).
			Int64("likes", likes).
			Int64("comments", comments).
			Msg("entry deleted")
		return nil
	})
	if err != nil {
		return fmt.Errorf("project deleted %s: %w", key, err)
	}
	return nil
}
