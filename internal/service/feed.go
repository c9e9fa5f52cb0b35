package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"feedhub/internal/config"
	"feedhub/internal/domain"
)

type FeedService struct {
	entries FeedEntryStore
	likes   LikeStore
	ads     AdPlacer
	config  config.FeedConfig
	logger  zerolog.Logger
}

func NewFeedService(
	entries FeedEntryStore,
	likes LikeStore,
	ads AdPlacer,
	cfg config.FeedConfig,
	logger zerolog.Logger,
) *FeedService {
	return &FeedService{
		entries: entries,
		likes:   likes,
		ads:     ads,
		config:  cfg,
		logger:  logger.With().Str("component", "feed").Logger(),
	}
}

// ListFeed returns one page of the feed. Paging input is clamped, never rejected.
func (s *FeedService) ListFeed(ctx context.Context, q domain.FeedQuery) (*domain.FeedPage, error) {
	q.Normalize(s.config.DefaultLimit, s.config.MaxLimit)

	interleave := q.AdEvery > 0 && q.Filter.ContentType == nil && s.ads != nil
	if interleave {
		q.Filter.ExcludeTypes = append(q.Filter.ExcludeTypes, domain.ContentAdvertisement)
	}

	total, err := s.entries.Count(ctx, q.Filter)
	if err != nil {
		return nil, fmt.Errorf("list feed: %w", err)
	}

	items := []domain.FeedItem{}
	if q.Offset() < total {
		entries, err := s.entries.List(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("list feed: %w", err)
		}
		items, err = s.annotate(ctx, q.ViewerID, entries)
		if err != nil {
			return nil, fmt.Errorf("list feed: %w", err)
		}
	}

	if interleave && len(items) > 0 {
		withAds, err := s.ads.Interleave(ctx, items, q.AdEvery)
		if err != nil {
			s.logger.Warn().Err(err).Msg("ad interleaving failed, serving organic page")
		} else {
			items = withAds
		}
	}

	return &domain.FeedPage{
		Items:      items,
		Pagination: domain.NewPagination(total, q.Page, q.Limit),
	}, nil
}

func (s *FeedService) GetFeedItem(ctx context.Context, key domain.ContentKey, viewerID string) (*domain.FeedItem, error) {
	entry, err := s.entries.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get feed item %s: %w", key, err)
	}
	return s.single(ctx, entry, viewerID)
}

func (s *FeedService) GetFeedItemByID(ctx context.Context, id int64, viewerID string) (*domain.FeedItem, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get feed item %d: %w", id, err)
	}
	return s.single(ctx, entry, viewerID)
}

func (s *FeedService) single(ctx context.Context, entry *domain.FeedEntry, viewerID string) (*domain.FeedItem, error) {
	items, err := s.annotate(ctx, viewerID, []domain.FeedEntry{*entry})
	if err != nil {
		return nil, fmt.Errorf("get feed item %s: %w", entry.ContentKey, err)
	}
	return &items[0], nil
}

// annotate sets is_liked with one lookup for the whole page.
func (s *FeedService) annotate(ctx context.Context, viewerID string, entries []domain.FeedEntry) ([]domain.FeedItem, error) {
	items := lo.Map(entries, func(e domain.FeedEntry, _ int) domain.FeedItem {
		return domain.FeedItem{FeedEntry: e}
	})
	if viewerID == "" || len(items) == 0 {
		return items, nil
	}

	keys := lo.Uniq(lo.Map(entries, func(e domain.FeedEntry, _ int) domain.ContentKey {
		return e.ContentKey
	}))

	liked, err := s.likes.LikedKeys(ctx, viewerID, keys)
	if err != nil {
		return nil, err
	}

	for i := range items {
		items[i].IsLiked = liked[items[i].ContentKey]
	}
	return items, nil
}
