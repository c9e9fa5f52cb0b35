package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"feedhub/internal/domain"
	"feedhub/internal/metrics"
)

// ContentService owns writes to the canonical tables. Every write projects
// into the feed inside the same transaction, so a failed projection rolls it back.
type ContentService struct {
	articles  ArticleStore
	community CommunityStore
	ads       AdvertisementStore
	projector FeedProjector
	txManager TransactionManager
	logger    zerolog.Logger
}

func NewContentService(
	articles ArticleStore,
	community CommunityStore,
	ads AdvertisementStore,
	projector FeedProjector,
	txManager TransactionManager,
	logger zerolog.Logger,
) *ContentService {
	return &ContentService{
		articles:  articles,
		community: community,
		ads:       ads,
		projector: projector,
		txManager: txManager,
		logger:    logger.With().Str("component", "content").Logger(),
	}
}

type canonicalWriter[T domain.Canonical] interface {
	Create(ctx context.Context, record T) error
	Update(ctx context.Context, record T) error
}

type canonicalDeleter interface {
	Delete(ctx context.Context, id int64) error
}

func createCanonical[T domain.Canonical](ctx context.Context, s *ContentService, store canonicalWriter[T], record T) error {
	if err := domain.ValidateCanonical(record); err != nil {
		return err
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := store.Create(ctx, record); err != nil {
			return err
		}
		return s.projector.Apply(ctx, domain.ContentCreated{Key: record.Key(), Fields: record.Fields()})
	})
	if err != nil {
		return fmt.Errorf("create %s: %w", record.Kind(), err)
	}

	s.logger.Info().
		Str("content_type", string(record.Kind())).
		Int64("original_id", record.Key().OriginalID).
		Msg("content created")
	return nil
}

func updateCanonical[T domain.Canonical](ctx context.Context, s *ContentService, store canonicalWriter[T], record T) error {
	if err := domain.ValidateCanonical(record); err != nil {
		return err
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := store.Update(ctx, record); err != nil {
			return err
		}
		return s.projector.Apply(ctx, domain.ContentUpdated{Key: record.Key(), Fields: record.Fields()})
	})
	if err != nil {
		return fmt.Errorf("update %s: %w", record.Key(), err)
	}
	return nil
}

func (s *ContentService) deleteCanonical(ctx context.Context, store canonicalDeleter, key domain.ContentKey) error {
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := store.Delete(ctx, key.OriginalID); err != nil {
			return err
		}
		return s.projector.Apply(ctx, domain.ContentDeleted{Key: key})
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}

	s.logger.Info().
		Str("content_type", string(key.ContentType)).
		Int64("original_id", key.OriginalID).
		Msg("content deleted")
	return nil
}

func (s *ContentService) CreateArticle(ctx context.Context, a *domain.Article) error {
	return createCanonical[*domain.Article](ctx, s, s.articles, a)
}

func (s *ContentService) UpdateArticle(ctx context.Context, a *domain.Article) error {
	return updateCanonical[*domain.Article](ctx, s, s.articles, a)
}

func (s *ContentService) DeleteArticle(ctx context.Context, id int64) error {
	return s.deleteCanonical(ctx, s.articles, domain.ContentKey{ContentType: domain.ContentArticle, OriginalID: id})
}

func (s *ContentService) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	return s.articles.Get(ctx, id)
}

func (s *ContentService) CreateCommunityPost(ctx context.Context, p *domain.CommunityPost) error {
	return createCanonical[*domain.CommunityPost](ctx, s, s.community, p)
}

func (s *ContentService) UpdateCommunityPost(ctx context.Context, p *domain.CommunityPost) error {
	return updateCanonical[*domain.CommunityPost](ctx, s, s.community, p)
}

func (s *ContentService) DeleteCommunityPost(ctx context.Context, id int64) error {
	return s.deleteCanonical(ctx, s.community, domain.ContentKey{ContentType: domain.ContentCommunity, OriginalID: id})
}

func (s *ContentService) GetCommunityPost(ctx context.Context, id int64) (*domain.CommunityPost, error) {
	return s.community.Get(ctx, id)
}

func (s *ContentService) CreateAdvertisement(ctx context.Context, ad *domain.Advertisement) error {
	return createCanonical[*domain.Advertisement](ctx, s, s.ads, ad)
}

func (s *ContentService) UpdateAdvertisement(ctx context.Context, ad *domain.Advertisement) error {
	return updateCanonical[*domain.Advertisement](ctx, s, s.ads, ad)
}

func (s *ContentService) DeleteAdvertisement(ctx context.Context, id int64) error {
	return s.deleteCanonical(ctx, s.ads, domain.ContentKey{ContentType: domain.ContentAdvertisement, OriginalID: id})
}

func (s *ContentService) GetAdvertisement(ctx context.Context, id int64) (*domain.Advertisement, error) {
	return s.ads.Get(ctx, id)
}

// ImportArticle upserts an article delivered by an upstream fetcher and projects
// the change. Stale deliveries leave both tables untouched.
func (s *ContentService) ImportArticle(ctx context.Context, a *domain.Article) (domain.UpsertOutcome, error) {
	if err := domain.ValidateCanonical(a); err != nil {
		return domain.UpsertUnchanged, err
	}

	var outcome domain.UpsertOutcome
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		id, o, err := s.articles.Upsert(ctx, a)
		if err != nil {
			return err
		}
		a.ID = id
		outcome = o

		switch o {
		case domain.UpsertInserted:
			return s.projector.Apply(ctx, domain.ContentCreated{Key: a.Key(), Fields: a.Fields()})
		case domain.UpsertUpdated:
			return s.projector.Apply(ctx, domain.ContentUpdated{Key: a.Key(), Fields: a.Fields()})
		}
		return nil
	})
	if err != nil {
		metrics.ImportedArticles.WithLabelValues("error").Inc()
		return domain.UpsertUnchanged, fmt.Errorf("import article %s/%d: %w", a.SourceID, lo.FromPtr(a.ExternalID), err)
	}

	metrics.ImportedArticles.WithLabelValues(outcome.String()).Inc()
	s.logger.Debug().
		Str("source_id", a.SourceID).
		Int64("original_id", a.ID).
		Stringer("outcome", outcome).
		Msg("article imported")
	return outcome, nil
}
