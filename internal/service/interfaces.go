package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"feedhub/internal/domain"
)

type FeedEntryStore interface {
	Insert(ctx context.Context, key domain.ContentKey, fields domain.EntryFields) (bool, error)
	UpsertFields(ctx context.Context, key domain.ContentKey, fields domain.EntryFields) (bool, error)
	Delete(ctx context.Context, key domain.ContentKey) (bool, error)
	GetByKey(ctx context.Context, key domain.ContentKey) (*domain.FeedEntry, error)
	GetByID(ctx context.Context, id int64) (*domain.FeedEntry, error)
	List(ctx context.Context, query domain.FeedQuery) ([]domain.FeedEntry, error)
	Count(ctx context.Context, filter domain.FeedFilter) (int, error)
	IncrementLikes(ctx context.Context, key domain.ContentKey) (int, error)
	DecrementLikes(ctx context.Context, key domain.ContentKey) (int, error)
	IncrementComments(ctx context.Context, key domain.ContentKey) (int, error)
	DecrementComments(ctx context.Context, key domain.ContentKey) (int, error)
	LockCounters(ctx context.Context, key domain.ContentKey) (domain.Counters, error)
	SetCounters(ctx context.Context, key domain.ContentKey, counters domain.Counters) error
	ListRefs(ctx context.Context, afterID int64, limit int) ([]domain.EntryRef, error)
}

type LikeStore interface {
	Insert(ctx context.Context, userID string, key domain.ContentKey) error
	Delete(ctx context.Context, userID string, key domain.ContentKey) (bool, error)
	DeleteAll(ctx context.Context, key domain.ContentKey) (int64, error)
	Count(ctx context.Context, key domain.ContentKey) (int, error)
	LikedKeys(ctx context.Context, userID string, keys []domain.ContentKey) (map[domain.ContentKey]bool, error)
}

type CommentStore interface {
	Insert(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id int64) (domain.ContentKey, error)
	DeleteAll(ctx context.Context, key domain.ContentKey) (int64, error)
	Count(ctx context.Context, key domain.ContentKey) (int, error)
	ListByKey(ctx context.Context, key domain.ContentKey, limit, offset int) ([]domain.Comment, error)
}

type ArticleStore interface {
	Create(ctx context.Context, article *domain.Article) error
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Article, error)
	Upsert(ctx context.Context, article *domain.Article) (int64, domain.UpsertOutcome, error)
}

type CommunityStore interface {
	Create(ctx context.Context, post *domain.CommunityPost) error
	Update(ctx context.Context, post *domain.CommunityPost) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.CommunityPost, error)
}

type AdvertisementStore interface {
	Create(ctx context.Context, ad *domain.Advertisement) error
	Update(ctx context.Context, ad *domain.Advertisement) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Advertisement, error)
	SelectEligible(ctx context.Context, exclude []int64) (*domain.Advertisement, error)
	RecordImpression(ctx context.Context, id int64) (bool, error)
	RecordClick(ctx context.Context, id int64) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker grants at most one holder per name. release must be called when ok is true.
type Locker interface {
	TryLock(ctx context.Context, name string) (release func(), ok bool, err error)
}

// FeedProjector applies canonical lifecycle events to the feed.
type FeedProjector interface {
	Apply(ctx context.Context, event domain.ContentEvent) error
}

type AdPlacer interface {
	Interleave(ctx context.Context, organic []domain.FeedItem, everyN int) ([]domain.FeedItem, error)
}

type CounterReconciler interface {
	Reconcile(ctx context.Context, key domain.ContentKey) (domain.Reconciliation, error)
}
