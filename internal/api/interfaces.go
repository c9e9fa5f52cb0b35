package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"feedhub/internal/domain"
)

type FeedReader interface {
	ListFeed(ctx context.Context, query domain.FeedQuery) (*domain.FeedPage, error)
	GetFeedItemByID(ctx context.Context, id int64, viewerID string) (*domain.FeedItem, error)
}

type Engagement interface {
	ToggleLike(ctx context.Context, userID string, key domain.ContentKey) (domain.ToggleResult, error)
	AddComment(ctx context.Context, key domain.ContentKey, userID, body string) (domain.CommentResult, error)
	RemoveComment(ctx context.Context, commentID int64) (int, error)
	ListComments(ctx context.Context, key domain.ContentKey, page, limit int) ([]domain.Comment, error)
	Reconcile(ctx context.Context, key domain.ContentKey) (domain.Reconciliation, error)
}

type AdTracker interface {
	RecordImpression(ctx context.Context, adID int64) error
	RecordClick(ctx context.Context, adID int64) error
}

type ContentWriter interface {
	CreateArticle(ctx context.Context, article *domain.Article) error
	UpdateArticle(ctx context.Context, article *domain.Article) error
	DeleteArticle(ctx context.Context, id int64) error
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	CreateCommunityPost(ctx context.Context, post *domain.CommunityPost) error
	UpdateCommunityPost(ctx context.Context, post *domain.CommunityPost) error
	DeleteCommunityPost(ctx context.Context, id int64) error
	GetCommunityPost(ctx context.Context, id int64) (*domain.CommunityPost, error)
	CreateAdvertisement(ctx context.Context, ad *domain.Advertisement) error
	UpdateAdvertisement(ctx context.Context, ad *domain.Advertisement) error
	DeleteAdvertisement(ctx context.Context, id int64) error
	GetAdvertisement(ctx context.Context, id int64) (*domain.Advertisement, error)
}
