package consumer

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"feedhub/internal/domain"
)

type Importer interface {
	ImportArticle(ctx context.Context, article *domain.Article) (domain.UpsertOutcome, error)
}
