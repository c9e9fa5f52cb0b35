package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"feedhub/internal/domain"
)

const articleColumns = `id, source_id, external_id, title, summary, body, image_url,
	source_url, is_official, published_at, last_modified, created_at, updated_at`

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

func (s *ArticleStore) Create(ctx context.Context, a *domain.Article) error {
	if a.SourceID == "" {
		a.SourceID = domain.EditorialSource
	}
	if a.LastModified.IsZero() {
		a.LastModified = time.Now()
	}

	query := `
		INSERT INTO articles (
			source_id, external_id, title, summary, body, image_url,
			source_url, is_official, published_at, last_modified
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, now()), $10
		)
		RETURNING id, published_at, created_at, updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		a.SourceID, a.ExternalID, a.Title, a.Summary, a.Body, a.ImageURL,
		a.SourceURL, a.IsOfficial, nullTime(a.PublishedAt), a.LastModified,
	).Scan(&a.ID, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", translate(err))
	}
	return nil
}

func (s *ArticleStore) Update(ctx context.Context, a *domain.Article) error {
	query := `
		UPDATE articles SET
			title = $2,
			summary = $3,
			body = $4,
			image_url = $5,
			source_url = $6,
			is_official = $7,
			published_at = COALESCE($8, published_at),
			last_modified = now(),
			updated_at = now()
		WHERE id = $1
		RETURNING source_id, external_id, published_at, last_modified, created_at, updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		a.ID, a.Title, a.Summary, a.Body, a.ImageURL,
		a.SourceURL, a.IsOfficial, nullTime(a.PublishedAt),
	).Scan(&a.SourceID, &a.ExternalID, &a.PublishedAt, &a.LastModified, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update article %d: %w", a.ID, translate(err))
	}
	return nil
}

func (s *ArticleStore) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, GetExecutor(ctx, s.db), "articles", id)
}

func (s *ArticleStore) Get(ctx context.Context, id int64) (*domain.Article, error) {
	var a domain.Article
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &a,
		"SELECT "+articleColumns+" FROM articles WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, translate(err))
	}
	return &a, nil
}

// Upsert imports an article keyed by (source_id, external_id). An existing row
// is only overwritten when the incoming last_modified is newer. A zero
// PublishedAt keeps the stored date (or now() on insert); a.PublishedAt is
// set to the stored value either way.
func (s *ArticleStore) Upsert(ctx context.Context, a *domain.Article) (int64, domain.UpsertOutcome, error) {
	if a.ExternalID == nil {
		return 0, domain.UpsertUnchanged, fmt.Errorf("upsert article: external_id is required: %w", domain.ErrValidation)
	}

	query := `
		INSERT INTO articles (
			source_id, external_id, title, summary, body, image_url,
			source_url, is_official, published_at, last_modified
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, now()), $10
		)
		ON CONFLICT (source_id, external_id) DO UPDATE SET
			title = EXCLUDED.title,
			summary = EXCLUDED.summary,
			body = EXCLUDED.body,
			image_url = EXCLUDED.image_url,
			source_url = EXCLUDED.source_url,
			is_official = EXCLUDED.is_official,
			published_at = COALESCE($9, articles.published_at),
			last_modified = EXCLUDED.last_modified,
			updated_at = now()
		WHERE articles.last_modified < EXCLUDED.last_modified
		RETURNING id, published_at, (xmax = 0) AS inserted`

	exec := GetExecutor(ctx, s.db)

	var (
		id       int64
		inserted bool
	)
	err := exec.QueryRowxContext(ctx, query,
		a.SourceID, a.ExternalID, a.Title, a.Summary, a.Body, a.ImageURL,
		a.SourceURL, a.IsOfficial, nullTime(a.PublishedAt), a.LastModified,
	).Scan(&id, &a.PublishedAt, &inserted)

	if errors.Is(err, sql.ErrNoRows) {
		err = exec.QueryRowxContext(ctx,
			"SELECT id, published_at FROM articles WHERE source_id = $1 AND external_id = $2",
			a.SourceID, a.ExternalID,
		).Scan(&id, &a.PublishedAt)
		if err != nil {
			return 0, domain.UpsertUnchanged, fmt.Errorf("upsert article: %w", err)
		}
		return id, domain.UpsertUnchanged, nil
	}
	if err != nil {
		return 0, domain.UpsertUnchanged, fmt.Errorf("upsert article: %w", err)
	}

	if inserted {
		return id, domain.UpsertInserted, nil
	}
	return id, domain.UpsertUpdated, nil
}

func deleteByID(ctx context.Context, exec sqlx.ExecerContext, table string, id int64) error {
	res, err := exec.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", table, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("delete %s %d: %w", table, id, domain.ErrNotFound)
	}
	return nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
