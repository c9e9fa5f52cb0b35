package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"feedhub/internal/domain"
	"feedhub/internal/metrics"
)

type CommentStore struct {
	db *sqlx.DB
}

func NewCommentStore(db *sqlx.DB) *CommentStore {
	return &CommentStore{db: db}
}

// Insert fills in ID and CreatedAt. A missing feed entry yields ErrNotFound.
func (s *CommentStore) Insert(ctx context.Context, c *domain.Comment) error {
	start := time.Now()

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, `
		INSERT INTO comments (content_type, original_id, user_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		c.ContentType, c.OriginalID, c.UserID, c.Body,
	).Scan(&c.ID, &c.CreatedAt)
	metrics.ObserveDBQuery("comment_insert", start, err)
	if err != nil {
		return fmt.Errorf("insert comment %s: %w", c.ContentKey, translate(err))
	}
	return nil
}

// Delete removes a comment and returns the key it belonged to.
func (s *CommentStore) Delete(ctx context.Context, id int64) (domain.ContentKey, error) {
	start := time.Now()

	var key domain.ContentKey
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &key,
		"DELETE FROM comments WHERE id = $1 RETURNING content_type, original_id", id,
	)
	metrics.ObserveDBQuery("comment_delete", start, err)
	if err != nil {
		return key, fmt.Errorf("delete comment %d: %w", id, translate(err))
	}
	return key, nil
}

func (s *CommentStore) DeleteAll(ctx context.Context, key domain.ContentKey) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM comments WHERE content_type = $1 AND original_id = $2",
		key.ContentType, key.OriginalID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete comments %s: %w", key, err)
	}
	return res.RowsAffected()
}

func (s *CommentStore) Count(ctx context.Context, key domain.ContentKey) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &n,
		"SELECT COUNT(*) FROM comments WHERE content_type = $1 AND original_id = $2",
		key.ContentType, key.OriginalID,
	)
	if err != nil {
		return 0, fmt.Errorf("count comments %s: %w", key, err)
	}
	return n, nil
}

// ListByKey returns an entry's comments, oldest first.
func (s *CommentStore) ListByKey(ctx context.Context, key domain.ContentKey, limit, offset int) ([]domain.Comment, error) {
	comments := []domain.Comment{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &comments, `
		SELECT id, content_type, original_id, user_id, body, created_at
		FROM comments
		WHERE content_type = $1 AND original_id = $2
		ORDER BY created_at, id
		LIMIT $3 OFFSET $4`,
		key.ContentType, key.OriginalID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list comments %s: %w", key, err)
	}
	return comments, nil
}
