package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/samber/lo"

	"feedhub/internal/domain"
	"feedhub/internal/metrics"
)

type LikeStore struct {
	db *sqlx.DB
}

func NewLikeStore(db *sqlx.DB) *LikeStore {
	return &LikeStore{db: db}
}

// Insert adds a like. An existing like for the same user and key yields
// ErrConstraintConflict; a missing feed entry yields ErrNotFound.
func (s *LikeStore) Insert(ctx context.Context, userID string, key domain.ContentKey) error {
	start := time.Now()

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, `
		INSERT INTO likes (user_id, content_type, original_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, content_type, original_id) DO NOTHING
		RETURNING id`,
		userID, key.ContentType, key.OriginalID,
	).Scan(&id)

	queryErr, err := classifyLikeInsert(key, err)
	metrics.ObserveDBQuery("like_insert", start, queryErr)
	return err
}

// classifyLikeInsert splits the insert result into the query failure, if any,
// and the error returned to the caller. An existing like is the normal unlike
// path and does not count as a failed query.
func classifyLikeInsert(key domain.ContentKey, err error) (queryErr, result error) {
	switch {
	case err == nil:
		return nil, nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, domain.ErrConstraintConflict
	}
	return err, fmt.Errorf("insert like %s: %w", key, translate(err))
}

// Delete removes the user's like and reports whether one existed.
func (s *LikeStore) Delete(ctx context.Context, userID string, key domain.ContentKey) (bool, error) {
	start := time.Now()

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		DELETE FROM likes
		WHERE user_id = $1 AND content_type = $2 AND original_id = $3`,
		userID, key.ContentType, key.OriginalID,
	)
	metrics.ObserveDBQuery("like_delete", start, err)
	if err != nil {
		return false, fmt.Errorf("delete like %s: %w", key, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *LikeStore) DeleteAll(ctx context.Context, key domain.ContentKey) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM likes WHERE content_type = $1 AND original_id = $2",
		key.ContentType, key.OriginalID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete likes %s: %w", key, err)
	}
	return res.RowsAffected()
}

func (s *LikeStore) Count(ctx context.Context, key domain.ContentKey) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &n,
		"SELECT COUNT(*) FROM likes WHERE content_type = $1 AND original_id = $2",
		key.ContentType, key.OriginalID,
	)
	if err != nil {
		return 0, fmt.Errorf("count likes %s: %w", key, err)
	}
	return n, nil
}

// LikedKeys returns the subset of keys the user has liked, in one query.
func (s *LikeStore) LikedKeys(ctx context.Context, userID string, keys []domain.ContentKey) (map[domain.ContentKey]bool, error) {
	liked := make(map[domain.ContentKey]bool)
	if userID == "" || len(keys) == 0 {
		return liked, nil
	}

	start := time.Now()

	types := lo.Map(keys, func(k domain.ContentKey, _ int) string { return string(k.ContentType) })
	ids := lo.Map(keys, func(k domain.ContentKey, _ int) int64 { return k.OriginalID })

	var rows []domain.ContentKey
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, `
		SELECT l.content_type, l.original_id
		FROM likes l
		JOIN unnest($2::text[], $3::bigint[]) AS k(content_type, original_id)
			ON l.content_type = k.content_type AND l.original_id = k.original_id
		WHERE l.user_id = $1`,
		userID, pq.Array(types), pq.Array(ids),
	)
	metrics.ObserveDBQuery("like_lookup", start, err)
	if err != nil {
		return nil, fmt.Errorf("lookup likes: %w", err)
	}

	for _, k := range rows {
		liked[k] = true
	}
	return liked, nil
}
