package postgres

import (
	"context"
	"fmt"
	"time"

	sqlbuilder "github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"feedhub/internal/domain"
	"feedhub/internal/metrics"
)

var entryColumns = []string{
	"id", "content_type", "original_id",
	"title", "body", "summary", "image_url", "published_at",
	"source_url", "is_official", "video_url", "target_url", "impression_cap",
	"likes_count", "comments_count", "created_at", "updated_at",
}

// sortColumns is the only route from a sort request to an ORDER BY column.
var sortColumns = map[domain.SortField]string{
	domain.SortTitle:         "title",
	domain.SortPublishedAt:   "published_at",
	domain.SortCreatedAt:     "created_at",
	domain.SortLikesCount:    "likes_count",
	domain.SortCommentsCount: "comments_count",
}

type FeedEntryStore struct {
	db *sqlx.DB
}

func NewFeedEntryStore(db *sqlx.DB) *FeedEntryStore {
	return &FeedEntryStore{db: db}
}

// Insert creates the entry with zeroed counters. It reports false when the key
// was already projected, leaving the existing row untouched.
func (s *FeedEntryStore) Insert(ctx context.Context, key domain.ContentKey, f domain.EntryFields) (bool, error) {
	query := `
		INSERT INTO feed_entries (
			content_type, original_id, title, body, summary, image_url, published_at,
			source_url, is_official, video_url, target_url, impression_cap
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		ON CONFLICT (content_type, original_id) DO NOTHING`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		key.ContentType, key.OriginalID,
		f.Title, f.Body, f.Summary, f.ImageURL, f.PublishedAt,
		f.SourceURL, f.IsOfficial, f.VideoURL, f.TargetURL, f.ImpressionCap,
	)
	if err != nil {
		return false, fmt.Errorf("insert feed entry %s: %w", key, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// UpsertFields overwrites display fields, creating the entry if it does not
// exist yet. Counters are never part of the update. Reports whether a row was created.
func (s *FeedEntryStore) UpsertFields(ctx context.Context, key domain.ContentKey, f domain.EntryFields) (bool, error) {
	query := `
		INSERT INTO feed_entries (
			content_type, original_id, title, body, summary, image_url, published_at,
			source_url, is_official, video_url, target_url, impression_cap
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		ON CONFLICT (content_type, original_id) DO UPDATE SET
			title = EXCLUDED.title,
			body = EXCLUDED.body,
			summary = EXCLUDED.summary,
			image_url = EXCLUDED.image_url,
			published_at = EXCLUDED.published_at,
			source_url = EXCLUDED.source_url,
			is_official = EXCLUDED.is_official,
			video_url = EXCLUDED.video_url,
			target_url = EXCLUDED.target_url,
			impression_cap = EXCLUDED.impression_cap,
			updated_at = now()
		RETURNING (xmax = 0) AS inserted`

	var inserted bool
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		key.ContentType, key.OriginalID,
		f.Title, f.Body, f.Summary, f.ImageURL, f.PublishedAt,
		f.SourceURL, f.IsOfficial, f.VideoURL, f.TargetURL, f.ImpressionCap,
	).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("upsert feed entry %s: %w", key, err)
	}
	return inserted, nil
}

func (s *FeedEntryStore) Delete(ctx context.Context, key domain.ContentKey) (bool, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM feed_entries WHERE content_type = $1 AND original_id = $2",
		key.ContentType, key.OriginalID,
	)
	if err != nil {
		return false, fmt.Errorf("delete feed entry %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *FeedEntryStore) GetByKey(ctx context.Context, key domain.ContentKey) (*domain.FeedEntry, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(entryColumns...).From("feed_entries").Where(
		sb.Equal("content_type", string(key.ContentType)),
		sb.Equal("original_id", key.OriginalID),
	)
	return s.getOne(ctx, sb)
}

func (s *FeedEntryStore) GetByID(ctx context.Context, id int64) (*domain.FeedEntry, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(entryColumns...).From("feed_entries").Where(sb.Equal("id", id))
	return s.getOne(ctx, sb)
}

func (s *FeedEntryStore) getOne(ctx context.Context, sb *sqlbuilder.SelectBuilder) (*domain.FeedEntry, error) {
	query, args := sb.Build()

	var entry domain.FeedEntry
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entry, query, args...); err != nil {
		return nil, translate(err)
	}
	return &entry, nil
}

// List returns one page ordered by the allow-listed sort column, with id as tiebreaker.
func (s *FeedEntryStore) List(ctx context.Context, q domain.FeedQuery) ([]domain.FeedEntry, error) {
	start := time.Now()

	column, ok := sortColumns[q.Sort.Field]
	if !ok {
		column = sortColumns[domain.SortCreatedAt]
	}
	direction := "DESC"
	if q.Sort.Order == domain.OrderAsc {
		direction = "ASC"
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(entryColumns...).From("feed_entries")
	applyFilter(sb, q.Filter)
	sb.OrderBy(column+" "+direction, "id "+direction)
	sb.Limit(q.Limit).Offset(q.Offset())

	query, args := sb.Build()

	entries := []domain.FeedEntry{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &entries, query, args...)
	metrics.ObserveDBQuery("feed_list", start, err)
	if err != nil {
		return nil, fmt.Errorf("list feed entries: %w", err)
	}
	return entries, nil
}

func (s *FeedEntryStore) Count(ctx context.Context, filter domain.FeedFilter) (int, error) {
	start := time.Now()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("COUNT(*)").From("feed_entries")
	applyFilter(sb, filter)

	query, args := sb.Build()

	var total int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &total, query, args...)
	metrics.ObserveDBQuery("feed_count", start, err)
	if err != nil {
		return 0, fmt.Errorf("count feed entries: %w", err)
	}
	return total, nil
}

func applyFilter(sb *sqlbuilder.SelectBuilder, filter domain.FeedFilter) {
	if filter.ContentType != nil {
		sb.Where(sb.Equal("content_type", string(*filter.ContentType)))
	}
	if len(filter.ExcludeTypes) > 0 {
		excluded := lo.Map(filter.ExcludeTypes, func(t domain.ContentType, _ int) interface{} {
			return string(t)
		})
		sb.Where(sb.NotIn("content_type", excluded...))
	}
}

const (
	incrementLikesSQL = `
		UPDATE feed_entries SET likes_count = likes_count + 1
		WHERE content_type = $1 AND original_id = $2
		RETURNING likes_count`
	decrementLikesSQL = `
		UPDATE feed_entries SET likes_count = GREATEST(likes_count - 1, 0)
		WHERE content_type = $1 AND original_id = $2
		RETURNING likes_count`
	incrementCommentsSQL = `
		UPDATE feed_entries SET comments_count = comments_count + 1
		WHERE content_type = $1 AND original_id = $2
		RETURNING comments_count`
	decrementCommentsSQL = `
		UPDATE feed_entries SET comments_count = GREATEST(comments_count - 1, 0)
		WHERE content_type = $1 AND original_id = $2
		RETURNING comments_count`
)

func (s *FeedEntryStore) IncrementLikes(ctx context.Context, key domain.ContentKey) (int, error) {
	return s.adjust(ctx, "likes_increment", incrementLikesSQL, key)
}

func (s *FeedEntryStore) DecrementLikes(ctx context.Context, key domain.ContentKey) (int, error) {
	return s.adjust(ctx, "likes_decrement", decrementLikesSQL, key)
}

func (s *FeedEntryStore) IncrementComments(ctx context.Context, key domain.ContentKey) (int, error) {
	return s.adjust(ctx, "comments_increment", incrementCommentsSQL, key)
}

func (s *FeedEntryStore) DecrementComments(ctx context.Context, key domain.ContentKey) (int, error) {
	return s.adjust(ctx, "comments_decrement", decrementCommentsSQL, key)
}

// adjust runs one of the fixed single-statement counter updates.
func (s *FeedEntryStore) adjust(ctx context.Context, op, query string, key domain.ContentKey) (int, error) {
	start := time.Now()

	var count int
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, key.ContentType, key.OriginalID).Scan(&count)
	metrics.ObserveDBQuery(op, start, err)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", op, key, translate(err))
	}
	return count, nil
}

// LockCounters reads the stored counters and holds the row lock until the
// surrounding transaction ends.
func (s *FeedEntryStore) LockCounters(ctx context.Context, key domain.ContentKey) (domain.Counters, error) {
	var c domain.Counters
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &c, `
		SELECT likes_count, comments_count FROM feed_entries
		WHERE content_type = $1 AND original_id = $2
		FOR UPDATE`,
		key.ContentType, key.OriginalID,
	)
	if err != nil {
		return c, fmt.Errorf("lock counters %s: %w", key, translate(err))
	}
	return c, nil
}

func (s *FeedEntryStore) SetCounters(ctx context.Context, key domain.ContentKey, c domain.Counters) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE feed_entries SET likes_count = $3, comments_count = $4
		WHERE content_type = $1 AND original_id = $2`,
		key.ContentType, key.OriginalID, c.Likes, c.Comments,
	)
	if err != nil {
		return fmt.Errorf("set counters %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("set counters %s: %w", key, domain.ErrNotFound)
	}
	return nil
}

// ListRefs pages through entries in id order, for batch jobs.
func (s *FeedEntryStore) ListRefs(ctx context.Context, afterID int64, limit int) ([]domain.EntryRef, error) {
	refs := []domain.EntryRef{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &refs, `
		SELECT id, content_type, original_id FROM feed_entries
		WHERE id > $1
		ORDER BY id
		LIMIT $2`,
		afterID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list feed entry refs: %w", err)
	}
	return refs, nil
}
