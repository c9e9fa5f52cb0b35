package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"feedhub/internal/domain"
	"feedhub/internal/metrics"
)

const adColumns = `id, title, body, image_url, target_url, priority, active,
	impression_cap, impressions_served, clicks, published_at, created_at, updated_at`

type AdvertisementStore struct {
	db *sqlx.DB
}

func NewAdvertisementStore(db *sqlx.DB) *AdvertisementStore {
	return &AdvertisementStore{db: db}
}

func (s *AdvertisementStore) Create(ctx context.Context, ad *domain.Advertisement) error {
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, `
		INSERT INTO advertisements (
			title, body, image_url, target_url, priority, active, impression_cap, published_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, COALESCE($8, now())
		)
		RETURNING id, impressions_served, clicks, published_at, created_at, updated_at`,
		ad.Title, ad.Body, ad.ImageURL, ad.TargetURL, ad.Priority, ad.Active, ad.ImpressionCap,
		nullTime(ad.PublishedAt),
	).Scan(&ad.ID, &ad.ImpressionsServed, &ad.Clicks, &ad.PublishedAt, &ad.CreatedAt, &ad.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert advertisement: %w", translate(err))
	}
	return nil
}

// Update changes the editable fields. Delivery stats are left alone.
func (s *AdvertisementStore) Update(ctx context.Context, ad *domain.Advertisement) error {
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, `
		UPDATE advertisements SET
			title = $2,
			body = $3,
			image_url = $4,
			target_url = $5,
			priority = $6,
			active = $7,
			impression_cap = $8,
			published_at = COALESCE($9, published_at),
			updated_at = now()
		WHERE id = $1
		RETURNING impressions_served, clicks, published_at, created_at, updated_at`,
		ad.ID, ad.Title, ad.Body, ad.ImageURL, ad.TargetURL, ad.Priority, ad.Active, ad.ImpressionCap,
		nullTime(ad.PublishedAt),
	).Scan(&ad.ImpressionsServed, &ad.Clicks, &ad.PublishedAt, &ad.CreatedAt, &ad.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update advertisement %d: %w", ad.ID, translate(err))
	}
	return nil
}

func (s *AdvertisementStore) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, GetExecutor(ctx, s.db), "advertisements", id)
}

func (s *AdvertisementStore) Get(ctx context.Context, id int64) (*domain.Advertisement, error) {
	var ad domain.Advertisement
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &ad,
		"SELECT "+adColumns+" FROM advertisements WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("get advertisement %d: %w", id, translate(err))
	}
	return &ad, nil
}

// SelectEligible picks the highest-priority active ad under its impression cap,
// skipping ids in exclude. Returns nil when nothing qualifies.
func (s *AdvertisementStore) SelectEligible(ctx context.Context, exclude []int64) (*domain.Advertisement, error) {
	start := time.Now()

	if exclude == nil {
		exclude = []int64{}
	}

	var ad domain.Advertisement
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &ad, `
		SELECT `+adColumns+`,
			COALESCE((
				SELECT fe.id FROM feed_entries fe
				WHERE fe.content_type = 'advertisement' AND fe.original_id = advertisements.id
			), 0) AS entry_id
		FROM advertisements
		WHERE active
			AND (impression_cap = 0 OR impressions_served < impression_cap)
			AND NOT (id = ANY($1))
		ORDER BY priority DESC, created_at DESC, id DESC
		LIMIT 1`,
		pq.Array(exclude),
	)
	metrics.ObserveDBQuery("ad_select", start, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select advertisement: %w", err)
	}
	return &ad, nil
}

// RecordImpression bumps impressions_served unless the cap is already reached.
// It reports false when the ad is missing, inactive or exhausted.
func (s *AdvertisementStore) RecordImpression(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE advertisements SET impressions_served = impressions_served + 1
		WHERE id = $1 AND active
			AND (impression_cap = 0 OR impressions_served < impression_cap)`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("record impression %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *AdvertisementStore) RecordClick(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE advertisements SET clicks = clicks + 1 WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("record click %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("record click %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
