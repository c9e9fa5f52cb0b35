package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"feedhub/internal/domain"
)

type CommunityStore struct {
	db *sqlx.DB
}

func NewCommunityStore(db *sqlx.DB) *CommunityStore {
	return &CommunityStore{db: db}
}

func (s *CommunityStore) Create(ctx context.Context, p *domain.CommunityPost) error {
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, `
		INSERT INTO community_posts (user_id, title, body, image_url, video_url, published_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, now()))
		RETURNING id, published_at, created_at, updated_at`,
		p.UserID, p.Title, p.Body, p.ImageURL, p.VideoURL, nullTime(p.PublishedAt),
	).Scan(&p.ID, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert community post: %w", translate(err))
	}
	return nil
}

func (s *CommunityStore) Update(ctx context.Context, p *domain.CommunityPost) error {
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, `
		UPDATE community_posts SET
			title = $2,
			body = $3,
			image_url = $4,
			video_url = $5,
			published_at = COALESCE($6, published_at),
			updated_at = now()
		WHERE id = $1
		RETURNING user_id, published_at, created_at, updated_at`,
		p.ID, p.Title, p.Body, p.ImageURL, p.VideoURL, nullTime(p.PublishedAt),
	).Scan(&p.UserID, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update community post %d: %w", p.ID, translate(err))
	}
	return nil
}

func (s *CommunityStore) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, GetExecutor(ctx, s.db), "community_posts", id)
}

func (s *CommunityStore) Get(ctx context.Context, id int64) (*domain.CommunityPost, error) {
	var p domain.CommunityPost
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &p, `
		SELECT id, user_id, title, body, image_url, video_url, published_at, created_at, updated_at
		FROM community_posts WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get community post %d: %w", id, translate(err))
	}
	return &p, nil
}
