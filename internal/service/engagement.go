package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"feedhub/internal/domain"
	"feedhub/internal/metrics"
)

var errNotEngageable = fmt.Errorf("content type does not take likes or comments: %w", domain.ErrValidation)

const (
	defaultCommentPage = 20
	maxCommentPage     = 100
)

// EngagementService is the only writer of likes_count and comments_count.
type EngagementService struct {
	entries   FeedEntryStore
	likes     LikeStore
	comments  CommentStore
	txManager TransactionManager
	logger    zerolog.Logger
}

func NewEngagementService(
	entries FeedEntryStore,
	likes LikeStore,
	comments CommentStore,
	txManager TransactionManager,
	logger zerolog.Logger,
) *EngagementService {
	return &EngagementService{
		entries:   entries,
		likes:     likes,
		comments:  comments,
		txManager: txManager,
		logger:    logger.With().Str("component", "engagement").Logger(),
	}
}

// ToggleLike flips the user's like on an item. The like's unique key decides
// the direction, so concurrent toggles never double count.
func (s *EngagementService) ToggleLike(ctx context.Context, userID string, key domain.ContentKey) (domain.ToggleResult, error) {
	if userID == "" {
		return domain.ToggleResult{}, fmt.Errorf("toggle like: user id is required: %w", domain.ErrValidation)
	}
	if !key.ContentType.Engageable() {
		return domain.ToggleResult{}, fmt.Errorf("toggle like %s: %w", key, errNotEngageable)
	}

	var result domain.ToggleResult
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		err := s.likes.Insert(ctx, userID, key)
		switch {
		case err == nil:
			count, err := s.entries.IncrementLikes(ctx, key)
			if err != nil {
				return err
			}
			result = domain.ToggleResult{Liked: true, LikesCount: count}
			return nil

		case errors.Is(err, domain.ErrConstraintConflict):
			return s.unlike(ctx, userID, key, &result)

		default:
			return err
		}
	})
	if err != nil {
		return domain.ToggleResult{}, fmt.Errorf("toggle like %s: %w", key, err)
	}

	if result.Liked {
		metrics.LikeToggles.WithLabelValues("liked").Inc()
	} else {
		metrics.LikeToggles.WithLabelValues("unliked").Inc()
	}
	return result, nil
}

func (s *EngagementService) unlike(ctx context.Context, userID string, key domain.ContentKey, result *domain.ToggleResult) error {
	removed, err := s.likes.Delete(ctx, userID, key)
	if err != nil {
		return err
	}

	if !removed {
		// A concurrent toggle already removed it and decremented.
		entry, err := s.entries.GetByKey(ctx, key)
		if err != nil {
			return err
		}
		*result = domain.ToggleResult{Liked: false, LikesCount: entry.LikesCount}
		return nil
	}

	count, err := s.entries.DecrementLikes(ctx, key)
	if err != nil {
		return err
	}
	*result = domain.ToggleResult{Liked: false, LikesCount: count}
	return nil
}

func (s *EngagementService) AddComment(ctx context.Context, key domain.ContentKey, userID, body string) (domain.CommentResult, error) {
	body = strings.TrimSpace(body)
	if userID == "" {
		return domain.CommentResult{}, fmt.Errorf("add comment: user id is required: %w", domain.ErrValidation)
	}
	if body == "" {
		return domain.CommentResult{}, fmt.Errorf("add comment: body is required: %w", domain.ErrValidation)
	}
	if !key.ContentType.Engageable() {
		return domain.CommentResult{}, fmt.Errorf("add comment %s: %w", key, errNotEngageable)
	}

	comment := &domain.Comment{ContentKey: key, UserID: userID, Body: body}

	var count int
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.comments.Insert(ctx, comment); err != nil {
			return err
		}
		var err error
		count, err = s.entries.IncrementComments(ctx, key)
		return err
	})
	if err != nil {
		return domain.CommentResult{}, fmt.Errorf("add comment %s: %w", key, err)
	}

	metrics.CommentsChanged.WithLabelValues("added").Inc()
	return domain.CommentResult{ID: comment.ID, CommentsCount: count}, nil
}

// RemoveComment deletes a comment and returns the item's new comment count.
func (s *EngagementService) RemoveComment(ctx context.Context, commentID int64) (int, error) {
	var count int
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		key, err := s.comments.Delete(ctx, commentID)
		if err != nil {
			return err
		}
		count, err = s.entries.DecrementComments(ctx, key)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("remove comment %d: %w", commentID, err)
	}

	metrics.CommentsChanged.WithLabelValues("removed").Inc()
	return count, nil
}

// ListComments returns one page of an item's comments, oldest first.
func (s *EngagementService) ListComments(ctx context.Context, key domain.ContentKey, page, limit int) ([]domain.Comment, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxCommentPage {
		limit = defaultCommentPage
	}

	comments, err := s.comments.ListByKey(ctx, key, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list comments %s: %w", key, err)
	}
	return comments, nil
}

// Reconcile recomputes both counters from the likes and comments tables while
// holding the entry's row lock. Drift is corrected and reported, not returned as an error.
func (s *EngagementService) Reconcile(ctx context.Context, key domain.ContentKey) (domain.Reconciliation, error) {
	var rec domain.Reconciliation
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		stored, err := s.entries.LockCounters(ctx, key)
		if err != nil {
			return err
		}

		likes, err := s.likes.Count(ctx, key)
		if err != nil {
			return err
		}
		comments, err := s.comments.Count(ctx, key)
		if err != nil {
			return err
		}

		actual := domain.Counters{Likes: likes, Comments: comments}
		rec = domain.Reconciliation{
			Key:    key,
			Before: stored,
			After:  actual,
			Drifts: domain.Drifts(key, stored, actual),
		}

		if !rec.Drifted() {
			return nil
		}
		return s.entries.SetCounters(ctx, key, actual)
	})
	if err != nil {
		return domain.Reconciliation{}, fmt.Errorf("reconcile %s: %w", key, err)
	}

	for _, d := range rec.Drifts {
		metrics.CounterDrift.WithLabelValues(d.Counter).Inc()
		s.logger.Warn().
			Str("content_type", string(d.Key.ContentType)).
			Int64("original_id", d.Key.OriginalID).
			Str("counter", d.Counter).
			Int("stored", d.Stored).
			Int("actual", d.Actual).
			Msg("counter drift corrected")
	}
	return rec, nil
}
