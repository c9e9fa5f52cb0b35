package domain

import (
	"fmt"
	"strings"
	"time"
)

// ContentType identifies which canonical table a feed entry mirrors.
type ContentType string

const (
	ContentArticle       ContentType = "article"
	ContentCommunity     ContentType = "community"
	ContentAdvertisement ContentType = "advertisement"
)

// ContentTypes lists every known content type.
var ContentTypes = []ContentType{ContentArticle, ContentCommunity, ContentAdvertisement}

// ParseContentType accepts the canonical lowercase names.
func ParseContentType(s string) (ContentType, error) {
	ct := ContentType(strings.ToLower(strings.TrimSpace(s)))
	if !ct.Valid() {
		return "", fmt.Errorf("content type %q: %w", s, ErrValidation)
	}
	return ct, nil
}

func (t ContentType) Valid() bool {
	switch t {
	case ContentArticle, ContentCommunity, ContentAdvertisement:
		return true
	}
	return false
}

// Engageable reports whether items of this type take likes and comments.
// Ads only track impressions and clicks.
func (t ContentType) Engageable() bool {
	return t == ContentArticle || t == ContentCommunity
}

func (t ContentType) String() string {
	return string(t)
}

// ContentKey is the natural key shared by feed entries, likes and comments.
type ContentKey struct {
	ContentType ContentType `db:"content_type" json:"content_type"`
	OriginalID  int64       `db:"original_id" json:"original_id"`
}

func (k ContentKey) String() string {
	return fmt.Sprintf("%s:%d", k.ContentType, k.OriginalID)
}

// EntryFields are the display fields mirrored from a canonical record.
type EntryFields struct {
	Title       string    `db:"title" json:"title"`
	Body        *string   `db:"body" json:"body,omitempty"`
	Summary     *string   `db:"summary" json:"summary,omitempty"`
	ImageURL    *string   `db:"image_url" json:"image_url,omitempty"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`

	// Article
	SourceURL  *string `db:"source_url" json:"source_url,omitempty"`
	IsOfficial bool    `db:"is_official" json:"is_official"`

	// Community
	VideoURL *string `db:"video_url" json:"video_url,omitempty"`

	// Advertisement
	TargetURL     *string `db:"target_url" json:"target_url,omitempty"`
	ImpressionCap *int64  `db:"impression_cap" json:"impression_cap,omitempty"`
}

// FeedEntry is the read-optimized projection of one canonical record.
// Counters are owned by the engagement service, everything else by the projector.
type FeedEntry struct {
	ID int64 `db:"id" json:"id"`
	ContentKey
	EntryFields
	LikesCount    int       `db:"likes_count" json:"likes_count"`
	CommentsCount int       `db:"comments_count" json:"comments_count"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Counters is the denormalized engagement pair stored on a feed entry.
type Counters struct {
	Likes    int `db:"likes_count" json:"likes_count"`
	Comments int `db:"comments_count" json:"comments_count"`
}

type Like struct {
	ID     int64  `db:"id"`
	UserID string `db:"user_id"`
	ContentKey
	CreatedAt time.Time `db:"created_at"`
}

type Comment struct {
	ID int64 `db:"id" json:"id"`
	ContentKey
	UserID    string    `db:"user_id" json:"user_id"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// EntryRef addresses a feed entry by both its synthetic id and natural key.
type EntryRef struct {
	ID int64 `db:"id"`
	ContentKey
}
