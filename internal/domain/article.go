package domain

import (
	"strings"
	"time"
)

// Canonical is implemented by every source-of-truth record that is mirrored into the feed.
type Canonical interface {
	Kind() ContentType
	Key() ContentKey
	Fields() EntryFields
}

type Article struct {
	ID           int64     `db:"id" json:"id"`
	SourceID     string    `db:"source_id" json:"source_id"` // "editorial" for in-house articles, fetcher id otherwise
	ExternalID   *int64    `db:"external_id" json:"external_id,omitempty"`
	Title        string    `db:"title" json:"title"`
	Summary      *string   `db:"summary" json:"summary,omitempty"`
	Body         *string   `db:"body" json:"body,omitempty"`
	ImageURL     *string   `db:"image_url" json:"image_url,omitempty"`
	SourceURL    *string   `db:"source_url" json:"source_url,omitempty"`
	IsOfficial   bool      `db:"is_official" json:"is_official"`
	PublishedAt  time.Time `db:"published_at" json:"published_at"`
	LastModified time.Time `db:"last_modified" json:"last_modified"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

const EditorialSource = "editorial"

func (a *Article) Kind() ContentType { return ContentArticle }

func (a *Article) Key() ContentKey {
	return ContentKey{ContentType: ContentArticle, OriginalID: a.ID}
}

func (a *Article) Fields() EntryFields {
	return EntryFields{
		Title:       a.Title,
		Body:        a.Body,
		Summary:     a.Summary,
		ImageURL:    a.ImageURL,
		PublishedAt: a.PublishedAt,
		SourceURL:   a.SourceURL,
		IsOfficial:  a.IsOfficial,
	}
}

type CommunityPost struct {
	ID          int64     `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Title       string    `db:"title" json:"title"`
	Body        *string   `db:"body" json:"body,omitempty"`
	ImageURL    *string   `db:"image_url" json:"image_url,omitempty"`
	VideoURL    *string   `db:"video_url" json:"video_url,omitempty"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

func (p *CommunityPost) Kind() ContentType { return ContentCommunity }

func (p *CommunityPost) Key() ContentKey {
	return ContentKey{ContentType: ContentCommunity, OriginalID: p.ID}
}

func (p *CommunityPost) Fields() EntryFields {
	return EntryFields{
		Title:       p.Title,
		Body:        p.Body,
		ImageURL:    p.ImageURL,
		PublishedAt: p.PublishedAt,
		VideoURL:    p.VideoURL,
	}
}

// Advertisement is a paid placement. ImpressionCap of 0 means unlimited.
type Advertisement struct {
	ID                int64     `db:"id" json:"id"`
	Title             string    `db:"title" json:"title"`
	Body              *string   `db:"body" json:"body,omitempty"`
	ImageURL          *string   `db:"image_url" json:"image_url,omitempty"`
	TargetURL         string    `db:"target_url" json:"target_url"`
	Priority          int       `db:"priority" json:"priority"`
	Active            bool      `db:"active" json:"active"`
	ImpressionCap     int64     `db:"impression_cap" json:"impression_cap"`
	ImpressionsServed int64     `db:"impressions_served" json:"impressions_served"`
	Clicks            int64     `db:"clicks" json:"clicks"`
	PublishedAt       time.Time `db:"published_at" json:"published_at"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`

	// EntryID is the ad's feed_entries id, filled in by slot selection.
	EntryID int64 `db:"entry_id" json:"-"`
}

func (a *Advertisement) Kind() ContentType { return ContentAdvertisement }

func (a *Advertisement) Key() ContentKey {
	return ContentKey{ContentType: ContentAdvertisement, OriginalID: a.ID}
}

func (a *Advertisement) Fields() EntryFields {
	target := a.TargetURL
	impressionCap := a.ImpressionCap
	return EntryFields{
		Title:         a.Title,
		Body:          a.Body,
		ImageURL:      a.ImageURL,
		PublishedAt:   a.PublishedAt,
		TargetURL:     &target,
		ImpressionCap: &impressionCap,
	}
}

// Eligible reports whether the ad may be served in a feed slot.
func (a *Advertisement) Eligible() bool {
	return a.Active && (a.ImpressionCap == 0 || a.ImpressionsServed < a.ImpressionCap)
}

// ValidateCanonical rejects records that cannot be projected.
func ValidateCanonical(c Canonical) error {
	if strings.TrimSpace(c.Fields().Title) == "" {
		return validationError("title is required")
	}
	if ad, ok := c.(*Advertisement); ok {
		if strings.TrimSpace(ad.TargetURL) == "" {
			return validationError("target_url is required")
		}
		if ad.ImpressionCap < 0 {
			return validationError("impression_cap must not be negative")
		}
	}
	return nil
}

// UpsertOutcome tells the import path which projection event, if any, an upsert implies.
type UpsertOutcome int

const (
	UpsertUnchanged UpsertOutcome = iota
	UpsertInserted
	UpsertUpdated
)

func (o UpsertOutcome) String() string {
	switch o {
	case UpsertInserted:
		return "inserted"
	case UpsertUpdated:
		return "updated"
	}
	return "unchanged"
}
