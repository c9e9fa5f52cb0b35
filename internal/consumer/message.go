package consumer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"feedhub/internal/domain"
)

// errPoison marks a delivery that can never succeed and must not be requeued.
var errPoison = errors.New("poison message")

// ArticleMessage is the envelope published by the upstream news fetcher.
type ArticleMessage struct {
	Action    string          `json:"action"` // "create" or "update"
	Article   UpstreamArticle `json:"article"`
	Timestamp time.Time       `json:"timestamp"`
}

// UpstreamArticle mirrors the fetcher's article encoding, which uses Go field names as keys.
type UpstreamArticle struct {
	SourceID     string
	ExternalID   int64
	Title        string
	Description  *string
	Summary      *string
	Body         *string
	Author       *string
	CanonicalURL string
	ImageURL     *string
	PublishedAt  time.Time
	LastModified time.Time
}

func decodeMessage(body []byte) (*ArticleMessage, error) {
	var msg ArticleMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("decode message: %v: %w", err, errPoison)
	}

	switch msg.Action {
	case "create", "update":
	default:
		return nil, fmt.Errorf("unknown action %q: %w", msg.Action, errPoison)
	}

	if strings.TrimSpace(msg.Article.SourceID) == "" || msg.Article.ExternalID == 0 {
		return nil, fmt.Errorf("article without source id or external id: %w", errPoison)
	}

	return &msg, nil
}

// toDomain maps an upstream article onto the canonical article row.
func (m *ArticleMessage) toDomain() *domain.Article {
	u := m.Article

	summary := u.Summary
	if summary == nil {
		summary = u.Description
	}

	var sourceURL *string
	if u.CanonicalURL != "" {
		url := u.CanonicalURL
		sourceURL = &url
	}

	lastModified := u.LastModified
	if lastModified.IsZero() {
		lastModified = m.Timestamp
	}

	externalID := u.ExternalID
	return &domain.Article{
		SourceID:     u.SourceID,
		ExternalID:   &externalID,
		Title:        u.Title,
		Summary:      summary,
		Body:         u.Body,
		ImageURL:     u.ImageURL,
		SourceURL:    sourceURL,
		PublishedAt:  u.PublishedAt,
		LastModified: lastModified,
	}
}
