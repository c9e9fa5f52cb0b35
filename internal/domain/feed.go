package domain

import (
	"math"
	"strings"
)

// SortField is the allow-list of orderable feed columns.
type SortField string

const (
	SortTitle         SortField = "title"
	SortPublishedAt   SortField = "published_at"
	SortCreatedAt     SortField = "created_at"
	SortLikesCount    SortField = "likes_count"
	SortCommentsCount SortField = "comments_count"
)

// ParseSortField never fails: unknown input falls back to created_at.
func ParseSortField(s string) SortField {
	switch f := SortField(strings.ToLower(strings.TrimSpace(s))); f {
	case SortTitle, SortPublishedAt, SortCreatedAt, SortLikesCount, SortCommentsCount:
		return f
	}
	return SortCreatedAt
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ParseSortOrder defaults to desc.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(OrderAsc)) {
		return OrderAsc
	}
	return OrderDesc
}

type Sort struct {
	Field SortField
	Order SortOrder
}

type FeedFilter struct {
	ContentType *ContentType
	// ExcludeTypes drops entries of the listed types; used to keep ads out of organic results.
	ExcludeTypes []ContentType
}

// FeedQuery is a normalized listFeed request.
type FeedQuery struct {
	Filter   FeedFilter
	Sort     Sort
	Page     int
	Limit    int
	ViewerID string
	// AdEvery interleaves one ad after every AdEvery organic items. 0 disables interleaving.
	AdEvery int
}

// Normalize clamps paging into range instead of rejecting the request.
func (q *FeedQuery) Normalize(defaultLimit, maxLimit int) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if maxLimit > 0 && q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	// Keeps Offset from overflowing; such a page is past any real total.
	if q.Limit > 0 && q.Page > math.MaxInt/q.Limit {
		q.Page = math.MaxInt / q.Limit
	}
	q.Sort.Order = ParseSortOrder(string(q.Sort.Order))
	raw := strings.TrimSpace(string(q.Sort.Field))
	q.Sort.Field = ParseSortField(raw)
	// A rejected field resets the whole sort to the default ordering.
	if raw != "" && !strings.EqualFold(raw, string(q.Sort.Field)) {
		q.Sort.Order = OrderDesc
	}
	if q.AdEvery < 0 {
		q.AdEvery = 0
	}
}

func (q FeedQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func NewPagination(total, page, limit int) Pagination {
	p := Pagination{Total: total, Page: page, Limit: limit}
	if limit > 0 {
		p.TotalPages = (total + limit - 1) / limit
	}
	return p
}

// FeedItem is a feed entry annotated for one viewer.
type FeedItem struct {
	FeedEntry
	IsLiked   bool `json:"is_liked"`
	Sponsored bool `json:"sponsored,omitempty"`
}

type FeedPage struct {
	Items      []FeedItem `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// AdItem renders an advertisement as a sponsored feed slot.
func AdItem(ad *Advertisement) FeedItem {
	return FeedItem{
		FeedEntry: FeedEntry{
			ID:          ad.EntryID,
			ContentKey:  ContentKey{ContentType: ContentAdvertisement, OriginalID: ad.ID},
			EntryFields: ad.Fields(),
			CreatedAt:   ad.CreatedAt,
			UpdatedAt:   ad.UpdatedAt,
		},
		Sponsored: true,
	}
}
