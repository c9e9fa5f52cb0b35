package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortField(t *testing.T) {
	tests := []struct {
		in   string
		want SortField
	}{
		{in: "title", want: SortTitle},
		{in: "published_at", want: SortPublishedAt},
		{in: "LIKES_COUNT", want: SortLikesCount},
		{in: " comments_count ", want: SortCommentsCount},
		{in: "created_at", want: SortCreatedAt},
		{in: "", want: SortCreatedAt},
		{in: "DROP TABLE", want: SortCreatedAt},
		{in: "id; DELETE FROM likes", want: SortCreatedAt},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortField(tt.in))
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, OrderAsc, ParseSortOrder("asc"))
	assert.Equal(t, OrderAsc, ParseSortOrder("ASC"))
	assert.Equal(t, OrderDesc, ParseSortOrder("desc"))
	assert.Equal(t, OrderDesc, ParseSortOrder(""))
	assert.Equal(t, OrderDesc, ParseSortOrder("sideways"))
}

func TestFeedQueryNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        FeedQuery
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", in: FeedQuery{}, wantPage: 1, wantLimit: 20},
		{name: "negative page", in: FeedQuery{Page: -3, Limit: 5}, wantPage: 1, wantLimit: 5},
		{name: "limit above max", in: FeedQuery{Page: 2, Limit: 1000}, wantPage: 2, wantLimit: 100},
		{name: "in range", in: FeedQuery{Page: 4, Limit: 10}, wantPage: 4, wantLimit: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Normalize(20, 100)
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantLimit, q.Limit)
			assert.Equal(t, SortCreatedAt, q.Sort.Field)
			assert.Equal(t, OrderDesc, q.Sort.Order)
		})
	}
}

func TestFeedQueryNormalizeSort(t *testing.T) {
	tests := []struct {
		name string
		in   Sort
		want Sort
	}{
		{name: "known field keeps order", in: Sort{Field: "likes_count", Order: "asc"}, want: Sort{Field: SortLikesCount, Order: OrderAsc}},
		{name: "order only", in: Sort{Order: "asc"}, want: Sort{Field: SortCreatedAt, Order: OrderAsc}},
		{name: "unknown field resets order", in: Sort{Field: "DROP TABLE", Order: "asc"}, want: Sort{Field: SortCreatedAt, Order: OrderDesc}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := FeedQuery{Sort: tt.in}
			q.Normalize(20, 100)
			assert.Equal(t, tt.want, q.Sort)
		})
	}
}

func TestFeedQueryNormalize_HugePageDoesNotOverflow(t *testing.T) {
	q := FeedQuery{Page: math.MaxInt, Limit: 20}
	q.Normalize(20, 100)

	assert.Positive(t, q.Offset())
	assert.Equal(t, math.MaxInt/20, q.Page)
}

func TestFeedQueryOffset(t *testing.T) {
	q := FeedQuery{Page: 3, Limit: 10}
	assert.Equal(t, 20, q.Offset())
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{total: 11, limit: 10, want: 2},
		{total: 10, limit: 10, want: 1},
		{total: 0, limit: 10, want: 0},
		{total: 1, limit: 1, want: 1},
		{total: 101, limit: 20, want: 6},
	}
	for _, tt := range tests {
		p := NewPagination(tt.total, 1, tt.limit)
		assert.Equal(t, tt.want, p.TotalPages, "total=%d limit=%d", tt.total, tt.limit)
		assert.Equal(t, tt.total, p.Total)
	}
}

func TestAdItem_AddressableByEntryID(t *testing.T) {
	item := AdItem(&Advertisement{ID: 4, EntryID: 42, Title: "Sale", TargetURL: "https://shop.example"})

	assert.Equal(t, int64(42), item.ID)
	assert.Equal(t, ContentKey{ContentType: ContentAdvertisement, OriginalID: 4}, item.ContentKey)
	assert.True(t, item.Sponsored)
}
