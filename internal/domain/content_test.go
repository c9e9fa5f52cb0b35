package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentType(t *testing.T) {
	for _, in := range []string{"article", "Community", " advertisement "} {
		ct, err := ParseContentType(in)
		require.NoError(t, err, in)
		assert.True(t, ct.Valid())
	}

	_, err := ParseContentType("video")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdvertisementEligible(t *testing.T) {
	tests := []struct {
		name string
		ad   Advertisement
		want bool
	}{
		{name: "unlimited", ad: Advertisement{Active: true, ImpressionCap: 0, ImpressionsServed: 1000}, want: true},
		{name: "under cap", ad: Advertisement{Active: true, ImpressionCap: 5, ImpressionsServed: 4}, want: true},
		{name: "at cap", ad: Advertisement{Active: true, ImpressionCap: 5, ImpressionsServed: 5}, want: false},
		{name: "inactive", ad: Advertisement{Active: false}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ad.Eligible())
		})
	}
}

func TestCanonicalFields(t *testing.T) {
	now := time.Now()
	src := "https://example.com/a"
	video := "https://cdn.example.com/v.mp4"

	a := &Article{Title: "A", SourceURL: &src, IsOfficial: true, PublishedAt: now}
	assert.Equal(t, ContentArticle, a.Kind())
	assert.Equal(t, &src, a.Fields().SourceURL)
	assert.True(t, a.Fields().IsOfficial)

	p := &CommunityPost{Title: "P", VideoURL: &video, PublishedAt: now}
	assert.Equal(t, ContentCommunity, p.Kind())
	assert.Equal(t, &video, p.Fields().VideoURL)

	ad := &Advertisement{Title: "Ad", TargetURL: "https://shop.example.com", ImpressionCap: 5}
	f := ad.Fields()
	require.NotNil(t, f.TargetURL)
	require.NotNil(t, f.ImpressionCap)
	assert.Equal(t, "https://shop.example.com", *f.TargetURL)
	assert.Equal(t, int64(5), *f.ImpressionCap)
}

func TestValidateCanonical(t *testing.T) {
	assert.NoError(t, ValidateCanonical(&Article{Title: "ok"}))
	assert.ErrorIs(t, ValidateCanonical(&Article{Title: "  "}), ErrValidation)
	assert.ErrorIs(t, ValidateCanonical(&Advertisement{Title: "ad"}), ErrValidation)
	assert.ErrorIs(t, ValidateCanonical(&Advertisement{Title: "ad", TargetURL: "x", ImpressionCap: -1}), ErrValidation)
}

func TestDrifts(t *testing.T) {
	key := ContentKey{ContentType: ContentArticle, OriginalID: 1}

	assert.Empty(t, Drifts(key, Counters{Likes: 2, Comments: 1}, Counters{Likes: 2, Comments: 1}))

	drifts := Drifts(key, Counters{Likes: 0, Comments: 3}, Counters{Likes: 2, Comments: 1})
	require.Len(t, drifts, 2)
	assert.Equal(t, "likes_count", drifts[0].Counter)
	assert.Equal(t, 0, drifts[0].Stored)
	assert.Equal(t, 2, drifts[0].Actual)
	assert.Equal(t, "comments_count", drifts[1].Counter)
}

func TestEventName(t *testing.T) {
	key := ContentKey{ContentType: ContentCommunity, OriginalID: 9}
	assert.Equal(t, "created", EventName(ContentCreated{Key: key}))
	assert.Equal(t, "updated", EventName(ContentUpdated{Key: key}))
	assert.Equal(t, "deleted", EventName(ContentDeleted{Key: key}))
	assert.Equal(t, key, ContentDeleted{Key: key}.EventKey())
}

func TestContentTypeEngageable(t *testing.T) {
	assert.True(t, ContentArticle.Engageable())
	assert.True(t, ContentCommunity.Engageable())
	assert.False(t, ContentAdvertisement.Engageable())
}
