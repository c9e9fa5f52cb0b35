package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"feedhub/internal/config"
	"feedhub/internal/domain"
	"feedhub/internal/service/mocks"
)

type FeedServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	entries *mocks.MockFeedEntryStore
	likes   *mocks.MockLikeStore
	ads     *mocks.MockAdPlacer

	service *FeedService
}

func (s *FeedServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.entries = mocks.NewMockFeedEntryStore(s.ctrl)
	s.likes = mocks.NewMockLikeStore(s.ctrl)
	s.ads = mocks.NewMockAdPlacer(s.ctrl)

	s.service = NewFeedService(s.entries, s.likes, s.ads, config.FeedConfig{
		DefaultLimit: 20,
		MaxLimit:     100,
		AdEvery:      5,
	}, zerolog.Nop())
}

func (s *FeedServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFeedServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FeedServiceTestSuite))
}

func entry(id int64, ct domain.ContentType, originalID int64) domain.FeedEntry {
	return domain.FeedEntry{
		ID:          id,
		ContentKey:  domain.ContentKey{ContentType: ct, OriginalID: originalID},
		EntryFields: domain.EntryFields{Title: "item"},
	}
}

func (s *FeedServiceTestSuite) TestListFeed_PaginationArithmetic() {
	ctx := context.Background()

	s.entries.EXPECT().Count(ctx, domain.FeedFilter{}).Return(11, nil)
	s.entries.EXPECT().List(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, q domain.FeedQuery) ([]domain.FeedEntry, error) {
			s.Equal(10, q.Offset())
			return []domain.FeedEntry{entry(11, domain.ContentArticle, 11)}, nil
		},
	)

	page, err := s.service.ListFeed(ctx, domain.FeedQuery{Page: 2, Limit: 10})

	s.Require().NoError(err)
	s.Len(page.Items, 1)
	s.Equal(domain.Pagination{Total: 11, Page: 2, Limit: 10, TotalPages: 2}, page.Pagination)
}

func (s *FeedServiceTestSuite) TestListFeed_PageOutOfRange() {
	ctx := context.Background()

	s.entries.EXPECT().Count(ctx, domain.FeedFilter{}).Return(11, nil)

	page, err := s.service.ListFeed(ctx, domain.FeedQuery{Page: 3, Limit: 10})

	s.Require().NoError(err)
	s.NotNil(page.Items)
	s.Empty(page.Items)
	s.Equal(11, page.Pagination.Total)
	s.Equal(2, page.Pagination.TotalPages)
}

func (s *FeedServiceTestSuite) TestListFeed_HugePageIsEmpty() {
	ctx := context.Background()

	s.entries.EXPECT().Count(ctx, domain.FeedFilter{}).Return(11, nil)

	page, err := s.service.ListFeed(ctx, domain.FeedQuery{Page: math.MaxInt, Limit: 20})

	s.Require().NoError(err)
	s.NotNil(page.Items)
	s.Empty(page.Items)
	s.Equal(11, page.Pagination.Total)
}

func (s *FeedServiceTestSuite) TestListFeed_ClampsAndDefaults() {
	ctx := context.Background()

	s.entries.EXPECT().Count(ctx, gomock.Any()).Return(1, nil)
	s.entries.EXPECT().List(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, q domain.FeedQuery) ([]domain.FeedEntry, error) {
			s.Equal(1, q.Page)
			s.Equal(100, q.Limit)
			s.Equal(domain.SortCreatedAt, q.Sort.Field)
			s.Equal(domain.OrderDesc, q.Sort.Order)
			return []domain.FeedEntry{entry(1, domain.ContentArticle, 1)}, nil
		},
	)

	_, err := s.service.ListFeed(ctx, domain.FeedQuery{
		Page:  -4,
		Limit: 5000,
		Sort:  domain.Sort{Field: "password; DROP TABLE likes", Order: "sideways"},
	})

	s.NoError(err)
}

func (s *FeedServiceTestSuite) TestListFeed_AnnotatesLikesInOneLookup() {
	ctx := context.Background()
	a := entry(1, domain.ContentArticle, 10)
	b := entry(2, domain.ContentCommunity, 10)

	s.entries.EXPECT().Count(ctx, gomock.Any()).Return(2, nil)
	s.entries.EXPECT().List(ctx, gomock.Any()).Return([]domain.FeedEntry{a, b}, nil)
	s.likes.EXPECT().LikedKeys(ctx, "viewer", []domain.ContentKey{a.ContentKey, b.ContentKey}).
		Return(map[domain.ContentKey]bool{b.ContentKey: true}, nil)

	page, err := s.service.ListFeed(ctx, domain.FeedQuery{ViewerID: "viewer"})

	s.Require().NoError(err)
	s.Require().Len(page.Items, 2)
	s.False(page.Items[0].IsLiked)
	s.True(page.Items[1].IsLiked)
}

func (s *FeedServiceTestSuite) TestListFeed_AnonymousSkipsLikeLookup() {
	ctx := context.Background()

	s.entries.EXPECT().Count(ctx, gomock.Any()).Return(1, nil)
	s.entries.EXPECT().List(ctx, gomock.Any()).Return([]domain.FeedEntry{entry(1, domain.ContentArticle, 1)}, nil)

	page, err := s.service.ListFeed(ctx, domain.FeedQuery{})

	s.Require().NoError(err)
	s.False(page.Items[0].IsLiked)
}

func (s *FeedServiceTestSuite) TestListFeed_InterleavesAdsAndExcludesAdEntries() {
	ctx := context.Background()
	organic := []domain.FeedEntry{entry(1, domain.ContentArticle, 1), entry(2, domain.ContentArticle, 2)}
	sponsored := domain.FeedItem{Sponsored: true}

	s.entries.EXPECT().Count(ctx, domain.FeedFilter{ExcludeTypes: []domain.ContentType{domain.ContentAdvertisement}}).Return(2, nil)
	s.entries.EXPECT().List(ctx, gomock.Any()).Return(organic, nil)
	s.ads.EXPECT().Interleave(ctx, gomock.Len(2), 2).DoAndReturn(
		func(_ context.Context, items []domain.FeedItem, _ int) ([]domain.FeedItem, error) {
			return append(items, sponsored), nil
		},
	)

	page, err := s.service.ListFeed(ctx, domain.FeedQuery{AdEvery: 2})

	s.Require().NoError(err)
	s.Len(page.Items, 3)
	s.True(page.Items[2].Sponsored)
	s.Equal(2, page.Pagination.Total)
}

func (s *FeedServiceTestSuite) TestListFeed_TypeFilterDisablesAds() {
	ctx := context.Background()
	ct := domain.ContentCommunity

	s.entries.EXPECT().Count(ctx, domain.FeedFilter{ContentType: &ct}).Return(1, nil)
	s.entries.EXPECT().List(ctx, gomock.Any()).Return([]domain.FeedEntry{entry(1, ct, 1)}, nil)

	page, err := s.service.ListFeed(ctx, domain.FeedQuery{
		Filter:  domain.FeedFilter{ContentType: &ct},
		AdEvery: 1,
	})

	s.Require().NoError(err)
	s.Len(page.Items, 1)
}

func (s *FeedServiceTestSuite) TestListFeed_AdFailureServesOrganic() {
	ctx := context.Background()

	s.entries.EXPECT().Count(ctx, gomock.Any()).Return(1, nil)
	s.entries.EXPECT().List(ctx, gomock.Any()).Return([]domain.FeedEntry{entry(1, domain.ContentArticle, 1)}, nil)
	s.ads.EXPECT().Interleave(ctx, gomock.Any(), 1).Return(nil, errors.New("ads down"))

	page, err := s.service.ListFeed(ctx, domain.FeedQuery{AdEvery: 1})

	s.Require().NoError(err)
	s.Len(page.Items, 1)
}

func (s *FeedServiceTestSuite) TestListFeed_CountError() {
	ctx := context.Background()
	dbErr := errors.New("pool exhausted")

	s.entries.EXPECT().Count(ctx, gomock.Any()).Return(0, dbErr)

	_, err := s.service.ListFeed(ctx, domain.FeedQuery{})

	s.ErrorIs(err, dbErr)
}

func (s *FeedServiceTestSuite) TestGetFeedItemByID() {
	ctx := context.Background()
	e := entry(3, domain.ContentArticle, 30)

	s.entries.EXPECT().GetByID(ctx, int64(3)).Return(&e, nil)
	s.likes.EXPECT().LikedKeys(ctx, "u1", []domain.ContentKey{e.ContentKey}).
		Return(map[domain.ContentKey]bool{e.ContentKey: true}, nil)

	item, err := s.service.GetFeedItemByID(ctx, 3, "u1")

	s.Require().NoError(err)
	s.True(item.IsLiked)
	s.Equal(int64(30), item.OriginalID)
}

func (s *FeedServiceTestSuite) TestGetFeedItem_NotFound() {
	ctx := context.Background()
	key := domain.ContentKey{ContentType: domain.ContentArticle, OriginalID: 404}

	s.entries.EXPECT().GetByKey(ctx, key).Return(nil, domain.ErrNotFound)

	_, err := s.service.GetFeedItem(ctx, key, "")

	s.ErrorIs(err, domain.ErrNotFound)
}
