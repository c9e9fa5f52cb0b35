package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"feedhub/internal/config"
	"feedhub/internal/domain"
	"feedhub/internal/service/mocks"
)

type ReconcilerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	entries    *mocks.MockFeedEntryStore
	reconciler *mocks.MockCounterReconciler
	locker     *mocks.MockLocker

	job      *Reconciler
	released int
}

func (s *ReconcilerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.entries = mocks.NewMockFeedEntryStore(s.ctrl)
	s.reconciler = mocks.NewMockCounterReconciler(s.ctrl)
	s.locker = mocks.NewMockLocker(s.ctrl)
	s.released = 0

	s.job = NewReconciler(s.entries, s.reconciler, s.locker, config.ReconcileConfig{BatchSize: 2}, zerolog.Nop())
}

func (s *ReconcilerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReconcilerTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerTestSuite))
}

func (s *ReconcilerTestSuite) grantLock(ctx context.Context) {
	s.locker.EXPECT().TryLock(ctx, reconcileLockName).Return(func() { s.released++ }, true, nil)
}

func ref(id int64) domain.EntryRef {
	return domain.EntryRef{ID: id, ContentKey: domain.ContentKey{ContentType: domain.ContentArticle, OriginalID: id * 10}}
}

func (s *ReconcilerTestSuite) TestReconcileAll_WalksBatches() {
	ctx := context.Background()
	s.grantLock(ctx)

	gomock.InOrder(
		s.entries.EXPECT().ListRefs(ctx, int64(0), 2).Return([]domain.EntryRef{ref(1), ref(2)}, nil),
		s.entries.EXPECT().ListRefs(ctx, int64(2), 2).Return([]domain.EntryRef{ref(5)}, nil),
	)

	s.reconciler.EXPECT().Reconcile(ctx, ref(1).ContentKey).Return(domain.Reconciliation{}, nil)
	s.reconciler.EXPECT().Reconcile(ctx, ref(2).ContentKey).Return(domain.Reconciliation{
		Drifts: []domain.CounterDrift{{Counter: "likes_count", Stored: 2, Actual: 1}},
	}, nil)
	s.reconciler.EXPECT().Reconcile(ctx, ref(5).ContentKey).Return(domain.Reconciliation{}, errors.New("timeout"))

	stats, err := s.job.ReconcileAll(ctx)

	s.Require().NoError(err)
	s.Equal(3, stats.Scanned)
	s.Equal(1, stats.Corrected)
	s.Equal(1, stats.Errors)
	s.False(stats.Skipped)
	s.Equal(1, s.released)
}

func (s *ReconcilerTestSuite) TestReconcileAll_DeletedEntryIsNotAnError() {
	ctx := context.Background()
	s.grantLock(ctx)

	s.entries.EXPECT().ListRefs(ctx, int64(0), 2).Return([]domain.EntryRef{ref(1)}, nil)
	s.reconciler.EXPECT().Reconcile(ctx, ref(1).ContentKey).Return(domain.Reconciliation{}, domain.ErrNotFound)

	stats, err := s.job.ReconcileAll(ctx)

	s.Require().NoError(err)
	s.Equal(0, stats.Errors)
}

func (s *ReconcilerTestSuite) TestReconcileAll_SkipsWhenLockHeld() {
	ctx := context.Background()

	s.locker.EXPECT().TryLock(ctx, reconcileLockName).Return(nil, false, nil)

	stats, err := s.job.ReconcileAll(ctx)

	s.Require().NoError(err)
	s.True(stats.Skipped)
	s.Equal(0, stats.Scanned)
}

func (s *ReconcilerTestSuite) TestReconcileAll_ListErrorReleasesLock() {
	ctx := context.Background()
	dbErr := errors.New("connection refused")
	s.grantLock(ctx)

	s.entries.EXPECT().ListRefs(ctx, int64(0), 2).Return(nil, dbErr)

	_, err := s.job.ReconcileAll(ctx)

	s.ErrorIs(err, dbErr)
	s.Equal(1, s.released)
}

func (s *ReconcilerTestSuite) TestRun_LockError() {
	ctx := context.Background()
	lockErr := errors.New("redis down")

	s.locker.EXPECT().TryLock(ctx, reconcileLockName).Return(nil, false, lockErr)

	s.ErrorIs(s.job.Run(ctx), lockErr)
}
