package service

import (
	"context"

	"go.uber.org/mock/gomock"

	"feedhub/internal/service/mocks"
)

// passthroughTx makes the mocked transaction manager run fn directly.
func passthroughTx(tx *mocks.MockTransactionManager) {
	tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}
