//go:build unit

package commands_test

import (
	"context"
	"testing"

	"homeservice-booking/internal/infra"
	"homeservice-booking/internal/pkg/errs"
	"homeservice-booking/internal/usecase/commands"
	"homeservice-booking/internal/usecase/shared"
	sharedmock "homeservice-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newNotificationFixture(t *testing.T) (commands.NotificationCommands, *sharedmock.MockNotificationRepository) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	repo := sharedmock.NewMockNotificationRepository(ctrl)

	tx.EXPECT().Notifications().Return(repo).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()
	uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()

	return commands.NewNotificationUseCase(uow), repo
}

func TestMarkRead(t *testing.T) {
	owner, id := uuid.New(), uuid.New()

	t.Run("marks the owner's notification", func(t *testing.T) {
		uc, repo := newNotificationFixture(t)
		repo.EXPECT().MarkRead(gomock.Any(), gomock.Any(), owner, id).Return(true, nil)

		assert.NoError(t, uc.MarkRead(context.Background(), owner, id))
	})

	t.Run("unknown or foreign notification", func(t *testing.T) {
		uc, repo := newNotificationFixture(t)
		repo.EXPECT().MarkRead(gomock.Any(), gomock.Any(), owner, id).Return(false, nil)

		assert.ErrorIs(t, uc.MarkRead(context.Background(), owner, id), commands.ErrNotificationNotFound)
	})

	t.Run("database failure", func(t *testing.T) {
		uc, repo := newNotificationFixture(t)
		repo.EXPECT().MarkRead(gomock.Any(), gomock.Any(), owner, id).
			Return(false, infra.WrapRepoErr("mark read", errs.New("connection reset")))

		err := uc.MarkRead(context.Background(), owner, id)
		assert.True(t, errs.Is(err, commands.ErrDatabase))
	})
}

func TestMarkAllRead(t *testing.T) {
	owner := uuid.New()

	t.Run("returns the number of updated rows", func(t *testing.T) {
		uc, repo := newNotificationFixture(t)
		repo.EXPECT().MarkAllRead(gomock.Any(), gomock.Any(), owner).Return(int64(3), nil)

		n, err := uc.MarkAllRead(context.Background(), owner)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("database failure", func(t *testing.T) {
		uc, repo := newNotificationFixture(t)
		repo.EXPECT().MarkAllRead(gomock.Any(), gomock.Any(), owner).
			Return(int64(0), infra.WrapRepoErr("mark all read", errs.New("connection reset")))

		_, err := uc.MarkAllRead(context.Background(), owner)
		assert.True(t, errs.Is(err, commands.ErrDatabase))
	})
}
