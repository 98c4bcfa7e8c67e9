package commands

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/commands/notification.go -package=commandsmock

import (
	"context"

	"homeservice-booking/internal/pkg/errs"
	"homeservice-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.ErrNotificationNotFound

type NotificationCommands interface {
	MarkRead(ctx context.Context, ownerID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type notificationUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationUseCase(uow shared.UnitOfWork) NotificationCommands {
	return &notificationUseCaseImpl{uow: uow}
}

func (uc *notificationUseCaseImpl) MarkRead(ctx context.Context, ownerID, id uuid.UUID) error {
	var found bool
	err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		found, err = tx.Notifications().MarkRead(ctx, tx.DB(), ownerID, id)
		return err
	})
	if err != nil {
		return errs.Mark(err, ErrDatabase)
	}
	if !found {
		return ErrNotificationNotFound
	}
	return nil
}

func (uc *notificationUseCaseImpl) MarkAllRead(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var updated int64
	err := uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		updated, err = tx.Notifications().MarkAllRead(ctx, tx.DB(), ownerID)
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabase)
	}
	return updated, nil
}
