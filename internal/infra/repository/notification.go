package repository

import (
	"context"

	"homeservice-booking/internal/domain/notification"
	"homeservice-booking/internal/pkg/pgconv"
	"homeservice-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	insertNotificationSQL = `INSERT INTO notifications (
	id, owner_id, type, title, message, created_at, read, order_id, action_url
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	markNotificationReadSQL     = `UPDATE notifications SET read = true WHERE id = $1 AND owner_id = $2`
	markAllNotificationsReadSQL = `UPDATE notifications SET read = true WHERE owner_id = $1 AND read = false`
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(ctx context.Context, db shared.DBTX, n *notification.Notification) error {
	_, err := db.Exec(ctx, insertNotificationSQL,
		n.ID(), n.OwnerID(), string(n.Type()), n.Title(), n.Message(), n.CreatedAt(), n.Read(),
		pgconv.UUIDPtrToPgtype(n.OrderID()), pgconv.StringPtrToPgtype(n.ActionURL()),
	)
	if err != nil {
		return classify("failed to create notification", err)
	}
	return nil
}

// MarkRead reports false when the owner has no such notification.
func (r *NotificationRepository) MarkRead(ctx context.Context, db shared.DBTX, ownerID, id uuid.UUID) (bool, error) {
	tag, err := db.Exec(ctx, markNotificationReadSQL, id, ownerID)
	if err != nil {
		return false, classify("failed to mark notification read", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, db shared.DBTX, ownerID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, markAllNotificationsReadSQL, ownerID)
	if err != nil {
		return 0, classify("failed to mark notifications read", err)
	}
	return tag.RowsAffected(), nil
}
