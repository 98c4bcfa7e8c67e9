package readstore

import (
	"context"

	"homeservice-booking/internal/domain/notification"
	"homeservice-booking/internal/infra"
	"homeservice-booking/internal/pkg/pgconv"
	"homeservice-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const notificationsByOwnerSQL = `SELECT id, owner_id, type, title, message, created_at, read, order_id, action_url
FROM notifications WHERE owner_id = $1 ORDER BY created_at DESC, id DESC`

type NotificationReadStore struct {
	db shared.DBTX
}

func NewNotificationReadStore(db shared.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

// FindByOwner returns the owner's feed, newest first.
func (s *NotificationReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*notification.Notification, error) {
	rows, err := s.db.Query(ctx, notificationsByOwnerSQL, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	result := make([]*notification.Notification, 0)
	for rows.Next() {
		var (
			p         notification.Params
			typ       string
			orderID   pgtype.UUID
			actionURL pgtype.Text
		)
		if err := rows.Scan(&p.ID, &p.OwnerID, &typ, &p.Title, &p.Message, &p.CreatedAt, &p.Read, &orderID, &actionURL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification", err)
		}
		p.Type = notification.Type(typ)
		p.OrderID = pgconv.UUIDPtrFromPgtype(orderID)
		p.ActionURL = pgconv.StringPtrFromPgtype(actionURL)

		n, err := notification.NewNotification(p)
		if err != nil {
			return nil, infra.WrapRepoErr("stored notification is invalid", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notifications", err)
	}
	return result, nil
}
