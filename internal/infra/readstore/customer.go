package readstore

import (
	"context"

	"homeservice-booking/internal/infra"
	"homeservice-booking/internal/pkg/pgconv"
	"homeservice-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const customerIDByPhoneSQL = `SELECT id FROM customers WHERE phone = $1`

type CustomerReadStore struct {
	db shared.DBTX
}

func NewCustomerReadStore(db shared.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: db}
}

// FindCustomerID returns nil when no customer owns the phone.
func (s *CustomerReadStore) FindCustomerID(ctx context.Context, phone string) (*uuid.UUID, error) {
	var id uuid.UUID
	if err := s.db.QueryRow(ctx, customerIDByPhoneSQL, phone).Scan(&id); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to look up customer", err)
	}
	return &id, nil
}
