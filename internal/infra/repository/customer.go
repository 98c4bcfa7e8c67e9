package repository

import (
	"context"

	"homeservice-booking/internal/domain/customer"
	"homeservice-booking/internal/usecase/shared"
)

const insertCustomerSQL = `INSERT INTO customers (id, name, email, phone, created_at) VALUES ($1, $2, $3, $4, $5)`

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// Create fails with KindDuplicateKey when the phone is already registered.
func (r *CustomerRepository) Create(ctx context.Context, db shared.DBTX, c *customer.Customer) error {
	_, err := db.Exec(ctx, insertCustomerSQL, c.ID(), c.Name(), c.Email(), c.Phone(), c.CreatedAt())
	if err != nil {
		return classify("failed to create customer", err)
	}
	return nil
}
