package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"
	"time"

	"homeservice-booking/internal/domain/booking"
	"homeservice-booking/internal/domain/provider"

	"github.com/google/uuid"
)

// DraftStore keeps one draft per session. Load reports found=false for a
// session that has no draft yet.
type DraftStore interface {
	Load(ctx context.Context, sessionID uuid.UUID) (draft booking.Draft, found bool, err error)
	Save(ctx context.Context, sessionID uuid.UUID, draft booking.Draft) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// CodeStore holds hashed verification codes and the phones each session has
// verified.
type CodeStore interface {
	SaveCode(ctx context.Context, phone, hashedCode string, ttl time.Duration) error
	GetCode(ctx context.Context, phone string) (string, error)
	DeleteCode(ctx context.Context, phone string) error
	MarkVerified(ctx context.Context, sessionID uuid.UUID, phone string, ttl time.Duration) error
	IsVerified(ctx context.Context, sessionID uuid.UUID, phone string) (bool, error)
}

type CodeSender interface {
	Send(ctx context.Context, phone, code string) error
}

type CodeGenerator interface {
	Generate() (string, error)
}

// IdentityLookup answers whether a phone already belongs to a customer.
type IdentityLookup interface {
	FindCustomerID(ctx context.Context, phone string) (*uuid.UUID, error)
}

type ProviderCatalog interface {
	ProviderByID(ctx context.Context, id string) (*provider.Provider, error)
	ExtraTasks(ctx context.Context, ids []string) ([]booking.ExtraTask, error)
	// BookedSlots lists taken start times. An empty providerID yields only the
	// slots taken on every calendar.
	BookedSlots(ctx context.Context, providerID, date string) ([]string, error)
}

// Metrics observes wizard activity. Implementations must tolerate a nil
// receiver.
type Metrics interface {
	booking.Listener
	ObserveSubmit(outcome string)
	ObserveVerification(stage, outcome string)
}
