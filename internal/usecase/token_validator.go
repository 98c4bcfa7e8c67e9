package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

import (
	"time"

	"homeservice-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Session identifies the caller of the booking API. CustomerID is set once the
// session verified a phone that belongs to a registered customer.
type Session struct {
	ID         uuid.UUID
	CustomerID *uuid.UUID
}

// TokenValidator provides session token handling for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Session, error)
	IssueToken(session Session) (string, error)
	TokenDuration() time.Duration
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Session, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Session{}, err
	}
	return Session{ID: claims.SessionID, CustomerID: claims.CustomerID}, nil
}

func (t *tokenValidatorImpl) IssueToken(session Session) (string, error) {
	return t.jwtService.GenerateToken(session.ID, session.CustomerID)
}

func (t *tokenValidatorImpl) TokenDuration() time.Duration {
	return t.jwtService.Duration()
}
