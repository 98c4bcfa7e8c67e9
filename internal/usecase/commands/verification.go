package commands

//go:generate mockgen -source=verification.go -destination=../../../tests/mock/commands/verification.go -package=commandsmock

import (
	"context"
	"strings"

	"homeservice-booking/internal/domain/contact"
	"homeservice-booking/internal/domain/customer"
	"homeservice-booking/internal/infra"
	"homeservice-booking/internal/pkg/clock"
	"homeservice-booking/internal/pkg/codehash"
	"homeservice-booking/internal/pkg/config"
	"homeservice-booking/internal/pkg/errs"
	"homeservice-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidContact         = errs.New("invalid contact details")
	ErrCodeNotFound           = errs.New("verification code expired or was never sent")
	ErrCodeMismatch           = errs.New("verification code does not match")
	ErrCodeDelivery           = errs.New("failed to send verification code")
	ErrPhoneAlreadyRegistered = errs.New("phone number is already registered")
)

const (
	VerificationStageSend   = "send"
	VerificationStageVerify = "verify"
	VerificationStageSignup = "signup"

	VerificationOutcomeOK       = "ok"
	VerificationOutcomeRejected = "rejected"
	VerificationOutcomeFailed   = "failed"
)

type SendCodeResult struct {
	Phone     string
	ExpiresIn int
}

type VerifyCodeResult struct {
	Phone      string
	UserExists bool
	CustomerID *uuid.UUID
}

type SignupInput struct {
	Name  string
	Email string
	Phone string
}

type SignupResult struct {
	CustomerID uuid.UUID
}

type VerificationCommands interface {
	SendCode(ctx context.Context, phone string) (*SendCodeResult, error)
	VerifyCode(ctx context.Context, sessionID uuid.UUID, phone, code string) (*VerifyCodeResult, error)
	Signup(ctx context.Context, sessionID uuid.UUID, in SignupInput) (*SignupResult, error)
}

type verificationUseCaseImpl struct {
	codes     CodeStore
	sender    CodeSender
	generator CodeGenerator
	identity  IdentityLookup
	uow       shared.UnitOfWork
	metrics   Metrics
	clock     clock.Clock
	booking   config.BookingConfig
	redis     config.RedisConfig
}

func NewVerificationUseCase(
	codes CodeStore,
	sender CodeSender,
	generator CodeGenerator,
	identity IdentityLookup,
	uow shared.UnitOfWork,
	metrics Metrics,
	clk clock.Clock,
	bookingCfg config.BookingConfig,
	redisCfg config.RedisConfig,
) VerificationCommands {
	return &verificationUseCaseImpl{
		codes:     codes,
		sender:    sender,
		generator: generator,
		identity:  identity,
		uow:       uow,
		metrics:   metrics,
		clock:     clk,
		booking:   bookingCfg,
		redis:     redisCfg,
	}
}

func (uc *verificationUseCaseImpl) SendCode(ctx context.Context, phone string) (*SendCodeResult, error) {
	phone = strings.TrimSpace(phone)
	if err := phoneError(phone); err != nil {
		uc.observe(VerificationStageSend, VerificationOutcomeRejected)
		return nil, err
	}
	phone = contact.FormatPhone(phone)

	code, err := uc.generator.Generate()
	if err != nil {
		uc.observe(VerificationStageSend, VerificationOutcomeFailed)
		return nil, errs.Mark(err, ErrCodeDelivery)
	}
	hashed, err := codehash.Hash(code)
	if err != nil {
		uc.observe(VerificationStageSend, VerificationOutcomeFailed)
		return nil, errs.Mark(err, ErrCodeDelivery)
	}

	if err := uc.clock.Sleep(ctx, uc.booking.SendCodeDelay); err != nil {
		return nil, err
	}

	if err := uc.codes.SaveCode(ctx, phone, hashed, uc.redis.CodeTTL); err != nil {
		uc.observe(VerificationStageSend, VerificationOutcomeFailed)
		return nil, errs.Mark(err, ErrCodeDelivery)
	}
	if err := uc.sender.Send(ctx, phone, code); err != nil {
		uc.observe(VerificationStageSend, VerificationOutcomeFailed)
		return nil, errs.Mark(err, ErrCodeDelivery)
	}

	uc.observe(VerificationStageSend, VerificationOutcomeOK)
	return &SendCodeResult{Phone: phone, ExpiresIn: int(uc.redis.CodeTTL.Seconds())}, nil
}

// VerifyCode consumes the code on success. The returned customer is nil for
// a phone that has no account yet.
func (uc *verificationUseCaseImpl) VerifyCode(ctx context.Context, sessionID uuid.UUID, phone, code string) (*VerifyCodeResult, error) {
	phone = strings.TrimSpace(phone)
	fieldErrs := contact.FieldErrors{}
	if f := contact.ValidatePhone(phone); !f.OK() {
		fieldErrs[contact.FieldPhone] = f
	}
	if f := contact.ValidateVerificationCode(code); !f.OK() {
		fieldErrs[contact.FieldCode] = f
	}
	if err := fieldErrs.Err(); err != nil {
		uc.observe(VerificationStageVerify, VerificationOutcomeRejected)
		return nil, errs.Mark(err, ErrInvalidContact)
	}
	phone = contact.FormatPhone(phone)

	if err := uc.clock.Sleep(ctx, uc.booking.VerifyCodeDelay); err != nil {
		return nil, err
	}

	hashed, err := uc.codes.GetCode(ctx, phone)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			uc.observe(VerificationStageVerify, VerificationOutcomeRejected)
			return nil, ErrCodeNotFound
		}
		uc.observe(VerificationStageVerify, VerificationOutcomeFailed)
		return nil, errs.Mark(err, ErrDraftStore)
	}
	if err := codehash.Compare(hashed, code); err != nil {
		uc.observe(VerificationStageVerify, VerificationOutcomeRejected)
		return nil, errs.Mark(err, ErrCodeMismatch)
	}

	if err := uc.codes.DeleteCode(ctx, phone); err != nil {
		uc.observe(VerificationStageVerify, VerificationOutcomeFailed)
		return nil, errs.Mark(err, ErrDraftStore)
	}
	if err := uc.codes.MarkVerified(ctx, sessionID, phone, uc.redis.DraftTTL); err != nil {
		uc.observe(VerificationStageVerify, VerificationOutcomeFailed)
		return nil, errs.Mark(err, ErrDraftStore)
	}

	customerID, err := uc.identity.FindCustomerID(ctx, phone)
	if err != nil {
		uc.observe(VerificationStageVerify, VerificationOutcomeFailed)
		return nil, errs.Mark(err, ErrDatabase)
	}

	uc.observe(VerificationStageVerify, VerificationOutcomeOK)
	return &VerifyCodeResult{Phone: phone, UserExists: customerID != nil, CustomerID: customerID}, nil
}

// Signup registers a customer for a phone the session has verified.
func (uc *verificationUseCaseImpl) Signup(ctx context.Context, sessionID uuid.UUID, in SignupInput) (*SignupResult, error) {
	c, err := customer.NewCustomer(in.Name, in.Email, in.Phone, uc.clock.Now())
	if err != nil {
		uc.observe(VerificationStageSignup, VerificationOutcomeRejected)
		return nil, errs.Mark(err, ErrInvalidContact)
	}

	verified, err := uc.codes.IsVerified(ctx, sessionID, c.Phone())
	if err != nil {
		uc.observe(VerificationStageSignup, VerificationOutcomeFailed)
		return nil, errs.Mark(err, ErrDraftStore)
	}
	if !verified {
		uc.observe(VerificationStageSignup, VerificationOutcomeRejected)
		return nil, ErrPhoneNotVerified
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Customers().Create(ctx, tx.DB(), c)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			uc.observe(VerificationStageSignup, VerificationOutcomeRejected)
			return nil, ErrPhoneAlreadyRegistered
		}
		uc.observe(VerificationStageSignup, VerificationOutcomeFailed)
		return nil, errs.Mark(err, ErrDatabase)
	}

	uc.observe(VerificationStageSignup, VerificationOutcomeOK)
	return &SignupResult{CustomerID: c.ID()}, nil
}

func (uc *verificationUseCaseImpl) observe(stage, outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveVerification(stage, outcome)
	}
}

func phoneError(phone string) error {
	if f := contact.ValidatePhone(phone); !f.OK() {
		return errs.Mark(contact.FieldErrors{contact.FieldPhone: f}.Err(), ErrInvalidContact)
	}
	return nil
}
