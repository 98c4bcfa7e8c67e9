//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"homeservice-booking/internal/domain/customer"
	"homeservice-booking/internal/infra"
	"homeservice-booking/internal/pkg/clock"
	"homeservice-booking/internal/pkg/codehash"
	"homeservice-booking/internal/pkg/config"
	"homeservice-booking/internal/pkg/errs"
	"homeservice-booking/internal/usecase/commands"
	"homeservice-booking/internal/usecase/shared"
	commandsmock "homeservice-booking/tests/mock/commands"
	sharedmock "homeservice-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testPhone     = "+212 6 12 34 56 78"
	testPhoneRaw  = "+212 612345678"
	testValidCode = "482913"
)

type VerificationTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	codes     *commandsmock.MockCodeStore
	sender    *commandsmock.MockCodeSender
	generator *commandsmock.MockCodeGenerator
	identity  *commandsmock.MockIdentityLookup
	metrics   *commandsmock.MockMetrics
	uow       *sharedmock.MockUnitOfWork
	clock     *clock.MockClock
	bookCfg   config.BookingConfig
	redisCfg  config.RedisConfig
	sessionID uuid.UUID
	uc        commands.VerificationCommands
}

func (s *VerificationTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.codes = commandsmock.NewMockCodeStore(s.mockCtrl)
	s.sender = commandsmock.NewMockCodeSender(s.mockCtrl)
	s.generator = commandsmock.NewMockCodeGenerator(s.mockCtrl)
	s.identity = commandsmock.NewMockIdentityLookup(s.mockCtrl)
	s.metrics = commandsmock.NewMockMetrics(s.mockCtrl)
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC))
	s.bookCfg = config.BookingConfig{SendCodeDelay: 2 * time.Second, VerifyCodeDelay: 1500 * time.Millisecond}
	s.redisCfg = config.RedisConfig{CodeTTL: 5 * time.Minute, DraftTTL: time.Hour}
	s.sessionID = uuid.New()
	s.uc = commands.NewVerificationUseCase(
		s.codes, s.sender, s.generator, s.identity, s.uow,
		s.metrics, s.clock, s.bookCfg, s.redisCfg,
	)
}

func (s *VerificationTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVerificationSuite(t *testing.T) {
	suite.Run(t, new(VerificationTestSuite))
}

func (s *VerificationTestSuite) expectOutcome(stage, outcome string) {
	s.metrics.EXPECT().ObserveVerification(stage, outcome)
}

// ================================================================================
// SendCode
// ================================================================================

func (s *VerificationTestSuite) TestSendCode() {
	s.Run("success: stores a hash and sends the plain code", func() {
		var stored string
		s.generator.EXPECT().Generate().Return(testValidCode, nil)
		s.codes.EXPECT().SaveCode(gomock.Any(), testPhone, gomock.Any(), 5*time.Minute).
			DoAndReturn(func(_ context.Context, _, hashed string, _ time.Duration) error {
				stored = hashed
				return nil
			})
		s.sender.EXPECT().Send(gomock.Any(), testPhone, testValidCode).Return(nil)
		s.expectOutcome(commands.VerificationStageSend, commands.VerificationOutcomeOK)

		before := s.clock.Slept()
		res, err := s.uc.SendCode(context.Background(), " "+testPhoneRaw+" ")
		s.Require().NoError(err)
		s.Equal(testPhone, res.Phone)
		s.Equal(300, res.ExpiresIn)
		s.NotEqual(testValidCode, stored)
		s.NoError(codehash.Compare(stored, testValidCode))
		s.Equal(2*time.Second, s.clock.Slept()-before)
	})

	s.Run("invalid phone is rejected before a code is made", func() {
		s.expectOutcome(commands.VerificationStageSend, commands.VerificationOutcomeRejected)

		_, err := s.uc.SendCode(context.Background(), "0612345678")
		s.True(errs.Is(err, commands.ErrInvalidContact))
	})

	s.Run("sender failure", func() {
		s.generator.EXPECT().Generate().Return(testValidCode, nil)
		s.codes.EXPECT().SaveCode(gomock.Any(), testPhone, gomock.Any(), gomock.Any()).Return(nil)
		s.sender.EXPECT().Send(gomock.Any(), testPhone, testValidCode).Return(errs.New("gateway timeout"))
		s.expectOutcome(commands.VerificationStageSend, commands.VerificationOutcomeFailed)

		_, err := s.uc.SendCode(context.Background(), testPhone)
		s.True(errs.Is(err, commands.ErrCodeDelivery))
	})

	s.Run("canceled while waiting on the sender", func() {
		s.generator.EXPECT().Generate().Return(testValidCode, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.uc.SendCode(ctx, testPhone)
		s.ErrorIs(err, context.Canceled)
	})
}

// ================================================================================
// VerifyCode
// ================================================================================

func (s *VerificationTestSuite) hashed(code string) string {
	h, err := codehash.Hash(code)
	s.Require().NoError(err)
	return h
}

func (s *VerificationTestSuite) TestVerifyCode() {
	s.Run("success: known customer", func() {
		customerID := uuid.New()
		s.codes.EXPECT().GetCode(gomock.Any(), testPhone).Return(s.hashed(testValidCode), nil)
		s.codes.EXPECT().DeleteCode(gomock.Any(), testPhone).Return(nil)
		s.codes.EXPECT().MarkVerified(gomock.Any(), s.sessionID, testPhone, time.Hour).Return(nil)
		s.identity.EXPECT().FindCustomerID(gomock.Any(), testPhone).Return(&customerID, nil)
		s.expectOutcome(commands.VerificationStageVerify, commands.VerificationOutcomeOK)

		res, err := s.uc.VerifyCode(context.Background(), s.sessionID, testPhone, testValidCode)
		s.Require().NoError(err)
		s.True(res.UserExists)
		s.Equal(&customerID, res.CustomerID)
	})

	s.Run("success: new phone", func() {
		s.codes.EXPECT().GetCode(gomock.Any(), testPhone).Return(s.hashed(testValidCode), nil)
		s.codes.EXPECT().DeleteCode(gomock.Any(), testPhone).Return(nil)
		s.codes.EXPECT().MarkVerified(gomock.Any(), s.sessionID, testPhone, gomock.Any()).Return(nil)
		s.identity.EXPECT().FindCustomerID(gomock.Any(), testPhone).Return(nil, nil)
		s.expectOutcome(commands.VerificationStageVerify, commands.VerificationOutcomeOK)

		res, err := s.uc.VerifyCode(context.Background(), s.sessionID, testPhone, testValidCode)
		s.Require().NoError(err)
		s.False(res.UserExists)
		s.Nil(res.CustomerID)
	})

	s.Run("wrong code leaves it in place", func() {
		s.codes.EXPECT().GetCode(gomock.Any(), testPhone).Return(s.hashed(testValidCode), nil)
		s.expectOutcome(commands.VerificationStageVerify, commands.VerificationOutcomeRejected)

		_, err := s.uc.VerifyCode(context.Background(), s.sessionID, testPhone, "000000")
		s.True(errs.Is(err, commands.ErrCodeMismatch))
	})

	s.Run("expired or never sent", func() {
		s.codes.EXPECT().GetCode(gomock.Any(), testPhone).
			Return("", infra.WrapRepoErr("get code", errs.New("redis: nil"), infra.KindNotFound))
		s.expectOutcome(commands.VerificationStageVerify, commands.VerificationOutcomeRejected)

		_, err := s.uc.VerifyCode(context.Background(), s.sessionID, testPhone, testValidCode)
		s.ErrorIs(err, commands.ErrCodeNotFound)
	})

	testCases := []struct {
		name  string
		phone string
		code  string
	}{
		{name: "short code", phone: testPhone, code: "123"},
		{name: "letters in code", phone: testPhone, code: "12a456"},
		{name: "missing prefix", phone: "0612345678", code: testValidCode},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectOutcome(commands.VerificationStageVerify, commands.VerificationOutcomeRejected)

			_, err := s.uc.VerifyCode(context.Background(), s.sessionID, tc.phone, tc.code)
			s.True(errs.Is(err, commands.ErrInvalidContact))
		})
	}
}

// ================================================================================
// Signup
// ================================================================================

func (s *VerificationTestSuite) expectCustomerInsert(result error) *customer.Customer {
	tx := sharedmock.NewMockTx(s.mockCtrl)
	customers := sharedmock.NewMockCustomerRepository(s.mockCtrl)
	tx.EXPECT().Customers().Return(customers)
	tx.EXPECT().DB().Return(nil)

	var created customer.Customer
	customers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ shared.DBTX, c *customer.Customer) error {
			created = *c
			return result
		})
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		})
	return &created
}

func (s *VerificationTestSuite) TestSignup() {
	in := commands.SignupInput{Name: "Jane Doe", Email: "Jane@X.com", Phone: testPhoneRaw}

	s.Run("success", func() {
		s.codes.EXPECT().IsVerified(gomock.Any(), s.sessionID, testPhone).Return(true, nil)
		created := s.expectCustomerInsert(nil)
		s.expectOutcome(commands.VerificationStageSignup, commands.VerificationOutcomeOK)

		res, err := s.uc.Signup(context.Background(), s.sessionID, in)
		s.Require().NoError(err)
		s.Equal(created.ID(), res.CustomerID)
		s.Equal("jane@x.com", created.Email())
		s.Equal(testPhone, created.Phone())
	})

	s.Run("phone not verified by this session", func() {
		s.codes.EXPECT().IsVerified(gomock.Any(), s.sessionID, testPhone).Return(false, nil)
		s.expectOutcome(commands.VerificationStageSignup, commands.VerificationOutcomeRejected)

		_, err := s.uc.Signup(context.Background(), s.sessionID, in)
		s.ErrorIs(err, commands.ErrPhoneNotVerified)
	})

	s.Run("phone already registered", func() {
		s.codes.EXPECT().IsVerified(gomock.Any(), s.sessionID, testPhone).Return(true, nil)
		s.expectCustomerInsert(infra.WrapRepoErr("insert customer", errs.New("duplicate"), infra.KindDuplicateKey))
		s.expectOutcome(commands.VerificationStageSignup, commands.VerificationOutcomeRejected)

		_, err := s.uc.Signup(context.Background(), s.sessionID, in)
		s.ErrorIs(err, commands.ErrPhoneAlreadyRegistered)
	})

	s.Run("invalid input", func() {
		s.expectOutcome(commands.VerificationStageSignup, commands.VerificationOutcomeRejected)

		_, err := s.uc.Signup(context.Background(), s.sessionID, commands.SignupInput{Name: "J", Email: "x", Phone: testPhone})
		s.True(errs.Is(err, commands.ErrInvalidContact))
	})
}
