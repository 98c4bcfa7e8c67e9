//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"homeservice-booking/internal/handler/api"
	reqdto "homeservice-booking/internal/handler/dto/request"
	resdto "homeservice-booking/internal/handler/dto/response"
	"homeservice-booking/internal/handler/middleware"
	"homeservice-booking/internal/pkg/config"
	"homeservice-booking/internal/pkg/cookie"
	"homeservice-booking/internal/pkg/errs"
	"homeservice-booking/internal/usecase"
	"homeservice-booking/internal/usecase/commands"
	"homeservice-booking/tests/common/httptest"
	"homeservice-booking/tests/common/testutil"
	commandsmock "homeservice-booking/tests/mock/commands"
	usecasemock "homeservice-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testPhone = "+212 6 12 34 56 78"

type AuthHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockVerificationCommands
	mockValidator *usecasemock.MockTokenValidator
	sessionID     uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVerificationCommands(s.mockCtrl)
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.sessionID = uuid.New()
	sessions := middleware.NewSessionMiddleware(s.mockValidator, config.NewTestConfig().Cookie)
	handler := api.NewAuthHandler(s.mockCommands, sessions)

	s.router.POST("/auth/code", handler.SendCode)
	s.router.POST("/auth/verify", withSession(s.sessionID), handler.VerifyCode)
	s.router.POST("/auth/signup", withSession(s.sessionID), handler.Signup)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name         string
	mutate       testutil.Mutation
	expectCode   int
	expectInBody string
}

func (s *AuthHandlerTestSuite) TestSendCode() {
	url := "/auth/code"
	reqBody := reqdto.SendCodeRequest{Phone: "+212 612345678"}

	s.Run("success: returns the formatted phone and expiry", func() {
		s.mockCommands.EXPECT().SendCode(gomock.Any(), reqBody.Phone).
			Return(&commands.SendCodeResult{Phone: testPhone, ExpiresIn: 300}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		var res resdto.SendCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(testPhone, res.Phone)
		s.Equal(300, res.ExpiresIn)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseAuth{
			{name: "missing field: phone (required)", mutate: testutil.Without("phone"), expectCode: http.StatusBadRequest},
			{name: "empty phone", mutate: testutil.With("phone", ""), expectCode: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.BodyMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: usecase failures", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "not a Moroccan mobile", err: errs.Mark(errs.New("invalid contact fields: phone"), commands.ErrInvalidContact), expectCode: http.StatusBadRequest},
			{name: "gateway down", err: errs.Mark(errs.New("timeout"), commands.ErrCodeDelivery), expectCode: http.StatusBadGateway},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SendCode(gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestVerifyCode() {
	url := "/auth/verify"
	reqBody := reqdto.VerifyCodeRequest{Phone: testPhone, Code: "482913"}

	s.Run("success: known customer is attached to the session", func() {
		customerID := uuid.New()
		s.mockCommands.EXPECT().VerifyCode(gomock.Any(), s.sessionID, testPhone, "482913").
			Return(&commands.VerifyCodeResult{Phone: testPhone, UserExists: true, CustomerID: &customerID}, nil)
		s.mockValidator.EXPECT().IssueToken(usecase.Session{ID: s.sessionID, CustomerID: &customerID}).Return("customer-token", nil)
		s.mockValidator.EXPECT().TokenDuration().Return(time.Hour)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		var res resdto.VerifyCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Verified)
		s.True(res.UserExists)
		s.Require().NotNil(res.CustomerID)
		s.Equal(customerID.String(), *res.CustomerID)
		s.Equal("customer-token", rec.Header().Get(middleware.SessionTokenHeader))
		s.NotNil(httptest.ExtractCookie(rec, cookie.SessionCookieName))
	})

	s.Run("success: new phone keeps the session token", func() {
		s.mockCommands.EXPECT().VerifyCode(gomock.Any(), s.sessionID, testPhone, "482913").
			Return(&commands.VerifyCodeResult{Phone: testPhone}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		var res resdto.VerifyCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.False(res.UserExists)
		s.Nil(res.CustomerID)
		s.Empty(rec.Header().Get(middleware.SessionTokenHeader))
	})

	s.Run("error: wrong or expired code", func() {
		for _, err := range []error{commands.ErrCodeMismatch, commands.ErrCodeNotFound} {
			s.mockCommands.EXPECT().VerifyCode(gomock.Any(), s.sessionID, gomock.Any(), gomock.Any()).Return(nil, err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "verification code")
		}
	})

	s.Run("error: missing code", func() {
		body := testutil.BodyMap(s.T(), reqBody, testutil.Without("code"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestSignup() {
	url := "/auth/signup"
	reqBody := reqdto.SignupRequest{Name: "Jane Doe", Email: "jane@x.com", Phone: testPhone}

	s.Run("success: 201 and the session carries the customer", func() {
		customerID := uuid.New()
		s.mockCommands.EXPECT().Signup(gomock.Any(), s.sessionID, reqBody.ToInput()).
			Return(&commands.SignupResult{CustomerID: customerID}, nil)
		s.mockValidator.EXPECT().IssueToken(usecase.Session{ID: s.sessionID, CustomerID: &customerID}).Return("customer-token", nil)
		s.mockValidator.EXPECT().TokenDuration().Return(time.Hour)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		var res resdto.SignupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(customerID.String(), res.CustomerID)
	})

	s.Run("error: phone not verified", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), s.sessionID, gomock.Any()).Return(nil, commands.ErrPhoneNotVerified)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: already registered", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), s.sessionID, gomock.Any()).Return(nil, commands.ErrPhoneAlreadyRegistered)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})

	s.Run("error: session token cannot be signed", func() {
		customerID := uuid.New()
		s.mockCommands.EXPECT().Signup(gomock.Any(), s.sessionID, gomock.Any()).
			Return(&commands.SignupResult{CustomerID: customerID}, nil)
		s.mockValidator.EXPECT().IssueToken(gomock.Any()).Return("", errs.New("sign failed"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
