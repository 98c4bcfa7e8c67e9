//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"homeservice-booking/internal/handler/dto/response"
	"homeservice-booking/tests/common/dbtest"
	"homeservice-booking/tests/common/httptest"
	"homeservice-booking/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	rawPhone       = "+212 612345678"
	formattedPhone = "+212 6 12 34 56 78"
)

type AuthE2ETestSuite struct {
	e2e.SharedSuite
}

func TestAuthE2ETestSuite(t *testing.T) {
	suite.Run(t, new(AuthE2ETestSuite))
}

func (s *AuthE2ETestSuite) sendCode(phone string) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/code", map[string]any{"phone": phone}, "")
	var res response.SendCodeResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	s.Equal(formattedPhone, res.Phone)
	s.Positive(res.ExpiresIn)
}

// verify returns the decoded result and the session token to use afterwards.
func (s *AuthE2ETestSuite) verify(token, code string) (response.VerifyCodeResponse, string) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/verify",
		map[string]any{"phone": rawPhone, "code": code}, token)
	var res response.VerifyCodeResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	if issued := httptest.SessionToken(w); issued != "" {
		token = issued
	}
	return res, token
}

func (s *AuthE2ETestSuite) TestVerificationFlow() {
	s.Run("new phone: verify then sign up", func() {
		s.sendCode(rawPhone)

		res, token := s.verify("", e2e.FixedCode)
		s.Require().NotEmpty(token)
		s.True(res.Verified)
		s.False(res.UserExists)
		s.Nil(res.CustomerID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/signup", map[string]any{
			"name":  "Amina Benali",
			"email": "Amina@Example.com",
			"phone": rawPhone,
		}, token)
		var signup response.SignupResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &signup)
		s.NotEmpty(signup.CustomerID)
		httptest.AssertSessionIssued(s.T(), w)

		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "customers", "phone = $1 AND email = $2", formattedPhone, "amina@example.com"))
	})

	s.Run("registered phone resolves to its customer", func() {
		customerID := dbtest.CreateTestCustomer(s.T(), s.DB, "Amina Benali", "amina@example.com", formattedPhone)
		s.sendCode(rawPhone)

		res, _ := s.verify("", e2e.FixedCode)
		s.True(res.UserExists)
		s.Require().NotNil(res.CustomerID)
		s.Equal(customerID.String(), *res.CustomerID)
	})

	s.Run("wrong code is rejected and the sent code stays usable", func() {
		s.sendCode(rawPhone)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/verify",
			map[string]any{"phone": rawPhone, "code": "000000"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")

		res, _ := s.verify("", e2e.FixedCode)
		s.True(res.Verified)
	})

	s.Run("verify without a sent code", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/verify",
			map[string]any{"phone": rawPhone, "code": e2e.FixedCode}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("signup requires a phone verified by the same session", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/signup", map[string]any{
			"name":  "Amina Benali",
			"email": "amina@example.com",
			"phone": rawPhone,
		}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "customers", ""))
	})

	s.Run("signup for an already registered phone", func() {
		dbtest.CreateTestCustomer(s.T(), s.DB, "Amina Benali", "amina@example.com", formattedPhone)
		s.sendCode(rawPhone)
		_, token := s.verify("", e2e.FixedCode)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/signup", map[string]any{
			"name":  "Someone Else",
			"email": "else@example.com",
			"phone": rawPhone,
		}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})
}
