//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"homeservice-booking/internal/handler/httperr"
	"homeservice-booking/internal/handler/middleware"
	"homeservice-booking/internal/pkg/cookie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and decodes a 2xx body into target
// when target is non-nil.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "failed to decode body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and the error envelope. An empty
// expectedMsg only checks that a message is present. The decoded envelope is
// returned so callers can inspect Detail.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) httperr.Response {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to decode error body: %s", w.Body.String())
	if expectedMsg == "" {
		assert.NotEmpty(t, resp.Error.Message)
	} else {
		assert.Contains(t, resp.Error.Message, expectedMsg)
	}
	resp.Status = w.Code
	return resp
}

// AssertSessionIssued checks that w carries a new session token in both the
// header and the session cookie, and returns it.
func AssertSessionIssued(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	token := w.Header().Get(middleware.SessionTokenHeader)
	require.NotEmpty(t, token, "no %s header", middleware.SessionTokenHeader)

	c := ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, c, "no session cookie")
	assert.Equal(t, token, c.Value)
	return token
}
