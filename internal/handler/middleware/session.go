package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"homeservice-booking/internal/pkg/config"
	"homeservice-booking/internal/pkg/cookie"
	"homeservice-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxSessionKey = "session"

	// SessionTokenHeader carries a newly issued token for clients that do not
	// keep cookies.
	SessionTokenHeader = "X-Session-Token"
)

type SessionMiddleware struct {
	tokenValidator usecase.TokenValidator
	cookieCfg      config.CookieConfig
}

func NewSessionMiddleware(tokenValidator usecase.TokenValidator, cookieCfg config.CookieConfig) *SessionMiddleware {
	return &SessionMiddleware{
		tokenValidator: tokenValidator,
		cookieCfg:      cookieCfg,
	}
}

// RequireSession resolves the caller's session from the session cookie or a
// bearer token. A request without a usable token gets a new session.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)

		if token != "" {
			session, err := m.tokenValidator.ValidateToken(token)
			if err == nil {
				SetSession(c, session)
				c.Next()
				return
			}
			slog.Warn("Session token rejected, starting a new session", "error", err.Error())
		}

		session := usecase.Session{ID: uuid.New()}
		if err := m.IssueSession(c, session); err != nil {
			slog.Error("Failed to issue session token", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "Internal server error"},
			})
			return
		}
		c.Next()
	}
}

// IssueSession signs session, hands it to the client and makes it the
// request's current session.
func (m *SessionMiddleware) IssueSession(c *gin.Context, session usecase.Session) error {
	token, err := m.tokenValidator.IssueToken(session)
	if err != nil {
		return err
	}
	cookie.SetSessionCookie(c, m.cookieCfg, token, m.tokenValidator.TokenDuration())
	c.Header(SessionTokenHeader, token)
	SetSession(c, session)
	return nil
}

func SetSession(c *gin.Context, session usecase.Session) {
	c.Set(ctxSessionKey, session)
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetSession(c *gin.Context) (usecase.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return usecase.Session{}, false
	}
	session, ok := v.(usecase.Session)
	return session, ok
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	session, ok := GetSession(c)
	if !ok || session.ID == uuid.Nil {
		return uuid.Nil, false
	}
	return session.ID, true
}
