package middleware

import (
	"log/slog"
	"strings"

	"homeservice-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    withSessionHeader(cfg.ExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}

// withSessionHeader exposes the issued session token to browser clients.
func withSessionHeader(headers []string) []string {
	for _, h := range headers {
		if strings.EqualFold(h, SessionTokenHeader) {
			return headers
		}
	}
	return append(append([]string(nil), headers...), SessionTokenHeader)
}
