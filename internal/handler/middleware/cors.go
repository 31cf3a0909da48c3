package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"fieldsync/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS applies the configured policy. Offline clients retry through a
// browser shell, so the idempotency and request id headers are always
// allowed and exposed even if the environment omits them.
func CORS(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	c := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeaders(cfg.AllowHeaders, "Authorization", IdempotencyKeyHeader, RequestIDHeader),
		ExposeHeaders:    withHeaders(cfg.ExposeHeaders, ReplayedHeader, RequestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	logger.Info("cors configured", "allow_origins", c.AllowOrigins, "expose_headers", c.ExposeHeaders)
	return cors.New(c)
}

func withHeaders(base []string, required ...string) []string {
	out := slices.Clone(base)
	for _, h := range required {
		if !slices.ContainsFunc(out, func(v string) bool { return strings.EqualFold(v, h) }) {
			out = append(out, h)
		}
	}
	return out
}
