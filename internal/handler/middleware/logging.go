package middleware

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"fieldsync/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"

	ctxRequestIDKey = "request_id"
	maxRequestIDLen = 64
)

// RequestLogger writes one line when a request starts and one when it ends.
// Sync endpoints are retried by devices, so the idempotency key and replay
// flag are logged next to the caller to make retries traceable.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := inboundRequestID(c)
		c.Set(ctxRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		if key := idempotencyKeyHeader(c); key != "" {
			attrs = append(attrs, slog.String("idempotency_key", key))
		}

		logger.LogAttrs(context.Background(), slog.LevelDebug, "request started", attrs...)

		c.Next()

		status := c.Writer.Status()
		done := make([]slog.Attr, len(attrs), len(attrs)+8)
		copy(done, attrs)
		done = append(done,
			slog.String("route", c.FullPath()),
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		)
		done = append(done, callerAttrs(c)...)
		if c.Writer.Header().Get(ReplayedHeader) == "true" {
			done = append(done, slog.Bool("replayed", true))
		}
		if size := c.Writer.Size(); size > 0 {
			done = append(done, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			done = append(done, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		logger.LogAttrs(context.Background(), level, "request completed", done...)
	}
}

func callerAttrs(c *gin.Context) []slog.Attr {
	var attrs []slog.Attr
	if uid, ok := GetUserID(c); ok {
		attrs = append(attrs, slog.String("user_id", uid.String()))
	}
	if role, ok := GetUserRole(c); ok {
		attrs = append(attrs, slog.String("user_role", string(role)))
	}
	if aid := GetAssignmentID(c); aid != nil {
		attrs = append(attrs, slog.String("assignment_id", aid.String()))
	}
	return attrs
}

// inboundRequestID keeps a proxy-assigned id when it looks sane.
func inboundRequestID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(RequestIDHeader)); id != "" && len(id) <= maxRequestIDLen {
		return id
	}
	return uuid.NewString()
}

func GetRequestID(c *gin.Context) string {
	if v, ok := c.Get(ctxRequestIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// NewLogger builds the process logger and installs it as the slog default.
// Release builds log JSON; everything else logs text.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	zone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(zone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var h slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h).With(slog.String("service", "fieldsync"))
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
