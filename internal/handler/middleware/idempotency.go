package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"

	"fieldsync/internal/handler/httperr"
	"fieldsync/internal/pkg/errs"
	"fieldsync/internal/usecase/commands"
	"fieldsync/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	IdempotencyKeyHeader       = "Idempotency-Key"
	legacyIdempotencyKeyHeader = "X-Idempotency-Key"
	ReplayedHeader             = "X-Idempotency-Replayed"
)

var (
	errInvalidIdempotencyKey = errs.Validation("idempotency key must be a UUID")
	errForeignIdempotencyKey = errs.Conflict("idempotency key was used by another caller")
)

// IdempotencyGuard memoizes successful responses of mutating routes by client token.
type IdempotencyGuard struct {
	store commands.IdempotencyStore
}

func NewIdempotencyGuard(store commands.IdempotencyStore) *IdempotencyGuard {
	return &IdempotencyGuard{store: store}
}

// Handle must run after RequireAuth. Cache failures never reach the client.
func (g *IdempotencyGuard) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := idempotencyKeyHeader(c)
		if raw == "" {
			c.Next()
			return
		}
		key, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidIdempotencyKey, errInvalidIdempotencyKey.Error(), nil)
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, "failed to read request body"), "Invalid request", nil)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		endpoint := c.Request.Method + " " + c.FullPath()
		hash := requestHash(body)
		ctx := c.Request.Context()

		rec, err := g.store.Lookup(ctx, key)
		if err != nil {
			slog.Warn("idempotency lookup failed, running handler",
				"idempotency_key", key.String(),
				"endpoint", endpoint,
				"error", err.Error())
		}
		if rec != nil {
			if !recordedFor(rec, c) {
				slog.Warn("idempotency key reused by another caller",
					"idempotency_key", key.String(),
					"recorded_endpoint", rec.Endpoint,
					"endpoint", endpoint)
				httperr.AbortWithError(c, http.StatusConflict, errForeignIdempotencyKey, errForeignIdempotencyKey.Error(), nil)
				return
			}
			g.replay(c, rec, endpoint, hash)
			return
		}

		capture := &responseCapture{ResponseWriter: c.Writer}
		c.Writer = capture
		c.Next()

		status := capture.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}

		record := shared.IdempotencyRecord{
			Key:            key,
			Endpoint:       endpoint,
			RequestHash:    hash,
			ResponseStatus: status,
			ResponseBody:   capture.body.Bytes(),
		}
		if userID, ok := GetUserID(c); ok {
			record.UserID = &userID
		}
		stored, err := g.store.Remember(context.WithoutCancel(ctx), record)
		if err != nil {
			slog.Warn("failed to persist idempotent response",
				"idempotency_key", key.String(),
				"endpoint", endpoint,
				"error", err.Error())
			return
		}
		if !stored {
			slog.Debug("idempotent response already recorded by a concurrent request", "idempotency_key", key.String())
		}
	}
}

func (g *IdempotencyGuard) replay(c *gin.Context, rec *shared.IdempotencyRecord, endpoint, hash string) {
	if rec.RequestHash != hash || rec.Endpoint != endpoint {
		slog.Warn("idempotency key reused with a different request",
			"idempotency_key", rec.Key.String(),
			"recorded_endpoint", rec.Endpoint,
			"endpoint", endpoint)
	}
	c.Header(ReplayedHeader, "true")
	c.Data(rec.ResponseStatus, gin.MIMEJSON+"; charset=utf-8", rec.ResponseBody)
	c.Abort()
}

// recordedFor reports whether rec may be replayed to the caller. Records without an owner replay to anyone.
func recordedFor(rec *shared.IdempotencyRecord, c *gin.Context) bool {
	if rec.UserID == nil {
		return true
	}
	userID, ok := GetUserID(c)
	return ok && userID == *rec.UserID
}

func idempotencyKeyHeader(c *gin.Context) string {
	if v := c.GetHeader(IdempotencyKeyHeader); v != "" {
		return v
	}
	return c.GetHeader(legacyIdempotencyKeyHeader)
}

func requestHash(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// responseCapture tees the response body so it can be stored after the handler ran.
type responseCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *responseCapture) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseCapture) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
