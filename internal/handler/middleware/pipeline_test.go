//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"fieldsync/internal/handler/httperr"
	"fieldsync/internal/handler/middleware"
	"fieldsync/internal/pkg/config"
	"fieldsync/internal/pkg/errs"
	"fieldsync/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPipeline(t *testing.T) (*gin.Engine, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(config.NewTestConfig().CORS, logger))
	r.Use(middleware.ErrorResponder())
	return r, &buf
}

// completionLine returns the last "request completed" record.
func completionLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var last map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(line, &rec))
		if rec["msg"] == "request completed" {
			last = rec
		}
	}
	require.NotNil(t, last, "no completion line in %s", buf.String())
	return last
}

func TestRequestLogger(t *testing.T) {
	t.Run("assigns a request id and logs caller and key", func(t *testing.T) {
		r, buf := newPipeline(t)
		userID := uuid.New()
		r.POST("/drafts/:id/finalize", func(c *gin.Context) {
			c.Set("user_id", userID)
			c.Status(http.StatusNoContent)
		})
		key := uuid.NewString()

		rec := httptest.PerformRetry(t, r, http.MethodPost, "/drafts/abc/finalize", nil, "", key)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		requestID := rec.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(requestID)
		require.NoError(t, err)

		line := completionLine(t, buf)
		assert.Equal(t, requestID, line["request_id"])
		assert.Equal(t, "/drafts/:id/finalize", line["route"])
		assert.Equal(t, key, line["idempotency_key"])
		assert.Equal(t, userID.String(), line["user_id"])
		assert.Equal(t, "INFO", line["level"])
	})

	t.Run("keeps an inbound request id", func(t *testing.T) {
		r, buf := newPipeline(t)
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/ping", nil, "",
			map[string]string{middleware.RequestIDHeader: "edge-42"})

		assert.Equal(t, "edge-42", rec.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "edge-42", completionLine(t, buf)["request_id"])
	})

	t.Run("client errors log at warn", func(t *testing.T) {
		r, buf := newPipeline(t)
		r.GET("/missing", func(c *gin.Context) {
			httperr.Abort(c, errs.NotFound("draft not found"))
		})

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/missing", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "draft not found")
		assert.Equal(t, "WARN", completionLine(t, buf)["level"])
	})
}

func TestRecovery(t *testing.T) {
	r, buf := newPipeline(t)
	r.GET("/boom", func(*gin.Context) { panic("corrupt outbox") })

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/boom", nil, "")

	body := httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	var detail map[string]string
	require.NoError(t, json.Unmarshal(body.Detail, &detail))
	assert.Equal(t, rec.Header().Get(middleware.RequestIDHeader), detail["requestId"])
	assert.Equal(t, "ERROR", completionLine(t, buf)["level"])
}

func TestCORS_ExposesSyncHeaders(t *testing.T) {
	r, _ := newPipeline(t)
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := nethttptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", middleware.IdempotencyKeyHeader)
	rec := nethttptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), middleware.IdempotencyKeyHeader)

	get := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
	get.Header.Set("Origin", "http://localhost:3000")
	rec = nethttptest.NewRecorder()
	r.ServeHTTP(rec, get)

	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), middleware.ReplayedHeader)
}
