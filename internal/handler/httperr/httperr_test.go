//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldsync/internal/domain/evidence"
	"fieldsync/internal/domain/exitrequest"
	"fieldsync/internal/handler/httperr"
	"fieldsync/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errs.Validation("bad"), want: http.StatusBadRequest},
		{name: "forbidden", err: exitrequest.ErrOverrideNotPermitted, want: http.StatusForbidden},
		{name: "not found", err: exitrequest.ErrRequestNotFound, want: http.StatusNotFound},
		{name: "conflict", err: evidence.ErrImageCapacity, want: http.StatusConflict},
		{name: "expired", err: exitrequest.ErrDeadlinePassed, want: http.StatusGone},
		{name: "transient", err: errs.Transient(errs.New("timeout")), want: http.StatusServiceUnavailable},
		{name: "wrapped keeps its class", err: errs.Wrap(evidence.ErrVideoCapacity, "attach"), want: http.StatusConflict},
		{name: "unclassified", err: errs.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusFor(tt.err))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	render := func(err error) (*httptest.ResponseRecorder, map[string]any) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		httperr.Abort(c, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w, body
	}

	t.Run("client errors expose their message and resource", func(t *testing.T) {
		w, body := render(errs.WithResource(evidence.ErrStorageRefTaken, "evidence", "s3://a.jpg"))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "storage reference is attached to another draft", body["error"].(map[string]any)["message"])
		assert.Equal(t, map[string]any{"resource": "evidence", "id": "s3://a.jpg"}, body["detail"])
	})

	t.Run("server errors hide their cause", func(t *testing.T) {
		w, body := render(errs.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal Server Error", body["error"].(map[string]any)["message"])
		assert.NotContains(t, body, "detail")
	})
}
