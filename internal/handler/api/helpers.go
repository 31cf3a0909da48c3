package api

import (
	"net/http"

	"fieldsync/internal/handler/httperr"
	"fieldsync/internal/handler/middleware"
	"fieldsync/internal/pkg/errs"
	"fieldsync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errUnauthorized = errs.New("unauthorized")
	errInvalidID    = errs.Validation("invalid id")
)

func requireCaller(c *gin.Context) (commands.Caller, bool) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return commands.Caller{}, false
	}
	return caller, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(errs.Wrap(err, "invalid request body"), errs.ErrValidation), "Invalid request", nil)
		return false
	}
	return true
}

func renderFailed(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusInternalServerError, errs.Wrap(err, "failed to render response"), "Internal server error", nil)
}
