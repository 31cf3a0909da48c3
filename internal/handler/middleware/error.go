package middleware

import (
	"log/slog"
	"net/http"

	"fieldsync/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorResponder renders the last public error if the handler left the body
// unwritten. A bare 500 carries the request id so crews can quote it.
func ErrorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if e := c.Errors[i]; e.IsType(gin.ErrorTypePublic) {
				if resp, ok := e.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalError(c))
	}
}

// Recovery turns a panic into a 500. Transactions are rolled back by the
// unit of work before the panic reaches here.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("recovered from panic",
					"panic", rec,
					"request_id", GetRequestID(c),
					"route", c.FullPath(),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError(c))
			}
		}()
		c.Next()
	}
}

func internalError(c *gin.Context) httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	if id := GetRequestID(c); id != "" {
		resp.Detail = gin.H{"requestId": id}
	}
	return resp
}
