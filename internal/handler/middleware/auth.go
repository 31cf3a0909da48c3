package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"fieldsync/internal/domain/audit"
	"fieldsync/internal/domain/user"
	"fieldsync/internal/handler/httperr"
	"fieldsync/internal/pkg/errs"
	"fieldsync/internal/usecase"
	"fieldsync/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey       = "user_id"
	ctxUserRoleKey     = "user_role"
	ctxAssignmentIDKey = "assignment_id"
)

var (
	errTokenRequired      = errs.New("access token required")
	errTokenInvalid       = errs.New("invalid or expired token")
	errInsufficientRole   = errs.Forbidden("insufficient permissions")
	errMissingAuthContext = errs.New("auth context missing")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenInvalid, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, principal.UserID)
		c.Set(ctxUserRoleKey, principal.Role)
		if principal.AssignmentID != nil {
			c.Set(ctxAssignmentIDKey, *principal.AssignmentID)
		}
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingAuthContext, "Internal server error", nil)
			return
		}

		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficientRole, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

func GetAssignmentID(c *gin.Context) *uuid.UUID {
	v, exists := c.Get(ctxAssignmentIDKey)
	if !exists {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

// GetCaller assembles the command caller from the auth context and the request origin.
func GetCaller(c *gin.Context) (commands.Caller, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return commands.Caller{}, false
	}
	role, _ := GetUserRole(c)
	return commands.Caller{
		UserID:       userID,
		Role:         role,
		AssignmentID: GetAssignmentID(c),
		Origin: audit.Origin{
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		},
	}, true
}
