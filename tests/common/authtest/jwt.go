//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"fieldsync/internal/domain/user"
	"fieldsync/internal/pkg/clock"
	"fieldsync/internal/pkg/config"
	"fieldsync/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the auth service does for the configured secret and issuer.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.GenerateCrewToken(t, userID, role, nil)
}

// GenerateCrewToken issues a token carrying the member's current assignment.
func (h *JWTHelper) GenerateCrewToken(t *testing.T, userID uuid.UUID, role user.Role, assignmentID *uuid.UUID) string {
	t.Helper()
	return h.sign(t, userID, role, assignmentID, clock.NewSystemClock())
}

// CreateExpiredToken issues a token that expired well beyond the configured leeway.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	ttl := h.ttl(t)
	past := clock.NewFrozenClock(time.Now().Add(-(ttl + h.cfg.Leeway + time.Hour)))
	return h.sign(t, userID, role, nil, past)
}

func (h *JWTHelper) sign(t *testing.T, userID uuid.UUID, role user.Role, assignmentID *uuid.UUID, clk clock.Clock) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.ttl(t), jwt.WithIssuer(h.cfg.Issuer), jwt.WithClock(clk))
	token, err := service.GenerateAccessToken(userID, role, assignmentID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) ttl(t *testing.T) time.Duration {
	t.Helper()
	d, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	return d
}
