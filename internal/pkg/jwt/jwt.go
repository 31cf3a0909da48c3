package jwt

import (
	"time"

	"fieldsync/internal/domain/user"
	"fieldsync/internal/pkg/clock"
	"fieldsync/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errs.New("invalid token")
	ErrExpiredToken = errs.New("token expired")
)

// Claims issued by the auth service. AssignmentID is the crew member's
// current assignment, if any; exit requests are scoped to it.
type Claims struct {
	UserID       uuid.UUID  `json:"user_id"`
	Role         string     `json:"role"`
	AssignmentID *uuid.UUID `json:"assignment_id,omitempty"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	ttl       time.Duration
	issuer    string
	leeway    time.Duration
	clock     clock.Clock
}

type Option func(*Service)

// WithIssuer pins the iss claim on issue and requires it on validation.
func WithIssuer(iss string) Option {
	return func(s *Service) { s.issuer = iss }
}

// WithLeeway tolerates device clocks that drift while offline.
func WithLeeway(d time.Duration) Option {
	return func(s *Service) { s.leeway = d }
}

func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

func NewService(secretKey string, ttl time.Duration, opts ...Option) *Service {
	s := &Service{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		clock:     clock.NewSystemClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateAccessToken mirrors the token format of the auth service; used by tooling and tests.
func (s *Service) GenerateAccessToken(userID uuid.UUID, role user.Role, assignmentID *uuid.UUID) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		UserID:       userID,
		Role:         role.String(),
		AssignmentID: assignmentID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", errs.Wrap(err, "sign access token")
	}
	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
		jwt.WithTimeFunc(s.clock.Now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	}, opts...)
	if err != nil {
		if errs.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, errs.Mark(err, ErrInvalidToken)
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
