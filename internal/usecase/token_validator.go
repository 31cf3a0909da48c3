package usecase

import (
	"fieldsync/internal/domain/user"
	"fieldsync/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Principal is the identity carried by a validated bearer token.
type Principal struct {
	UserID       uuid.UUID
	Role         user.Role
	AssignmentID *uuid.UUID
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, err
	}

	return &Principal{
		UserID:       claims.UserID,
		Role:         role,
		AssignmentID: claims.AssignmentID,
	}, nil
}
