package usecase

import (
	"campus-canteen/internal/pkg/jwt"
)

type StaffSession struct {
	CanteenID   string
	CanteenName string
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*StaffSession, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*StaffSession, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Role != jwt.RoleStaff {
		return nil, jwt.ErrInvalidToken
	}

	return &StaffSession{
		CanteenID:   claims.CanteenID,
		CanteenName: claims.CanteenName,
	}, nil
}
