//go:build unit || e2e

package builder

import (
	reqdto "campus-canteen/internal/handler/dto/request"
	"campus-canteen/internal/usecase/commands"
)

type AuthBuilder struct {
	StaffID     string
	Password    string
	CanteenID   string
	CanteenName string
}

// NewAuthBuilder starts from the seeded Main Canteen staff account.
func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		StaffID:     "MAIN001",
		Password:    "main123",
		CanteenID:   "canteen-1",
		CanteenName: "Main Canteen",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		StaffID:  a.StaffID,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildResult(token string) *commands.LoginResult {
	return &commands.LoginResult{
		CanteenID:   a.CanteenID,
		CanteenName: a.CanteenName,
		Token:       token,
	}
}
