package commands

import (
	"context"
	"log/slog"

	"campus-canteen/internal/domain/canteen"
	reqdto "campus-canteen/internal/handler/dto/request"
	"campus-canteen/internal/pkg/errs"
	"campus-canteen/internal/pkg/jwt"
	"campus-canteen/internal/pkg/password"
	"campus-canteen/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	CanteenID   string
	CanteenName string
	Token       string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

// Login matches the staff roster linearly: staff id case-insensitive, password exact after trimming.
func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	var matched *canteen.Canteen
	err := a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		roster, err := tx.Canteens().List(ctx)
		if err != nil {
			return errs.Mark(err, ErrAuthenticationFailed)
		}
		for _, c := range roster {
			if !c.MatchesStaffID(req.StaffID) {
				continue
			}
			if password.ComparePassword(c.PasswordHash(), req.Password) == nil {
				matched = c
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if matched == nil {
		slog.Warn("staff login failed", "staff_id", req.StaffID)
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(matched.ID(), matched.Name())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		CanteenID:   matched.ID(),
		CanteenName: matched.Name(),
		Token:       token,
	}, nil
}
