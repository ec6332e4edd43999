package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/resumelift/resumelift/internal/domain/user"
	apperrors "github.com/resumelift/resumelift/internal/shared/errors"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User   UserDTO
	Tokens TokenPair
}

type LoginUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.UserRepository, hasher PasswordHasher, tokens TokenService, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, logger: logger}
}

// Execute authenticates by email and password and issues a token pair.
// Missing account and wrong password return the same error so the endpoint
// cannot be used to probe which emails are registered.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "user_sid", u.SID())
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	pair, err := uc.tokens.GeneratePair(u.ID(), u.SID(), u.Email(), u.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_sid", u.SID(), "error", err)
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	uc.logger.Infow("user logged in", "user_sid", u.SID())

	return &LoginResult{
		User: UserDTO{
			SID:       u.SID(),
			Email:     u.Email(),
			Role:      u.Role().String(),
			CreatedAt: u.CreatedAt(),
		},
		Tokens: *pair,
	}, nil
}
