package usecases

import (
	"context"
	"fmt"

	"github.com/resumelift/resumelift/internal/domain/user"
	"github.com/resumelift/resumelift/internal/shared/biztime"
	apperrors "github.com/resumelift/resumelift/internal/shared/errors"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

const minPasswordLength = 8

type RegisterCommand struct {
	Email    string
	Password string
}

type RegisterUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.UserRepository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

// Execute creates a new account with the default role and no subscription.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*UserDTO, error) {
	if len(cmd.Password) < minPasswordLength {
		return nil, apperrors.NewValidationError("password too short", fmt.Sprintf("minimum %d characters", minPasswordLength))
	}

	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := user.NewUser(cmd.Email, hash, biztime.NowUTC())
	if err != nil {
		return nil, apperrors.NewValidationError("invalid email", err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user registered", "user_sid", u.SID())

	return &UserDTO{
		SID:       u.SID(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}, nil
}
