package usecases

import (
	"context"
	"fmt"

	"github.com/resumelift/resumelift/internal/domain/subscription"
	"github.com/resumelift/resumelift/internal/domain/user"
	apperrors "github.com/resumelift/resumelift/internal/shared/errors"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

type GetEntitlementUseCase struct {
	userRepo         user.UserRepository
	subscriptionRepo subscription.SubscriptionRepository
	catalog          *subscription.Catalog
	cache            EntitlementCache
	logger           logger.Interface
}

func NewGetEntitlementUseCase(
	userRepo user.UserRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	catalog *subscription.Catalog,
	cache EntitlementCache,
	logger logger.Interface,
) *GetEntitlementUseCase {
	return &GetEntitlementUseCase{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		catalog:          catalog,
		cache:            cache,
		logger:           logger,
	}
}

// Execute resolves the entitlement for a user, read-through cached.
func (uc *GetEntitlementUseCase) Execute(ctx context.Context, userID uint) (*subscription.Entitlement, error) {
	if cached, err := uc.cache.Get(ctx, userID); err != nil {
		uc.logger.Warnw("entitlement cache read failed", "user_id", userID, "error", err)
	} else if cached != nil {
		return cached, nil
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	sub, err := uc.subscriptionRepo.GetCurrentByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	ent, err := subscription.ResolveEntitlement(u.Role(), sub, uc.catalog)
	if err != nil {
		return nil, toAppError(err)
	}

	if err := uc.cache.Set(ctx, userID, &ent); err != nil {
		uc.logger.Warnw("entitlement cache write failed", "user_id", userID, "error", err)
	}

	return &ent, nil
}

// ExecuteBySID resolves the entitlement for the user carrying the given
// public identifier. Serves support lookups, so it reads the database
// directly instead of going through the cache.
func (uc *GetEntitlementUseCase) ExecuteBySID(ctx context.Context, sid string) (*subscription.Entitlement, error) {
	u, err := uc.userRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	sub, err := uc.subscriptionRepo.GetCurrentByUserID(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	ent, err := subscription.ResolveEntitlement(u.Role(), sub, uc.catalog)
	if err != nil {
		return nil, toAppError(err)
	}
	return &ent, nil
}
