package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/resumelift/resumelift/internal/domain/subscription"
	vo "github.com/resumelift/resumelift/internal/domain/subscription/valueobjects"
	"github.com/resumelift/resumelift/internal/domain/user"
	"github.com/resumelift/resumelift/internal/shared/biztime"
	apperrors "github.com/resumelift/resumelift/internal/shared/errors"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

type ChangeType string

const (
	ChangeTypeUpgrade   ChangeType = "upgrade"
	ChangeTypeDowngrade ChangeType = "downgrade"
)

type ChangePlanCommand struct {
	UserID     uint
	Tier       string
	ChangeType ChangeType
}

type ChangePlanUseCase struct {
	userRepo         user.UserRepository
	subscriptionRepo subscription.SubscriptionRepository
	catalog          *subscription.Catalog
	cache            EntitlementCache
	logger           logger.Interface
}

func NewChangePlanUseCase(
	userRepo user.UserRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	catalog *subscription.Catalog,
	cache EntitlementCache,
	logger logger.Interface,
) *ChangePlanUseCase {
	return &ChangePlanUseCase{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		catalog:          catalog,
		cache:            cache,
		logger:           logger,
	}
}

// Execute applies an upgrade or downgrade to the user's active subscription.
// Plan changes take effect immediately; the usage counter and cycle start are
// preserved. A stale optimistic-lock write is retried once with fresh state.
func (uc *ChangePlanUseCase) Execute(ctx context.Context, cmd ChangePlanCommand) (*subscription.Entitlement, error) {
	tier, err := vo.NewTier(cmd.Tier)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid tier", err.Error())
	}
	if cmd.ChangeType != ChangeTypeUpgrade && cmd.ChangeType != ChangeTypeDowngrade {
		return nil, apperrors.NewValidationError("invalid change type", string(cmd.ChangeType))
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	sub, err := uc.applyWithRetry(ctx, cmd.UserID, tier, cmd.ChangeType)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Invalidate(ctx, cmd.UserID); err != nil {
		uc.logger.Warnw("entitlement cache invalidation failed", "user_id", cmd.UserID, "error", err)
	}

	uc.logger.Infow("subscription plan changed",
		"user_id", cmd.UserID,
		"subscription_sid", sub.SID(),
		"change_type", cmd.ChangeType,
		"tier", tier.String(),
	)

	ent, err := subscription.ResolveEntitlement(u.Role(), sub, uc.catalog)
	if err != nil {
		return nil, toAppError(err)
	}
	return &ent, nil
}

// applyWithRetry runs the read-validate-write cycle, retrying once when the
// optimistic version guard fails due to a concurrent writer.
func (uc *ChangePlanUseCase) applyWithRetry(ctx context.Context, userID uint, tier vo.Tier, changeType ChangeType) (*subscription.Subscription, error) {
	for attempt := 0; attempt < 2; attempt++ {
		sub, err := uc.subscriptionRepo.GetCurrentByUserID(ctx, userID)
		if err != nil {
			uc.logger.Errorw("failed to get subscription", "user_id", userID, "error", err)
			return nil, fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil || !sub.Status().IsActive() {
			return nil, toAppError(subscription.NewInvalidTransitionError(string(changeType), sub.StateName()))
		}

		expectedVersion := sub.Version()
		now := biztime.NowUTC()

		if changeType == ChangeTypeUpgrade {
			err = sub.Upgrade(uc.catalog, tier, now)
		} else {
			err = sub.Downgrade(uc.catalog, tier, now)
		}
		if err != nil {
			return nil, toAppError(err)
		}

		err = uc.subscriptionRepo.UpdateWithVersion(ctx, sub, expectedVersion)
		if err == nil {
			return sub, nil
		}
		if errors.Is(err, subscription.ErrConcurrentModification) {
			uc.logger.Warnw("concurrent subscription modification, retrying",
				"user_id", userID,
				"attempt", attempt+1,
			)
			continue
		}
		uc.logger.Errorw("failed to update subscription", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	return nil, toAppError(subscription.ErrConcurrentModification)
}
