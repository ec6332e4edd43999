package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/resumelift/resumelift/internal/domain/subscription"
	"github.com/resumelift/resumelift/internal/domain/user"
	"github.com/resumelift/resumelift/internal/shared/biztime"
	apperrors "github.com/resumelift/resumelift/internal/shared/errors"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

// ConsumeQuotaResult carries the post-consumption entitlement plus what the
// caller needs to refund the unit if its own work fails afterwards.
type ConsumeQuotaResult struct {
	Entitlement    subscription.Entitlement
	SubscriptionID uint // zero for admin-override consumers
	AdminOverride  bool
}

type ConsumeQuotaUseCase struct {
	userRepo         user.UserRepository
	subscriptionRepo subscription.SubscriptionRepository
	catalog          *subscription.Catalog
	cache            EntitlementCache
	logger           logger.Interface
}

func NewConsumeQuotaUseCase(
	userRepo user.UserRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	catalog *subscription.Catalog,
	cache EntitlementCache,
	logger logger.Interface,
) *ConsumeQuotaUseCase {
	return &ConsumeQuotaUseCase{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		catalog:          catalog,
		cache:            cache,
		logger:           logger,
	}
}

// Execute consumes one conversion unit for the user. The lazy cycle reset
// happens first (persisted under the version guard), then the increment runs
// as a single conditional update so racing consumers cannot both take the
// last unit. Admin-override users consume nothing.
func (uc *ConsumeQuotaUseCase) Execute(ctx context.Context, userID uint) (*ConsumeQuotaResult, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	if u.Role().IsAdmin() {
		ent, err := subscription.ResolveEntitlement(u.Role(), nil, uc.catalog)
		if err != nil {
			return nil, toAppError(err)
		}
		return &ConsumeQuotaResult{Entitlement: ent, AdminOverride: true}, nil
	}

	sub, err := uc.rollCycleWithRetry(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil || !sub.Status().IsActive() {
		return nil, toAppError(subscription.ErrNoEntitlement)
	}

	if err := uc.subscriptionRepo.IncrementUsage(ctx, sub.ID()); err != nil {
		if errors.Is(err, subscription.ErrQuotaExceeded) {
			return nil, toAppError(err)
		}
		uc.logger.Errorw("failed to increment usage", "subscription_id", sub.ID(), "error", err)
		return nil, fmt.Errorf("failed to increment usage: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, userID); err != nil {
		uc.logger.Warnw("entitlement cache invalidation failed", "user_id", userID, "error", err)
	}

	// Re-read so the returned entitlement reflects the atomic increment.
	updated, err := uc.subscriptionRepo.GetCurrentByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to reload subscription", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to reload subscription: %w", err)
	}

	ent, err := subscription.ResolveEntitlement(u.Role(), updated, uc.catalog)
	if err != nil {
		return nil, toAppError(err)
	}

	return &ConsumeQuotaResult{
		Entitlement:    ent,
		SubscriptionID: sub.ID(),
	}, nil
}

// rollCycleWithRetry performs the lazy calendar-month cycle reset if due,
// persisting it under the optimistic version guard with one retry.
func (uc *ConsumeQuotaUseCase) rollCycleWithRetry(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	for attempt := 0; attempt < 2; attempt++ {
		sub, err := uc.subscriptionRepo.GetCurrentByUserID(ctx, userID)
		if err != nil {
			uc.logger.Errorw("failed to get subscription", "user_id", userID, "error", err)
			return nil, fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil || !sub.Status().IsActive() {
			return sub, nil
		}

		expectedVersion := sub.Version()
		if !sub.RollCycleIfDue(biztime.NowUTC()) {
			return sub, nil
		}

		err = uc.subscriptionRepo.UpdateWithVersion(ctx, sub, expectedVersion)
		if err == nil {
			uc.logger.Infow("usage cycle reset",
				"subscription_id", sub.ID(),
				"cycle_start", sub.CycleStart(),
			)
			return sub, nil
		}
		if errors.Is(err, subscription.ErrConcurrentModification) {
			uc.logger.Warnw("concurrent cycle reset, retrying", "user_id", userID, "attempt", attempt+1)
			continue
		}
		uc.logger.Errorw("failed to persist cycle reset", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to persist cycle reset: %w", err)
	}

	return nil, toAppError(subscription.ErrConcurrentModification)
}
