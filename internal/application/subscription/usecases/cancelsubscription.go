package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/resumelift/resumelift/internal/domain/subscription"
	"github.com/resumelift/resumelift/internal/domain/user"
	"github.com/resumelift/resumelift/internal/shared/biztime"
	apperrors "github.com/resumelift/resumelift/internal/shared/errors"
	"github.com/resumelift/resumelift/internal/shared/goroutine"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

type CancelSubscriptionUseCase struct {
	userRepo         user.UserRepository
	subscriptionRepo subscription.SubscriptionRepository
	catalog          *subscription.Catalog
	cache            EntitlementCache
	notifier         SubscriptionNotifier
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(
	userRepo user.UserRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	catalog *subscription.Catalog,
	cache EntitlementCache,
	notifier SubscriptionNotifier,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		catalog:          catalog,
		cache:            cache,
		notifier:         notifier,
		logger:           logger,
	}
}

// Execute cancels the user's active subscription. The row becomes terminal;
// the user must subscribe again to regain an entitlement.
func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, userID uint) (*subscription.Entitlement, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	var canceledTier string
	for attempt := 0; attempt < 2; attempt++ {
		sub, err := uc.subscriptionRepo.GetCurrentByUserID(ctx, userID)
		if err != nil {
			uc.logger.Errorw("failed to get subscription", "user_id", userID, "error", err)
			return nil, fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil || !sub.Status().IsActive() {
			return nil, toAppError(subscription.NewInvalidTransitionError("cancel", sub.StateName()))
		}

		expectedVersion := sub.Version()
		canceledTier = sub.Tier().String()

		if err := sub.Cancel(biztime.NowUTC()); err != nil {
			return nil, toAppError(err)
		}

		err = uc.subscriptionRepo.UpdateWithVersion(ctx, sub, expectedVersion)
		if err == nil {
			break
		}
		if errors.Is(err, subscription.ErrConcurrentModification) {
			uc.logger.Warnw("concurrent subscription modification, retrying",
				"user_id", userID,
				"attempt", attempt+1,
			)
			if attempt == 1 {
				return nil, toAppError(subscription.ErrConcurrentModification)
			}
			continue
		}
		uc.logger.Errorw("failed to update subscription", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, userID); err != nil {
		uc.logger.Warnw("entitlement cache invalidation failed", "user_id", userID, "error", err)
	}

	email := u.Email()
	goroutine.SafeGo(uc.logger, "subscription-canceled-email", func() {
		if err := uc.notifier.SendSubscriptionCanceled(email, canceledTier); err != nil {
			uc.logger.Warnw("failed to send cancellation email", "user_id", userID, "error", err)
		}
	})

	uc.logger.Infow("subscription canceled", "user_id", userID, "tier", canceledTier)

	ent, err := subscription.ResolveEntitlement(u.Role(), nil, uc.catalog)
	if err != nil {
		return nil, toAppError(err)
	}
	return &ent, nil
}
