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
	"github.com/resumelift/resumelift/internal/shared/goroutine"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

type SubscribeCommand struct {
	UserID      uint
	Tier        string
	ExternalRef string
}

type SubscribeUseCase struct {
	userRepo         user.UserRepository
	subscriptionRepo subscription.SubscriptionRepository
	catalog          *subscription.Catalog
	cache            EntitlementCache
	notifier         SubscriptionNotifier
	logger           logger.Interface
}

func NewSubscribeUseCase(
	userRepo user.UserRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	catalog *subscription.Catalog,
	cache EntitlementCache,
	notifier SubscriptionNotifier,
	logger logger.Interface,
) *SubscribeUseCase {
	return &SubscribeUseCase{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		catalog:          catalog,
		cache:            cache,
		notifier:         notifier,
		logger:           logger,
	}
}

// Execute creates a fresh active subscription. Legal only when the user has
// no current subscription or the current one is canceled; a canceled row is
// terminal and a new row is created rather than mutating it.
func (uc *SubscribeUseCase) Execute(ctx context.Context, cmd SubscribeCommand) (*subscription.Entitlement, error) {
	tier, err := vo.NewTier(cmd.Tier)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid tier", err.Error())
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	current, err := uc.subscriptionRepo.GetCurrentByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if current != nil && current.Status().IsActive() {
		return nil, toAppError(subscription.NewInvalidTransitionError("subscribe", current.StateName()))
	}

	plan, err := uc.catalog.Get(tier)
	if err != nil {
		return nil, toAppError(err)
	}

	now := biztime.NowUTC()
	sub, err := subscription.NewSubscription(cmd.UserID, plan, cmd.ExternalRef, now)
	if err != nil {
		return nil, fmt.Errorf("failed to build subscription: %w", err)
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		// A webhook activation can land between the read above and this
		// insert; the one-active-row constraint turns that race into a
		// conflict instead of a second active subscription.
		if errors.Is(err, subscription.ErrAlreadySubscribed) {
			return nil, toAppError(err)
		}
		uc.logger.Errorw("failed to create subscription", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, cmd.UserID); err != nil {
		uc.logger.Warnw("entitlement cache invalidation failed", "user_id", cmd.UserID, "error", err)
	}

	email, tierName := u.Email(), tier.String()
	goroutine.SafeGo(uc.logger, "subscription-activated-email", func() {
		if err := uc.notifier.SendSubscriptionActivated(email, tierName); err != nil {
			uc.logger.Warnw("failed to send activation email", "user_id", cmd.UserID, "error", err)
		}
	})

	uc.logger.Infow("subscription created",
		"user_id", cmd.UserID,
		"subscription_sid", sub.SID(),
		"tier", tierName,
	)

	ent, err := subscription.ResolveEntitlement(u.Role(), sub, uc.catalog)
	if err != nil {
		return nil, toAppError(err)
	}
	return &ent, nil
}
