package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/resumelift/resumelift/internal/domain/billing"
	"github.com/resumelift/resumelift/internal/domain/subscription"
	vo "github.com/resumelift/resumelift/internal/domain/subscription/valueobjects"
	"github.com/resumelift/resumelift/internal/domain/user"
	"github.com/resumelift/resumelift/internal/shared/biztime"
	apperrors "github.com/resumelift/resumelift/internal/shared/errors"
	"github.com/resumelift/resumelift/internal/shared/goroutine"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

// HandlePaymentEventCommand carries the raw webhook body and its signature
// header exactly as received; verification runs against the raw bytes.
type HandlePaymentEventCommand struct {
	Payload   []byte
	Signature string
}

type paymentEventPayload struct {
	ExternalRef string `json:"external_ref"`
	UserSID     string `json:"user_sid"`
	Tier        string `json:"tier"`
}

type HandlePaymentEventUseCase struct {
	verifier         WebhookVerifier
	tx               Transactor
	eventRepo        billing.PaymentEventRepository
	userRepo         user.UserRepository
	subscriptionRepo subscription.SubscriptionRepository
	catalog          *subscription.Catalog
	cache            EntitlementCache
	notifier         SubscriptionNotifier
	logger           logger.Interface
}

func NewHandlePaymentEventUseCase(
	verifier WebhookVerifier,
	tx Transactor,
	eventRepo billing.PaymentEventRepository,
	userRepo user.UserRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	catalog *subscription.Catalog,
	cache EntitlementCache,
	notifier SubscriptionNotifier,
	logger logger.Interface,
) *HandlePaymentEventUseCase {
	return &HandlePaymentEventUseCase{
		verifier:         verifier,
		tx:               tx,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		catalog:          catalog,
		cache:            cache,
		notifier:         notifier,
		logger:           logger,
	}
}

// Execute processes one payment provider notification. The order is strict:
// verify the signature, record the event (the unique external reference makes
// replays a no-op), then apply the subscription change. A replayed event
// returns success without touching the state machine.
func (uc *HandlePaymentEventUseCase) Execute(ctx context.Context, cmd HandlePaymentEventCommand) error {
	if err := uc.verifier.Verify(cmd.Payload, cmd.Signature); err != nil {
		uc.logger.Warnw("dropping unverified payment event", "error", err)
		return apperrors.NewUnauthorizedError("invalid webhook signature")
	}

	var p paymentEventPayload
	if err := json.Unmarshal(cmd.Payload, &p); err != nil {
		return apperrors.NewBadRequestError("malformed payment event", err.Error())
	}
	if p.ExternalRef == "" || p.UserSID == "" {
		return apperrors.NewBadRequestError("malformed payment event", billing.ErrMalformedPaymentEvent.Error())
	}

	tier, err := vo.NewTier(p.Tier)
	if err != nil {
		return apperrors.NewBadRequestError("malformed payment event", err.Error())
	}

	u, err := uc.userRepo.GetBySID(ctx, p.UserSID)
	if err != nil {
		uc.logger.Errorw("failed to look up webhook user", "user_sid", p.UserSID, "error", err)
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		return apperrors.NewNotFoundError("unknown user in payment event")
	}

	event, err := billing.NewPaymentEvent(p.ExternalRef, p.UserSID, tier, cmd.Payload, biztime.NowUTC())
	if err != nil {
		return apperrors.NewBadRequestError("malformed payment event", err.Error())
	}

	// Event insert and state change commit together: a failed apply must not
	// leave a recorded event behind, or the provider's retry would be
	// swallowed as a replay.
	replayed := false
	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.eventRepo.Create(txCtx, event); err != nil {
			if errors.Is(err, billing.ErrDuplicatePaymentEvent) {
				replayed = true
				return nil
			}
			uc.logger.Errorw("failed to record payment event", "external_ref", p.ExternalRef, "error", err)
			return fmt.Errorf("failed to record payment event: %w", err)
		}
		return uc.applySubscriptionChange(txCtx, u, tier, p.ExternalRef)
	})
	if err != nil {
		return err
	}
	if replayed {
		uc.logger.Infow("replayed payment event ignored", "external_ref", p.ExternalRef)
		return nil
	}

	if err := uc.cache.Invalidate(ctx, u.ID()); err != nil {
		uc.logger.Warnw("entitlement cache invalidation failed", "user_id", u.ID(), "error", err)
	}

	email, tierName := u.Email(), tier.String()
	goroutine.SafeGo(uc.logger, "payment-event-email", func() {
		if err := uc.notifier.SendSubscriptionActivated(email, tierName); err != nil {
			uc.logger.Warnw("failed to send activation email", "email", email, "error", err)
		}
	})

	uc.logger.Infow("payment event processed",
		"external_ref", p.ExternalRef,
		"user_sid", p.UserSID,
		"tier", tierName,
	)
	return nil
}

// applySubscriptionChange maps the paid tier onto the user's current state:
// no active subscription means a fresh subscribe, a different active tier
// means an upgrade or downgrade by rank, and the same tier is a renewal no-op.
func (uc *HandlePaymentEventUseCase) applySubscriptionChange(ctx context.Context, u *user.User, tier vo.Tier, externalRef string) error {
	current, err := uc.subscriptionRepo.GetCurrentByUserID(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "user_id", u.ID(), "error", err)
		return fmt.Errorf("failed to get subscription: %w", err)
	}

	if current == nil || !current.Status().IsActive() {
		plan, err := uc.catalog.Get(tier)
		if err != nil {
			return apperrors.NewBadRequestError("unknown plan in payment event", err.Error())
		}
		sub, err := subscription.NewSubscription(u.ID(), plan, externalRef, biztime.NowUTC())
		if err != nil {
			return fmt.Errorf("failed to build subscription: %w", err)
		}
		if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
			uc.logger.Errorw("failed to create subscription", "user_id", u.ID(), "error", err)
			return fmt.Errorf("failed to create subscription: %w", err)
		}
		return nil
	}

	if current.Tier() == tier {
		uc.logger.Infow("payment event renews current tier", "user_id", u.ID(), "tier", tier)
		return nil
	}

	currentRank, err := uc.catalog.Rank(current.Tier())
	if err != nil {
		return fmt.Errorf("failed to rank current tier: %w", err)
	}
	targetRank, err := uc.catalog.Rank(tier)
	if err != nil {
		return apperrors.NewBadRequestError("unknown plan in payment event", err.Error())
	}

	expectedVersion := current.Version()
	now := biztime.NowUTC()
	if targetRank > currentRank {
		err = current.Upgrade(uc.catalog, tier, now)
	} else {
		err = current.Downgrade(uc.catalog, tier, now)
	}
	if err != nil {
		return fmt.Errorf("failed to apply tier change: %w", err)
	}

	if err := uc.subscriptionRepo.UpdateWithVersion(ctx, current, expectedVersion); err != nil {
		uc.logger.Errorw("failed to update subscription", "user_id", u.ID(), "error", err)
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	return nil
}
