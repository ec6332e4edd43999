// Package usecases provides application-level use cases for subscription and
// entitlement management.
package usecases

import (
	"context"

	"github.com/resumelift/resumelift/internal/domain/subscription"
)

// EntitlementCache caches resolved entitlements per user. A nil-safe no-op
// implementation may be used when Redis is unavailable.
type EntitlementCache interface {
	Get(ctx context.Context, userID uint) (*subscription.Entitlement, error)
	Set(ctx context.Context, userID uint, ent *subscription.Entitlement) error
	Invalidate(ctx context.Context, userID uint) error
}

// SubscriptionNotifier delivers subscription lifecycle emails. Implementations
// are fire-and-forget; failures must never affect the state transition.
type SubscriptionNotifier interface {
	SendSubscriptionActivated(email string, tier string) error
	SendSubscriptionCanceled(email string, tier string) error
}
