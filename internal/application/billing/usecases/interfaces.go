// Package usecases handles inbound payment provider webhooks.
package usecases

import "context"

// Transactor runs a function inside a database transaction; the repositories
// pick the transaction up from the context.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// WebhookVerifier authenticates a raw webhook body against its signature
// header before any parsing or state change happens.
type WebhookVerifier interface {
	Verify(payload []byte, signature string) error
}

// EntitlementCache invalidates cached entitlements after webhook-driven
// subscription changes.
type EntitlementCache interface {
	Invalidate(ctx context.Context, userID uint) error
}

// SubscriptionNotifier delivers the activation email after a webhook-driven
// subscribe or plan change.
type SubscriptionNotifier interface {
	SendSubscriptionActivated(email string, tier string) error
}
