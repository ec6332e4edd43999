package subscription

import "context"

// SubscriptionRepository persists subscription aggregates.
//
// UpdateWithVersion must fail with ErrConcurrentModification when the row's
// stored version no longer matches expectedVersion, so the caller can retry
// the read-validate-write cycle instead of overwriting blindly.
//
// IncrementUsage must be a single conditional update so two racing consumers
// cannot both take the last quota unit; it fails with ErrQuotaExceeded when
// the counter has reached the quota.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetCurrentByUserID(ctx context.Context, userID uint) (*Subscription, error)
	GetBySID(ctx context.Context, sid string) (*Subscription, error)
	UpdateWithVersion(ctx context.Context, sub *Subscription, expectedVersion int) error
	IncrementUsage(ctx context.Context, subscriptionID uint) error
	DecrementUsage(ctx context.Context, subscriptionID uint) error
}
