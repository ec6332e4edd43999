package billing

import "context"

// PaymentEventRepository persists payment events. Create must fail with
// ErrDuplicatePaymentEvent when the external reference was already recorded.
type PaymentEventRepository interface {
	Create(ctx context.Context, event *PaymentEvent) error
	GetByExternalRef(ctx context.Context, externalRef string) (*PaymentEvent, error)
}
