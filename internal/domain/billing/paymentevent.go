// Package billing models inbound events from the external payment provider.
package billing

import (
	"fmt"
	"time"

	vo "github.com/resumelift/resumelift/internal/domain/subscription/valueobjects"
)

// PaymentEvent records one verified "subscription activated" notification from
// the payment provider. The external reference is unique: storing the event
// before acting on it is what makes webhook replays idempotent.
type PaymentEvent struct {
	id          uint
	externalRef string
	userSID     string
	tier        vo.Tier
	payload     []byte
	receivedAt  time.Time
}

// NewPaymentEvent creates a verified payment event ready to be recorded.
func NewPaymentEvent(externalRef, userSID string, tier vo.Tier, payload []byte, receivedAt time.Time) (*PaymentEvent, error) {
	if externalRef == "" {
		return nil, fmt.Errorf("external reference is required")
	}
	if userSID == "" {
		return nil, fmt.Errorf("user SID is required")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid tier in payment event: %q", tier)
	}

	return &PaymentEvent{
		externalRef: externalRef,
		userSID:     userSID,
		tier:        tier,
		payload:     payload,
		receivedAt:  receivedAt,
	}, nil
}

// ReconstructPaymentEvent rebuilds a payment event from persistence.
func ReconstructPaymentEvent(id uint, externalRef, userSID string, tier vo.Tier, payload []byte, receivedAt time.Time) (*PaymentEvent, error) {
	if id == 0 {
		return nil, fmt.Errorf("payment event ID cannot be zero")
	}

	return &PaymentEvent{
		id:          id,
		externalRef: externalRef,
		userSID:     userSID,
		tier:        tier,
		payload:     payload,
		receivedAt:  receivedAt,
	}, nil
}

func (e *PaymentEvent) ID() uint             { return e.id }
func (e *PaymentEvent) ExternalRef() string  { return e.externalRef }
func (e *PaymentEvent) UserSID() string      { return e.userSID }
func (e *PaymentEvent) Tier() vo.Tier        { return e.tier }
func (e *PaymentEvent) Payload() []byte      { return e.payload }
func (e *PaymentEvent) ReceivedAt() time.Time { return e.receivedAt }

// SetID sets the event ID (only for persistence layer use)
func (e *PaymentEvent) SetID(newID uint) error {
	if e.id != 0 {
		return fmt.Errorf("payment event ID is already set")
	}
	if newID == 0 {
		return fmt.Errorf("payment event ID cannot be zero")
	}
	e.id = newID
	return nil
}
