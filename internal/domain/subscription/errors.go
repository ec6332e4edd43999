package subscription

import (
	"errors"
	"fmt"
)

var (
	ErrSubscriptionNotFound    = errors.New("subscription not found")
	ErrInvalidStatusTransition = errors.New("invalid subscription transition")
	ErrQuotaExceeded           = errors.New("conversion quota exceeded")
	ErrUnknownPlan             = errors.New("unknown subscription plan")
	ErrConcurrentModification  = errors.New("subscription was modified concurrently")
	ErrAlreadySubscribed       = errors.New("user already has an active subscription")
	ErrNoEntitlement           = errors.New("no active subscription")
)

// NewInvalidTransitionError reports a disallowed state change, naming the
// attempted transition and the state it was attempted from.
func NewInvalidTransitionError(transition, state string) error {
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidStatusTransition, transition, state)
}
