package billing

import "errors"

var (
	// ErrUnverifiedPaymentEvent marks an inbound event whose signature did not
	// check out. Such events are logged and dropped, never acted on.
	ErrUnverifiedPaymentEvent = errors.New("payment event signature verification failed")

	// ErrDuplicatePaymentEvent marks a replayed external reference. Replays
	// are a no-op for the state machine.
	ErrDuplicatePaymentEvent = errors.New("payment event already processed")

	ErrMalformedPaymentEvent = errors.New("malformed payment event payload")
)
