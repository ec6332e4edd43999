// Package billing verifies inbound payment provider webhooks.
package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	domainbilling "github.com/resumelift/resumelift/internal/domain/billing"
)

// HMACWebhookVerifier checks the provider's signature header against an
// HMAC-SHA256 of the raw request body under the shared webhook secret.
type HMACWebhookVerifier struct {
	secret []byte
}

func NewHMACWebhookVerifier(secret string) *HMACWebhookVerifier {
	return &HMACWebhookVerifier{secret: []byte(secret)}
}

// Verify returns an error unless signature is the hex HMAC-SHA256 of payload.
// Comparison is constant time.
func (v *HMACWebhookVerifier) Verify(payload []byte, signature string) error {
	if signature == "" {
		return fmt.Errorf("%w: missing signature", domainbilling.ErrUnverifiedPaymentEvent)
	}

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("%w: malformed signature", domainbilling.ErrUnverifiedPaymentEvent)
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)
	expected := mac.Sum(nil)

	if !hmac.Equal(provided, expected) {
		return domainbilling.ErrUnverifiedPaymentEvent
	}
	return nil
}

// Sign computes the hex signature for a payload. Used by tests and by local
// tooling that simulates provider callbacks.
func (v *HMACWebhookVerifier) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
