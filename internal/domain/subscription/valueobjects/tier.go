package valueobjects

import "fmt"

// Tier represents a named subscription plan tier.
type Tier string

const (
	// TierNone is the derived "no entitlement" tier, never persisted.
	TierNone Tier = "none"
	// TierBasic is the entry plan.
	TierBasic Tier = "basic"
	// TierStandard is the mid plan.
	TierStandard Tier = "standard"
	// TierPro is the unlimited plan.
	TierPro Tier = "pro"
)

// IsValid checks if the tier names a purchasable plan.
func (t Tier) IsValid() bool {
	return t == TierBasic || t == TierStandard || t == TierPro
}

// String returns the string representation of the tier.
func (t Tier) String() string {
	return string(t)
}

// NewTier creates a Tier from a string.
func NewTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tier: %s, must be 'basic', 'standard', or 'pro'", s)
	}
	return t, nil
}
