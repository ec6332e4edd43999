package subscription

import (
	vo "github.com/resumelift/resumelift/internal/domain/subscription/valueobjects"
	"github.com/resumelift/resumelift/internal/shared/authorization"
)

// Entitlement is the derived, non-persisted view of what a user may do.
type Entitlement struct {
	EffectivePlan   vo.Tier `json:"effective_plan"`
	IsAdminOverride bool    `json:"is_admin_override"`
	QuotaRemaining  int     `json:"quota_remaining"`
	CanConsume      bool    `json:"can_consume"`
}

// NoEntitlement is the result for users without an active subscription.
func NoEntitlement() Entitlement {
	return Entitlement{EffectivePlan: vo.TierNone}
}

// ResolveEntitlement computes the entitlement from a user's role and latest
// subscription row (nil when none exists). Pure function of its inputs.
//
// Admin roles always resolve to unlimited pro regardless of any subscription
// row; this is an explicit business rule, not a billing bypass bug.
func ResolveEntitlement(role authorization.UserRole, sub *Subscription, catalog *Catalog) (Entitlement, error) {
	if role.IsAdmin() {
		return Entitlement{
			EffectivePlan:   vo.TierPro,
			IsAdminOverride: true,
			QuotaRemaining:  UnlimitedQuota,
			CanConsume:      true,
		}, nil
	}

	if sub == nil || !sub.Status().IsActive() {
		return NoEntitlement(), nil
	}

	plan, err := catalog.Get(sub.Tier())
	if err != nil {
		return Entitlement{}, err
	}

	remaining := plan.MonthlyQuota - sub.ConversionsUsed()
	if remaining < 0 {
		remaining = 0
	}

	return Entitlement{
		EffectivePlan:  plan.Tier,
		QuotaRemaining: remaining,
		CanConsume:     remaining > 0,
	}, nil
}
