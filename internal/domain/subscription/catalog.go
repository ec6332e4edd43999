package subscription

import (
	"fmt"

	vo "github.com/resumelift/resumelift/internal/domain/subscription/valueobjects"
)

// UnlimitedQuota is the sentinel quota for unlimited tiers. A fixed large
// integer keeps all quota arithmetic total; no caller treats it as infinity.
const UnlimitedQuota = 1_000_000

// Plan describes one purchasable tier.
type Plan struct {
	Tier         vo.Tier
	MonthlyQuota int
	Unlimited    bool
	DisplayPrice string
}

// Catalog is the single source of truth for plan quotas and tier ordering.
// No other component may hardcode quota numbers.
type Catalog struct {
	plans map[vo.Tier]Plan
	rank  map[vo.Tier]int
	order []vo.Tier
}

// NewCatalog builds a catalog from an ordered plan list (lowest tier first).
// A malformed catalog is a configuration error and must be fatal at startup.
func NewCatalog(plans []Plan) (*Catalog, error) {
	if len(plans) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one plan")
	}

	c := &Catalog{
		plans: make(map[vo.Tier]Plan, len(plans)),
		rank:  make(map[vo.Tier]int, len(plans)),
		order: make([]vo.Tier, 0, len(plans)),
	}

	for i, p := range plans {
		if !p.Tier.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlan, p.Tier)
		}
		if _, exists := c.plans[p.Tier]; exists {
			return nil, fmt.Errorf("duplicate plan tier %q", p.Tier)
		}
		if p.MonthlyQuota <= 0 {
			return nil, fmt.Errorf("plan %q has non-positive quota %d", p.Tier, p.MonthlyQuota)
		}
		if p.Unlimited && p.MonthlyQuota != UnlimitedQuota {
			return nil, fmt.Errorf("unlimited plan %q must use the sentinel quota", p.Tier)
		}

		c.plans[p.Tier] = p
		c.rank[p.Tier] = i
		c.order = append(c.order, p.Tier)
	}

	return c, nil
}

// DefaultCatalog returns the production plan table.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]Plan{
		{Tier: vo.TierBasic, MonthlyQuota: 10, DisplayPrice: "$5/mo"},
		{Tier: vo.TierStandard, MonthlyQuota: 20, DisplayPrice: "$9/mo"},
		{Tier: vo.TierPro, MonthlyQuota: UnlimitedQuota, Unlimited: true, DisplayPrice: "$19/mo"},
	})
	if err != nil {
		panic(fmt.Sprintf("default plan catalog is malformed: %v", err))
	}
	return c
}

// Get returns the plan for the given tier.
func (c *Catalog) Get(tier vo.Tier) (Plan, error) {
	p, ok := c.plans[tier]
	if !ok {
		return Plan{}, fmt.Errorf("%w: %q", ErrUnknownPlan, tier)
	}
	return p, nil
}

// Rank returns the ordering position of the tier; higher rank means a
// higher tier. Used by the upgrade/downgrade guards.
func (c *Catalog) Rank(tier vo.Tier) (int, error) {
	r, ok := c.rank[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlan, tier)
	}
	return r, nil
}

// Plans returns all plans in rank order.
func (c *Catalog) Plans() []Plan {
	out := make([]Plan, 0, len(c.order))
	for _, tier := range c.order {
		out = append(out, c.plans[tier])
	}
	return out
}
