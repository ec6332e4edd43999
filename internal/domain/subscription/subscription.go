package subscription

import (
	"fmt"
	"time"

	vo "github.com/resumelift/resumelift/internal/domain/subscription/valueobjects"
	"github.com/resumelift/resumelift/internal/shared/biztime"
	"github.com/resumelift/resumelift/internal/shared/id"
)

// Subscription is the subscription aggregate root. A user has at most one
// current row; canceled rows are terminal and a fresh subscribe creates a
// new row. All mutators bump the version for optimistic locking.
type Subscription struct {
	id              uint
	sid             string
	userID          uint
	tier            vo.Tier
	status          vo.SubscriptionStatus
	monthlyQuota    int
	conversionsUsed int
	cycleStart      time.Time
	externalRef     string
	endedAt         *time.Time
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewSubscription creates an active subscription on the given plan with a
// fresh usage cycle starting now.
func NewSubscription(userID uint, plan Plan, externalRef string, now time.Time) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !plan.Tier.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlan, plan.Tier)
	}

	return &Subscription{
		sid:          id.MustGenerateWithPrefix(id.PrefixSubscription, id.DefaultLength),
		userID:       userID,
		tier:         plan.Tier,
		status:       vo.StatusActive,
		monthlyQuota: plan.MonthlyQuota,
		cycleStart:   now,
		externalRef:  externalRef,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// SubscriptionReconstructParams carries persisted state back into the aggregate.
type SubscriptionReconstructParams struct {
	ID              uint
	SID             string
	UserID          uint
	Tier            vo.Tier
	Status          vo.SubscriptionStatus
	MonthlyQuota    int
	ConversionsUsed int
	CycleStart      time.Time
	ExternalRef     string
	EndedAt         *time.Time
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(p SubscriptionReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !p.Tier.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlan, p.Tier)
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid subscription status: %s", p.Status)
	}
	if p.ConversionsUsed < 0 {
		return nil, fmt.Errorf("conversions used cannot be negative")
	}

	return &Subscription{
		id:              p.ID,
		sid:             p.SID,
		userID:          p.UserID,
		tier:            p.Tier,
		status:          p.Status,
		monthlyQuota:    p.MonthlyQuota,
		conversionsUsed: p.ConversionsUsed,
		cycleStart:      p.CycleStart,
		externalRef:     p.ExternalRef,
		endedAt:         p.EndedAt,
		version:         p.Version,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

func (s *Subscription) ID() uint                      { return s.id }
func (s *Subscription) SID() string                   { return s.sid }
func (s *Subscription) UserID() uint                  { return s.userID }
func (s *Subscription) Tier() vo.Tier                 { return s.tier }
func (s *Subscription) Status() vo.SubscriptionStatus { return s.status }
func (s *Subscription) MonthlyQuota() int             { return s.monthlyQuota }
func (s *Subscription) ConversionsUsed() int          { return s.conversionsUsed }
func (s *Subscription) CycleStart() time.Time         { return s.cycleStart }
func (s *Subscription) ExternalRef() string           { return s.externalRef }
func (s *Subscription) EndedAt() *time.Time           { return s.endedAt }
func (s *Subscription) Version() int                  { return s.version }
func (s *Subscription) CreatedAt() time.Time          { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time          { return s.updatedAt }

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(newID uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if newID == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = newID
	return nil
}

// StateName describes the current state for transition error messages.
func (s *Subscription) StateName() string {
	if s == nil {
		return "none"
	}
	if s.status.IsCanceled() {
		return "canceled"
	}
	return fmt.Sprintf("active(%s)", s.tier)
}

// Upgrade moves an active subscription to a strictly higher tier. The usage
// counter and cycle start are intentionally left untouched.
func (s *Subscription) Upgrade(catalog *Catalog, target vo.Tier, now time.Time) error {
	return s.changeTier(catalog, target, now, true)
}

// Downgrade moves an active subscription to a strictly lower tier, effective
// immediately. The usage counter and cycle start are left untouched.
func (s *Subscription) Downgrade(catalog *Catalog, target vo.Tier, now time.Time) error {
	return s.changeTier(catalog, target, now, false)
}

func (s *Subscription) changeTier(catalog *Catalog, target vo.Tier, now time.Time, up bool) error {
	transition := "downgrade"
	if up {
		transition = "upgrade"
	}

	if !s.status.IsActive() {
		return NewInvalidTransitionError(transition, s.StateName())
	}

	currentRank, err := catalog.Rank(s.tier)
	if err != nil {
		return err
	}
	targetRank, err := catalog.Rank(target)
	if err != nil {
		return err
	}

	if up && targetRank <= currentRank {
		return fmt.Errorf("%w: cannot upgrade from %s to %s", ErrInvalidStatusTransition, s.tier, target)
	}
	if !up && targetRank >= currentRank {
		return fmt.Errorf("%w: cannot downgrade from %s to %s", ErrInvalidStatusTransition, s.tier, target)
	}

	plan, err := catalog.Get(target)
	if err != nil {
		return err
	}

	s.tier = plan.Tier
	s.monthlyQuota = plan.MonthlyQuota
	s.updatedAt = now
	s.version++

	return nil
}

// Cancel terminates an active subscription. Canceled subscriptions accept no
// further transitions; a fresh subscribe creates a new row.
func (s *Subscription) Cancel(now time.Time) error {
	if !s.status.IsActive() {
		return NewInvalidTransitionError("cancel", s.StateName())
	}

	ended := now
	s.status = vo.StatusCanceled
	s.endedAt = &ended
	s.updatedAt = now
	s.version++

	return nil
}

// RollCycleIfDue resets the usage counter when at least one calendar-month
// boundary has passed since the cycle start. The counter resets once no
// matter how many boundaries were crossed; the cycle start advances to the
// boundary of the cycle containing now. Returns whether a reset happened.
func (s *Subscription) RollCycleIfDue(now time.Time) bool {
	if !s.status.IsActive() {
		return false
	}
	if !biztime.CycleElapsed(s.cycleStart, now) {
		return false
	}

	s.cycleStart = biztime.AdvanceCycleStart(s.cycleStart, now)
	s.conversionsUsed = 0
	s.updatedAt = now
	s.version++

	return true
}

// QuotaRemaining returns the unconsumed quota for the current cycle.
func (s *Subscription) QuotaRemaining() int {
	remaining := s.monthlyQuota - s.conversionsUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}
