package usecases

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/resumelift/resumelift/internal/domain/subscription"
	vo "github.com/resumelift/resumelift/internal/domain/subscription/valueobjects"
	"github.com/resumelift/resumelift/internal/domain/user"
	"github.com/resumelift/resumelift/internal/shared/authorization"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func mustUser(t interface{ Fatalf(string, ...any) }, id uint, email string, role authorization.UserRole) *user.User {
	u, err := user.ReconstructUser(user.UserReconstructParams{
		ID:           id,
		SID:          "user_test",
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
		Version:      1,
		CreatedAt:    testNow,
		UpdatedAt:    testNow,
	})
	if err != nil {
		t.Fatalf("reconstruct user: %v", err)
	}
	return u
}

func mustSubscription(t interface{ Fatalf(string, ...any) }, p subscription.SubscriptionReconstructParams) *subscription.Subscription {
	if p.SID == "" {
		p.SID = "sub_test"
	}
	if p.Status == "" {
		p.Status = vo.StatusActive
	}
	if p.Version == 0 {
		p.Version = 1
	}
	if p.CycleStart.IsZero() {
		p.CycleStart = testNow
	}
	p.CreatedAt = testNow
	p.UpdatedAt = testNow
	sub, err := subscription.ReconstructSubscription(p)
	if err != nil {
		t.Fatalf("reconstruct subscription: %v", err)
	}
	return sub
}

type fakeUserRepo struct {
	users map[uint]*user.User
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uint]*user.User)}
	for _, u := range users {
		r.users[u.ID()] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	id := uint(len(r.users) + 1)
	if err := u.SetID(id); err != nil {
		return err
	}
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*user.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetBySID(_ context.Context, sid string) (*user.User, error) {
	for _, u := range r.users {
		if u.SID() == sid {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	r.users[u.ID()] = u
	return nil
}

// fakeSubscriptionRepo keeps one current subscription per user and mimics the
// storage-level version guard and conditional usage increment.
type fakeSubscriptionRepo struct {
	mu      sync.Mutex
	nextID  uint
	current map[uint]*subscription.Subscription

	// staleUpdates makes the next N UpdateWithVersion calls fail as stale.
	staleUpdates int
	updateCalls  int

	// createErr, when set, fails Create the way the one-active-row
	// constraint does when a concurrent writer inserted first.
	createErr error
}

func newFakeSubscriptionRepo(subs ...*subscription.Subscription) *fakeSubscriptionRepo {
	r := &fakeSubscriptionRepo{current: make(map[uint]*subscription.Subscription), nextID: 100}
	for _, s := range subs {
		r.current[s.UserID()] = s
	}
	return r
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, sub *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	if err := sub.SetID(r.nextID); err != nil {
		return err
	}
	r.current[sub.UserID()] = sub
	return nil
}

// Reads return clones so callers mutating an aggregate before writing it back
// cannot accidentally mutate the "stored" row, mirroring a real repository.
func (r *fakeSubscriptionRepo) GetCurrentByUserID(_ context.Context, userID uint) (*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.current[userID]
	if !ok {
		return nil, nil
	}
	return r.clone(s), nil
}

func (r *fakeSubscriptionRepo) GetBySID(_ context.Context, sid string) (*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.current {
		if s.SID() == sid {
			return r.clone(s), nil
		}
	}
	return nil, nil
}

func (r *fakeSubscriptionRepo) UpdateWithVersion(_ context.Context, sub *subscription.Subscription, expectedVersion int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	if r.staleUpdates > 0 {
		r.staleUpdates--
		return subscription.ErrConcurrentModification
	}
	stored, ok := r.current[sub.UserID()]
	if !ok || stored.Version() != expectedVersion {
		return subscription.ErrConcurrentModification
	}
	r.current[sub.UserID()] = r.clone(sub)
	return nil
}

func (r *fakeSubscriptionRepo) IncrementUsage(_ context.Context, subscriptionID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for userID, s := range r.current {
		if s.ID() != subscriptionID {
			continue
		}
		if s.ConversionsUsed() >= s.MonthlyQuota() {
			return subscription.ErrQuotaExceeded
		}
		r.current[userID] = r.withUsage(s, s.ConversionsUsed()+1, s.Version()+1)
		return nil
	}
	return subscription.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) DecrementUsage(_ context.Context, subscriptionID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for userID, s := range r.current {
		if s.ID() != subscriptionID {
			continue
		}
		if used := s.ConversionsUsed(); used > 0 {
			r.current[userID] = r.withUsage(s, used-1, s.Version()+1)
		}
		return nil
	}
	return subscription.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) clone(s *subscription.Subscription) *subscription.Subscription {
	return r.withUsage(s, s.ConversionsUsed(), s.Version())
}

// withUsage rebuilds the stored row with a new counter and version, matching
// the storage behavior where usage changes bump the version in place.
func (r *fakeSubscriptionRepo) withUsage(s *subscription.Subscription, used, version int) *subscription.Subscription {
	rebuilt, err := subscription.ReconstructSubscription(subscription.SubscriptionReconstructParams{
		ID:              s.ID(),
		SID:             s.SID(),
		UserID:          s.UserID(),
		Tier:            s.Tier(),
		Status:          s.Status(),
		MonthlyQuota:    s.MonthlyQuota(),
		ConversionsUsed: used,
		CycleStart:      s.CycleStart(),
		ExternalRef:     s.ExternalRef(),
		EndedAt:         s.EndedAt(),
		Version:         version,
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	})
	if err != nil {
		panic(err)
	}
	return rebuilt
}

type fakeEntitlementCache struct {
	mu          sync.Mutex
	entries     map[uint]*subscription.Entitlement
	invalidated []uint
	getErr      error
	setErr      error
}

func newFakeEntitlementCache() *fakeEntitlementCache {
	return &fakeEntitlementCache{entries: make(map[uint]*subscription.Entitlement)}
}

func (c *fakeEntitlementCache) Get(_ context.Context, userID uint) (*subscription.Entitlement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[userID], nil
}

func (c *fakeEntitlementCache) Set(_ context.Context, userID uint, ent *subscription.Entitlement) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[userID] = ent
	return nil
}

func (c *fakeEntitlementCache) Invalidate(_ context.Context, userID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
	c.invalidated = append(c.invalidated, userID)
	return nil
}

type fakeNotifier struct {
	mu        sync.Mutex
	activated []string
	canceled  []string
}

func (n *fakeNotifier) SendSubscriptionActivated(email, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.activated = append(n.activated, email)
	return nil
}

func (n *fakeNotifier) SendSubscriptionCanceled(email, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.canceled = append(n.canceled, email)
	return nil
}

func (n *fakeNotifier) activatedCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.activated)
}

func (n *fakeNotifier) canceledCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.canceled)
}
