package valueobjects

// SubscriptionStatus is the persisted lifecycle state of a subscription row.
// A user with no row (or only canceled rows) is in the implicit "none" state.
type SubscriptionStatus string

const (
	StatusActive   SubscriptionStatus = "active"
	StatusCanceled SubscriptionStatus = "canceled"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) IsActive() bool {
	return s == StatusActive
}

func (s SubscriptionStatus) IsCanceled() bool {
	return s == StatusCanceled
}

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusActive:   true,
	StatusCanceled: true,
}
