package constants

// Database table names.
const (
	TableUsers         = "users"
	TableSubscriptions = "subscriptions"
	TablePaymentEvents = "payment_events"
	TableConversions   = "conversions"
)
