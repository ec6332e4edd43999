package constants

// Context keys set by the auth middleware and read by handlers.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserSID  = "user_sid"
	ContextKeyUserRole = "user_role"
)
