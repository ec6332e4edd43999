package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/resumelift/resumelift/internal/shared/authorization"
	"github.com/resumelift/resumelift/internal/shared/id"
)

// User is the user aggregate root. The role is immutable except through
// ChangeRole, which only an admin action may invoke.
type User struct {
	id           uint
	sid          string
	email        string
	passwordHash string
	role         authorization.UserRole
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a user with the default role.
func NewUser(email, passwordHash string, now time.Time) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEmail, email)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	return &User{
		sid:          id.MustGenerateWithPrefix(id.PrefixUser, id.DefaultLength),
		email:        email,
		passwordHash: passwordHash,
		role:         authorization.RoleUser,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// UserReconstructParams carries persisted state back into the aggregate.
type UserReconstructParams struct {
	ID           uint
	SID          string
	Email        string
	PasswordHash string
	Role         authorization.UserRole
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(p UserReconstructParams) (*User, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !p.Role.IsValid() {
		return nil, fmt.Errorf("invalid user role: %s", p.Role)
	}

	return &User{
		id:           p.ID,
		sid:          p.SID,
		email:        p.Email,
		passwordHash: p.PasswordHash,
		role:         p.Role,
		version:      p.Version,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) SID() string                  { return u.sid }
func (u *User) Email() string                { return u.email }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) Version() int                 { return u.version }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(newID uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if newID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = newID
	return nil
}

// ChangeRole updates the user's role. Callers must ensure the acting user
// carries an admin role before invoking this.
func (u *User) ChangeRole(role authorization.UserRole, now time.Time) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid user role: %s", role)
	}
	if u.role == role {
		return nil
	}

	u.role = role
	u.updatedAt = now
	u.version++

	return nil
}
