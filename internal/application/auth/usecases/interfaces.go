// Package usecases implements account registration and login.
package usecases

import "time"

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

// TokenPair is one issued access/refresh token set.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenService issues signed token pairs for authenticated users.
type TokenService interface {
	GeneratePair(userID uint, sid, email, role string) (*TokenPair, error)
}

// UserDTO is the public view of an account.
type UserDTO struct {
	SID       string    `json:"sid"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
