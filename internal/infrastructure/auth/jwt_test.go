package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumelift/resumelift/internal/shared/authorization"
)

func TestJWTService(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	t.Run("round trip keeps identity claims", func(t *testing.T) {
		pair, err := svc.GeneratePair(1, "user_abc", "alice@example.com", "user")
		require.NoError(t, err)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)
		assert.Equal(t, int64(15*60), pair.ExpiresIn)

		claims, err := svc.Verify(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(1), claims.UserID)
		assert.Equal(t, "user_abc", claims.UserSID)
		assert.Equal(t, authorization.RoleUser, claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		pair, err := svc.GeneratePair(1, "user_abc", "alice@example.com", "user")
		require.NoError(t, err)

		other := NewJWTService("other-secret", 15, 7)
		_, err = other.Verify(pair.AccessToken)
		assert.Error(t, err)
	})

	t.Run("refresh requires a refresh token", func(t *testing.T) {
		pair, err := svc.GeneratePair(1, "user_abc", "alice@example.com", "user")
		require.NoError(t, err)

		rotated, err := svc.Refresh(pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, rotated.AccessToken)

		_, err = svc.Refresh(pair.AccessToken)
		assert.Error(t, err)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := svc.Verify("not.a.token")
		assert.Error(t, err)
	})
}
