package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentora/internal/shared/authorization"
)

func TestJWTService(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	t.Run("round trip preserves the principal", func(t *testing.T) {
		pair, err := svc.Generate(42, authorization.RoleOwner)
		require.NoError(t, err)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)
		assert.Equal(t, int64(15*60), pair.ExpiresIn)

		claims, err := svc.Verify(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, authorization.RoleOwner, claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		pair, err := svc.Generate(42, authorization.RoleOwner)
		require.NoError(t, err)

		other := NewJWTService("different-secret", 15, 7)
		_, err = other.Verify(pair.AccessToken)
		assert.Error(t, err)
	})

	t.Run("refresh rejects access tokens", func(t *testing.T) {
		pair, err := svc.Generate(42, authorization.RoleOwner)
		require.NoError(t, err)

		_, err = svc.Refresh(pair.AccessToken)
		assert.Error(t, err)
	})

	t.Run("refresh issues a usable pair", func(t *testing.T) {
		pair, err := svc.Generate(42, authorization.RoleStaff)
		require.NoError(t, err)

		rotated, err := svc.Refresh(pair.RefreshToken)
		require.NoError(t, err)

		claims, err := svc.Verify(rotated.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, authorization.RoleStaff, claims.Role)
	})
}
