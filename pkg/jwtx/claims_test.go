package jwtx_test

import (
	"testing"
	"time"

	"github.com/edusupport/edusupport/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewSessionClaims(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	c := jwtx.NewSessionClaims(
		"7", "luis@example.com", "sid-abc",
		30*time.Minute,
		"edusupport", []string{"edusupport-web"},
		now,
	)

	require.Equal(t, "7", c.Subject)
	require.Equal(t, "luis@example.com", c.Email)
	require.Equal(t, "sid-abc", c.SID)
	require.Equal(t, now, c.IssuedAt.Time)
	require.Equal(t, now.Add(30*time.Minute), c.ExpiresAt.Time)
	require.NotEmpty(t, c.ID, "jti must be set")
}

func TestNewJTIIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		jti := jwtx.NewJTI()
		require.NotEmpty(t, jti)
		_, dup := seen[jti]
		require.False(t, dup)
		seen[jti] = struct{}{}
	}
}

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "edusupport"},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("edusupport"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateIssuer("other-service"), jwtx.ErrIssuer)
	})
}

func TestValidateAudience(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience: []string{"edusupport-web"},
		},
	}

	t.Run("contains match", func(t *testing.T) {
		require.NoError(t, c.ValidateAudience([]string{"edusupport-web"}))
	})

	t.Run("no match", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateAudience([]string{"admin-console"}), jwtx.ErrAudience)
	})

	t.Run("empty expected list", func(t *testing.T) {
		require.NoError(t, c.ValidateAudience(nil))
	})
}

func TestValidateExpiryAt(t *testing.T) {
	now := time.Now().UTC()

	t.Run("live token", func(t *testing.T) {
		c := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			},
		}
		require.NoError(t, c.ValidateExpiryAt(now))
	})

	t.Run("expired token", func(t *testing.T) {
		c := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			},
		}
		require.ErrorIs(t, c.ValidateExpiryAt(now), jwtx.ErrExpired)
	})

	t.Run("expiry boundary is exclusive", func(t *testing.T) {
		c := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now),
			},
		}
		require.ErrorIs(t, c.ValidateExpiryAt(now), jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		c := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				NotBefore: jwt.NewNumericDate(now.Add(time.Minute)),
			},
		}
		require.ErrorIs(t, c.ValidateExpiryAt(now), jwtx.ErrNotYetValid)
	})

	t.Run("no exp or nbf", func(t *testing.T) {
		c := &jwtx.Claims{}
		require.NoError(t, c.ValidateExpiryAt(now))
	})
}
