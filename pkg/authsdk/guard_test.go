package authsdk

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	return token
}

func TestGuardDeniesWithoutToken(t *testing.T) {
	guard := &SessionGuard{Store: &MemoryTokenStore{}}

	decision, err := guard.Check()
	require.NoError(t, err)
	require.False(t, decision.Allowed)
	require.Equal(t, DefaultLoginPath, decision.RedirectTo)
}

func TestGuardCustomLoginPath(t *testing.T) {
	guard := &SessionGuard{Store: &MemoryTokenStore{}, LoginPath: "/signin"}

	decision, err := guard.Check()
	require.NoError(t, err)
	require.Equal(t, "/signin", decision.RedirectTo)
}

func TestGuardAllowsOnPresence(t *testing.T) {
	store := &MemoryTokenStore{}
	require.NoError(t, store.Save(signedToken(t, time.Hour)))

	guard := &SessionGuard{Store: store}
	decision, err := guard.Check()
	require.NoError(t, err)
	require.True(t, decision.Allowed)
}

func TestGuardPresenceOnlyIgnoresExpiry(t *testing.T) {
	store := &MemoryTokenStore{}
	require.NoError(t, store.Save(signedToken(t, -time.Hour)))

	// Default behaviour trusts presence; the server rejects the token later.
	guard := &SessionGuard{Store: store}
	decision, err := guard.Check()
	require.NoError(t, err)
	require.True(t, decision.Allowed)
}

func TestGuardCheckExpiryRejectsExpired(t *testing.T) {
	store := &MemoryTokenStore{}
	require.NoError(t, store.Save(signedToken(t, -time.Hour)))

	guard := &SessionGuard{Store: store, CheckExpiry: true}
	decision, err := guard.Check()
	require.NoError(t, err)
	require.False(t, decision.Allowed)
}

func TestGuardCheckExpiryAllowsLiveToken(t *testing.T) {
	store := &MemoryTokenStore{}
	require.NoError(t, store.Save(signedToken(t, time.Hour)))

	guard := &SessionGuard{Store: store, CheckExpiry: true}
	decision, err := guard.Check()
	require.NoError(t, err)
	require.True(t, decision.Allowed)
}

func TestGuardCheckExpiryRejectsGarbage(t *testing.T) {
	store := &MemoryTokenStore{}
	require.NoError(t, store.Save("not-a-jwt"))

	guard := &SessionGuard{Store: store, CheckExpiry: true}
	decision, err := guard.Check()
	require.NoError(t, err)
	require.False(t, decision.Allowed)
}

func TestGuardLogoutClearsSession(t *testing.T) {
	store := &MemoryTokenStore{}
	require.NoError(t, store.Save(signedToken(t, time.Hour)))

	guard := &SessionGuard{Store: store}
	require.NoError(t, guard.Logout())

	decision, err := guard.Check()
	require.NoError(t, err)
	require.False(t, decision.Allowed)
}

func TestGuardResume(t *testing.T) {
	store := &MemoryTokenStore{}
	guard := &SessionGuard{Store: store}
	client := NewSDKClient("http://localhost:8080")

	session, err := guard.Resume(client)
	require.NoError(t, err)
	require.Nil(t, session)

	token := signedToken(t, time.Hour)
	require.NoError(t, store.Save(token))

	session, err = guard.Resume(client)
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Equal(t, token, session.Token())
}

func TestFileTokenStoreRoundTrip(t *testing.T) {
	store := &FileTokenStore{Path: filepath.Join(t.TempDir(), "nested", "token")}

	token, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, token)

	require.NoError(t, store.Save("some-token"))

	token, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, "some-token", token)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear()) // clearing twice is fine

	token, err = store.Load()
	require.NoError(t, err)
	require.Empty(t, token)
}
