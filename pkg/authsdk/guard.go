package authsdk

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLoginPath is where the guard sends unauthenticated users.
const DefaultLoginPath = "/login"

// SessionGuard decides whether a stored session grants access to protected
// screens, mirroring the web client's route protection: by default the mere
// presence of a token grants access, and the server remains the authority on
// whether the token is actually still valid.
type SessionGuard struct {
	Store TokenStore

	// CheckExpiry additionally rejects tokens whose exp claim has passed.
	// This is a client-side convenience only; the signature is not checked
	// here. Off by default to match the presence-only behaviour of the web
	// client.
	CheckExpiry bool

	// LoginPath overrides DefaultLoginPath in deny decisions.
	LoginPath string
}

// Decision is the outcome of a guard check.
type Decision struct {
	Allowed bool

	// RedirectTo is the path to send the user to when Allowed is false.
	RedirectTo string
}

// Check inspects the stored token and decides whether to allow access.
func (g *SessionGuard) Check() (Decision, error) {
	token, err := g.Store.Load()
	if err != nil {
		return Decision{}, err
	}

	if token == "" {
		return g.deny(), nil
	}

	if g.CheckExpiry && tokenExpired(token, time.Now()) {
		return g.deny(), nil
	}

	return Decision{Allowed: true}, nil
}

// Logout clears the stored session.
func (g *SessionGuard) Logout() error {
	return g.Store.Clear()
}

// Resume builds a Session from the stored token. Returns nil when no session
// is stored.
func (g *SessionGuard) Resume(client *SDKClient) (*Session, error) {
	token, err := g.Store.Load()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}
	return client.NewSessionFromToken(token), nil
}

func (g *SessionGuard) deny() Decision {
	path := g.LoginPath
	if path == "" {
		path = DefaultLoginPath
	}
	return Decision{Allowed: false, RedirectTo: path}
}

// tokenExpired reads the exp claim without verifying the signature. A token
// we cannot parse counts as expired.
func tokenExpired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
