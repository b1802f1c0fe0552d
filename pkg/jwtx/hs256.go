package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinKeyBytes is the smallest symmetric key we accept for HS256. Anything
// shorter than the hash output weakens the MAC.
const MinKeyBytes = 32

// Signer is anything that can sign session claims into a compact JWT.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// Verifier validates a JWT and returns its claims when the token is legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Rejection reasons. The HTTP boundary collapses all of these to a uniform
// 401; they exist so server-side logs can say why a token was refused.
var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrAudience    = errors.New("jwtx: audience mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// HS256Signer signs tokens with a server-held symmetric key.
type HS256Signer struct {
	key []byte
}

// NewSignerHS256 wraps a symmetric key as a Signer. Keys shorter than
// MinKeyBytes are refused outright.
func NewSignerHS256(key []byte) (*HS256Signer, error) {
	if len(key) < MinKeyBytes {
		return nil, errors.New("jwtx: HS256 key must be at least 32 bytes")
	}
	return &HS256Signer{key: key}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign turns claims into a signed compact JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// HS256Verifier validates tokens signed with the shared symmetric key and
// enforces the configured issuer and audience.
type HS256Verifier struct {
	key    []byte
	issuer string
	aud    []string
}

// NewVerifierHS256 creates a verifier for the given key and expectations.
func NewVerifierHS256(key []byte, issuer string, aud []string) *HS256Verifier {
	return &HS256Verifier{key: key, issuer: issuer, aud: aud}
}

// Verify validates the token against the wall clock.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	return v.VerifyAt(tokenStr, time.Now().UTC())
}

// VerifyAt validates the token at the given instant. Checks run in order:
// signature, then issuer, then audience, then expiry; the first failure wins.
func (v *HS256Verifier) VerifyAt(tokenStr string, now time.Time) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrMalformed
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.aud); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiryAt(now); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}

// mapParseError flattens golang-jwt's (possibly joined) parse errors into
// our rejection taxonomy. Signature problems take precedence so a tampered
// token never reads as merely expired.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet),
		errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return ErrNotYetValid
	default:
		return ErrMalformed
	}
}
