package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/edusupport/edusupport/internal/server/store"
	"github.com/edusupport/edusupport/internal/server/store/drivers/sqlite"
	"github.com/edusupport/edusupport/pkg/cryptox"
	"github.com/edusupport/edusupport/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "service-test-*")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newAuthService(t *testing.T) (*AuthService, *jwtx.HS256Verifier) {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(testKey)
	require.NoError(t, err)

	svc := &AuthService{
		Store:    newTestStore(t),
		Signer:   signer,
		Issuer:   "edusupport",
		Audience: "edusupport-web",
		TokenTTL: time.Hour,
	}
	verifier := jwtx.NewVerifierHS256(testKey, "edusupport", []string{"edusupport-web"})
	return svc, verifier
}

func validRegistration() RegisterInput {
	return RegisterInput{
		FirstName: "Ana",
		LastName:  "García",
		Email:     "ana@example.com",
		Password:  "Password1",
	}
}

func TestRegisterIssuesVerifiableToken(t *testing.T) {
	svc, verifier := newAuthService(t)
	ctx := context.Background()

	token, user, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	require.Positive(t, user.ID)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "1", claims.Subject)
	require.Equal(t, "ana@example.com", claims.Email)
	require.NotEmpty(t, claims.SID)
}

func TestRegisterThenLoginSameSubject(t *testing.T) {
	svc, verifier := newAuthService(t)
	ctx := context.Background()

	regToken, _, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	loginToken, _, err := svc.Login(ctx, "ana@example.com", "Password1")
	require.NoError(t, err)

	regClaims, err := verifier.Verify(regToken)
	require.NoError(t, err)
	loginClaims, err := verifier.Verify(loginToken)
	require.NoError(t, err)

	require.Equal(t, regClaims.Subject, loginClaims.Subject)
	require.NotEqual(t, regClaims.SID, loginClaims.SID, "each login is a fresh session")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	in := validRegistration()
	in.FirstName = "Otra"
	_, _, err = svc.Register(ctx, in)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterEmailCaseInsensitive(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	in := validRegistration()
	in.Email = "ANA@Example.com"
	_, _, err = svc.Register(ctx, in)
	require.ErrorIs(t, err, ErrEmailTaken)

	_, _, err = svc.Login(ctx, "Ana@EXAMPLE.com", "Password1")
	require.NoError(t, err)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*RegisterInput)
		field  string
	}{
		{"short first name", func(in *RegisterInput) { in.FirstName = "Al" }, "nombre"},
		{"missing first name", func(in *RegisterInput) { in.FirstName = "  " }, "nombre"},
		{"short last name", func(in *RegisterInput) { in.LastName = "Wu" }, "apellido"},
		{"missing email", func(in *RegisterInput) { in.Email = "" }, "email"},
		{"bad email", func(in *RegisterInput) { in.Email = "not-an-email" }, "email"},
		{"email without tld", func(in *RegisterInput) { in.Email = "a@b" }, "email"},
		{"short password", func(in *RegisterInput) { in.Password = "Short1" }, "password"},
		{"no uppercase", func(in *RegisterInput) { in.Password = "longenough1" }, "password"},
		{"no digit", func(in *RegisterInput) { in.Password = "LongEnough" }, "password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRegistration()
			tc.mutate(&in)

			_, _, err := svc.Register(ctx, in)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Contains(t, verr.Fields, tc.field)
		})
	}
}

func TestRegisterValidPasswordVariants(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	in := validRegistration()
	in.Email = "variant@example.com"
	in.Password = "LongEnough1"

	_, _, err := svc.Register(ctx, in)
	require.NoError(t, err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, _, unknownErr := svc.Login(ctx, "nobody@example.com", "Password1")
	_, _, wrongErr := svc.Login(ctx, "ana@example.com", "WrongPass1")

	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	require.Equal(t, unknownErr, wrongErr)
}

func TestLoginEmptyCredentials(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "ana@example.com", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenExpiryHonoursTTL(t *testing.T) {
	svc, verifier := newAuthService(t)
	svc.TokenTTL = time.Minute
	ctx := context.Background()

	token, _, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, err = verifier.VerifyAt(token, time.Now().Add(30*time.Second))
	require.NoError(t, err)

	_, err = verifier.VerifyAt(token, time.Now().Add(2*time.Minute))
	require.ErrorIs(t, err, jwtx.ErrExpired)
}
