package server_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/edusupport/edusupport/internal/catalog"
	httpapi "github.com/edusupport/edusupport/internal/server/http"
	"github.com/edusupport/edusupport/internal/server/service"
	"github.com/edusupport/edusupport/internal/server/store/drivers/sqlite"
	"github.com/edusupport/edusupport/pkg/authsdk"
	"github.com/edusupport/edusupport/pkg/cryptox"
	"github.com/edusupport/edusupport/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var signingKey = []byte("0123456789abcdef0123456789abcdef")

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "e2e-test-*")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// setupServer boots the full HTTP stack against an in-memory database and
// returns its base URL.
func setupServer(t *testing.T) string {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256(signingKey)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256(signingKey, "edusupport", []string{"edusupport-web"})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := httpapi.NewRouter(verifier, "e2e", st, logger)
	router.AuthService = &service.AuthService{
		Store:    st,
		Signer:   signer,
		Issuer:   "edusupport",
		Audience: "edusupport-web",
		TokenTTL: time.Hour,
	}
	router.UserService = &service.UserService{Store: st}
	router.CatalogService = &service.CatalogService{
		Provider: catalog.NewStaticProvider(),
		Store:    st,
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv.URL
}

func registerStudent(t *testing.T, client *authsdk.SDKClient, email string) *authsdk.Session {
	t.Helper()

	session, err := client.Register(t.Context(), authsdk.RegisterRequest{
		FirstName: "Ana",
		LastName:  "García",
		Email:     email,
		Password:  "Password1",
	})
	require.NoError(t, err)
	return session
}
