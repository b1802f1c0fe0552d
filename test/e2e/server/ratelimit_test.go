package server_test

import (
	"net/http"
	"testing"

	"github.com/edusupport/edusupport/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestLoginRateLimit hammers the login endpoint from one address until the
// strict limiter pushes back.
func TestLoginRateLimit(t *testing.T) {
	baseURL := setupServer(t)
	client := authsdk.NewSDKClient(baseURL)

	var limited bool
	for range 15 {
		_, err := client.Login(t.Context(), "nobody@example.com", "Password1")
		require.Error(t, err)

		var apiErr *authsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		if apiErr.StatusCode == http.StatusTooManyRequests {
			limited = true
			break
		}
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	}
	require.True(t, limited, "limiter never engaged after 15 attempts")
}
