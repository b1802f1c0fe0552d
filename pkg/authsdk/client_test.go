package authsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeServer serves a minimal fixed version of the API wire contract.
func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Email == "taken@example.com" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{
				Error:            ErrorCodeEmailTaken,
				ErrorDescription: "El email ya está registrado",
			})
			return
		}
		if req.Password == "short" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ValidationErrorResponse{
				Code:    ErrorCodeValidationFailed,
				Message: "one or more fields are invalid",
				Details: map[string]string{"password": "too short (min 8)"},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(TokenResponse{Token: "register-token"})
	})

	mux.HandleFunc("POST /v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Password != "Password1" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{
				Error:            ErrorCodeInvalidCredentials,
				ErrorDescription: "Credenciales inválidas",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(TokenResponse{Token: "login-token"})
	})

	mux.HandleFunc("GET /v1/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer login-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: ErrorCodeInvalidToken})
			return
		}
		_ = json.NewEncoder(w).Encode(UserInfoResponse{
			UserID:    7,
			Email:     "ana@example.com",
			FirstName: "Ana",
			LastName:  "García",
		})
	})

	mux.HandleFunc("GET /v1/subjects", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]Subject{
			{ID: 1, Title: "Filosofía", Slug: "filosofia"},
		})
	})

	mux.HandleFunc("POST /v1/subjects/modules/{moduleID}/complete", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("moduleID") != "filosofia-1" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: ErrorCodeNotFound})
			return
		}
		_ = json.NewEncoder(w).Encode(CompleteResponse{Message: "ok"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientRegister(t *testing.T) {
	srv := fakeServer(t)
	client := NewSDKClient(srv.URL)

	session, err := client.Register(context.Background(), RegisterRequest{
		FirstName: "Ana",
		LastName:  "García",
		Email:     "ana@example.com",
		Password:  "Password1",
	})
	require.NoError(t, err)
	require.Equal(t, "register-token", session.Token())
}

func TestClientRegisterValidationError(t *testing.T) {
	srv := fakeServer(t)
	client := NewSDKClient(srv.URL)

	_, err := client.Register(context.Background(), RegisterRequest{Password: "short"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Details, "password")
}

func TestClientRegisterEmailTaken(t *testing.T) {
	srv := fakeServer(t)
	client := NewSDKClient(srv.URL)

	_, err := client.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Password: "Password1",
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, ErrorCodeEmailTaken, apiErr.Code)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestClientLoginAndUserInfo(t *testing.T) {
	srv := fakeServer(t)
	client := NewSDKClient(srv.URL)

	session, err := client.Login(context.Background(), "ana@example.com", "Password1")
	require.NoError(t, err)

	info, err := session.UserInfo(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Ana", info.FirstName)
	require.EqualValues(t, 7, info.UserID)
}

func TestClientLoginFailure(t *testing.T) {
	srv := fakeServer(t)
	client := NewSDKClient(srv.URL)

	_, err := client.Login(context.Background(), "ana@example.com", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, ErrorCodeInvalidCredentials, apiErr.Code)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestSessionSubjectsAndComplete(t *testing.T) {
	srv := fakeServer(t)
	client := NewSDKClient(srv.URL)

	session, err := client.Login(context.Background(), "ana@example.com", "Password1")
	require.NoError(t, err)

	subjects, err := session.Subjects(context.Background())
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	require.Equal(t, "filosofia", subjects[0].Slug)

	require.NoError(t, session.CompleteModule(context.Background(), "filosofia-1"))

	err = session.CompleteModule(context.Background(), "no-such")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, ErrorCodeNotFound, apiErr.Code)
}

func TestSessionWithoutToken(t *testing.T) {
	client := NewSDKClient("http://localhost:8080")
	session := client.NewSessionFromToken("")

	_, err := session.UserInfo(context.Background())
	require.Error(t, err)
}
