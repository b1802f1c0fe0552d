package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edusupport/edusupport/internal/server/service"
	"github.com/edusupport/edusupport/pkg/authsdk"
	"github.com/edusupport/edusupport/pkg/httpx"
	"github.com/edusupport/edusupport/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Verify credentials and return a session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		authsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	authsdk.TokenResponse	"token"
//	@Failure		401		{object}	authsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	authsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// A garbled body still gets the uniform 401 so the endpoint leaks
		// nothing about what went wrong.
		authsdk.ErrInvalidCredentials.WriteError(w)
		return
	}

	token, _, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			authsdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("failed to log in user", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenResponse{Token: token})
}
