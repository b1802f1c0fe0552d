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

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new user account and return a session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		authsdk.RegisterRequest				true	"Registration details"
//	@Success		200		{object}	authsdk.TokenResponse				"token"
//	@Failure		400		{object}	authsdk.ValidationErrorResponse		"code, message, details"
//	@Failure		500		{object}	authsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	token, _, err := h.AuthService.Register(ctx, service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			authsdk.WriteValidationError(w, verr.Fields)
		case errors.Is(err, service.ErrEmailTaken):
			authsdk.ErrEmailTaken.WriteError(w)
		default:
			log.Error("failed to register user", "err", err)
			authsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenResponse{Token: token})
}
