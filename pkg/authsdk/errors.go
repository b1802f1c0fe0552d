package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/edusupport/edusupport/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeEmailTaken         = "email_taken"
	ErrorCodeValidationFailed   = "validation_failed"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeServerError        = "server_error"
)

// APIError is the error body the server writes and the SDK client decodes.
// It implements the error interface so client calls can return it directly.
type APIError struct {
	// StatusCode is the HTTP status for this error. Not serialized.
	StatusCode int `json:"-"`

	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

var (
	// ErrInvalidRequest is returned for malformed or undecodable payloads.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidCredentials is returned for every login failure. The
	// description is deliberately identical for unknown email and wrong
	// password.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "Credenciales inválidas",
	}

	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeEmailTaken,
		Description: "El email ya está registrado",
	}

	// ErrInvalidToken is returned when the access token is missing, invalid
	// or expired.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the access token is missing, invalid or expired",
	}

	// ErrNotFound is returned for unknown subjects and modules.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	// ErrServerError is returned for unexpected failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// ValidationError is the client-side representation of a 400 validation
// response, keyed by request field.
type ValidationError struct {
	Message string
	Details map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d invalid field(s)", e.Message, len(e.Details))
}

// WriteValidationError writes the per-field validation failure body.
func WriteValidationError(w http.ResponseWriter, details map[string]string) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Code:    ErrorCodeValidationFailed,
		Message: "one or more fields are invalid",
		Details: details,
	})
}

// parseErrorResponse turns a non-2xx HTTP response into a typed error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var valErr ValidationErrorResponse
	if err := json.Unmarshal(body, &valErr); err == nil && valErr.Code == ErrorCodeValidationFailed {
		return &ValidationError{Message: valErr.Message, Details: valErr.Details}
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
