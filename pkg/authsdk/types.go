package authsdk

// Request/response types shared between the server handlers and the Go
// client. JSON keys follow the public wire contract, including the Spanish
// field names the web client submits.

// RegisterRequest is the payload for POST /v1/auth/register.
type RegisterRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the payload for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the session JWT returned by register and login.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserInfoResponse describes the authenticated user.
type UserInfoResponse struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
}

// Subject is one entry in the subject listing.
type Subject struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Module is one lesson in a subject detail, with the caller's completion
// state.
type Module struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Completed   bool   `json:"completed"`
}

// SubjectDetail is the module listing for a subject.
type SubjectDetail struct {
	SubjectName string   `json:"subjectName"`
	Modules     []Module `json:"modules"`
}

// ModuleContent is the playable lesson content.
type ModuleContent struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AudioURL   string `json:"audioUrl"`
	Transcript string `json:"transcript"`
}

// CompleteResponse acknowledges a module completion.
type CompleteResponse struct {
	Message string `json:"message"`
}

// HealthChecks reports the status of each critical dependency.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse carries per-field registration failures. Details
// maps request field names to human-readable reasons.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}
