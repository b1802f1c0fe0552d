package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/edusupport/edusupport/internal/server/domain"
	"github.com/edusupport/edusupport/internal/server/store"
	"github.com/edusupport/edusupport/pkg/cryptox"
	"github.com/edusupport/edusupport/pkg/idx"
	"github.com/edusupport/edusupport/pkg/jwtx"
	"github.com/edusupport/edusupport/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures are indistinguishable on the wire.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	ErrEmailTaken = errors.New("email_taken")
)

// ValidationError carries per-field validation failures from Register.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field(s)", len(e.Fields))
}

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	Audience string
	TokenTTL time.Duration
}

// RegisterInput is the untrusted registration payload after decoding.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Validate checks the registration fields. Returns a map of field names to
// error messages, or nil if all fields are valid. Field keys match the JSON
// request keys so clients can attach messages to form inputs.
func (in RegisterInput) Validate() map[string]string {
	errs := make(map[string]string)

	validateName(errs, "nombre", in.FirstName)
	validateName(errs, "apellido", in.LastName)

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		errs["email"] = "required"
	case !reEmail.MatchString(email):
		errs["email"] = "must be a valid email address"
	}

	validatePassword(errs, in.Password)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateName(errs map[string]string, field, value string) {
	name := strings.TrimSpace(value)
	switch {
	case name == "":
		errs[field] = "required"
	case len([]rune(name)) < 3:
		errs[field] = "too short (min 3)"
	case len([]rune(name)) > 64:
		errs[field] = "too long (max 64)"
	}
}

func validatePassword(errs map[string]string, pw string) {
	switch {
	case pw == "":
		errs["password"] = "required"
	case len(pw) < 8:
		errs["password"] = "too short (min 8)"
	case len(pw) > 128:
		errs["password"] = "too long (max 128)"
	case !containsUpper(pw):
		errs["password"] = "must contain an uppercase letter"
	case !containsDigit(pw):
		errs["password"] = "must contain a digit"
	}
}

func containsUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Register validates the input, creates the account and issues a session
// token so the client is signed in immediately.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, domain.User, error) {
	l := slogx.FromContext(ctx)

	if errs := in.Validate(); errs != nil {
		return "", domain.User{}, &ValidationError{Fields: errs}
	}

	email := normalizeEmail(in.Email)

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return "", domain.User{}, err
	}

	user := domain.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
	}

	// The unique email index catches concurrent registrations; no
	// pre-check needed.
	id, err := s.Store.Users().CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Info("registration rejected, email taken", slog.String("email", email))
			return "", domain.User{}, ErrEmailTaken
		}
		return "", domain.User{}, err
	}
	user.ID = id

	l.Info("user registered", slog.Int64("user_id", id))

	token, err := s.issueToken(user)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password both return ErrInvalidCredentials; a dummy hash verification
// keeps the timing profile flat for unknown emails.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	l := slogx.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", domain.User{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			cryptox.VerifyDummy(password)
			l.Info("login failed, unknown email")
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed, wrong password", slog.Int64("user_id", user.ID))
		return "", domain.User{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}

func (s *AuthService) issueToken(u domain.User) (string, error) {
	claims := jwtx.NewSessionClaims(
		strconv.FormatInt(u.ID, 10),
		u.Email,
		idx.New().String(),
		s.TokenTTL,
		s.Issuer,
		[]string{s.Audience},
		time.Now(),
	)
	return s.Signer.Sign(claims)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
