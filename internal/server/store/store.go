package store

import (
	"context"
	"errors"
	"time"

	"github.com/edusupport/edusupport/internal/server/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this. Sub-repositories are exposed as methods so
// a Tx-scoped Store can hand out transaction-bound repos without the callers
// changing.
type Store interface {
	Users() Users
	Completions() Completions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user and returns the assigned id. Returns
	// ErrAlreadyExists when the email is already registered.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// GetUserByEmail is used during login. Email matching is exact; callers
	// normalise case before storing and querying.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID int64, newHash string) error

	// CountUsers returns the total number of registered users.
	CountUsers(ctx context.Context) (int64, error)
}

type Completions interface {
	// MarkCompleted records that the user finished a module. Marking an
	// already-completed module is a no-op, not an error.
	MarkCompleted(ctx context.Context, userID int64, moduleID string, at time.Time) error

	// ListCompleted returns the ids of all modules the user has completed.
	ListCompleted(ctx context.Context, userID int64) ([]string, error)

	// IsCompleted reports whether the user has completed a single module.
	IsCompleted(ctx context.Context, userID int64, moduleID string) (bool, error)
}
