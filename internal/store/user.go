package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jwhitfield/ember-api/internal/domain"
)

// UserStore defines the interface for user account persistence.
type UserStore interface {
	// Create validates the user, hashes the plaintext password, and saves
	// the account. Returns ErrEmailExists if the email is already taken, or
	// a domain validation error if the user data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID. Returns ErrUserNotFound if no such
	// user exists. The plaintext Password field is never populated.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by email address, for login. Returns
	// ErrUserNotFound if no such user exists. The plaintext Password field
	// is never populated.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
