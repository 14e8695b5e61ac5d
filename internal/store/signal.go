package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jwhitfield/ember-api/internal/domain"
)

// SignalStore defines the interface for behavior signal persistence.
// Signal events are append-only; there are no update or delete operations.
type SignalStore interface {
	// Create appends a new signal event.
	// Returns validation errors from the domain SignalEvent if data is invalid.
	// Returns ErrInvalidEntity if the referenced user does not exist.
	Create(ctx context.Context, event *domain.SignalEvent) error

	// ListSince retrieves all signal events for the user whose RecordedAt
	// timestamp is at or after the cutoff, oldest first.
	// An empty result is not an error.
	ListSince(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]domain.SignalEvent, error)

	// WithTx returns a new SignalStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) SignalStore
}
