package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jwhitfield/ember-api/internal/domain"
)

// AnswerStore defines the interface for self-report answer persistence.
// Answer records are append-only; there are no update or delete operations.
type AnswerStore interface {
	// Create appends a new answer record.
	// Returns validation errors from the domain AnswerRecord if data is invalid.
	// Returns ErrInvalidEntity if the referenced user does not exist.
	Create(ctx context.Context, record *domain.AnswerRecord) error

	// ListSince retrieves all answer records for the user whose RecordedAt
	// timestamp is at or after the cutoff, oldest first.
	// An empty result is not an error.
	ListSince(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]domain.AnswerRecord, error)

	// WithTx returns a new AnswerStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AnswerStore
}
