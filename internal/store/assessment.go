package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jwhitfield/ember-api/internal/domain"
)

// AssessmentStore defines the interface for risk assessment persistence.
//
// Create always appends: repeated identical assessments produce distinct
// rows. The core has no idempotence key for assessments; a system that wants
// at-most-one assessment per user and day would add an upsert keyed on
// (user, date) here, at the storage boundary.
type AssessmentStore interface {
	// Create appends a new risk assessment record.
	// Returns validation errors from the domain RiskAssessment if data is invalid.
	// Returns ErrInvalidEntity if the referenced user does not exist.
	Create(ctx context.Context, assessment *domain.RiskAssessment) error

	// ListRecent retrieves up to limit of the user's most recent assessments,
	// newest first. An empty result is not an error.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskAssessment, error)

	// WithTx returns a new AssessmentStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AssessmentStore
}
