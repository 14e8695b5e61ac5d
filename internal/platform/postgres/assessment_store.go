package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jwhitfield/ember-api/internal/domain"
	"github.com/jwhitfield/ember-api/internal/platform/logger"
	"github.com/jwhitfield/ember-api/internal/store"
)

// PostgresAssessmentStore implements the store.AssessmentStore interface
// using a PostgreSQL database as the storage backend. Insights are stored
// as a jsonb column.
type PostgresAssessmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAssessmentStore creates a new PostgreSQL implementation of the
// AssessmentStore interface. If logger is nil, a default logger will be used.
func NewPostgresAssessmentStore(db store.DBTX, log *slog.Logger) *PostgresAssessmentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresAssessmentStore{
		db:     db,
		logger: log.With(slog.String("component", "assessment_store")),
	}
}

// Ensure PostgresAssessmentStore implements store.AssessmentStore interface
var _ store.AssessmentStore = (*PostgresAssessmentStore)(nil)

// Create implements store.AssessmentStore.Create
// Assessments are append-only; repeated computations for the same day insert
// new rows rather than replacing earlier ones.
func (s *PostgresAssessmentStore) Create(ctx context.Context, assessment *domain.RiskAssessment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := assessment.Validate(); err != nil {
		log.Warn("assessment validation failed during create",
			slog.String("error", err.Error()),
			slog.String("assessment_id", assessment.ID.String()))
		return err
	}

	insights, err := json.Marshal(assessment.Insights)
	if err != nil {
		log.Error("failed to marshal assessment insights",
			slog.String("error", err.Error()),
			slog.String("assessment_id", assessment.ID.String()))
		return fmt.Errorf("failed to marshal insights: %w", err)
	}

	query := `
		INSERT INTO risk_assessments (id, user_id, date, risk_level, risk_score, insights, computed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		assessment.ID,
		assessment.UserID,
		assessment.Date,
		assessment.RiskLevel,
		assessment.RiskScore,
		insights,
		assessment.ComputedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during assessment creation",
				slog.String("assessment_id", assessment.ID.String()),
				slog.String("user_id", assessment.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, assessment.UserID)
		}
		log.Error("failed to create assessment",
			slog.String("error", err.Error()),
			slog.String("assessment_id", assessment.ID.String()))
		return err
	}

	log.Debug("assessment created",
		slog.String("assessment_id", assessment.ID.String()),
		slog.String("risk_level", string(assessment.RiskLevel)))
	return nil
}

// ListRecent implements store.AssessmentStore.ListRecent
// Results are ordered newest first by ComputedAt, capped at limit.
func (s *PostgresAssessmentStore) ListRecent(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]domain.RiskAssessment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, date, risk_level, risk_score, insights, computed_at
		FROM risk_assessments
		WHERE user_id = $1
		ORDER BY computed_at DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		log.Error("failed to list assessments",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var assessments []domain.RiskAssessment
	for rows.Next() {
		var a domain.RiskAssessment
		var insights []byte
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Date,
			&a.RiskLevel,
			&a.RiskScore,
			&insights,
			&a.ComputedAt,
		); err != nil {
			log.Error("failed to scan assessment",
				slog.String("error", err.Error()))
			return nil, err
		}
		if err := json.Unmarshal(insights, &a.Insights); err != nil {
			log.Error("failed to unmarshal assessment insights",
				slog.String("error", err.Error()),
				slog.String("assessment_id", a.ID.String()))
			return nil, fmt.Errorf("failed to unmarshal insights: %w", err)
		}
		assessments = append(assessments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assessments, nil
}

// WithTx implements store.AssessmentStore.WithTx
// It returns a new store instance bound to the given transaction.
func (s *PostgresAssessmentStore) WithTx(tx *sql.Tx) store.AssessmentStore {
	return &PostgresAssessmentStore{
		db:     tx,
		logger: s.logger,
	}
}
