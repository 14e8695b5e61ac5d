package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jwhitfield/ember-api/internal/domain"
	"github.com/jwhitfield/ember-api/internal/platform/logger"
	"github.com/jwhitfield/ember-api/internal/store"
)

// PostgresAnswerStore implements the store.AnswerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAnswerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAnswerStore creates a new PostgreSQL implementation of the
// AnswerStore interface. If logger is nil, a default logger will be used.
func NewPostgresAnswerStore(db store.DBTX, log *slog.Logger) *PostgresAnswerStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresAnswerStore{
		db:     db,
		logger: log.With(slog.String("component", "answer_store")),
	}
}

// Ensure PostgresAnswerStore implements store.AnswerStore interface
var _ store.AnswerStore = (*PostgresAnswerStore)(nil)

// Create implements store.AnswerStore.Create
// Returns store.ErrInvalidEntity if the referenced user does not exist.
func (s *PostgresAnswerStore) Create(ctx context.Context, record *domain.AnswerRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("answer record validation failed during create",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()))
		return err
	}

	query := `
		INSERT INTO answer_records (id, user_id, date, question_id, answer_value, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.UserID,
		record.Date,
		record.QuestionID,
		record.AnswerValue,
		record.RecordedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during answer creation",
				slog.String("record_id", record.ID.String()),
				slog.String("user_id", record.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, record.UserID)
		}
		log.Error("failed to create answer record",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()))
		return err
	}

	log.Debug("answer record created",
		slog.String("record_id", record.ID.String()),
		slog.String("question_id", record.QuestionID))
	return nil
}

// ListSince implements store.AnswerStore.ListSince
// Results are ordered oldest first by RecordedAt.
func (s *PostgresAnswerStore) ListSince(
	ctx context.Context,
	userID uuid.UUID,
	cutoff time.Time,
) ([]domain.AnswerRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, date, question_id, answer_value, recorded_at
		FROM answer_records
		WHERE user_id = $1 AND recorded_at >= $2
		ORDER BY recorded_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, cutoff)
	if err != nil {
		log.Error("failed to list answer records",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []domain.AnswerRecord
	for rows.Next() {
		var r domain.AnswerRecord
		if err := rows.Scan(
			&r.ID,
			&r.UserID,
			&r.Date,
			&r.QuestionID,
			&r.AnswerValue,
			&r.RecordedAt,
		); err != nil {
			log.Error("failed to scan answer record",
				slog.String("error", err.Error()))
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// WithTx implements store.AnswerStore.WithTx
// It returns a new store instance bound to the given transaction.
func (s *PostgresAnswerStore) WithTx(tx *sql.Tx) store.AnswerStore {
	return &PostgresAnswerStore{
		db:     tx,
		logger: s.logger,
	}
}
