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

// PostgresSignalStore implements the store.SignalStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSignalStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSignalStore creates a new PostgreSQL implementation of the
// SignalStore interface. If logger is nil, a default logger will be used.
func NewPostgresSignalStore(db store.DBTX, log *slog.Logger) *PostgresSignalStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresSignalStore{
		db:     db,
		logger: log.With(slog.String("component", "signal_store")),
	}
}

// Ensure PostgresSignalStore implements store.SignalStore interface
var _ store.SignalStore = (*PostgresSignalStore)(nil)

// Create implements store.SignalStore.Create
// Returns store.ErrInvalidEntity if the referenced user does not exist.
func (s *PostgresSignalStore) Create(ctx context.Context, event *domain.SignalEvent) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := event.Validate(); err != nil {
		log.Warn("signal event validation failed during create",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
		return err
	}

	query := `
		INSERT INTO signal_events (id, user_id, type, value, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		event.ID,
		event.UserID,
		event.Type,
		event.Value,
		event.RecordedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during signal creation",
				slog.String("event_id", event.ID.String()),
				slog.String("user_id", event.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, event.UserID)
		}
		log.Error("failed to create signal event",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
		return err
	}

	log.Debug("signal event created",
		slog.String("event_id", event.ID.String()),
		slog.String("type", string(event.Type)))
	return nil
}

// ListSince implements store.SignalStore.ListSince
// Results are ordered oldest first by RecordedAt.
func (s *PostgresSignalStore) ListSince(
	ctx context.Context,
	userID uuid.UUID,
	cutoff time.Time,
) ([]domain.SignalEvent, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, type, value, recorded_at
		FROM signal_events
		WHERE user_id = $1 AND recorded_at >= $2
		ORDER BY recorded_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, cutoff)
	if err != nil {
		log.Error("failed to list signal events",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []domain.SignalEvent
	for rows.Next() {
		var e domain.SignalEvent
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Type,
			&e.Value,
			&e.RecordedAt,
		); err != nil {
			log.Error("failed to scan signal event",
				slog.String("error", err.Error()))
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// WithTx implements store.SignalStore.WithTx
// It returns a new store instance bound to the given transaction.
func (s *PostgresSignalStore) WithTx(tx *sql.Tx) store.SignalStore {
	return &PostgresSignalStore{
		db:     tx,
		logger: s.logger,
	}
}
