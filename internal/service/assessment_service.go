package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jwhitfield/ember-api/internal/domain"
	"github.com/jwhitfield/ember-api/internal/domain/risk"
	"github.com/jwhitfield/ember-api/internal/store"
)

// Common sentinel errors for AssessmentService
var (
	// ErrAssessmentFailed indicates that the risk computation itself failed.
	ErrAssessmentFailed = errors.New("assessment failed")
)

// AssessmentServiceError wraps errors from the assessment service with context.
type AssessmentServiceError struct {
	// Operation is the operation that failed (e.g., "compute_status", "history")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for AssessmentServiceError.
func (e *AssessmentServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("assessment service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("assessment service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AssessmentServiceError) Unwrap() error {
	return e.Err
}

// AssessmentService computes and persists burnout risk assessments.
type AssessmentService interface {
	// ComputeStatus loads the user's trailing window of answers and signals,
	// runs the risk engine over them, persists the resulting assessment, and
	// returns it. Every call produces and stores a fresh assessment row, even
	// for the same day.
	ComputeStatus(ctx context.Context, userID uuid.UUID) (*domain.RiskAssessment, error)

	// History returns the user's most recently computed assessments, newest
	// first, capped at limit.
	History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskAssessment, error)
}

// assessmentServiceImpl implements the AssessmentService interface.
type assessmentServiceImpl struct {
	db              *sql.DB
	answerStore     store.AnswerStore
	signalStore     store.SignalStore
	assessmentStore store.AssessmentStore
	riskService     risk.Service
	logger          *slog.Logger

	// timeFunc allows tests to control the assessment date
	timeFunc func() time.Time

	// runInTx allows tests to run the compute transaction without a live DB
	runInTx func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// NewAssessmentService creates a new AssessmentService with the given
// dependencies. The db handle is used to run the window read and the
// assessment insert in a single transaction so the persisted score reflects
// one consistent snapshot of the user's records.
func NewAssessmentService(
	db *sql.DB,
	answerStore store.AnswerStore,
	signalStore store.SignalStore,
	assessmentStore store.AssessmentStore,
	riskService risk.Service,
	logger *slog.Logger,
) (AssessmentService, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if answerStore == nil {
		return nil, errors.New("answerStore cannot be nil")
	}
	if signalStore == nil {
		return nil, errors.New("signalStore cannot be nil")
	}
	if assessmentStore == nil {
		return nil, errors.New("assessmentStore cannot be nil")
	}
	if riskService == nil {
		return nil, errors.New("riskService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &assessmentServiceImpl{
		db:              db,
		answerStore:     answerStore,
		signalStore:     signalStore,
		assessmentStore: assessmentStore,
		riskService:     riskService,
		logger:          logger.With(slog.String("component", "assessment_service")),
		timeFunc:        time.Now,
		runInTx:         store.RunInTransaction,
	}, nil
}

// ComputeStatus implements AssessmentService.ComputeStatus
func (s *assessmentServiceImpl) ComputeStatus(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.RiskAssessment, error) {
	if userID == uuid.Nil {
		return nil, &AssessmentServiceError{
			Operation: "compute_status",
			Message:   "user ID cannot be nil",
			Err:       risk.ErrNilUserID,
		}
	}

	today := s.timeFunc().UTC()
	cutoff := s.riskService.WindowStart(today)

	var assessment *domain.RiskAssessment
	err := s.runInTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		answers, err := s.answerStore.WithTx(tx).ListSince(ctx, userID, cutoff)
		if err != nil {
			return fmt.Errorf("failed to load answer records: %w", err)
		}

		signals, err := s.signalStore.WithTx(tx).ListSince(ctx, userID, cutoff)
		if err != nil {
			return fmt.Errorf("failed to load signal events: %w", err)
		}

		assessment, err = s.riskService.Assess(userID, today, answers, signals)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAssessmentFailed, err)
		}

		if err := s.assessmentStore.WithTx(tx).Create(ctx, assessment); err != nil {
			return fmt.Errorf("failed to persist assessment: %w", err)
		}

		s.logger.Debug("assessment computed",
			slog.String("user_id", userID.String()),
			slog.String("risk_level", string(assessment.RiskLevel)),
			slog.Float64("risk_score", assessment.RiskScore),
			slog.Int("answer_count", len(answers)),
			slog.Int("signal_count", len(signals)))
		return nil
	})
	if err != nil {
		return nil, &AssessmentServiceError{
			Operation: "compute_status",
			Message:   "failed to compute risk status",
			Err:       err,
		}
	}

	return assessment, nil
}

// History implements AssessmentService.History
func (s *assessmentServiceImpl) History(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]domain.RiskAssessment, error) {
	if userID == uuid.Nil {
		return nil, &AssessmentServiceError{
			Operation: "history",
			Message:   "user ID cannot be nil",
			Err:       risk.ErrNilUserID,
		}
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	assessments, err := s.assessmentStore.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, &AssessmentServiceError{
			Operation: "history",
			Message:   "failed to load assessment history",
			Err:       err,
		}
	}

	return assessments, nil
}

// DefaultHistoryLimit caps how many past assessments History returns when the
// caller does not specify a limit.
const DefaultHistoryLimit = 30
