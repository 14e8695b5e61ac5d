package risk

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jwhitfield/ember-api/internal/domain"
)

// Common errors
var (
	ErrNilUserID = errors.New("user ID cannot be nil")
)

// Service defines the two operations the burnout core exposes to the rest of
// the application: picking the day's question pair and scoring a user's
// trailing window of records.
type Service interface {
	// DailyQuestions returns the two distinct self-report questions for the
	// given calendar day. Deterministic: the same day yields the same pair.
	DailyQuestions(today time.Time) (domain.Question, domain.Question)

	// WindowStart returns the earliest timestamp inside the trailing window
	// ending at the given day. Callers use it to fetch exactly the records
	// Assess will consider.
	WindowStart(today time.Time) time.Time

	// KnowsQuestion reports whether the given question ID belongs to the
	// rotation pool.
	KnowsQuestion(id string) bool

	// Assess aggregates the user's answers and signals from the trailing
	// window ending at today into a fresh RiskAssessment. Records outside the
	// window are ignored; malformed records are skipped, never fatal. The
	// computation is pure: it neither fetches nor persists anything, and it
	// never reads a prior assessment.
	Assess(
		userID uuid.UUID,
		today time.Time,
		answers []domain.AnswerRecord,
		signals []domain.SignalEvent,
	) (*domain.RiskAssessment, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	registry *Registry
	params   *Params
	logger   *slog.Logger
}

// NewService creates a risk service with a custom registry and parameters.
// If logger is nil, the default logger is used.
func NewService(registry *Registry, params *Params, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &defaultService{
		registry: registry,
		params:   params,
		logger:   logger.With(slog.String("component", "risk_service")),
	}
}

// NewDefaultService creates a risk service with the standard question pool
// and the calibrated default parameters. Returns an error if the built-in
// pool configuration is degenerate, which fails the process at startup.
func NewDefaultService(logger *slog.Logger) (Service, error) {
	registry, err := NewDefaultRegistry()
	if err != nil {
		return nil, err
	}
	return NewService(registry, NewDefaultParams(), logger), nil
}

// DailyQuestions implements the Service interface.
func (s *defaultService) DailyQuestions(today time.Time) (domain.Question, domain.Question) {
	return s.registry.SelectQuestions(today)
}

// WindowStart implements the Service interface.
func (s *defaultService) WindowStart(today time.Time) time.Time {
	return windowCutoff(today, s.params)
}

// KnowsQuestion implements the Service interface.
func (s *defaultService) KnowsQuestion(id string) bool {
	_, known := s.registry.Polarity(id)
	return known
}

// Assess implements the Service interface.
func (s *defaultService) Assess(
	userID uuid.UUID,
	today time.Time,
	answers []domain.AnswerRecord,
	signals []domain.SignalEvent,
) (*domain.RiskAssessment, error) {
	if userID == uuid.Nil {
		return nil, ErrNilUserID
	}

	now := time.Now().UTC()
	date := today.UTC().Format(domain.DateLayout)
	cutoff := windowCutoff(today, s.params)

	if !hasWindowData(answers, signals, cutoff) {
		// Explicit low-confidence result: nothing recorded in the window.
		return &domain.RiskAssessment{
			ID:         uuid.New(),
			UserID:     userID,
			Date:       date,
			RiskLevel:  domain.RiskLevelLow,
			RiskScore:  0.0,
			Insights:   []string{InsightNoData},
			ComputedAt: now,
		}, nil
	}

	avgInputRisk, skipped := aggregateAnswers(answers, cutoff, s.registry)
	if skipped > 0 {
		s.logger.Warn("skipped malformed answer records during assessment",
			slog.String("user_id", userID.String()),
			slog.Int("skipped", skipped))
	}

	penalty := behaviorPenalty(signals, cutoff, s.params)
	score := composeScore(avgInputRisk, penalty, s.params)

	level, levelInsight := assignLevel(score, s.params)
	insights := []string{levelInsight}
	if penalty > s.params.LateNightInsightThreshold {
		insights = append(insights, InsightLateNightLoad)
	}

	return &domain.RiskAssessment{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       date,
		RiskLevel:  level,
		RiskScore:  score,
		Insights:   insights,
		ComputedAt: now,
	}, nil
}

// hasWindowData reports whether any answer or signal falls inside the window.
// Malformed records still count as data here: a window with only bad records
// produces a zero score, not the no-data insight.
func hasWindowData(
	answers []domain.AnswerRecord,
	signals []domain.SignalEvent,
	cutoff time.Time,
) bool {
	for _, a := range answers {
		if !a.RecordedAt.Before(cutoff) {
			return true
		}
	}
	for _, s := range signals {
		if !s.RecordedAt.Before(cutoff) {
			return true
		}
	}
	return false
}
