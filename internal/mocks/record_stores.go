package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/jwhitfield/ember-api/internal/domain"
	"github.com/jwhitfield/ember-api/internal/store"
)

// MockAnswerStore implements store.AnswerStore for testing
type MockAnswerStore struct {
	CreateFn    func(ctx context.Context, record *domain.AnswerRecord) error
	ListSinceFn func(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]domain.AnswerRecord, error)

	// Data for default implementation
	Records     []domain.AnswerRecord
	CreateError error
}

// Create implements the store.AnswerStore interface
func (m *MockAnswerStore) Create(ctx context.Context, record *domain.AnswerRecord) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, record)
	}
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Records = append(m.Records, *record)
	return nil
}

// ListSince implements the store.AnswerStore interface
func (m *MockAnswerStore) ListSince(
	ctx context.Context,
	userID uuid.UUID,
	cutoff time.Time,
) ([]domain.AnswerRecord, error) {
	if m.ListSinceFn != nil {
		return m.ListSinceFn(ctx, userID, cutoff)
	}
	var out []domain.AnswerRecord
	for _, r := range m.Records {
		if r.UserID == userID && !r.RecordedAt.Before(cutoff) {
			out = append(out, r)
		}
	}
	return out, nil
}

// WithTx implements the store.AnswerStore interface
func (m *MockAnswerStore) WithTx(tx *sql.Tx) store.AnswerStore {
	return m
}

// MockSignalStore implements store.SignalStore for testing
type MockSignalStore struct {
	CreateFn    func(ctx context.Context, event *domain.SignalEvent) error
	ListSinceFn func(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]domain.SignalEvent, error)

	// Data for default implementation
	Events      []domain.SignalEvent
	CreateError error
}

// Create implements the store.SignalStore interface
func (m *MockSignalStore) Create(ctx context.Context, event *domain.SignalEvent) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, event)
	}
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Events = append(m.Events, *event)
	return nil
}

// ListSince implements the store.SignalStore interface
func (m *MockSignalStore) ListSince(
	ctx context.Context,
	userID uuid.UUID,
	cutoff time.Time,
) ([]domain.SignalEvent, error) {
	if m.ListSinceFn != nil {
		return m.ListSinceFn(ctx, userID, cutoff)
	}
	var out []domain.SignalEvent
	for _, e := range m.Events {
		if e.UserID == userID && !e.RecordedAt.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out, nil
}

// WithTx implements the store.SignalStore interface
func (m *MockSignalStore) WithTx(tx *sql.Tx) store.SignalStore {
	return m
}

// MockAssessmentStore implements store.AssessmentStore for testing
type MockAssessmentStore struct {
	CreateFn     func(ctx context.Context, assessment *domain.RiskAssessment) error
	ListRecentFn func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskAssessment, error)

	// Data for default implementation, appended in call order
	Assessments []domain.RiskAssessment
	CreateError error
}

// Create implements the store.AssessmentStore interface
func (m *MockAssessmentStore) Create(ctx context.Context, assessment *domain.RiskAssessment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, assessment)
	}
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Assessments = append(m.Assessments, *assessment)
	return nil
}

// ListRecent implements the store.AssessmentStore interface
func (m *MockAssessmentStore) ListRecent(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]domain.RiskAssessment, error) {
	if m.ListRecentFn != nil {
		return m.ListRecentFn(ctx, userID, limit)
	}
	var out []domain.RiskAssessment
	for i := len(m.Assessments) - 1; i >= 0 && len(out) < limit; i-- {
		if m.Assessments[i].UserID == userID {
			out = append(out, m.Assessments[i])
		}
	}
	return out, nil
}

// WithTx implements the store.AssessmentStore interface
func (m *MockAssessmentStore) WithTx(tx *sql.Tx) store.AssessmentStore {
	return m
}
