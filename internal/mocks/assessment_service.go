package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwhitfield/ember-api/internal/domain"
)

// MockAssessmentService implements service.AssessmentService for testing
type MockAssessmentService struct {
	ComputeStatusFn func(ctx context.Context, userID uuid.UUID) (*domain.RiskAssessment, error)
	HistoryFn       func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskAssessment, error)

	// Default values used when functions aren't explicitly defined
	Assessment  *domain.RiskAssessment
	Assessments []domain.RiskAssessment
	Err         error
}

// ComputeStatus implements the service.AssessmentService interface
func (m *MockAssessmentService) ComputeStatus(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.RiskAssessment, error) {
	if m.ComputeStatusFn != nil {
		return m.ComputeStatusFn(ctx, userID)
	}
	return m.Assessment, m.Err
}

// History implements the service.AssessmentService interface
func (m *MockAssessmentService) History(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]domain.RiskAssessment, error) {
	if m.HistoryFn != nil {
		return m.HistoryFn(ctx, userID, limit)
	}
	return m.Assessments, m.Err
}
