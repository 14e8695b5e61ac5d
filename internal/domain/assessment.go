package domain

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel is the discrete classification of a risk score.
type RiskLevel string

// Valid risk levels.
const (
	RiskLevelLow    RiskLevel = "Low"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelHigh   RiskLevel = "High"
)

// IsValid checks if the risk level is one of the defined values.
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return true
	default:
		return false
	}
}

// RiskAssessment is the output of one risk engine invocation: a normalized
// score in [0, 100], its discrete level, and the rule-triggered insight
// strings. A fresh assessment is created on every invocation; the engine never
// reads a prior assessment to compute the next one.
type RiskAssessment struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Date       string    `json:"date"` // Calendar day in YYYY-MM-DD format
	RiskLevel  RiskLevel `json:"risk_level"`
	RiskScore  float64   `json:"risk_score"` // 0-100
	Insights   []string  `json:"insights"`   // Ordered; may be empty
	ComputedAt time.Time `json:"computed_at"`
}

// Validate checks if the RiskAssessment has valid data.
func (a *RiskAssessment) Validate() error {
	if a.ID == uuid.Nil || a.UserID == uuid.Nil {
		return ErrEmptyUserID
	}
	if !a.RiskLevel.IsValid() {
		return ErrInvalidRiskLevel
	}
	if a.RiskScore < 0 || a.RiskScore > 100 {
		return ErrValidation
	}
	if _, err := time.Parse(DateLayout, a.Date); err != nil {
		return ErrValidation
	}
	return nil
}
