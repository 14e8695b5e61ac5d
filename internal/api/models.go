package api

import (
	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"access_token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresAt is the ISO 8601 timestamp when the access token expires
	ExpiresAt string `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// UserResponse defines the response for the current-user endpoint.
type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt string    `json:"created_at"`
}

// QuestionResponse is one self-report question in a daily pair.
type QuestionResponse struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// DailyQuestionsResponse defines the response for the daily questions endpoint.
type DailyQuestionsResponse struct {
	// Date is the UTC calendar day the pair was selected for, YYYY-MM-DD
	Date      string             `json:"date"`
	Questions []QuestionResponse `json:"questions"`
}

// DailyResponseRequest defines the payload for recording a self-report answer.
type DailyResponseRequest struct {
	QuestionID  string `json:"question_id"  validate:"required"`
	AnswerValue int    `json:"answer_value" validate:"required,min=1,max=5"`
}

// DailyResponseResponse defines the response after recording an answer.
type DailyResponseResponse struct {
	ID         uuid.UUID `json:"id"`
	QuestionID string    `json:"question_id"`
	Date       string    `json:"date"`
	RecordedAt string    `json:"recorded_at"`
}

// TrackSignalRequest defines the payload for recording a behavior signal.
type TrackSignalRequest struct {
	Type  string  `json:"type"  validate:"required,oneof=app_open response_delay late_night_usage missed_checkin"`
	Value float64 `json:"value" validate:"gte=0"`
}

// TrackSignalResponse defines the response after recording a signal.
type TrackSignalResponse struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	RecordedAt string    `json:"recorded_at"`
}

// AssessmentResponse is a computed risk assessment as returned to clients.
type AssessmentResponse struct {
	ID         uuid.UUID `json:"id"`
	Date       string    `json:"date"`
	RiskLevel  string    `json:"risk_level"`
	RiskScore  float64   `json:"risk_score"`
	Insights   []string  `json:"insights"`
	ComputedAt string    `json:"computed_at"`
}

// HistoryResponse defines the response for the assessment history endpoint.
type HistoryResponse struct {
	Assessments []AssessmentResponse `json:"assessments"`
}
