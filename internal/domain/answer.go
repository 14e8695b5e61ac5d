package domain

import (
	"time"

	"github.com/google/uuid"
)

// Answer value bounds for the 1-5 self-report scale.
const (
	MinAnswerValue = 1
	MaxAnswerValue = 5
)

// AnswerRecord is one recorded answer to a daily self-report question.
// Records are append-only: they are created by the submission endpoint and
// consumed read-only by the risk engine.
type AnswerRecord struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Date        string    `json:"date"` // Calendar day in YYYY-MM-DD format
	QuestionID  string    `json:"question_id"`
	AnswerValue int       `json:"answer_value"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// NewAnswerRecord creates a new AnswerRecord for the given user and question,
// stamped with the current time. Returns an error if validation fails.
func NewAnswerRecord(userID uuid.UUID, questionID string, answerValue int) (*AnswerRecord, error) {
	now := time.Now().UTC()
	record := &AnswerRecord{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        now.Format(DateLayout),
		QuestionID:  questionID,
		AnswerValue: answerValue,
		RecordedAt:  now,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the AnswerRecord has valid data.
// It does not check pool membership of the question ID; that requires the
// question registry and happens at the API boundary.
func (r *AnswerRecord) Validate() error {
	if r.ID == uuid.Nil || r.UserID == uuid.Nil {
		return ErrEmptyUserID
	}
	if r.QuestionID == "" {
		return ErrEmptyQuestionID
	}
	if r.AnswerValue < MinAnswerValue || r.AnswerValue > MaxAnswerValue {
		return ErrInvalidAnswerValue
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return ErrValidation
	}
	return nil
}

// DateLayout is the calendar-day format used throughout the application.
const DateLayout = "2006-01-02"
