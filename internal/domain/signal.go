package domain

import (
	"time"

	"github.com/google/uuid"
)

// SignalType identifies the kind of passive behavioral observation.
type SignalType string

// Valid behavior signal types. The value field's meaning depends on the type:
// seconds for response_delay, 1.0 as an occurrence marker for late_night_usage.
const (
	SignalAppOpen        SignalType = "app_open"
	SignalResponseDelay  SignalType = "response_delay"   // Time taken to answer
	SignalLateNightUsage SignalType = "late_night_usage" // Usage between midnight and 5AM
	SignalMissedCheckin  SignalType = "missed_checkin"   // Explicitly missed a day
)

// IsValid checks if the signal type is one of the defined values.
func (t SignalType) IsValid() bool {
	switch t {
	case SignalAppOpen, SignalResponseDelay, SignalLateNightUsage, SignalMissedCheckin:
		return true
	default:
		return false
	}
}

// SignalEvent is one passive behavioral observation for a user.
// Like AnswerRecord, signal events are append-only.
type SignalEvent struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Type       SignalType `json:"type"`
	Value      float64    `json:"value"`
	RecordedAt time.Time  `json:"recorded_at"`
}

// NewSignalEvent creates a new SignalEvent stamped with the current time.
// Returns an error if validation fails.
func NewSignalEvent(userID uuid.UUID, signalType SignalType, value float64) (*SignalEvent, error) {
	event := &SignalEvent{
		ID:         uuid.New(),
		UserID:     userID,
		Type:       signalType,
		Value:      value,
		RecordedAt: time.Now().UTC(),
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	return event, nil
}

// Validate checks if the SignalEvent has valid data.
func (e *SignalEvent) Validate() error {
	if e.ID == uuid.Nil || e.UserID == uuid.Nil {
		return ErrEmptyUserID
	}
	if !e.Type.IsValid() {
		return ErrInvalidSignalType
	}
	return nil
}
