package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnswerRecord(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	record, err := NewAnswerRecord(userID, "s1", 3)
	require.NoError(t, err)

	assert.Equal(t, userID, record.UserID)
	assert.Equal(t, "s1", record.QuestionID)
	assert.Equal(t, 3, record.AnswerValue)
	assert.Equal(t, record.RecordedAt.Format(DateLayout), record.Date)
}

func TestAnswerRecordValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		mutate      func(*AnswerRecord)
		expectedErr error
	}{
		{
			name:        "value below scale",
			mutate:      func(r *AnswerRecord) { r.AnswerValue = 0 },
			expectedErr: ErrInvalidAnswerValue,
		},
		{
			name:        "value above scale",
			mutate:      func(r *AnswerRecord) { r.AnswerValue = 6 },
			expectedErr: ErrInvalidAnswerValue,
		},
		{
			name:        "empty question ID",
			mutate:      func(r *AnswerRecord) { r.QuestionID = "" },
			expectedErr: ErrEmptyQuestionID,
		},
		{
			name:        "nil user ID",
			mutate:      func(r *AnswerRecord) { r.UserID = uuid.Nil },
			expectedErr: ErrEmptyUserID,
		},
		{
			name:        "malformed date",
			mutate:      func(r *AnswerRecord) { r.Date = "20/05/2024" },
			expectedErr: ErrValidation,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			record, err := NewAnswerRecord(uuid.New(), "s1", 3)
			require.NoError(t, err)

			tc.mutate(record)
			assert.ErrorIs(t, record.Validate(), tc.expectedErr)
		})
	}
}

func TestNewSignalEvent(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	event, err := NewSignalEvent(userID, SignalResponseDelay, 12.5)
	require.NoError(t, err)

	assert.Equal(t, userID, event.UserID)
	assert.Equal(t, SignalResponseDelay, event.Type)
	assert.Equal(t, 12.5, event.Value)
	assert.False(t, event.RecordedAt.IsZero())
}

func TestNewSignalEventRejectsUnknownType(t *testing.T) {
	t.Parallel()

	_, err := NewSignalEvent(uuid.New(), SignalType("screen_time"), 1.0)
	assert.ErrorIs(t, err, ErrInvalidSignalType)
}

func TestSignalTypeIsValid(t *testing.T) {
	t.Parallel()

	for _, valid := range []SignalType{
		SignalAppOpen, SignalResponseDelay, SignalLateNightUsage, SignalMissedCheckin,
	} {
		assert.True(t, valid.IsValid(), "%s should be valid", valid)
	}
	assert.False(t, SignalType("").IsValid())
	assert.False(t, SignalType("LATE_NIGHT_USAGE").IsValid())
}

func TestRiskAssessmentValidate(t *testing.T) {
	t.Parallel()

	valid := RiskAssessment{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Date:       "2024-05-20",
		RiskLevel:  RiskLevelMedium,
		RiskScore:  55.0,
		Insights:   []string{"Early signs of stress detected."},
		ComputedAt: time.Now().UTC(),
	}
	assert.NoError(t, valid.Validate())

	outOfRange := valid
	outOfRange.RiskScore = 100.1
	assert.ErrorIs(t, outOfRange.Validate(), ErrValidation)

	badLevel := valid
	badLevel.RiskLevel = RiskLevel("Critical")
	assert.ErrorIs(t, badLevel.Validate(), ErrInvalidRiskLevel)

	badDate := valid
	badDate.Date = "May 20, 2024"
	assert.ErrorIs(t, badDate.Validate(), ErrValidation)
}
