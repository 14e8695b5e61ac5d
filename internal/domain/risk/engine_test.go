package risk

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwhitfield/ember-api/internal/domain"
)

var testToday = time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)

func testService(t *testing.T) Service {
	t.Helper()
	svc, err := NewDefaultService(nil)
	require.NoError(t, err)
	return svc
}

func answer(questionID string, value int, recordedAt time.Time) domain.AnswerRecord {
	return domain.AnswerRecord{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Date:        recordedAt.Format(domain.DateLayout),
		QuestionID:  questionID,
		AnswerValue: value,
		RecordedAt:  recordedAt,
	}
}

func signal(signalType domain.SignalType, value float64, recordedAt time.Time) domain.SignalEvent {
	return domain.SignalEvent{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Type:       signalType,
		Value:      value,
		RecordedAt: recordedAt,
	}
}

func TestAssessNoData(t *testing.T) {
	t.Parallel()
	svc := testService(t)
	userID := uuid.New()

	assessment, err := svc.Assess(userID, testToday, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, userID, assessment.UserID)
	assert.Equal(t, "2024-05-20", assessment.Date)
	assert.Equal(t, 0.0, assessment.RiskScore)
	assert.Equal(t, domain.RiskLevelLow, assessment.RiskLevel)
	assert.Equal(t, []string{InsightNoData}, assessment.Insights)
}

func TestAssessNilUserID(t *testing.T) {
	t.Parallel()
	svc := testService(t)

	_, err := svc.Assess(uuid.Nil, testToday, nil, nil)
	assert.ErrorIs(t, err, ErrNilUserID)
}

func TestAssessConcreteScenarios(t *testing.T) {
	t.Parallel()
	svc := testService(t)

	testCases := []struct {
		name             string
		answers          []domain.AnswerRecord
		signals          []domain.SignalEvent
		expectedScore    float64
		expectedLevel    domain.RiskLevel
		expectedInsights []string
	}{
		{
			name: "worst positive-polarity answer maxes the score",
			// s1 is positive polarity: value 1 contributes 6-1=5, base 100.
			answers:          []domain.AnswerRecord{answer("s1", 1, testToday)},
			expectedScore:    100.0,
			expectedLevel:    domain.RiskLevelHigh,
			expectedInsights: []string{InsightHighFatigue},
		},
		{
			name: "best negative-polarity answer floors the score",
			// s2 is negative polarity: value 1 contributes 1, base 0.
			answers:          []domain.AnswerRecord{answer("s2", 1, testToday)},
			expectedScore:    0.0,
			expectedLevel:    domain.RiskLevelLow,
			expectedInsights: []string{InsightStable},
		},
		{
			name: "late nights alone stay below the medium boundary",
			// Penalty 3 -> score 30 <= 40 -> Low, but penalty > 2 adds the
			// late-night insight.
			signals: []domain.SignalEvent{
				signal(domain.SignalLateNightUsage, 1.0, testToday),
				signal(domain.SignalLateNightUsage, 1.0, testToday.Add(-24*time.Hour)),
				signal(domain.SignalLateNightUsage, 1.0, testToday.Add(-48*time.Hour)),
			},
			expectedScore:    30.0,
			expectedLevel:    domain.RiskLevelLow,
			expectedInsights: []string{InsightStable, InsightLateNightLoad},
		},
		{
			name: "mid-scale answers land in medium",
			// m1 negative, value 4 contributes 4 -> avg 4 -> base 75 -> Medium.
			answers:          []domain.AnswerRecord{answer("m1", 4, testToday)},
			expectedScore:    75.0,
			expectedLevel:    domain.RiskLevelMedium,
			expectedInsights: []string{InsightEarlyStress},
		},
		{
			name: "slow responses add half a point each",
			// Base 0 (no answers), two qualifying delays -> penalty 1 -> 10.
			signals: []domain.SignalEvent{
				signal(domain.SignalResponseDelay, 12.5, testToday),
				signal(domain.SignalResponseDelay, 30.0, testToday),
				signal(domain.SignalResponseDelay, 9.9, testToday), // under threshold
			},
			expectedScore:    10.0,
			expectedLevel:    domain.RiskLevelLow,
			expectedInsights: []string{InsightStable},
		},
		{
			name: "other signal types carry no weight",
			signals: []domain.SignalEvent{
				signal(domain.SignalAppOpen, 1.0, testToday),
				signal(domain.SignalMissedCheckin, 1.0, testToday),
			},
			expectedScore:    0.0,
			expectedLevel:    domain.RiskLevelLow,
			expectedInsights: []string{InsightStable},
		},
		{
			name: "answers and signals compose additively",
			// m1 value 5 -> avg 5 -> base 100, clamp keeps it at 100.
			answers: []domain.AnswerRecord{answer("m1", 5, testToday)},
			signals: []domain.SignalEvent{
				signal(domain.SignalLateNightUsage, 1.0, testToday),
			},
			expectedScore:    100.0,
			expectedLevel:    domain.RiskLevelHigh,
			expectedInsights: []string{InsightHighFatigue},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assessment, err := svc.Assess(uuid.New(), testToday, tc.answers, tc.signals)
			require.NoError(t, err)

			assert.Equal(t, tc.expectedScore, assessment.RiskScore)
			assert.Equal(t, tc.expectedLevel, assessment.RiskLevel)
			assert.Equal(t, tc.expectedInsights, assessment.Insights)
		})
	}
}

func TestAssessScoreBounds(t *testing.T) {
	t.Parallel()
	svc := testService(t)

	// Pile every risk factor on top of each other; the score must stay in range.
	var answers []domain.AnswerRecord
	var signals []domain.SignalEvent
	for _, id := range []string{"s2", "f2", "m1", "e1"} {
		answers = append(answers, answer(id, 5, testToday))
	}
	for i := 0; i < 20; i++ {
		signals = append(signals, signal(domain.SignalLateNightUsage, 1.0, testToday))
	}

	assessment, err := svc.Assess(uuid.New(), testToday, answers, signals)
	require.NoError(t, err)

	assert.LessOrEqual(t, assessment.RiskScore, 100.0)
	assert.GreaterOrEqual(t, assessment.RiskScore, 0.0)
	assert.Equal(t, 100.0, assessment.RiskScore)
}

func TestAssessPenaltyCap(t *testing.T) {
	t.Parallel()
	svc := testService(t)

	// More late nights than the cap allows must not raise the score further.
	var atCap, overCap []domain.SignalEvent
	for i := 0; i < 5; i++ {
		atCap = append(atCap, signal(domain.SignalLateNightUsage, 1.0, testToday))
	}
	for i := 0; i < 12; i++ {
		overCap = append(overCap, signal(domain.SignalLateNightUsage, 1.0, testToday))
	}

	capped, err := svc.Assess(uuid.New(), testToday, nil, atCap)
	require.NoError(t, err)
	flooded, err := svc.Assess(uuid.New(), testToday, nil, overCap)
	require.NoError(t, err)

	assert.Equal(t, 50.0, capped.RiskScore)
	assert.Equal(t, capped.RiskScore, flooded.RiskScore)
}

func TestAssessMonotonicity(t *testing.T) {
	t.Parallel()
	svc := testService(t)

	// Raising a negative-polarity answer never decreases the score.
	var prev float64 = -1
	for value := 1; value <= 5; value++ {
		assessment, err := svc.Assess(uuid.New(), testToday,
			[]domain.AnswerRecord{answer("e1", value, testToday)}, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, assessment.RiskScore, prev,
			"negative-polarity value %d decreased the score", value)
		prev = assessment.RiskScore
	}

	// Lowering a positive-polarity answer never decreases the score.
	prev = -1
	for value := 5; value >= 1; value-- {
		assessment, err := svc.Assess(uuid.New(), testToday,
			[]domain.AnswerRecord{answer("e2", value, testToday)}, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, assessment.RiskScore, prev,
			"positive-polarity value %d decreased the score", value)
		prev = assessment.RiskScore
	}
}

func TestAssessWindowFiltering(t *testing.T) {
	t.Parallel()
	svc := testService(t)

	// Six days back is the oldest point inside the window; seven days back is out.
	inside := answer("m1", 5, testToday.AddDate(0, 0, -6))
	outside := answer("m1", 5, testToday.AddDate(0, 0, -7))

	assessment, err := svc.Assess(uuid.New(), testToday,
		[]domain.AnswerRecord{inside, outside}, nil)
	require.NoError(t, err)

	// Only the inside answer counts: avg 5 -> 100. If the outside record
	// leaked in, the result would be identical here, so also check that a
	// window with only the stale record yields the no-data branch.
	assert.Equal(t, 100.0, assessment.RiskScore)

	stale, err := svc.Assess(uuid.New(), testToday,
		[]domain.AnswerRecord{outside}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{InsightNoData}, stale.Insights)
}

func TestAssessSkipsMalformedRecords(t *testing.T) {
	t.Parallel()
	svc := testService(t)

	answers := []domain.AnswerRecord{
		answer("m1", 5, testToday),    // valid: contributes 5
		answer("m1", 9, testToday),    // out of range: skipped
		answer("m1", 0, testToday),    // out of range: skipped
		answer("ghost", 5, testToday), // unknown question: skipped
	}

	assessment, err := svc.Assess(uuid.New(), testToday, answers, nil)
	require.NoError(t, err)

	// Only the valid record aggregates: avg 5 -> score 100.
	assert.Equal(t, 100.0, assessment.RiskScore)
}

func TestAssessOnlyMalformedRecordsIsNotNoData(t *testing.T) {
	t.Parallel()
	svc := testService(t)

	answers := []domain.AnswerRecord{answer("ghost", 3, testToday)}

	assessment, err := svc.Assess(uuid.New(), testToday, answers, nil)
	require.NoError(t, err)

	// The window had records, they just did not qualify: zero score with the
	// stable insight, not the "not enough data" message.
	assert.Equal(t, 0.0, assessment.RiskScore)
	assert.Equal(t, []string{InsightStable}, assessment.Insights)
}

func TestAssessScoreRounding(t *testing.T) {
	t.Parallel()
	svc := testService(t)

	// Two answers averaging 4.5 -> base 87.5; stays at one decimal place.
	answers := []domain.AnswerRecord{
		answer("m1", 5, testToday),
		answer("m1", 4, testToday),
	}

	assessment, err := svc.Assess(uuid.New(), testToday, answers, nil)
	require.NoError(t, err)
	assert.Equal(t, 87.5, assessment.RiskScore)
}

func TestAssessFreshAssessmentPerCall(t *testing.T) {
	t.Parallel()
	svc := testService(t)
	userID := uuid.New()
	answers := []domain.AnswerRecord{answer("s2", 3, testToday)}

	first, err := svc.Assess(userID, testToday, answers, nil)
	require.NoError(t, err)
	second, err := svc.Assess(userID, testToday, answers, nil)
	require.NoError(t, err)

	// Identical inputs give identical scores but distinct assessment records.
	assert.Equal(t, first.RiskScore, second.RiskScore)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestComposeScoreMapsAverageLinearly(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		avg      float64
		penalty  float64
		expected float64
	}{
		{name: "no self-report signal", avg: 0, penalty: 0, expected: 0},
		{name: "minimum risk average", avg: 1, penalty: 0, expected: 0},
		{name: "midpoint average", avg: 3, penalty: 0, expected: 50},
		{name: "maximum risk average", avg: 5, penalty: 0, expected: 100},
		{name: "penalty points are worth ten each", avg: 0, penalty: 3, expected: 30},
		{name: "total clamps at one hundred", avg: 5, penalty: 5, expected: 100},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, composeScore(tc.avg, tc.penalty, params))
		})
	}
}

func TestAssignLevelBoundaries(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		score    float64
		expected domain.RiskLevel
	}{
		{score: 0, expected: domain.RiskLevelLow},
		{score: 40, expected: domain.RiskLevelLow},
		{score: 40.1, expected: domain.RiskLevelMedium},
		{score: 75, expected: domain.RiskLevelMedium},
		{score: 75.1, expected: domain.RiskLevelHigh},
		{score: 100, expected: domain.RiskLevelHigh},
	}

	for _, tc := range testCases {
		level, _ := assignLevel(tc.score, params)
		assert.Equal(t, tc.expected, level, "score %.1f", tc.score)
	}
}
