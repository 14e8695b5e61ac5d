package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRegistry(t *testing.T) *Registry {
	t.Helper()
	registry, err := NewDefaultRegistry()
	require.NoError(t, err)
	return registry
}

func TestSelectQuestionsDeterminism(t *testing.T) {
	t.Parallel()
	registry := mustRegistry(t)

	dates := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
	}

	for _, date := range dates {
		first1, first2 := registry.SelectQuestions(date)
		second1, second2 := registry.SelectQuestions(date)

		assert.Equal(t, first1.ID, second1.ID, "same date must yield the same first question")
		assert.Equal(t, first2.ID, second2.ID, "same date must yield the same second question")
	}
}

func TestSelectQuestionsTimeOfDayIrrelevant(t *testing.T) {
	t.Parallel()
	registry := mustRegistry(t)

	morning := time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 10, 23, 45, 0, 0, time.UTC)

	m1, m2 := registry.SelectQuestions(morning)
	e1, e2 := registry.SelectQuestions(evening)

	assert.Equal(t, m1.ID, e1.ID)
	assert.Equal(t, m2.ID, e2.ID)
}

func TestSelectQuestionsDistinctness(t *testing.T) {
	t.Parallel()
	registry := mustRegistry(t)

	// Walk a multi-year range day by day.
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 365*4; day++ {
		date := start.AddDate(0, 0, day)
		q1, q2 := registry.SelectQuestions(date)
		assert.NotEqual(t, q1.ID, q2.ID, "questions must be distinct on %s", date.Format("2006-01-02"))
	}
}

func TestSelectQuestionsCoverage(t *testing.T) {
	t.Parallel()
	registry := mustRegistry(t)

	// Over any pool-size run of consecutive days every question must appear.
	starts := []time.Time{
		time.Date(2023, 2, 27, 0, 0, 0, 0, time.UTC),  // spans a non-leap February
		time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC), // spans a year boundary
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, start := range starts {
		seen := make(map[string]bool)
		for day := 0; day < registry.Size(); day++ {
			q1, q2 := registry.SelectQuestions(start.AddDate(0, 0, day))
			seen[q1.ID] = true
			seen[q2.ID] = true
		}

		for _, q := range registry.Questions() {
			assert.True(t, seen[q.ID],
				"question %s not selected in the cycle starting %s", q.ID, start.Format("2006-01-02"))
		}
	}
}

func TestSelectQuestionsConsecutiveDaysRotate(t *testing.T) {
	t.Parallel()
	registry := mustRegistry(t)

	today := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	t1, _ := registry.SelectQuestions(today)
	t2, _ := registry.SelectQuestions(tomorrow)

	assert.NotEqual(t, t1.ID, t2.ID, "consecutive days should advance the rotation")
}

func TestSelectQuestionsPreEpochDates(t *testing.T) {
	t.Parallel()
	registry := mustRegistry(t)

	q1, q2 := registry.SelectQuestions(time.Date(1969, 7, 20, 0, 0, 0, 0, time.UTC))
	assert.NotEqual(t, q1.ID, q2.ID)
}
