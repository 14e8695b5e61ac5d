package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwhitfield/ember-api/internal/domain"
)

func TestNewDefaultRegistry(t *testing.T) {
	t.Parallel()

	registry, err := NewDefaultRegistry()
	require.NoError(t, err)

	assert.Equal(t, 8, registry.Size())

	// Two questions per category.
	perCategory := make(map[domain.QuestionCategory]int)
	for _, q := range registry.Questions() {
		perCategory[q.Category]++
	}
	for _, category := range []domain.QuestionCategory{
		domain.CategorySleep,
		domain.CategoryFocus,
		domain.CategoryMood,
		domain.CategoryEnergy,
	} {
		assert.Equal(t, 2, perCategory[category], "category %s", category)
	}

	// Every question has a polarity.
	for _, q := range registry.Questions() {
		_, known := registry.Polarity(q.ID)
		assert.True(t, known, "question %s has no polarity", q.ID)
	}
}

func TestNewRegistryRejectsDegenerateConfigurations(t *testing.T) {
	t.Parallel()

	pool := []domain.Question{
		{ID: "q1", Text: "First?", Category: domain.CategorySleep},
		{ID: "q2", Text: "Second?", Category: domain.CategoryMood},
	}

	testCases := []struct {
		name     string
		pool     []domain.Question
		negative []string
		positive []string
	}{
		{
			name:     "empty pool",
			pool:     nil,
			negative: nil,
			positive: nil,
		},
		{
			name:     "question missing from both polarity sets",
			pool:     pool,
			negative: []string{"q1"},
			positive: nil,
		},
		{
			name:     "question in both polarity sets",
			pool:     pool,
			negative: []string{"q1", "q2"},
			positive: []string{"q2"},
		},
		{
			name:     "polarity set references unknown question",
			pool:     pool,
			negative: []string{"q1", "q2"},
			positive: []string{"q3"},
		},
		{
			name: "duplicate question ID",
			pool: []domain.Question{
				{ID: "q1", Text: "First?", Category: domain.CategorySleep},
				{ID: "q1", Text: "Again?", Category: domain.CategoryMood},
			},
			negative: []string{"q1"},
			positive: nil,
		},
		{
			name: "invalid question in pool",
			pool: []domain.Question{
				{ID: "q1", Text: "", Category: domain.CategorySleep},
			},
			negative: []string{"q1"},
			positive: nil,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewRegistry(tc.pool, tc.negative, tc.positive)
			assert.Error(t, err)
		})
	}
}

func TestRegistryLookups(t *testing.T) {
	t.Parallel()
	registry := mustRegistry(t)

	q, ok := registry.Question("s1")
	require.True(t, ok)
	assert.Equal(t, domain.CategorySleep, q.Category)

	_, ok = registry.Question("nope")
	assert.False(t, ok)

	p, ok := registry.Polarity("s1")
	require.True(t, ok)
	assert.Equal(t, PolarityPositive, p)

	p, ok = registry.Polarity("s2")
	require.True(t, ok)
	assert.Equal(t, PolarityNegative, p)
}
