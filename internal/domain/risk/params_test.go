package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultParams(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	assert.Equal(t, 7, params.WindowDays)
	assert.Equal(t, 1.0, params.LateNightWeight)
	assert.Equal(t, 0.5, params.SlowResponseWeight)
	assert.Equal(t, 10.0, params.SlowResponseSeconds)
	assert.Equal(t, 5.0, params.PenaltyCap)
	assert.Equal(t, 10.0, params.PenaltyScoreWeight)
	assert.Equal(t, 75.0, params.HighThreshold)
	assert.Equal(t, 40.0, params.MediumThreshold)
	assert.Equal(t, 2.0, params.LateNightInsightThreshold)
}

func TestNewParamsOverrides(t *testing.T) {
	t.Parallel()

	params := NewParams(ParamsConfig{
		WindowDays:    14,
		PenaltyCap:    3.0,
		HighThreshold: 90.0,
	})

	assert.Equal(t, 14, params.WindowDays)
	assert.Equal(t, 3.0, params.PenaltyCap)
	assert.Equal(t, 90.0, params.HighThreshold)

	// Unset fields keep their defaults.
	assert.Equal(t, 40.0, params.MediumThreshold)
	assert.Equal(t, 1.0, params.LateNightWeight)
}
