package risk

// Params defines all configurable parameters for the risk scoring model.
// The defaults are the product's calibrated constants; changing them changes
// the meaning of historical scores, so overrides are intended for tests and
// experimentation rather than production tuning.
type Params struct {
	// WindowDays is the trailing lookback window, in calendar days, ending at
	// and including the assessment date.
	WindowDays int

	// LateNightWeight is the penalty added per late-night usage event.
	LateNightWeight float64

	// SlowResponseWeight is the penalty added per response-delay event whose
	// value exceeds SlowResponseSeconds.
	SlowResponseWeight float64

	// SlowResponseSeconds is the delay threshold above which a response-delay
	// event contributes to the penalty.
	SlowResponseSeconds float64

	// PenaltyCap is the maximum behavior penalty; behavioral signals alone can
	// never push the penalty term above this value.
	PenaltyCap float64

	// PenaltyScoreWeight converts penalty points to score points.
	PenaltyScoreWeight float64

	// HighThreshold and MediumThreshold split scores into levels:
	// score > HighThreshold is High, score > MediumThreshold is Medium,
	// anything else is Low.
	HighThreshold   float64
	MediumThreshold float64

	// LateNightInsightThreshold is the penalty above which the late-night
	// insight is attached, independent of level.
	LateNightInsightThreshold float64
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero values leave the corresponding default untouched.
type ParamsConfig struct {
	WindowDays                int
	LateNightWeight           float64
	SlowResponseWeight        float64
	SlowResponseSeconds       float64
	PenaltyCap                float64
	PenaltyScoreWeight        float64
	HighThreshold             float64
	MediumThreshold           float64
	LateNightInsightThreshold float64
}

// NewDefaultParams creates a new Params instance with the calibrated defaults.
func NewDefaultParams() *Params {
	return &Params{
		WindowDays:                7,
		LateNightWeight:           1.0,
		SlowResponseWeight:        0.5,
		SlowResponseSeconds:       10.0,
		PenaltyCap:                5.0,
		PenaltyScoreWeight:        10.0,
		HighThreshold:             75.0,
		MediumThreshold:           40.0,
		LateNightInsightThreshold: 2.0,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.WindowDays > 0 {
		params.WindowDays = config.WindowDays
	}
	if config.LateNightWeight > 0 {
		params.LateNightWeight = config.LateNightWeight
	}
	if config.SlowResponseWeight > 0 {
		params.SlowResponseWeight = config.SlowResponseWeight
	}
	if config.SlowResponseSeconds > 0 {
		params.SlowResponseSeconds = config.SlowResponseSeconds
	}
	if config.PenaltyCap > 0 {
		params.PenaltyCap = config.PenaltyCap
	}
	if config.PenaltyScoreWeight > 0 {
		params.PenaltyScoreWeight = config.PenaltyScoreWeight
	}
	if config.HighThreshold > 0 {
		params.HighThreshold = config.HighThreshold
	}
	if config.MediumThreshold > 0 {
		params.MediumThreshold = config.MediumThreshold
	}
	if config.LateNightInsightThreshold > 0 {
		params.LateNightInsightThreshold = config.LateNightInsightThreshold
	}

	return params
}
