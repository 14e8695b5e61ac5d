package risk

import (
	"math"
	"time"

	"github.com/jwhitfield/ember-api/internal/domain"
)

// User-facing insight strings. These are fixed product copy; the frontend
// matches on them, so they must not be reworded casually.
const (
	InsightNoData        = "Not enough data yet. Keep using the app!"
	InsightHighFatigue   = "High mental fatigue detected."
	InsightEarlyStress   = "Early signs of stress detected."
	InsightStable        = "Your mental energy seems stable."
	InsightLateNightLoad = "Late night activity is impacting your score."
)

// windowCutoff returns the earliest timestamp inside the trailing window
// ending at (and including) the given day. For a 7-day window the cutoff is
// midnight UTC six days before the assessment date.
func windowCutoff(today time.Time, params *Params) time.Time {
	t := today.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, -(params.WindowDays - 1))
}

// aggregateAnswers normalizes the self-report answers in the window onto a
// single risk direction and averages them.
//
// Each question has a polarity: for negative-polarity questions a high answer
// value indicates high risk and the contribution is the value itself; for
// positive-polarity questions a high value indicates low risk and the
// contribution is (6 - value). Either way contributions land on a 1 = low
// risk, 5 = high risk scale.
//
// Returns the average contribution in [1, 5], or 0 if no answer qualified
// (zero answers means "no self-report signal", not minimum risk), together
// with the number of records skipped as malformed. Records with an answer
// value outside 1-5 or a question ID absent from the registry are skipped
// rather than aborting the whole aggregation.
func aggregateAnswers(
	answers []domain.AnswerRecord,
	cutoff time.Time,
	registry *Registry,
) (avgInputRisk float64, skipped int) {
	var sum float64
	var count int

	for _, a := range answers {
		if a.RecordedAt.Before(cutoff) {
			continue
		}
		if a.AnswerValue < domain.MinAnswerValue || a.AnswerValue > domain.MaxAnswerValue {
			skipped++
			continue
		}
		polarity, known := registry.Polarity(a.QuestionID)
		if !known {
			skipped++
			continue
		}

		if polarity == PolarityNegative {
			sum += float64(a.AnswerValue)
		} else {
			sum += float64(domain.MaxAnswerValue + 1 - a.AnswerValue)
		}
		count++
	}

	if count == 0 {
		return 0, skipped
	}
	return sum / float64(count), skipped
}

// behaviorPenalty accumulates the penalty from passive signals in the window
// and clamps it to the configured cap.
//
// Late-night usage adds a full penalty point per occurrence regardless of the
// event's value field. Response delays add half a point, but only when the
// recorded delay exceeds the slow-response threshold. Other signal types are
// collected for future models but carry no weight in this one.
func behaviorPenalty(
	signals []domain.SignalEvent,
	cutoff time.Time,
	params *Params,
) float64 {
	var score float64

	for _, s := range signals {
		if s.RecordedAt.Before(cutoff) {
			continue
		}
		switch s.Type {
		case domain.SignalLateNightUsage:
			score += params.LateNightWeight
		case domain.SignalResponseDelay:
			if s.Value > params.SlowResponseSeconds {
				score += params.SlowResponseWeight
			}
		}
	}

	return math.Min(score, params.PenaltyCap)
}

// composeScore combines the normalized self-report average and the behavior
// penalty into the final 0-100 score.
//
// The base maps the [1, 5] average linearly onto [0, 100]; an average of 0
// (no self-report data) yields a base of 0. Each penalty point adds
// PenaltyScoreWeight score points on top, and the total is clamped to
// [0, 100] and rounded to one decimal place.
func composeScore(avgInputRisk, penalty float64, params *Params) float64 {
	var base float64
	if avgInputRisk > 0 {
		base = ((avgInputRisk - 1) / 4) * 100
	}

	total := base + penalty*params.PenaltyScoreWeight
	total = math.Min(math.Max(total, 0), 100)

	return math.Round(total*10) / 10
}

// assignLevel classifies a score into its discrete risk level and returns the
// level together with the level's insight string. Evaluated highest first;
// first match wins.
func assignLevel(score float64, params *Params) (domain.RiskLevel, string) {
	switch {
	case score > params.HighThreshold:
		return domain.RiskLevelHigh, InsightHighFatigue
	case score > params.MediumThreshold:
		return domain.RiskLevelMedium, InsightEarlyStress
	default:
		return domain.RiskLevelLow, InsightStable
	}
}
