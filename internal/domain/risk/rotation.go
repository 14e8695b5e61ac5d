package risk

import (
	"time"

	"github.com/jwhitfield/ember-api/internal/domain"
)

// SelectQuestions picks the two self-report questions for the given calendar
// day. The selection is a pure function of the date: the same date always
// yields the same pair, and over any full cycle of pool-size consecutive days
// every question appears at least once.
//
// The two indices are the day ordinal and the day ordinal offset by half the
// pool, which biases the pair toward different categories. Per-user rotation
// history is a known limitation: every user sees the same pair on a given day.
func (r *Registry) SelectQuestions(today time.Time) (domain.Question, domain.Question) {
	n := len(r.pool)
	d := dayOrdinal(today)

	idx1 := mod(d, n)
	idx2 := mod(d+n/2, n)

	// Unreachable while the pool size is even and the offset is exactly half,
	// but guarantees two distinct questions if the pool ever changes shape.
	if idx1 == idx2 {
		idx2 = (idx1 + 1) % n
	}

	return r.pool[idx1], r.pool[idx2]
}

// mod is the Euclidean modulo, always in [0, n). Go's % operator is negative
// for negative dividends, which would break indexing for pre-epoch dates.
func mod(d, n int) int {
	m := d % n
	if m < 0 {
		m += n
	}
	return m
}

// dayOrdinal converts a date to a strictly increasing count of days, so that
// consecutive calendar days yield consecutive integers. The date is evaluated
// on the UTC calendar.
func dayOrdinal(t time.Time) int {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(midnight.Unix() / (24 * 60 * 60))
}
