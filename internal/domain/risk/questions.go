package risk

import (
	"fmt"

	"github.com/jwhitfield/ember-api/internal/domain"
)

// Polarity describes how a question's answer value maps to risk.
type Polarity int

const (
	// PolarityNegative means a high answer value (5) indicates high risk.
	PolarityNegative Polarity = iota

	// PolarityPositive means a high answer value (5) indicates low risk.
	PolarityPositive
)

// defaultPool is the fixed set of indirect self-report questions, two per
// category. Defined once at process start and never mutated.
var defaultPool = []domain.Question{
	{ID: "s1", Text: "How refreshed did you feel after waking up?", Category: domain.CategorySleep},
	{ID: "s2", Text: "Did you find it hard to get out of bed today?", Category: domain.CategorySleep},
	{ID: "f1", Text: "How easy was it to focus on one task today?", Category: domain.CategoryFocus},
	{ID: "f2", Text: "Did you find yourself switching tasks often?", Category: domain.CategoryFocus},
	{ID: "m1", Text: "Did you feel mentally tired before noon today?", Category: domain.CategoryMood},
	{ID: "m2", Text: "How easy was it to smile at a joke today?", Category: domain.CategoryMood},
	{ID: "e1", Text: "Did screens feel exhausting today?", Category: domain.CategoryEnergy},
	{ID: "e2", Text: "Do you feel like doing a hobby this evening?", Category: domain.CategoryEnergy},
}

// Question IDs where a HIGH answer value means HIGH risk.
var defaultNegativeIDs = []string{"s2", "f2", "m1", "e1"}

// Question IDs where a LOW answer value means HIGH risk.
var defaultPositiveIDs = []string{"s1", "f1", "m2", "e2"}

// Registry is the immutable, process-wide question pool together with each
// question's polarity. The polarity sets must be disjoint and together cover
// every question in the pool; NewRegistry enforces this so that a degenerate
// configuration fails at startup rather than at request time.
type Registry struct {
	pool     []domain.Question
	byID     map[string]domain.Question
	polarity map[string]Polarity
}

// NewRegistry builds a Registry from a question pool and the two polarity ID
// sets. Returns an error if any question is invalid, an ID is duplicated, a
// polarity set references an unknown question, the sets overlap, or a pool
// question is missing from both sets.
func NewRegistry(
	pool []domain.Question,
	negativeIDs, positiveIDs []string,
) (*Registry, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("question pool cannot be empty")
	}

	byID := make(map[string]domain.Question, len(pool))
	for _, q := range pool {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("invalid question %q: %w", q.ID, err)
		}
		if _, exists := byID[q.ID]; exists {
			return nil, fmt.Errorf("duplicate question ID %q in pool", q.ID)
		}
		byID[q.ID] = q
	}

	polarity := make(map[string]Polarity, len(pool))
	for _, id := range negativeIDs {
		if _, known := byID[id]; !known {
			return nil, fmt.Errorf("negative polarity set references unknown question %q", id)
		}
		polarity[id] = PolarityNegative
	}
	for _, id := range positiveIDs {
		if _, known := byID[id]; !known {
			return nil, fmt.Errorf("positive polarity set references unknown question %q", id)
		}
		if _, dup := polarity[id]; dup {
			return nil, fmt.Errorf("question %q appears in both polarity sets", id)
		}
		polarity[id] = PolarityPositive
	}

	// Coverage invariant: every pool question must have a polarity, otherwise
	// its answers would have no defined normalization.
	for _, q := range pool {
		if _, covered := polarity[q.ID]; !covered {
			return nil, fmt.Errorf("question %q is missing from both polarity sets", q.ID)
		}
	}

	r := &Registry{
		pool:     make([]domain.Question, len(pool)),
		byID:     byID,
		polarity: polarity,
	}
	copy(r.pool, pool)
	return r, nil
}

// NewDefaultRegistry builds the Registry for the standard 8-question pool.
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistry(defaultPool, defaultNegativeIDs, defaultPositiveIDs)
}

// Size returns the number of questions in the pool.
func (r *Registry) Size() int {
	return len(r.pool)
}

// Question looks up a question by ID.
// Returns the question and a boolean indicating if it was found.
func (r *Registry) Question(id string) (domain.Question, bool) {
	q, ok := r.byID[id]
	return q, ok
}

// Polarity looks up the polarity of a question by ID.
// Returns the polarity and a boolean indicating if the question is known.
func (r *Registry) Polarity(id string) (Polarity, bool) {
	p, ok := r.polarity[id]
	return p, ok
}

// Questions returns a copy of the full pool in definition order.
func (r *Registry) Questions() []domain.Question {
	out := make([]domain.Question, len(r.pool))
	copy(out, r.pool)
	return out
}
