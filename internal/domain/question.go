package domain

import "errors"

// Question validation errors
var (
	ErrEmptyQuestionID   = errors.New("question ID cannot be empty")
	ErrEmptyQuestionText = errors.New("question text cannot be empty")
	ErrInvalidCategory   = errors.New("invalid question category")
)

// QuestionCategory groups the daily self-report questions by the aspect of
// well-being they probe.
type QuestionCategory string

// Valid question categories.
const (
	CategorySleep  QuestionCategory = "Sleep"
	CategoryFocus  QuestionCategory = "Focus"
	CategoryMood   QuestionCategory = "Mood"
	CategoryEnergy QuestionCategory = "Energy"
)

// IsValid checks if the category is one of the defined values.
func (c QuestionCategory) IsValid() bool {
	switch c {
	case CategorySleep, CategoryFocus, CategoryMood, CategoryEnergy:
		return true
	default:
		return false
	}
}

// Question is one indirect self-report prompt from the fixed question pool.
// Questions are defined once at process start and never mutated.
type Question struct {
	ID       string           `json:"id"`
	Text     string           `json:"text"`
	Category QuestionCategory `json:"category"`
}

// Validate checks if the Question has valid data.
func (q *Question) Validate() error {
	if q.ID == "" {
		return ErrEmptyQuestionID
	}
	if q.Text == "" {
		return ErrEmptyQuestionText
	}
	if !q.Category.IsValid() {
		return ErrInvalidCategory
	}
	return nil
}
