package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPassword is returned when a password doesn't meet requirements.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidAnswerValue is returned when a self-report answer value is
	// outside the 1-5 scale.
	ErrInvalidAnswerValue = errors.New("answer value must be between 1 and 5")

	// ErrUnknownQuestion is returned when an answer references a question ID
	// that is not part of the question pool.
	ErrUnknownQuestion = errors.New("unknown question ID")

	// ErrInvalidSignalType is returned when a behavior signal type is not recognized.
	ErrInvalidSignalType = errors.New("invalid signal type")

	// ErrInvalidRiskLevel is returned when a risk level is not one of Low, Medium, High.
	ErrInvalidRiskLevel = errors.New("invalid risk level")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
