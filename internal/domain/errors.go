package domain

import "errors"

var (
	// ErrNotFound is returned by stores when a key has no record.
	ErrNotFound = errors.New("record not found")
	// ErrSessionNotFound is returned when a quiz session has not been started.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrQuizNotFound indicates the quiz content could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuizUnavailable is the refusal for inactive, expired or empty quizzes.
	ErrQuizUnavailable = errors.New("quiz unavailable")
	// ErrAttemptsExhausted is the refusal when no attempts remain.
	ErrAttemptsExhausted = errors.New("attempts exhausted")
	// ErrRetakeNotAllowed is the refusal when the quiz disallows retakes.
	ErrRetakeNotAllowed = errors.New("retakes not allowed")
	// ErrNotInProgress is returned for attempt commands outside of an active attempt.
	ErrNotInProgress = errors.New("quiz attempt not in progress")
	// ErrNotCompleted is returned when retaking before the attempt was submitted.
	ErrNotCompleted = errors.New("quiz attempt not completed")
	// ErrQuestionIndex indicates a jump outside the question range.
	ErrQuestionIndex = errors.New("question index out of range")
	// ErrGenerationFailed is the single error surfaced by generation variants without a fallback.
	ErrGenerationFailed = errors.New("generation failed")
)

// IsRefusal reports whether err is a refusal condition rather than a failure.
func IsRefusal(err error) bool {
	return errors.Is(err, ErrQuizUnavailable) ||
		errors.Is(err, ErrAttemptsExhausted) ||
		errors.Is(err, ErrRetakeNotAllowed)
}
