package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks a normalized definition against the field rules on the domain types.
// Failures wrap ErrQuizUnavailable so starting such a quiz is refused.
func (q QuizDefinition) Validate() error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("%w: invalid quiz %q: %v", ErrQuizUnavailable, q.ID, err)
	}
	return nil
}
