package validation

import (
	"strings"

	"quiz-engine/internal/domain"
	"quiz-engine/internal/util"
)

// maxOptionIndex bounds option_index before it reaches the engine.
const maxOptionIndex = 100

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSessionID validates a session id path parameter
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if !util.IsULID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", sessionID))
	}

	return errors
}

// ValidateSubmitAnswerRequest validates the answer submission body
func (v *Validator) ValidateSubmitAnswerRequest(optionIndex *int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if optionIndex == nil {
		errors = append(errors, domain.NewMissingFieldError("option_index"))
	} else if *optionIndex < 0 || *optionIndex > maxOptionIndex {
		errors = append(errors, domain.NewOutOfRangeError("option_index", *optionIndex, 0, maxOptionIndex))
	}

	return errors
}
