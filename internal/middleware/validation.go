package middleware

import (
	"quiz-engine/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SessionIDLocal is the fiber.Ctx locals key of a validated session id.
const SessionIDLocal = "validated_session_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateSessionID validates the :id path parameter
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Params("id")

		if errors := vm.validator.ValidateSessionID(sessionID); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(SessionIDLocal, sessionID)
		return c.Next()
	}
}
