package handler

import (
	"quiz-engine/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts every API route on app.
func RegisterRoutes(app *fiber.App, quiz *QuizHandler, org *OrganizationHandler, health *HealthHandler) {
	app.Get("/health", health.Health)

	apiGroup := app.Group("/api")
	apiGroup.Get("/organization", org.GetOrganization)

	validate := middleware.NewValidationMiddleware()

	quizGroup := apiGroup.Group("/quiz")
	quizGroup.Post("/sessions", quiz.CreateSession)

	sessionGroup := quizGroup.Group("/sessions/:id", validate.ValidateSessionID())
	sessionGroup.Get("/", quiz.GetSession)
	sessionGroup.Delete("/", quiz.DeleteSession)
	sessionGroup.Post("/restart", quiz.RestartSession)
	sessionGroup.Get("/question", quiz.GetCurrentQuestion)
	sessionGroup.Post("/answers", quiz.SubmitAnswer)
	sessionGroup.Get("/report", quiz.GetReport)
}
