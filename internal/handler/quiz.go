package handler

import (
	"quiz-engine/internal/dto"
	"quiz-engine/internal/middleware"
	"quiz-engine/internal/service"
	"quiz-engine/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-session HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

func sessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.SessionIDLocal).(string); ok {
		return id
	}
	return c.Params("id")
}

// CreateSession godoc
// @Summary Start a new quiz
// @Description Loads the question set, draws a shuffled pool and starts a session
// @Tags quiz
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /quiz/sessions [post]
func (h *QuizHandler) CreateSession(c *fiber.Ctx) error {
	resp, err := h.service.CreateSession(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetSession godoc
// @Summary Get quiz session state
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{id} [get]
func (h *QuizHandler) GetSession(c *fiber.Ctx) error {
	resp, err := h.service.GetSession(sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RestartSession godoc
// @Summary Restart a quiz
// @Description Discards the current attempt and starts a fresh one with a new pool
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{id}/restart [post]
func (h *QuizHandler) RestartSession(c *fiber.Ctx) error {
	resp, err := h.service.RestartSession(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetCurrentQuestion godoc
// @Summary Get the current question
// @Description Returns the question under the cursor with its shuffled options
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{id}/question [get]
func (h *QuizHandler) GetCurrentQuestion(c *fiber.Ctx) error {
	resp, err := h.service.GetCurrentQuestion(sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAnswer godoc
// @Summary Answer the current question
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SubmitAnswerRequest true "Chosen option"
// @Success 200 {object} dto.AnsweredItemResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{id}/answers [post]
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateSubmitAnswerRequest(req.OptionIndex); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SubmitAnswer(sessionID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetReport godoc
// @Summary Get the final report
// @Description Score, maximum score and every answer in answering order
// @Tags quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.ReportResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{id}/report [get]
func (h *QuizHandler) GetReport(c *fiber.Ctx) error {
	resp, err := h.service.GetReport(sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteSession godoc
// @Summary End a quiz session
// @Tags quiz
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/sessions/{id} [delete]
func (h *QuizHandler) DeleteSession(c *fiber.Ctx) error {
	if err := h.service.DeleteSession(sessionID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
