package handler

import (
	"quiz-engine/internal/domain"
	"quiz-engine/internal/dto"
	"quiz-engine/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthHandler reports liveness and cache reachability
type HealthHandler struct {
	cache domain.Cache
}

func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if err := h.cache.Ping(c.UserContext()); err != nil {
		logger.Get().Warn("Cache ping failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "degraded", Cache: "unreachable"})
	}
	return c.JSON(dto.HealthResponse{Status: "ok", Cache: "ok"})
}
