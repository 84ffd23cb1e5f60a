package handler

import (
	"quiz-engine/internal/service"

	"github.com/gofiber/fiber/v2"
)

// OrganizationHandler serves the site data document
type OrganizationHandler struct {
	service service.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler instance
func NewOrganizationHandler(service service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// GetOrganization godoc
// @Summary Get organization data
// @Description Company info, members, events with localized dates and the gallery
// @Tags organization
// @Produce json
// @Success 200 {object} dto.OrganizationResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /organization [get]
func (h *OrganizationHandler) GetOrganization(c *fiber.Ctx) error {
	resp, err := h.service.GetOrganization(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
