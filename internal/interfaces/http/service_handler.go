package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallerpro/taller-api/internal/application/dto"
	"github.com/tallerpro/taller-api/internal/application/usecase"
)

// ServiceHandler catálogo de mano de obra (protegido).
type ServiceHandler struct {
	uc *usecase.ServiceItemUseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceItemUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear servicio del catálogo
// @Tags         servicios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceItemRequest  true  "Datos del servicio"
// @Success      201   {object}  dto.ServiceItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/servicios [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar servicios del catálogo
// @Tags         servicios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ServiceItemResponse
// @Router       /api/servicios [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
