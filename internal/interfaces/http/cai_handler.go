package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallerpro/taller-api/internal/application/dto"
	"github.com/tallerpro/taller-api/internal/application/facturacion"
)

// CAIHandler administración de autorizaciones CAI (protegido, solo admin).
type CAIHandler struct {
	uc *facturacion.CAIUseCase
}

// NewCAIHandler construye el handler.
func NewCAIHandler(uc *facturacion.CAIUseCase) *CAIHandler {
	return &CAIHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un CAI nuevo
// @Tags         cai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCAIRequest  true  "Datos de la autorización"
// @Success      201   {object}  dto.CAIResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cai [post]
func (h *CAIHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCAIRequest
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
// @Summary      Listar autorizaciones CAI
// @Tags         cai
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CAIResponse
// @Router       /api/cai [get]
func (h *CAIHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Anular administrativamente un CAI
// @Tags         cai
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del CAI"
// @Success      200  {object}  dto.CAIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cai/{id}/anular [post]
func (h *CAIHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
