package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallerpro/taller-api/internal/application/dto"
	"github.com/tallerpro/taller-api/internal/application/inventory"
)

// InventoryHandler consulta del kardex (protegido).
type InventoryHandler struct {
	uc *inventory.KardexUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.KardexUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos de inventario (kardex)
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        producto_id   query  string  false  "Filtrar por producto"
// @Param        documento_id  query  string  false  "Filtrar por documento"
// @Param        limit         query  int     false  "Tamaño de página"
// @Param        offset        query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/inventario/movimientos [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), c.Query("producto_id"), c.Query("documento_id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
