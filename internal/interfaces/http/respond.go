package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tallerpro/taller-api/internal/application/dto"
	"github.com/tallerpro/taller-api/internal/domain"
)

// respondError es el único punto donde un error de dominio se convierte en
// status HTTP: Validation→400, NotFound→404, Conflict→400, resto→500. Los
// conflictos de estado (rango agotado, documento ya anulado, cotización ya
// facturada) responden 400: la petición es rechazable tal como vino. El
// cliente recibe el código cerrado y el mensaje del error; el detalle de un
// fallo interno solo va al log.
func respondError(c *fiber.Ctx, err error) error {
	var domErr *domain.Error
	if errors.As(err, &domErr) {
		status := fiber.StatusInternalServerError
		switch domErr.Kind {
		case domain.KindValidation, domain.KindConflict:
			status = fiber.StatusBadRequest
		case domain.KindNotFound:
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: domErr.Code, Message: domErr.Message})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
