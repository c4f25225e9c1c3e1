package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/localesapp/locales-api/internal/application/dto"
)

// internalError registra el detalle del error en el log y responde 500 con un
// mensaje genérico: el detalle interno nunca viaja al cliente.
func internalError(c *fiber.Ctx, err error, msg string) error {
	log.Error().Err(err).Str("path", c.Path()).Msg(msg)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "Error interno del servidor.",
	})
}

// paramID parsea un parámetro de ruta numérico. Devuelve (0, false) si falta o no es número.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	raw := c.Params(name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
