package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/codicefiscale-api/internal/application/dto"
	"github.com/jhoicas/codicefiscale-api/internal/domain"
	"github.com/jhoicas/codicefiscale-api/pkg/codicefiscale"
)

// writeError traduce los errores de dominio a status + ErrorResponse.
// El orden importa: un error combinado con fecha y campos vacíos se reporta como VALIDATION.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, codicefiscale.ErrMalformedInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, codicefiscale.ErrInvalidDate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownCity):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_CITY", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownNation):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_NATION", Message: err.Error()})
	case errors.Is(err, codicefiscale.ErrDepthExceeded):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "DEPTH_EXCEEDED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
