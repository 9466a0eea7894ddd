package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/codicefiscale-api/internal/application/dto"
	"github.com/jhoicas/codicefiscale-api/internal/application/fiscalcode"
)

// FiscalCodeHandler maneja el cálculo y la verificación del código fiscal.
type FiscalCodeHandler struct {
	uc *fiscalcode.UseCase
}

// NewFiscalCodeHandler construye el handler.
func NewFiscalCodeHandler(uc *fiscalcode.UseCase) *FiscalCodeHandler {
	return &FiscalCodeHandler{uc: uc}
}

// Generate godoc
// @Summary      Calcular código fiscal
// @Tags         fiscal-codes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateFiscalCodeRequest  true  "name, surname, sex (M|F), birth_date (YYYY-MM-DD), birth_nation, birth_city, depth"
// @Success      200   {object}  dto.FiscalCodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/fiscal-codes [post]
func (h *FiscalCodeHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateFiscalCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resp, err := h.uc.Generate(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Validate godoc
// @Summary      Verificar código fiscal
// @Description  Comprueba estructura, letra del mes, día y carácter de control. Informa el código base si es omocódico.
// @Tags         fiscal-codes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateFiscalCodeRequest  true  "code"
// @Success      200   {object}  dto.ValidationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fiscal-codes/validate [post]
func (h *FiscalCodeHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateFiscalCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.Validate(c.UserContext(), in))
}

// Card godoc
// @Summary      Tarjeta PDF del código fiscal
// @Tags         fiscal-codes
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.GenerateFiscalCodeRequest  true  "mismos campos que el cálculo"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/fiscal-codes/card [post]
func (h *FiscalCodeHandler) Card(c *fiber.Ctx) error {
	var in dto.GenerateFiscalCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	pdf, filename, err := h.uc.Card(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
