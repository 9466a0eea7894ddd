package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/codicefiscale-api/internal/application/dto"
	"github.com/jhoicas/codicefiscale-api/internal/application/usecase"
)

// PlaceHandler búsquedas en el catálogo de lugares de nacimiento.
type PlaceHandler struct {
	uc *usecase.PlaceUseCase
}

// NewPlaceHandler construye el handler.
func NewPlaceHandler(uc *usecase.PlaceUseCase) *PlaceHandler {
	return &PlaceHandler{uc: uc}
}

// SearchCities godoc
// @Summary      Buscar municipios italianos por prefijo
// @Tags         places
// @Produce      json
// @Param        q      query  string  true   "prefijo del nombre"
// @Param        limit  query  int     false  "máximo de resultados (5 por defecto, 50 como tope)"
// @Success      200    {object}  dto.CityListResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/places/cities [get]
func (h *PlaceHandler) SearchCities(c *fiber.Ctx) error {
	var in dto.SearchRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	resp, err := h.uc.SearchCities(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// SearchNations godoc
// @Summary      Buscar naciones por prefijo
// @Tags         places
// @Produce      json
// @Param        q      query  string  true   "prefijo del nombre"
// @Param        limit  query  int     false  "máximo de resultados (5 por defecto, 50 como tope)"
// @Success      200    {object}  dto.NationListResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/places/nations [get]
func (h *PlaceHandler) SearchNations(c *fiber.Ctx) error {
	var in dto.SearchRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	resp, err := h.uc.SearchNations(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}
