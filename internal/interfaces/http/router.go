package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/codicefiscale-api/internal/application/fiscalcode"
	"github.com/jhoicas/codicefiscale-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName  string
	FiscalCodeUC *fiscalcode.UseCase
	PlaceUC      *usecase.PlaceUseCase
	Metrics      nethttp.Handler // nil = sin /metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	fiscalCodes := api.Group("/fiscal-codes")
	fiscalHandler := NewFiscalCodeHandler(deps.FiscalCodeUC)
	fiscalCodes.Post("/", fiscalHandler.Generate)
	fiscalCodes.Post("/validate", fiscalHandler.Validate)
	fiscalCodes.Post("/card", fiscalHandler.Card)

	places := api.Group("/places")
	placeHandler := NewPlaceHandler(deps.PlaceUC)
	places.Get("/cities", placeHandler.SearchCities)
	places.Get("/nations", placeHandler.SearchNations)
}
