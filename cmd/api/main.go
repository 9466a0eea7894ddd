package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/codicefiscale-api/internal/application/fiscalcode"
	"github.com/jhoicas/codicefiscale-api/internal/application/usecase"
	"github.com/jhoicas/codicefiscale-api/internal/domain/fiscal"
	"github.com/jhoicas/codicefiscale-api/internal/domain/repository"
	"github.com/jhoicas/codicefiscale-api/internal/infrastructure/catalog"
	"github.com/jhoicas/codicefiscale-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/codicefiscale-api/internal/infrastructure/pdf"
	"github.com/jhoicas/codicefiscale-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/codicefiscale-api/internal/interfaces/http"
	"github.com/jhoicas/codicefiscale-api/pkg/config"
	"github.com/jhoicas/codicefiscale-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("catalog_source", cfg.Catalog.Source).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Catálogo: JSON en memoria o PostgreSQL.
	var (
		cityRepo   repository.CityRepository
		nationRepo repository.NationRepository
	)
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		cityRepo = postgres.NewCityRepository(pool)
		nationRepo = postgres.NewNationRepository(pool)
	default:
		cities, nations, err := catalog.LoadFiles(cfg.Catalog.CitiesPath, cfg.Catalog.NationsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("cargar catálogo JSON")
		}
		cityRepo = catalog.NewMemoryCityRepository(cities)
		nationRepo = catalog.NewMemoryNationRepository(nations)
	}
	if err := catalog.EnsureNotEmpty(ctx, cityRepo, nationRepo); err != nil {
		log.Fatal().Err(err).Msg("catálogo no disponible; ejecutar seed_catalog")
	}

	lookup, err := catalog.NewLookup(cityRepo, nationRepo, cfg.Catalog.CacheSize)
	if err != nil {
		log.Fatal().Err(err).Msg("crear caché de catálogo")
	}

	m := metrics.New()
	generator := fiscal.NewCodeGenerator(fiscal.NewPlaceCodeResolver(lookup))
	fiscalUC := fiscalcode.NewUseCase(generator, log,
		fiscalcode.WithMetrics(m),
		fiscalcode.WithRenderer(infrapdf.NewCardGenerator()),
	)
	placeUC := usecase.NewPlaceUseCase(cityRepo, nationRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Codice Fiscale API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName:  cfg.App.Name,
		FiscalCodeUC: fiscalUC,
		PlaceUC:      placeUC,
		Metrics:      m.Handler(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
