package repository

//go:generate mockgen -source=place_repository.go -destination=mocks/place_repository_mock.go -package=mocks

import (
	"context"

	"github.com/jhoicas/codicefiscale-api/internal/domain/entity"
)

// CityRepository define el puerto de lectura del catálogo de municipios italianos.
// FindByName recibe la clave normalizada (codicefiscale.NormalizeKey) y devuelve
// nil, nil si no hay coincidencia.
type CityRepository interface {
	FindByName(ctx context.Context, nameKey string) (*entity.City, error)
	Search(ctx context.Context, prefixKey string, limit int) ([]*entity.City, error)
	Count(ctx context.Context) (int, error)
}

// NationRepository define el puerto de lectura del catálogo de naciones.
type NationRepository interface {
	FindByName(ctx context.Context, nameKey string) (*entity.Nation, error)
	Search(ctx context.Context, prefixKey string, limit int) ([]*entity.Nation, error)
	Count(ctx context.Context) (int, error)
}
