package catalog

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jhoicas/codicefiscale-api/internal/domain"
	"github.com/jhoicas/codicefiscale-api/internal/domain/entity"
	"github.com/jhoicas/codicefiscale-api/internal/domain/fiscal"
	"github.com/jhoicas/codicefiscale-api/internal/domain/repository"
	"github.com/jhoicas/codicefiscale-api/pkg/codicefiscale"
)

var _ fiscal.PlaceLookup = (*Lookup)(nil)

// DefaultCacheSize entradas por defecto de cada caché LRU.
const DefaultCacheSize = 4096

// Lookup implementa fiscal.PlaceLookup sobre los repositorios de catálogo,
// con caché LRU de aciertos por clave normalizada (los fallos no se guardan).
type Lookup struct {
	cities      repository.CityRepository
	nations     repository.NationRepository
	cityCache   *lru.Cache[string, string]
	nationCache *lru.Cache[string, *entity.Nation]
}

// NewLookup construye el adaptador. cacheSize <= 0 usa DefaultCacheSize.
func NewLookup(cities repository.CityRepository, nations repository.NationRepository, cacheSize int) (*Lookup, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cityCache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("catalog: caché de municipios: %w", err)
	}
	nationCache, err := lru.New[string, *entity.Nation](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("catalog: caché de naciones: %w", err)
	}
	return &Lookup{
		cities:      cities,
		nations:     nations,
		cityCache:   cityCache,
		nationCache: nationCache,
	}, nil
}

// LookupCityCode devuelve el codice Belfiore del municipio italiano.
func (l *Lookup) LookupCityCode(name string) (string, error) {
	key := codicefiscale.NormalizeKey(name)
	if key == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownCity, name)
	}
	if code, ok := l.cityCache.Get(key); ok {
		return code, nil
	}
	city, err := l.cities.FindByName(context.Background(), key)
	if err != nil {
		return "", fmt.Errorf("catalog: buscar municipio %q: %w", name, err)
	}
	if city == nil {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownCity, name)
	}
	l.cityCache.Add(key, city.Code)
	return city.Code, nil
}

// LookupNationCode devuelve el codice Belfiore de la nación.
func (l *Lookup) LookupNationCode(name string) (string, error) {
	nation, err := l.nation(name)
	if err != nil {
		return "", err
	}
	return nation.Code, nil
}

// IsItaly indica si la nación del catálogo es Italia. Un error de búsqueda cuenta como "no".
func (l *Lookup) IsItaly(nationName string) bool {
	nation, err := l.nation(nationName)
	if err != nil {
		return false
	}
	return nation.IsItaly()
}

func (l *Lookup) nation(name string) (*entity.Nation, error) {
	key := codicefiscale.NormalizeKey(name)
	if key == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownNation, name)
	}
	if n, ok := l.nationCache.Get(key); ok {
		return n, nil
	}
	n, err := l.nations.FindByName(context.Background(), key)
	if err != nil {
		return nil, fmt.Errorf("catalog: buscar nación %q: %w", name, err)
	}
	if n == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownNation, name)
	}
	l.nationCache.Add(key, n)
	return n, nil
}

// EnsureNotEmpty falla con domain.ErrCatalogEmpty si alguno de los catálogos está vacío.
func EnsureNotEmpty(ctx context.Context, cities repository.CityRepository, nations repository.NationRepository) error {
	nc, err := cities.Count(ctx)
	if err != nil {
		return fmt.Errorf("catalog: contar municipios: %w", err)
	}
	if nc <= 0 {
		return fmt.Errorf("%w: municipios", domain.ErrCatalogEmpty)
	}
	nn, err := nations.Count(ctx)
	if err != nil {
		return fmt.Errorf("catalog: contar naciones: %w", err)
	}
	if nn <= 0 {
		return fmt.Errorf("%w: naciones", domain.ErrCatalogEmpty)
	}
	return nil
}
