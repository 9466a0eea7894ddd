package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/codicefiscale-api/internal/domain/entity"
	"github.com/jhoicas/codicefiscale-api/internal/domain/repository"
	"github.com/jhoicas/codicefiscale-api/pkg/codicefiscale"
)

var (
	_ repository.CityRepository   = (*MemoryCityRepo)(nil)
	_ repository.NationRepository = (*MemoryNationRepo)(nil)
)

// index mapa clave normalizada -> registro, más las claves ordenadas para búsquedas por prefijo.
// Solo lectura después de construido: seguro para lecturas concurrentes.
type index[T any] struct {
	byKey map[string]T
	keys  []string
}

func newIndex[T any](items []T, name func(T) string) index[T] {
	idx := index[T]{byKey: make(map[string]T, len(items))}
	for _, it := range items {
		key := codicefiscale.NormalizeKey(name(it))
		if key == "" {
			continue
		}
		// Nombres repetidos (ej. Castro, BG y LE): gana el primero del catálogo.
		if _, dup := idx.byKey[key]; dup {
			continue
		}
		idx.byKey[key] = it
		idx.keys = append(idx.keys, key)
	}
	sort.Strings(idx.keys)
	return idx
}

func (idx index[T]) search(prefixKey string, limit int) []T {
	start := sort.SearchStrings(idx.keys, prefixKey)
	var out []T
	for _, k := range idx.keys[start:] {
		if !strings.HasPrefix(k, prefixKey) || len(out) == limit {
			break
		}
		out = append(out, idx.byKey[k])
	}
	return out
}

// MemoryCityRepo catálogo de municipios en memoria (cargado desde JSON).
type MemoryCityRepo struct {
	idx index[*entity.City]
}

// NewMemoryCityRepository indexa los municipios por nombre normalizado.
func NewMemoryCityRepository(cities []*entity.City) *MemoryCityRepo {
	return &MemoryCityRepo{idx: newIndex(cities, func(c *entity.City) string { return c.Name })}
}

// FindByName busca por clave normalizada; nil, nil si no existe.
func (r *MemoryCityRepo) FindByName(_ context.Context, nameKey string) (*entity.City, error) {
	return r.idx.byKey[nameKey], nil
}

// Search devuelve hasta limit municipios cuya clave empieza por prefixKey.
func (r *MemoryCityRepo) Search(_ context.Context, prefixKey string, limit int) ([]*entity.City, error) {
	return r.idx.search(prefixKey, limit), nil
}

// Count número de municipios indexados.
func (r *MemoryCityRepo) Count(_ context.Context) (int, error) {
	return len(r.idx.byKey), nil
}

// MemoryNationRepo catálogo de naciones en memoria.
type MemoryNationRepo struct {
	idx index[*entity.Nation]
}

// NewMemoryNationRepository indexa las naciones por nombre normalizado.
func NewMemoryNationRepository(nations []*entity.Nation) *MemoryNationRepo {
	return &MemoryNationRepo{idx: newIndex(nations, func(n *entity.Nation) string { return n.Name })}
}

func (r *MemoryNationRepo) FindByName(_ context.Context, nameKey string) (*entity.Nation, error) {
	return r.idx.byKey[nameKey], nil
}

func (r *MemoryNationRepo) Search(_ context.Context, prefixKey string, limit int) ([]*entity.Nation, error) {
	return r.idx.search(prefixKey, limit), nil
}

func (r *MemoryNationRepo) Count(_ context.Context) (int, error) {
	return len(r.idx.byKey), nil
}
