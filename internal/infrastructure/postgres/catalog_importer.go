package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/codicefiscale-api/internal/domain"
	"github.com/jhoicas/codicefiscale-api/internal/domain/entity"
	"github.com/jhoicas/codicefiscale-api/pkg/codicefiscale"
)

// ImportResult filas copiadas por tabla.
type ImportResult struct {
	Cities  int64
	Nations int64
}

// CatalogImporter reemplaza el contenido de cities y nations en una sola transacción.
type CatalogImporter struct {
	pool *pgxpool.Pool
}

// NewCatalogImporter construye el importador con el pool.
func NewCatalogImporter(pool *pgxpool.Pool) *CatalogImporter {
	return &CatalogImporter{pool: pool}
}

// Import aplica el esquema, vacía las tablas y copia los catálogos con COPY.
// Con nombres repetidos se conserva el primero, igual que el catálogo en memoria.
func (i *CatalogImporter) Import(ctx context.Context, cities []*entity.City, nations []*entity.Nation) (ImportResult, error) {
	var res ImportResult
	tx, err := i.pool.Begin(ctx)
	if err != nil {
		return res, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := Migrate(ctx, tx); err != nil {
		return res, err
	}
	if _, err := tx.Exec(ctx, `TRUNCATE cities, nations RESTART IDENTITY`); err != nil {
		return res, fmt.Errorf("truncate catálogo: %w", err)
	}

	res.Cities, err = tx.CopyFrom(ctx,
		pgx.Identifier{"cities"},
		[]string{"name", "name_key", "code", "province_initials", "istat_code"},
		pgx.CopyFromRows(CityRows(cities)),
	)
	if err != nil {
		return res, copyError("cities", err)
	}

	res.Nations, err = tx.CopyFrom(ctx,
		pgx.Identifier{"nations"},
		[]string{"name", "name_key", "code", "initials"},
		pgx.CopyFromRows(NationRows(nations)),
	)
	if err != nil {
		return res, copyError("nations", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return res, fmt.Errorf("commit transaction: %w", err)
	}
	return res, nil
}

func copyError(table string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: clave repetida en %s", domain.ErrInvalidInput, table)
	}
	return fmt.Errorf("copy %s: %w", table, err)
}

// CityRows filas (name, name_key, code, province_initials, istat_code) sin claves repetidas.
func CityRows(cities []*entity.City) [][]any {
	seen := make(map[string]struct{}, len(cities))
	rows := make([][]any, 0, len(cities))
	for _, c := range cities {
		key := codicefiscale.NormalizeKey(c.Name)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, []any{c.Name, key, c.Code, c.ProvinceInitials, c.IstatCode})
	}
	return rows
}

// NationRows filas (name, name_key, code, initials) sin claves repetidas.
func NationRows(nations []*entity.Nation) [][]any {
	seen := make(map[string]struct{}, len(nations))
	rows := make([][]any, 0, len(nations))
	for _, n := range nations {
		key := codicefiscale.NormalizeKey(n.Name)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, []any{n.Name, key, n.Code, n.Initials})
	}
	return rows
}
