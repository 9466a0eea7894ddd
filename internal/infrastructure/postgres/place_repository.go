package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/codicefiscale-api/internal/domain/entity"
	"github.com/jhoicas/codicefiscale-api/internal/domain/repository"
)

var (
	_ repository.CityRepository   = (*CityRepo)(nil)
	_ repository.NationRepository = (*NationRepo)(nil)
)

// CityRepo implementación del puerto CityRepository sobre PostgreSQL (usable con pool o tx).
type CityRepo struct {
	q Querier
}

// NewCityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCityRepository(q Querier) *CityRepo {
	return &CityRepo{q: q}
}

// FindByName obtiene un municipio por clave normalizada. nil, nil si no existe.
func (r *CityRepo) FindByName(ctx context.Context, nameKey string) (*entity.City, error) {
	query := `
		SELECT id, name, code, province_initials, istat_code
		FROM cities WHERE name_key = $1`
	var c entity.City
	err := r.q.QueryRow(ctx, query, nameKey).Scan(&c.ID, &c.Name, &c.Code, &c.ProvinceInitials, &c.IstatCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get city: %w", err)
	}
	return &c, nil
}

// Search lista municipios cuya clave empieza por prefixKey, en orden alfabético.
func (r *CityRepo) Search(ctx context.Context, prefixKey string, limit int) ([]*entity.City, error) {
	query := `
		SELECT id, name, code, province_initials, istat_code
		FROM cities WHERE name_key LIKE $1 ORDER BY name_key LIMIT $2`
	rows, err := r.q.Query(ctx, query, likePrefix(prefixKey), limit)
	if err != nil {
		return nil, fmt.Errorf("search cities: %w", err)
	}
	defer rows.Close()
	var list []*entity.City
	for rows.Next() {
		var c entity.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.ProvinceInitials, &c.IstatCode); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count número de municipios en la tabla.
func (r *CityRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM cities`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cities: %w", err)
	}
	return n, nil
}

// NationRepo implementación del puerto NationRepository sobre PostgreSQL.
type NationRepo struct {
	q Querier
}

// NewNationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNationRepository(q Querier) *NationRepo {
	return &NationRepo{q: q}
}

// FindByName obtiene una nación por clave normalizada. nil, nil si no existe.
func (r *NationRepo) FindByName(ctx context.Context, nameKey string) (*entity.Nation, error) {
	query := `SELECT id, name, code, initials FROM nations WHERE name_key = $1`
	var n entity.Nation
	err := r.q.QueryRow(ctx, query, nameKey).Scan(&n.ID, &n.Name, &n.Code, &n.Initials)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nation: %w", err)
	}
	return &n, nil
}

func (r *NationRepo) Search(ctx context.Context, prefixKey string, limit int) ([]*entity.Nation, error) {
	query := `
		SELECT id, name, code, initials
		FROM nations WHERE name_key LIKE $1 ORDER BY name_key LIMIT $2`
	rows, err := r.q.Query(ctx, query, likePrefix(prefixKey), limit)
	if err != nil {
		return nil, fmt.Errorf("search nations: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Nation, error) {
		var n entity.Nation
		err := row.Scan(&n.ID, &n.Name, &n.Code, &n.Initials)
		return &n, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan nation: %w", err)
	}
	return list, nil
}

func (r *NationRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM nations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count nations: %w", err)
	}
	return n, nil
}
