//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/jhoicas/codicefiscale-api/internal/domain"
	"github.com/jhoicas/codicefiscale-api/internal/domain/entity"
	"github.com/jhoicas/codicefiscale-api/internal/infrastructure/catalog"
	"github.com/jhoicas/codicefiscale-api/internal/infrastructure/postgres"
	"github.com/jhoicas/codicefiscale-api/pkg/config"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("codicefiscale"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestCatalogRoundTrip(t *testing.T) {
	pool := startPostgres(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cities := []*entity.City{
		{Name: "Roma", Code: "H501", ProvinceInitials: "RM", IstatCode: "058091"},
		{Name: "Reggio nell'Emilia", Code: "H223", ProvinceInitials: "RE", IstatCode: "035033"},
		{Name: "Castro", Code: "C337", ProvinceInitials: "BG"},
		{Name: "Castro", Code: "M261", ProvinceInitials: "LE"},
	}
	nations := []*entity.Nation{
		{Name: "Italia", Code: entity.ItalyNationCode, Initials: "IT"},
		{Name: "Stati Uniti", Code: "Z404", Initials: "US"},
	}

	res, err := postgres.NewCatalogImporter(pool).Import(ctx, cities, nations)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Cities)
	assert.Equal(t, int64(2), res.Nations)

	cityRepo := postgres.NewCityRepository(pool)
	nationRepo := postgres.NewNationRepository(pool)
	require.NoError(t, catalog.EnsureNotEmpty(ctx, cityRepo, nationRepo))

	c, err := cityRepo.FindByName(ctx, "REGGIO NELL EMILIA")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "H223", c.Code)

	c, err = cityRepo.FindByName(ctx, "CASTRO")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "C337", c.Code)

	c, err = cityRepo.FindByName(ctx, "ATLANTIDE")
	require.NoError(t, err)
	assert.Nil(t, c)

	found, err := cityRepo.Search(ctx, "R", 5)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Reggio nell'Emilia", found[0].Name)

	ns, err := nationRepo.Search(ctx, "ITA", 5)
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.True(t, ns[0].IsItaly())

	// Reimportar reemplaza el contenido.
	res, err = postgres.NewCatalogImporter(pool).Import(ctx, cities[:1], nations[:1])
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Cities)
	n, err := cityRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	lookup, err := catalog.NewLookup(cityRepo, nationRepo, 8)
	require.NoError(t, err)
	code, err := lookup.LookupCityCode("Roma")
	require.NoError(t, err)
	assert.Equal(t, "H501", code)
	_, err = lookup.LookupNationCode("Stati Uniti")
	assert.ErrorIs(t, err, domain.ErrUnknownNation)
}
