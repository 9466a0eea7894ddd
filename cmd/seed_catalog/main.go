// seed_catalog carga los catálogos gi_comuni.json y gi_nazioni.json en PostgreSQL.
//
// Uso:
//
//	go run ./cmd/seed_catalog --cities gi_comuni.json --nations gi_nazioni.json --out seed_catalog.sql
//	go run ./cmd/seed_catalog --import        (usa DATABASE_URL / DB_*)
//
// Sin --import escribe un script SQL (esquema + INSERT ... ON CONFLICT) en --out, o en stdout con "-".
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/codicefiscale-api/internal/domain/entity"
	"github.com/jhoicas/codicefiscale-api/internal/infrastructure/catalog"
	"github.com/jhoicas/codicefiscale-api/internal/infrastructure/postgres"
	"github.com/jhoicas/codicefiscale-api/pkg/config"
	"github.com/jhoicas/codicefiscale-api/pkg/logger"
)

func main() {
	citiesPath := pflag.String("cities", "gi_comuni.json", "catálogo de municipios")
	nationsPath := pflag.String("nations", "gi_nazioni.json", "catálogo de naciones")
	outPath := pflag.String("out", "seed_catalog.sql", `script SQL de salida ("-" = stdout)`)
	doImport := pflag.Bool("import", false, "importar directamente en PostgreSQL en lugar de escribir SQL")
	latin1 := pflag.Bool("latin1", false, "los JSON están en ISO-8859-1")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed_catalog", Output: os.Stderr})

	cities, err := loadCities(*citiesPath, *latin1)
	if err != nil {
		log.Fatal().Err(err).Msg("leer municipios")
	}
	nations, err := loadNations(*nationsPath, *latin1)
	if err != nil {
		log.Fatal().Err(err).Msg("leer naciones")
	}
	log.Info().Int("cities", len(cities)).Int("nations", len(nations)).Msg("catálogos leídos")

	if *doImport {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		res, err := postgres.NewCatalogImporter(pool).Import(ctx, cities, nations)
		if err != nil {
			log.Fatal().Err(err).Msg("importar catálogo")
		}
		log.Info().Int64("cities", res.Cities).Int64("nations", res.Nations).Msg("catálogo importado")
		return
	}

	var out io.Writer = os.Stdout
	if *outPath != "-" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatal().Err(err).Msg("crear archivo")
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	if err := writeSeedSQL(w, cities, nations); err != nil {
		log.Fatal().Err(err).Msg("escribir SQL")
	}
	if err := w.Flush(); err != nil {
		log.Fatal().Err(err).Msg("escribir SQL")
	}
	log.Info().Str("out", *outPath).Msg("script generado")
}

func open(path string, latin1 bool) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !latin1 {
		return f, nil
	}
	return struct {
		io.Reader
		io.Closer
	}{transform.NewReader(f, charmap.ISO8859_1.NewDecoder()), f}, nil
}

func loadCities(path string, latin1 bool) ([]*entity.City, error) {
	r, err := open(path, latin1)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return catalog.LoadCities(r)
}

func loadNations(path string, latin1 bool) ([]*entity.Nation, error) {
	r, err := open(path, latin1)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return catalog.LoadNations(r)
}

// writeSeedSQL escribe el esquema y los INSERT idempotentes de ambos catálogos.
func writeSeedSQL(w io.Writer, cities []*entity.City, nations []*entity.Nation) error {
	schema, err := postgres.SchemaSQL()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "-- Municipios y naciones con código Belfiore")
	fmt.Fprintln(w, "-- Generado desde gi_comuni.json / gi_nazioni.json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, schema)

	fmt.Fprintln(w, "-- 1. Municipios")
	writeInserts(w, "cities", []string{"name", "name_key", "code", "province_initials", "istat_code"}, postgres.CityRows(cities))
	fmt.Fprintln(w, "-- 2. Naciones")
	writeInserts(w, "nations", []string{"name", "name_key", "code", "initials"}, postgres.NationRows(nations))
	return nil
}

func writeInserts(w io.Writer, table string, cols []string, rows [][]any) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(w, "INSERT INTO %s (%s) VALUES\n", table, strings.Join(cols, ", "))
	for i, row := range rows {
		vals := make([]string, len(row))
		for j, v := range row {
			vals[j] = "'" + escapeSQL(fmt.Sprint(v)) + "'"
		}
		sep := ","
		if i == len(rows)-1 {
			sep = ""
		}
		fmt.Fprintf(w, "  (%s)%s\n", strings.Join(vals, ", "), sep)
	}
	updates := make([]string, 0, len(cols))
	for _, c := range cols {
		if c != "name_key" {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
		}
	}
	fmt.Fprintf(w, "ON CONFLICT (name_key) DO UPDATE SET %s;\n\n", strings.Join(updates, ", "))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
