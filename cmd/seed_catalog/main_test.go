package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/codicefiscale-api/internal/domain/entity"
)

func TestWriteSeedSQL(t *testing.T) {
	var buf bytes.Buffer
	err := writeSeedSQL(&buf,
		[]*entity.City{
			{Name: "Reggio nell'Emilia", Code: "H223", ProvinceInitials: "RE", IstatCode: "035033"},
			{Name: "Roma", Code: "H501", ProvinceInitials: "RM", IstatCode: "058091"},
		},
		[]*entity.Nation{{Name: "Italia", Code: entity.ItalyNationCode, Initials: "IT"}},
	)
	require.NoError(t, err)
	sql := buf.String()

	assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS cities")
	assert.Contains(t, sql, "INSERT INTO cities (name, name_key, code, province_initials, istat_code) VALUES")
	assert.Contains(t, sql, "('Reggio nell''Emilia', 'REGGIO NELL EMILIA', 'H223', 'RE', '035033'),")
	assert.Contains(t, sql, "('Roma', 'ROMA', 'H501', 'RM', '058091')\nON CONFLICT (name_key)")
	assert.Contains(t, sql, "('Italia', 'ITALIA', '0000', 'IT')")
	assert.Contains(t, sql, "SET name = EXCLUDED.name, code = EXCLUDED.code, initials = EXCLUDED.initials;")
}

func TestLoadCities_Latin1(t *testing.T) {
	src := `[{"sigla_provincia":"FC","codice_istat":"040012","denominazione_ita":"Forlì","codice_belfiore":"D704"}]`
	encoded, err := charmap.ISO8859_1.NewEncoder().String(src)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "gi_comuni.json")
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0o600))

	cities, err := loadCities(path, true)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Forlì", cities[0].Name)
}
