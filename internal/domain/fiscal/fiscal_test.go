package fiscal_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/codicefiscale-api/internal/domain"
	"github.com/jhoicas/codicefiscale-api/internal/domain/entity"
	"github.com/jhoicas/codicefiscale-api/internal/domain/fiscal"
	"github.com/jhoicas/codicefiscale-api/pkg/codicefiscale"
)

// ──────────────────────────────────────────────────────────────────────────────
// fakeLookup catálogo en memoria para probar el núcleo sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type fakeLookup struct {
	cities  map[string]string
	nations map[string]string
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{
		cities: map[string]string{
			"ROMA":   "H501",
			"MILANO": "F205",
			"TORINO": "L219",
			"ROTTO":  "1234",
		},
		nations: map[string]string{
			"ITALIA":      entity.ItalyNationCode,
			"ALBANIA":     "Z100",
			"STATI UNITI": "Z404",
		},
	}
}

func (f *fakeLookup) LookupCityCode(name string) (string, error) {
	if c, ok := f.cities[strings.ToUpper(name)]; ok {
		return c, nil
	}
	return "", domain.ErrUnknownCity
}

func (f *fakeLookup) LookupNationCode(name string) (string, error) {
	if c, ok := f.nations[strings.ToUpper(name)]; ok {
		return c, nil
	}
	return "", domain.ErrUnknownNation
}

func (f *fakeLookup) IsItaly(nationName string) bool {
	return f.nations[strings.ToUpper(nationName)] == entity.ItalyNationCode
}

func newGenerator() *fiscal.CodeGenerator {
	return fiscal.NewCodeGenerator(fiscal.NewPlaceCodeResolver(newFakeLookup()))
}

func person(t *testing.T, name, surname string, sex codicefiscale.Sex, nation, city string, y int, m time.Month, d int) *entity.Person {
	t.Helper()
	birth, err := entity.NewBirthDate(y, m, d)
	require.NoError(t, err)
	p, err := entity.NewPerson(name, surname, sex, nation, city, birth)
	require.NoError(t, err)
	return p
}

// ── Resolver ──────────────────────────────────────────────────────────────────

func TestResolve_Italia(t *testing.T) {
	r := fiscal.NewPlaceCodeResolver(newFakeLookup())
	code, err := r.Resolve("italia", "Roma")
	require.NoError(t, err)
	assert.Equal(t, "H501", code)

	_, err = r.Resolve("Italia", "Atlantide")
	assert.ErrorIs(t, err, domain.ErrUnknownCity)
}

func TestResolve_Extranjero_IgnoraCiudad(t *testing.T) {
	r := fiscal.NewPlaceCodeResolver(newFakeLookup())
	code, err := r.Resolve("Stati Uniti", "Atlantide")
	require.NoError(t, err)
	assert.Equal(t, "Z404", code)

	_, err = r.Resolve("Narnia", "Roma")
	assert.ErrorIs(t, err, domain.ErrUnknownNation)
}

func TestResolve_CodigoDeCatalogoInvalido(t *testing.T) {
	r := fiscal.NewPlaceCodeResolver(newFakeLookup())
	_, err := r.Resolve("Italia", "Rotto")
	assert.ErrorIs(t, err, codicefiscale.ErrInvalidPlaceCode)

	_, err = r.Resolve(" ", "Roma")
	assert.ErrorIs(t, err, codicefiscale.ErrMalformedInput)
}

// ── Generator ─────────────────────────────────────────────────────────────────

func TestGenerate_Vectores(t *testing.T) {
	g := newGenerator()
	cases := []struct {
		p    *entity.Person
		want codicefiscale.Code
	}{
		{person(t, "Mario", "Rossi", codicefiscale.SexMale, "Italia", "Roma", 1980, time.January, 1), "RSSMRA80A01H501U"},
		{person(t, "Laura", "Bianchi", codicefiscale.SexFemale, "Italia", "Milano", 1990, time.May, 25), "BNCLRA90E65F205F"},
		{person(t, "Roberto", "Rossi", codicefiscale.SexMale, "Italia", "Roma", 1985, time.March, 15), "RSSRRT85C15H501P"},
		{person(t, "Roberto", "Rossi", codicefiscale.SexFemale, "Italia", "Roma", 1985, time.March, 15), "RSSRRT85C55H501T"},
		{person(t, "Nicolò", "D'Amico", codicefiscale.SexMale, "Stati Uniti", "New York", 2001, time.December, 9), "DMCNCL01T09Z404D"},
		{person(t, "Ai", "Fo", codicefiscale.SexFemale, "Italia", "Torino", 1975, time.July, 31), "FOXAIX75L71L219J"},
	}
	for _, tc := range cases {
		got, err := g.Generate(tc.p, 0)
		require.NoError(t, err, tc.want)
		assert.Equal(t, tc.want, got)
		assert.NoError(t, codicefiscale.Validate(got))
	}
}

func TestGenerate_Layout(t *testing.T) {
	g := newGenerator()
	got, err := g.Generate(person(t, "Mario", "Rossi", codicefiscale.SexMale, "Italia", "Roma", 1980, time.January, 1), 0)
	require.NoError(t, err)

	require.Len(t, got, codicefiscale.CodeLength)
	for i := 0; i < codicefiscale.CodeLength; i++ {
		c := got[i]
		assert.True(t, (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'), "posición %d", i+1)
	}
	last := got.Control()
	assert.True(t, last >= 'A' && last <= 'Z')
}

func TestGenerate_Omocodia(t *testing.T) {
	g := newGenerator()
	p := person(t, "Mario", "Rossi", codicefiscale.SexMale, "Italia", "Roma", 1980, time.January, 1)

	base, err := g.Generate(p, 0)
	require.NoError(t, err)
	one, err := g.Generate(p, 1)
	require.NoError(t, err)
	assert.Equal(t, codicefiscale.Code("RSSMRAU0A01H501R"), one)
	assert.NotEqual(t, base.Control(), one.Control())

	six, err := g.Generate(p, 6)
	require.NoError(t, err)
	assert.Equal(t, codicefiscale.Code("RSSMRAU0ALMHRLMS"), six)

	_, err = g.Generate(p, 7)
	assert.ErrorIs(t, err, codicefiscale.ErrDepthExceeded)

	_, err = g.Generate(p, -1)
	assert.ErrorIs(t, err, codicefiscale.ErrMalformedInput)
}

func TestGenerate_LugarDesconocido(t *testing.T) {
	g := newGenerator()

	_, err := g.Generate(person(t, "Mario", "Rossi", codicefiscale.SexMale, "Italia", "Atlantide", 1980, time.January, 1), 0)
	assert.ErrorIs(t, err, domain.ErrUnknownCity)

	_, err = g.Generate(person(t, "Mario", "Rossi", codicefiscale.SexMale, "Narnia", "Roma", 1980, time.January, 1), 0)
	assert.ErrorIs(t, err, domain.ErrUnknownNation)

	_, err = g.Generate(nil, 0)
	assert.ErrorIs(t, err, codicefiscale.ErrMalformedInput)
}
