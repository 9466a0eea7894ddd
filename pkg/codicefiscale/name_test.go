package codicefiscale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/codicefiscale-api/pkg/codicefiscale"
)

func TestSurnameCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ROSSI", "RSS"},
		{"Bianchi", "BNC"},
		{"Fo", "FOX"},
		{"Re", "REX"},
		{"Au", "AUX"},
		{"De Luca", "DLC"},
		{"D'Amico", "DMC"},
		{"", "XXX"},
		{"  -' ", "XXX"},
		{"Oca", "COA"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, codicefiscale.SurnameCode(tc.in), "apellido %q", tc.in)
	}
}

func TestNameCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		// 4 consonantes R,B,R,T: se salta la 2ª
		{"ROBERTO", "RRT"},
		{"Mario", "MRA"},
		{"Laura", "LRA"},
		{"Gianfranco", "GFR"},
		{"Ai", "AIX"},
		{"Nicolò", "NCL"},
		{"Anna Maria", "NMR"},
		{"", "XXX"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, codicefiscale.NameCode(tc.in), "nombre %q", tc.in)
	}
}

// La Y se clasifica como vocal.
func TestExtractCode_YEsVocal(t *testing.T) {
	assert.Equal(t, "VSY", codicefiscale.ExtractCode("Yves", true))
	assert.Equal(t, "VSY", codicefiscale.ExtractCode("Yves", false))
}

// Con menos de 4 consonantes el nombre usa la misma regla que el apellido.
func TestExtractCode_NombreTresConsonantes(t *testing.T) {
	assert.Equal(t,
		codicefiscale.ExtractCode("Marco", true),
		codicefiscale.ExtractCode("Marco", false),
	)
	assert.NotEqual(t,
		codicefiscale.ExtractCode("Roberto", true),
		codicefiscale.ExtractCode("Roberto", false),
	)
}

func TestExtractCode_SiempreTresLetrasMayusculas(t *testing.T) {
	for _, in := range []string{"a", "àèìòù", "Ö", "x", "Lo Presti-Bellini", "123", "Ñuño"} {
		for _, isSurname := range []bool{true, false} {
			code := codicefiscale.ExtractCode(in, isSurname)
			assert.Len(t, code, 3, "entrada %q", in)
			for i := 0; i < len(code); i++ {
				assert.True(t, code[i] >= 'A' && code[i] <= 'Z', "entrada %q: %q", in, code)
			}
		}
	}
}
