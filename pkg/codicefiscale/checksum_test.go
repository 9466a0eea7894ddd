package codicefiscale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/codicefiscale-api/pkg/codicefiscale"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vectores de referencia calculados a mano con las tablas impar/par oficiales.
// RSSMRA80A01H501: impares R,S,R,8,A,1,5,1 = 61; pares S,M,A,0,0,H,0 = 37;
// 98 mod 26 = 20 -> U.
// ──────────────────────────────────────────────────────────────────────────────

func TestControlChar_Vectores(t *testing.T) {
	cases := map[string]byte{
		"RSSMRA80A01H501": 'U',
		"BNCLRA90E65F205": 'F',
		"RSSRRT85C15H501": 'P',
		"RSSRRT85C55H501": 'T',
		"DMCNCL01T09Z404": 'D',
		"FOXAIX75L71L219": 'J',
		"RSSMRAU0A01H501": 'R',
	}
	for code15, want := range cases {
		got, err := codicefiscale.ControlChar(code15)
		require.NoError(t, err, code15)
		assert.Equal(t, string(want), string(got), code15)
	}
}

func TestControlChar_Determinista(t *testing.T) {
	a, err1 := codicefiscale.ControlChar("RSSMRA80A01H501")
	b, err2 := codicefiscale.ControlChar("RSSMRA80A01H501")
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, a, b)
}

// Cambiar una letra en cualquier posición cambia el control para las 25 letras restantes:
// cada tabla es inyectiva sobre A-Z.
func TestControlChar_SensibleACadaPosicion(t *testing.T) {
	const base = "RSSMRA80A01H501"
	orig, err := codicefiscale.ControlChar(base)
	require.NoError(t, err)

	for i := 0; i < len(base); i++ {
		changed := 0
		for c := byte('A'); c <= 'Z'; c++ {
			if c == base[i] {
				continue
			}
			mutated := base[:i] + string(c) + base[i+1:]
			got, err := codicefiscale.ControlChar(mutated)
			require.NoError(t, err)
			if got != orig {
				changed++
			}
		}
		assert.GreaterOrEqual(t, changed, 25, "posición %d", i+1)
	}
}

func TestControlChar_Errores(t *testing.T) {
	_, err := codicefiscale.ControlChar("RSSMRA80A01H50")
	assert.ErrorIs(t, err, codicefiscale.ErrInvalidLength)

	_, err = codicefiscale.ControlChar("RSSMRA80A01H501U")
	assert.ErrorIs(t, err, codicefiscale.ErrInvalidLength)

	_, err = codicefiscale.ControlChar("rssmra80a01h501")
	assert.ErrorIs(t, err, codicefiscale.ErrInvalidCharacter)

	_, err = codicefiscale.ControlChar("RSSMRA80A01H5-1")
	assert.ErrorIs(t, err, codicefiscale.ErrInvalidCharacter)
}

func TestControlChar_SiempreLetra(t *testing.T) {
	for _, code15 := range []string{"000000000000000", "ZZZZZZZZZZZZZZZ", "999999999999999", "AAAAAAAAAAAAAAA"} {
		got, err := codicefiscale.ControlChar(code15)
		require.NoError(t, err)
		assert.True(t, got >= 'A' && got <= 'Z', code15)
	}
}
