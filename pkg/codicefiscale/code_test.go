package codicefiscale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/codicefiscale-api/pkg/codicefiscale"
)

func TestCompose(t *testing.T) {
	code, err := codicefiscale.Compose("RSS", "MRA", "80A01", "H501")
	require.NoError(t, err)
	assert.Equal(t, codicefiscale.Code("RSSMRA80A01H501U"), code)
	assert.Equal(t, "RSS", code.Surname())
	assert.Equal(t, "MRA", code.Name())
	assert.Equal(t, "80", code.BirthYear())
	assert.Equal(t, "A", code.BirthMonth())
	assert.Equal(t, "01", code.BirthDay())
	assert.Equal(t, "H501", code.Place())
	assert.Equal(t, byte('U'), code.Control())
}

func TestCompose_Errores(t *testing.T) {
	_, err := codicefiscale.Compose("RS", "MRA", "80A01", "H501")
	assert.ErrorIs(t, err, codicefiscale.ErrMalformedInput)

	_, err = codicefiscale.Compose("RSS", "MRA", "80A01", "1501")
	assert.ErrorIs(t, err, codicefiscale.ErrInvalidPlaceCode)
}

func TestValidPlaceCode(t *testing.T) {
	assert.True(t, codicefiscale.ValidPlaceCode("H501"))
	assert.True(t, codicefiscale.ValidPlaceCode("Z404"))
	assert.False(t, codicefiscale.ValidPlaceCode("0000"))
	assert.False(t, codicefiscale.ValidPlaceCode("H50"))
	assert.False(t, codicefiscale.ValidPlaceCode("h501"))
	assert.False(t, codicefiscale.ValidPlaceCode("H5-1"))
	assert.False(t, codicefiscale.ValidPlaceCode(""))
}

func TestValidate_CodigosValidos(t *testing.T) {
	for _, c := range homocodeVectors {
		assert.NoError(t, codicefiscale.Validate(c), c)
	}
	for _, c := range []codicefiscale.Code{"BNCLRA90E65F205F", "FOXAIX75L71L219J", "DMCNCL01T09Z404D"} {
		assert.NoError(t, codicefiscale.Validate(c), c)
	}
}

func TestValidate_Errores(t *testing.T) {
	cases := map[string]codicefiscale.Code{
		"control incorrecto": "RSSMRA80A01H501A",
		"longitud":           "RSSMRA80A01H501",
		"mes inexistente":    "RSSMRA80Z01H501U",
		"letra en dígito":    "RSSMRA8AA01H501U",
		"dígito en apellido": "R5SMRA80A01H501U",
		"día cero":           "RSSMRA80A00H501U",
	}
	for name, c := range cases {
		assert.ErrorIs(t, codicefiscale.Validate(c), codicefiscale.ErrInvalidCode, name)
	}
}

func TestParse(t *testing.T) {
	c, err := codicefiscale.Parse("  rssmra80a01h501u ")
	require.NoError(t, err)
	assert.Equal(t, codicefiscale.Code("RSSMRA80A01H501U"), c)

	_, err = codicefiscale.Parse("RSSMRA80A01H501X")
	assert.ErrorIs(t, err, codicefiscale.ErrInvalidCode)
}

func TestBaseCode_RevierteOmocodia(t *testing.T) {
	for _, c := range homocodeVectors {
		base, err := codicefiscale.BaseCode(c)
		require.NoError(t, err)
		assert.Equal(t, homocodeVectors[0], base, c)
	}
	assert.False(t, codicefiscale.IsHomocode(homocodeVectors[0]))
	assert.True(t, codicefiscale.IsHomocode(homocodeVectors[1]))
}

func TestWithControl(t *testing.T) {
	c, err := codicefiscale.Code("RSSMRA80A01H501").WithControl()
	require.NoError(t, err)
	assert.Equal(t, codicefiscale.Code("RSSMRA80A01H501U"), c)

	c, err = codicefiscale.Code("RSSMRA80A01H501Q").WithControl()
	require.NoError(t, err)
	assert.Equal(t, codicefiscale.Code("RSSMRA80A01H501U"), c)

	_, err = codicefiscale.Code("RSS").WithControl()
	assert.ErrorIs(t, err, codicefiscale.ErrInvalidLength)
}
