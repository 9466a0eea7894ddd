package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/codicefiscale-api/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("ruidoso"))
}

func TestNew_JSONWithServiceAndComponent(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "codicefiscale-api", Output: &buf})

	l.Debug().Msg("oculto")
	l.Component("fiscal").Info().Str("code", "RSSMRA80A01H501U").Msg("generado")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	assert.Equal(t, "codicefiscale-api", line["service"])
	assert.Equal(t, "fiscal", line["component"])
	assert.Equal(t, "generado", line["message"])
	assert.Equal(t, "RSSMRA80A01H501U", line["code"])
}
