package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" DEBUG ": zerolog.DebugLevel,
		"Warn":    zerolog.WarnLevel,
		"error\n": zerolog.ErrorLevel,
		"info":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"verboso": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "%q", in)
	}
}

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	t.Cleanup(func() { Nop() })
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Output: &buf})

	l.Info().Msg("descartado")
	assert.Zero(t, buf.Len(), "info queda bajo el nivel warn")

	l.Warn().Str("clave", "cart").Msg("estado corrupto")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "cart", entry["clave"])
	assert.Equal(t, "estado corrupto", entry["message"])
	assert.Contains(t, entry, "time")

	buf.Reset()
	log.Warn().Msg("global")
	assert.Contains(t, buf.String(), `"message":"global"`)
}

func TestNew_DesarrolloEscribeConsola(t *testing.T) {
	t.Cleanup(func() { Nop() })
	var buf bytes.Buffer
	l := New(Config{Env: "development", Output: &buf})

	l.Info().Msg("arrancando")
	out := buf.String()
	assert.Contains(t, out, "arrancando")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())), out)
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.Equal(t, zerolog.Disabled, l.Zerolog().GetLevel())
}
