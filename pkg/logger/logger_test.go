package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel_NivelExplicitoTienePrioridad(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace", "production"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn", "development"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warning", "development"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error", "development"))
}

func TestParseLevel_VacioDependeDelEntorno(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("", "development"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("", "production"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("", ""))
}

func TestNew_NivelPorDefectoSegunEnv(t *testing.T) {
	dev := New(Config{Env: "development", Service: "commerce-pro"})
	assert.Equal(t, zerolog.DebugLevel, dev.Zerolog().GetLevel())

	prod := New(Config{Env: "production", Service: "commerce-pro"})
	assert.Equal(t, zerolog.InfoLevel, prod.Zerolog().GetLevel())
}

func TestComponent_AgregaCampoFijo(t *testing.T) {
	l := New(Config{Env: "production", Service: "commerce-pro"})
	sub := l.Component("postgres")

	// El sublogger conserva el nivel del padre
	assert.Equal(t, l.Zerolog().GetLevel(), sub.Zerolog().GetLevel())
}
