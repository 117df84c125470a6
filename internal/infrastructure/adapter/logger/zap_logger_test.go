package logger

import (
	"testing"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZapLoggerLevel(t *testing.T) {
	l, err := NewZapLogger(Options{Level: "warn", Component: "test"})
	require.NoError(t, err)

	assert.Equal(t, core.LogLevelWarn, l.GetLevel())

	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())

	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, core.ParseLogLevel("DEBUG"))
	assert.Equal(t, core.LogLevelWarn, core.ParseLogLevel("warning"))
	assert.Equal(t, core.LogLevelError, core.ParseLogLevel(" error "))
	assert.Equal(t, core.LogLevelInfo, core.ParseLogLevel("bogus"))
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelError)

	assert.Equal(t, core.LogLevelError, l.GetLevel())
	assert.NoError(t, l.Flush())
}
