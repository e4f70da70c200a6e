package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("KERJABANTU", "DEBUG").WithOutput(&buf)

	l.Info("job-usecase", "job posted", "Submit", "job-009")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "job posted", entry["msg"])
	assert.Equal(t, "KERJABANTU", entry["service"])
	assert.Equal(t, "job-usecase", entry["context"])
	assert.Equal(t, "Submit", entry["scope"])
	assert.Equal(t, "job-009", entry["meta"])
}

func TestErrorLevelSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("KERJABANTU", "ERROR").WithOutput(&buf)

	l.Info("ctx", "hidden", "scope", "")
	assert.Zero(t, buf.Len())

	l.Error("ctx", "shown", "scope", "")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitLoggerFromViper(t *testing.T) {
	v := viper.New()
	v.Set("app.name", "KERJABANTU")
	v.Set("log.level", "DEBUG")

	InitLogger(v)

	got := GetLogger()
	assert.Equal(t, "KERJABANTU", got.AppName)
	assert.Equal(t, 1, got.LogLevel)
	assert.NotNil(t, got.Logger)
}

func TestZeroValueLoggerDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		var l Log
		l.Info("ctx", "message", "scope", "")
	})
}

func TestWarnLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("KERJABANTU", "warn").WithOutput(&buf)

	l.Info("ctx", "hidden", "scope", "")
	assert.Zero(t, buf.Len())

	l.Warn("session-manager", "save failed", "Save", "session-1")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "session-1", entry["meta"])
}

func TestUnknownLevelLogsEverything(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("KERJABANTU", "VERBOSE").WithOutput(&buf)

	l.Slow("middleware", "GET /api/v1/jobs took 1.2s", "NewLogger", "")
	assert.Contains(t, buf.String(), "[SLOW] GET /api/v1/jobs")
}
