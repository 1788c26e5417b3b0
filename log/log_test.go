package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalHandler(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(NewTerminalHandlerWithLevel(&buf, LevelDebug, false))
	lg.Info(RunMonitoring, "running benchmark", "lanes", 4, "iterations", 2048)

	out := buf.String()
	assert.Contains(t, out, "INFO ")
	assert.Contains(t, out, "running benchmark")
	assert.Contains(t, out, "module=run_mod")
	assert.Contains(t, out, "lanes=4")
	assert.Contains(t, out, "iterations=2048")
}

func TestHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(NewTerminalHandlerWithLevel(&buf, LevelWarn, false))

	lg.Info(RunMonitoring, "hidden")
	assert.Empty(t, buf.String())

	lg.Error(RunMonitoring, "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, lvl)

	lvl, err = ParseLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, lvl)

	_, err = ParseLevel("nope")
	assert.Error(t, err)
}
