package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triad/logging"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("trace")
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, logging.IsTerminal(&buf))

	l := logging.New(&buf, slog.LevelInfo)
	l.Debug("hidden")
	l.Info("run finished", "rounds", 42)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "run finished")
	assert.Contains(t, out, "rounds=42")
	assert.NotContains(t, out, "\x1b[", "no ANSI colour off a terminal")
}
