package cmd_test

import (
	"bytes"
	"testing"

	"floristsim/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_NewLogger(t *testing.T) {
	t.Run("should default to text at info level", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := cmd.Config{}.NewLogger(&buf)
		require.NoError(t, err)
		logger.Debug("hidden")
		logger.Info("shown", "florist", "Fred")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
		assert.Contains(t, buf.String(), "florist=Fred")
	})

	t.Run("should honour json format and debug level", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := cmd.Config{LogLevel: "DEBUG", LogFormat: "JSON"}.NewLogger(&buf)
		require.NoError(t, err)
		logger.Debug("narration", "line", "Gardener Garett prepares flowers.")

		assert.Contains(t, buf.String(), `"msg":"narration"`)
		assert.Contains(t, buf.String(), `"line":"Gardener Garett prepares flowers."`)
	})

	t.Run("should filter below warn", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := cmd.Config{LogLevel: "warn"}.NewLogger(&buf)
		require.NoError(t, err)
		logger.Info("dropped")
		logger.Warn("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("should reject unknown level", func(t *testing.T) {
		_, err := cmd.Config{LogLevel: "verbose"}.NewLogger(&bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_LEVEL")
	})

	t.Run("should reject unknown format", func(t *testing.T) {
		_, err := cmd.Config{LogFormat: "xml"}.NewLogger(&bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_FORMAT")
	})
}
