package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Config carries the environment-driven settings of the process. The order
// scenario itself is fixed and not part of the configuration.
type Config struct {
	LogLevel  string
	LogFormat string
}

// NewLogger builds the structured logger described by the configuration.
// LogLevel accepts debug, info, warn and error (default info); LogFormat
// accepts text and json (default text).
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if raw := strings.TrimSpace(c.LogLevel); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL %q is invalid: %w", raw, err)
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("LOG_FORMAT %q is invalid: expected text or json", c.LogFormat)
	}
}
