// Package console provides Narrator adapters that publish supply chain
// narration as plain text lines.
package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"floristsim/internal/core/domain/model/participant"
	"floristsim/internal/pkg/logctx"
)

var (
	_ participant.Narrator = (*Narrator)(nil)
	_ participant.Narrator = (*Recorder)(nil)
)

// Narrator writes every line followed by a newline to an io.Writer.
// Each line is also emitted as a Debug record tagged with the attributes the
// caller attached to ctx through logctx, so narration of one order carries
// that order's identifiers.
type Narrator struct {
	w      io.Writer
	logger *slog.Logger
}

// NewNarrator creates a Narrator writing to w. A nil logger falls back to
// slog.Default().
func NewNarrator(w io.Writer, logger *slog.Logger) *Narrator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Narrator{
		w:      w,
		logger: logger.With("component", "narrator"),
	}
}

// Narrate writes line to the underlying writer. Write failures are logged and
// do not interrupt the order.
func (n *Narrator) Narrate(ctx context.Context, line string) {
	logger := n.logger.With(logctx.Args(ctx)...)
	logger.DebugContext(ctx, "narration", "line", line)

	if _, err := fmt.Fprintln(n.w, line); err != nil {
		logger.ErrorContext(ctx, "Failed to write narration", "error", err)
	}
}
