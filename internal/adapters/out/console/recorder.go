package console

import (
	"context"
	"slices"
	"strings"
)

// Recorder keeps narration lines in memory, in call order.
type Recorder struct {
	lines []string
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Narrate appends line. The context is not inspected.
func (r *Recorder) Narrate(_ context.Context, line string) {
	r.lines = append(r.lines, line)
}

// Lines returns a copy of the recorded lines.
func (r *Recorder) Lines() []string {
	return slices.Clone(r.lines)
}

// Transcript renders the recorded lines the way Narrator would print them.
func (r *Recorder) Transcript() string {
	var sb strings.Builder
	for _, line := range r.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
