// Package eventlog records engine notifications with charmbracelet/log.
package eventlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/newmanne/jezzball/internal/games/jezzball"
)

// Observer logs barrier completions. It keeps no region state: enclosure
// evaluation only reports when the set of completed barriers changes.
type Observer struct {
	logger        *log.Logger
	lastCompleted int
}

var _ jezzball.Observer = (*Observer)(nil)

// New creates an Observer writing to logger.
func New(logger *log.Logger) *Observer {
	return &Observer{logger: logger}
}

// OnBarrierCompleted logs a barrier reaching the field boundary.
func (o *Observer) OnBarrierCompleted(b jezzball.Barrier) {
	tip := b.Tip()
	o.logger.Debug("barrier completed",
		"id", b.ID,
		"dir", b.Dir.String(),
		"x", b.Origin.X,
		"y", b.Origin.Y,
		"extent", b.Extent,
		"tip_x", tip.X,
		"tip_y", tip.Y,
	)
}

// EvaluateEnclosure logs the number of permanent barriers when it changes.
func (o *Observer) EvaluateEnclosure(completed []jezzball.Barrier) {
	if len(completed) == o.lastCompleted {
		return
	}
	o.lastCompleted = len(completed)
	o.logger.Debug("completed barriers", "count", len(completed))
}

// NewLogger returns a timestamped logger with the given prefix.
func NewLogger(w io.Writer, prefix string, level log.Level) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	logger.SetLevel(level)
	return logger
}

// OpenFile creates a debug-level logger appending to path. The terminal
// owns stdout while a game runs, so game logs go to a file.
// The returned closer must be closed when the game exits.
func OpenFile(path, prefix string) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("eventlog: cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("eventlog: cannot open log file: %w", err)
	}
	return NewLogger(f, prefix, log.DebugLevel), f, nil
}
