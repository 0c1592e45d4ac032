// Package logging builds the leveled diagnostic logger used by taskman.
// Diagnostics go to stderr by default or to a size-rotated log file; user
// facing session text never passes through here.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mesh-intelligence/taskman/pkg/types"
)

// Rotation limits for the log file.
const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 28
)

// Options controls logger construction.
type Options struct {
	Level  string    // one of the types.LogLevel constants; empty means default
	File   string    // rotate into this file instead of writing to Writer
	Writer io.Writer // destination when File is empty; nil means os.Stderr
}

// New returns a logger and a closer for its destination. The closer must be
// called on shutdown; it is a no-op when logging to a plain writer.
func New(opts Options) (*log.Logger, io.Closer, error) {
	levelName := opts.Level
	if levelName == "" {
		levelName = types.DefaultLogLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %q", types.ErrLogLevelUnknown, levelName)
	}

	var (
		w      io.Writer = opts.Writer
		closer io.Closer = nopCloser{}
	)
	if w == nil {
		w = os.Stderr
	}
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
		}
		w, closer = rotator, rotator
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "taskman",
		ReportTimestamp: opts.File != "",
		TimeFormat:      time.RFC3339,
		Formatter:       log.TextFormatter,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
