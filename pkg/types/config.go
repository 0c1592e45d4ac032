package types

import (
	"errors"
	"fmt"
)

// Config holds the resolved runtime settings for taskman.
type Config struct {
	DataFile string `json:"data_file" yaml:"data_file"`
	LogLevel string `json:"log_level" yaml:"log_level"`
	LogFile  string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
}

// Recognized log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// DefaultLogLevel is used when no level is configured.
const DefaultLogLevel = LogLevelWarn

// Config validation errors.
var (
	ErrDataFileEmpty   = errors.New("data file must not be empty")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// knownLogLevels lists the levels that Validate accepts.
var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// Validate checks that the Config is well-formed. An empty LogLevel is
// accepted and means DefaultLogLevel.
func (c Config) Validate() error {
	if c.DataFile == "" {
		return ErrDataFileEmpty
	}
	if c.LogLevel != "" && !IsLogLevel(c.LogLevel) {
		return fmt.Errorf("%w %q", ErrLogLevelUnknown, c.LogLevel)
	}
	return nil
}

// IsLogLevel reports whether level is one of the recognized log levels.
func IsLogLevel(level string) bool {
	return knownLogLevels[level]
}
