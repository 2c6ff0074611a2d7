package renderer

import (
	"log"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger with the standard library logger
type DefaultLogger struct {
	logger *log.Logger
}

// Printf writes a formatted message
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	dl.logger.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger writing to stderr
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{logger: log.Default()}
}

// NopLogger discards all output
type NopLogger struct{}

// Printf does nothing
func (NopLogger) Printf(format string, args ...interface{}) {}
