// Package logger provides the prefixed, coloured, levelled logger used across the app.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-maze/config"
)

var ErrNilWriter = errors.New("logger: writer must not be nil")

// Logger writes "[PREFIX] [LEVEL] message" lines, colouring the prefix and level.
type Logger struct {
	out   *log.Logger
	debug bool
}

// New creates a Logger writing to w with the given prefix and prefix colour.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	return &Logger{
		out: log.New(w, fmt.Sprintf("%s[%s]%s ", color, prefix, config.ColorReset), log.LstdFlags),
	}, nil
}

// SetDebug enables or disables Debug output.
func (l *Logger) SetDebug(enabled bool) {
	l.debug = enabled
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.out.Printf("%s[INFO]%s %s", config.LogInfoColor, config.LogColorReset, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.out.Printf("%s[WARNING]%s %s", config.LogWarningColor, config.LogColorReset, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.out.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, msg)
}

// Debug logs a message only when debug output is enabled.
func (l *Logger) Debug(msg string) {
	if !l.debug {
		return
	}
	l.out.Printf("%s[DEBUG]%s %s", config.LogDebugColor, config.LogColorReset, msg)
}
