package logger

import (
	"github.com/mavenreposs/component-error/errorbag"
	"github.com/mavenreposs/component-error/internal/errors"
)

// Logger defines the interface for logging operations.
type Logger interface {
	Debug() *LogEvent
	Info() *LogEvent
	Warn() *LogEvent
	Error() *LogEvent
	ErrorWithCode(err errors.Error) *LogEvent
	ErrorWithBag(b *errorbag.Bag) *LogEvent
}
