package logger

import corelogger "github.com/evnav/chargescout/core/logger"

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger discards all output; it is the core nop implementation.
type NopLogger = corelogger.Nop

// New returns a Logger for the given component, filtered at the configured
// level. The output format is detected via the APP_ENV variable.
func New(component, level string) Logger {
	return NewZerologLogger(component, level)
}
