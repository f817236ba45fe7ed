package errors

import (
	"os"

	"github.com/rs/zerolog"
)

// LogHandler is a Handler that writes reports through zerolog.
type LogHandler struct {
	Logger zerolog.Logger
	// Verbose adds stack traces to the output. The CLI enables it at trace
	// level.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing to logger, or to stderr when
// logger is nil.
func NewLogHandler(logger *zerolog.Logger) *LogHandler {
	if logger != nil {
		return &LogHandler{Logger: *logger}
	}
	return &LogHandler{Logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()}
}

// HandleError logs an Error at warn level.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	event := h.Logger.Warn().
		Str("op", err.Op).
		Str("kind", err.Kind.String()).
		Err(err.Err)
	if err.Subject != "" {
		event = event.Str("subject", err.Subject)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("strata error")
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	event := h.Logger.Error().
		Str("kind", KindPanic.String()).
		Interface("value", err.Value)
	if err.Op != "" {
		event = event.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("strata panic")
}
