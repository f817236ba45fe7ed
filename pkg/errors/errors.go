// Package errors provides structured error reporting for strata.
//
// Nothing in the component contract returns an error: layout, rendering and
// dispatch degrade visibly instead. Conditions worth a diagnostic (a missing
// image, an unknown schema type, a recovered panic in a frame phase) are
// reported to a process-wide Handler so they can be logged or collected.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindSchema indicates a malformed or unsupported schema document.
	KindSchema
	// KindResource indicates a failed asset load.
	KindResource
	// KindConfig indicates invalid application configuration.
	KindConfig
	// KindRender indicates a rendering or surface error.
	KindRender
	// KindDispatch indicates a failure while delivering an event.
	KindDispatch
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindSchema:
		return "schema"
	case KindResource:
		return "resource"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindDispatch:
		return "dispatch"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error is a structured, non-fatal error.
type Error struct {
	// Op is the operation that failed (e.g., "widgets.Image.Render").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Subject names the file, type or component the error is about.
	Subject string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

// New builds an Error.
func New(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("%s [%s] %s: %v", e.Op, e.Kind, e.Subject, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.Dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}
