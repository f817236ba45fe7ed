package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Handler receives reported errors and recovered panics.
type Handler interface {
	// HandleError is called for each reported non-fatal error.
	HandleError(err *Error)
	// HandlePanic is called after a panic is recovered.
	HandlePanic(err *PanicError)
}

type handlerBox struct{ h Handler }

var current atomic.Pointer[handlerBox]

func init() {
	current.Store(&handlerBox{h: NewLogHandler(nil)})
}

// SetHandler installs h as the process-wide handler and returns the
// previous one. Nil restores a LogHandler writing to stderr.
func SetHandler(h Handler) Handler {
	if h == nil {
		h = NewLogHandler(nil)
	}
	return current.Swap(&handlerBox{h: h}).h
}

// CurrentHandler returns the installed handler.
func CurrentHandler() Handler {
	return current.Load().h
}

// Report sends err to the handler, stamping it with the time and the
// reporter's stack when those are unset.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if err.StackTrace == "" {
		// Skip runtime.Callers, stack and Report.
		err.StackTrace = stack(3)
	}
	CurrentHandler().HandleError(err)
}

// ReportPanic sends err to the handler, stamping it if Timestamp is unset.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandlePanic(err)
}

// Recover reports a panic in progress and stops it. It must be deferred
// directly:
//
//	defer errors.Recover("engine.Frame")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is Recover followed by callback(r) when a panic was
// stopped.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportRecovered(op string, r any) {
	// Skip runtime.Callers, stack, reportRecovered and the Recover variant.
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: stack(4)})
}

// stack formats the calling goroutine's frames, skipping the innermost skip.
func stack(skip int) string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}

// Collector is a Handler that keeps every report in memory.
type Collector struct {
	mu     sync.Mutex
	Errors []*Error
	Panics []*PanicError
}

func (c *Collector) HandleError(err *Error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Errors = append(c.Errors, err)
}

func (c *Collector) HandlePanic(err *PanicError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Panics = append(c.Panics, err)
}
