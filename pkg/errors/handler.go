package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every reported error. It starts as a
	// non-verbose LogHandler.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler installs h as the DefaultHandler. Nil restores a LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Report hands err to the installed handler, stamping it if needed.
func Report(err *RuntimeError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	if h := handler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	if h := handler(); h != nil {
		h.HandlePanic(err)
	}
}

// recovered turns a value taken from recover into a report. Violations keep
// their *ContractError in Contract.
func recovered(op string, r any) *PanicError {
	err := &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: captureStack(2),
		Timestamp:  time.Now(),
	}
	if ce, ok := r.(*ContractError); ok {
		err.Contract = ce
	}
	return err
}

// Recover reports a panic at a driver boundary and lets the goroutine
// continue. A contract violation is reported with Contract set; the caller
// decides whether the runtime may keep going.
//
//	defer errors.Recover("templates.Watch")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(recovered(op, r))
	}
}

// RecoverWithCallback is Recover followed by callback. The callback gets the
// *ContractError for violations and nil for any other panic, so a caller
// can turn violations into errors.
func RecoverWithCallback(op string, callback func(violation *ContractError, value any)) {
	if r := recover(); r != nil {
		err := recovered(op, r)
		ReportPanic(err)
		if callback != nil {
			callback(err.Contract, r)
		}
	}
}

// CaptureStack returns the caller's stack, one function and file:line pair
// per frame.
func CaptureStack() string {
	return captureStack(1)
}

// captureStack skips the given number of frames above its caller.
func captureStack(skip int) string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteByte('\n')
		if !more {
			return sb.String()
		}
	}
}
