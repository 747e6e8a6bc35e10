package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination. Nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a RuntimeError.
func (h *LogHandler) HandleError(err *RuntimeError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[weft error] %s [%s]", err.Op, err.Kind)
		if err.Component >= 0 {
			fmt.Fprintf(w, " component=%d", err.Component)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[weft error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError. Contract violations always carry their
// stack trace.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	switch {
	case err.Contract != nil:
		fmt.Fprintf(w, "[weft violation] %s: %s: %s\n", err.Op, err.Contract.Op, err.Contract.Detail)
	case err.Op != "":
		fmt.Fprintf(w, "[weft panic] %s: %v\n", err.Op, err.Value)
	default:
		fmt.Fprintf(w, "[weft panic] %v\n", err.Value)
	}
	if (h.Verbose || err.Contract != nil) && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
