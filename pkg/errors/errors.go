// Package errors provides structured error handling for the weft runtime.
//
// Three classes of failure exist. Contract violations (a checkout of an
// unknown component, a state that does not match its component, reading a
// value that is exclusively borrowed) are programmer errors: they panic with a
// *ContractError via Violation and are never returned as values. Runtime
// failures that the driver can survive are reported through Report to the
// installed ErrorHandler. Structural failures at collaborator boundaries, such
// as template dependency cycles, are returned as ordinary error values by the
// package that detects them.
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
	// KindComponent indicates a component dispatch or registry failure.
	KindComponent
	// KindTemplate indicates a template loading or reload failure.
	KindTemplate
	// KindRender indicates a layout, position or paint failure.
	KindRender
	// KindConfig indicates a configuration failure.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindMessage indicates a message that could not be delivered.
	KindMessage
)

func (k ErrorKind) String() string {
	switch k {
	case KindComponent:
		return "component"
	case KindTemplate:
		return "template"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	case KindMessage:
		return "message"
	default:
		return "unknown"
	}
}

// RuntimeError represents a structured, survivable error in the runtime.
type RuntimeError struct {
	// Op is the operation that failed (e.g., "runtime.DeliverMessages").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Component is the component id involved, or -1 when none applies.
	Component int
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RuntimeError) Error() string {
	if e.Component >= 0 {
		return fmt.Sprintf("%s [%s] component=%d: %v", e.Op, e.Kind, e.Component, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "runtime.HandleEvent").
	Op string
	// Value is the value passed to panic().
	Value any
	// Contract is set when the panic was a contract violation.
	Contract *ContractError
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Contract != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Contract)
	}
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes a ContractError carried as the panic value.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ContractError describes a broken invariant. It is only ever used as a
// panic value.
type ContractError struct {
	// Op is the operation whose precondition failed (e.g., "component.Registry.Checkout").
	Op string
	// Detail describes the violated invariant.
	Detail string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Detail)
}

// Violation panics with a *ContractError.
func Violation(op, format string, args ...any) {
	panic(&ContractError{Op: op, Detail: fmt.Sprintf(format, args...)})
}

// ErrorHandler receives errors reported by the runtime.
type ErrorHandler interface {
	// HandleError is called when a survivable error occurs.
	HandleError(err *RuntimeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
