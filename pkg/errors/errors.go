// Package errors provides structured error handling for the Plume staging
// core.
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
	// KindParsing indicates a scene document parsing failure.
	KindParsing
	// KindLayout indicates a staging failure in a layout kind.
	KindLayout
	// KindRender indicates a rasterization or encoding error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindParsing:
		return "parsing"
	case KindLayout:
		return "layout"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// PlumeError represents a structured error in the staging core.
type PlumeError struct {
	// Op is the operation that failed (e.g., "scene.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the scene document path, if applicable.
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *PlumeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PlumeError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "raster.Render").
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

// StageError represents a layout kind rejecting its inputs during staging.
// Kinds with genuinely fallible behavior (a grid with a malformed child
// count, say) return one of these rather than substituting a default layout;
// ancestors propagate it upward so the failure stays visible.
type StageError struct {
	// Kind is the layout kind name (e.g., "grid").
	Kind string
	// Reason describes what the kind rejected.
	Reason string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// ErrorHandler receives errors reported by the staging core.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *PlumeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
