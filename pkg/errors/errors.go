// Package errors provides structured error handling for the chaikin
// application.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindInvalidArgument indicates a misconfigured constant, such as a
	// negative step count. These are caller bugs and fail fast.
	KindInvalidArgument
	// KindInvalidState indicates an operation attempted in a playback
	// state that does not permit it. Recoverable; callers may ignore it.
	KindInvalidState
	// KindInsufficientPoints indicates a playback start with fewer
	// control points than the curve needs. Recoverable.
	KindInsufficientPoints
	// KindInit indicates an initialization error.
	KindInit
	// KindRender indicates a rendering or presentation error.
	KindRender
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindInvalidState:
		return "invalid state"
	case KindInsufficientPoints:
		return "insufficient points"
	case KindInit:
		return "init"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the chaikin application.
type Error struct {
	// Op is the operation that failed (e.g., "animation.Player.Start").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("[%s]: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind. Together
// with the sentinels below it lets callers match on the recoverable
// state machine conditions without comparing messages.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "app.App.Frame").
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

// Sentinel errors for the recoverable state machine conditions.
// Match with the standard library's errors.Is.
var (
	// ErrInvalidState is returned when an operation is attempted
	// outside the playback state that permits it.
	ErrInvalidState = &Error{
		Kind: KindInvalidState,
		Err:  fmt.Errorf("operation not permitted in current playback state"),
	}

	// ErrInsufficientPoints is returned when playback is started with
	// fewer control points than the curve requires.
	ErrInsufficientPoints = &Error{
		Kind: KindInsufficientPoints,
		Err:  fmt.Errorf("not enough control points to start playback"),
	}
)
