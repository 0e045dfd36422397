package stub

import (
	"errors"
	"fmt"
	"io"

	"github.com/hegh/stub/internal/trace"
)

// Marker is the message carried by a placeholder that was given none.
const Marker = "not implemented"

// ErrNotImplemented is the error every *Error unwraps to.
var ErrNotImplemented = errors.New(Marker)

// Error is the value a placeholder panics with.
type Error struct {
	msg    string
	custom bool
	site   trace.Site
	stack  []uintptr
}

// newError builds an Error attributed to the caller of the function that
// called newError.
func newError(msg string, custom bool) *Error {
	e := &Error{
		msg:    msg,
		custom: custom,
		stack:  trace.Capture(2),
	}
	if s, ok := trace.Caller(2); ok {
		e.site = s
	}
	return e
}

// Error returns the placeholder's message, or Marker if it was given none.
func (e *Error) Error() string {
	return e.msg
}

// Message returns the message supplied to the placeholder, and whether one
// was supplied at all.
func (e *Error) Message() (string, bool) {
	if !e.custom {
		return "", false
	}
	return e.msg, true
}

// Func returns the full name of the function containing the placeholder.
//
// Empty if it could not be determined.
func (e *Error) Func() string { return e.site.Func }

// File returns the file and line of the placeholder.
//
// The file is empty if it could not be determined.
func (e *Error) File() (string, int) { return e.site.File, e.site.Line }

// Location describes where the placeholder is, like
// "pkg.Func at path/file.go:12".
func (e *Error) Location() string {
	return e.site.String()
}

// Stack returns the stack trace taken when the placeholder was executed.
func (e *Error) Stack() []uintptr {
	return e.stack
}

// Unwrap returns ErrNotImplemented.
func (e *Error) Unwrap() error {
	return ErrNotImplemented
}

// Format implements fmt.Formatter.
//
// %+v prints the message, the location and the stack trace. Every other verb
// prints what Error returns.
func (e *Error) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		io.WriteString(s, trace.String(e.msg+"\nat "+e.Location(), e.stack))
	case verb == 'q':
		fmt.Fprintf(s, "%q", e.msg)
	default:
		io.WriteString(s, e.msg)
	}
}

// IsNotImplemented reports whether v, typically a value returned by recover,
// is a placeholder failure or an error wrapping one.
func IsNotImplemented(v interface{}) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	return errors.Is(err, ErrNotImplemented)
}
