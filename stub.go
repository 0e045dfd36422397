package stub

import (
	"fmt"
)

// Stub panics with a *Error carrying Marker. It never returns.
//
//	username := stub.Stub[string]()
func Stub[T any]() T {
	panic(newError(Marker, false))
}

// Stubf panics with a *Error whose message is formatted according to a format
// specifier. It never returns.
func Stubf[T any](format string, a ...interface{}) T {
	panic(newError(fmt.Sprintf(format, a...), true))
}

// Msg panics with a *Error carrying the given message as-is. It never
// returns.
func Msg[T any](msg string) T {
	panic(newError(msg, true))
}

// Impl is Stub for functions whose result is an interface or func type, such
// as io.Reader or iter.Seq[int]. It never returns.
func Impl[I any]() I {
	panic(newError(Marker, false))
}

// Err returns a *Error carrying Marker, attributed to the caller of Err.
//
// Use it as panic(stub.Err()) where any result type will do, or return it
// from a function whose error result is all that is left to write.
func Err() error {
	return newError(Marker, false)
}

// Errf returns a *Error whose message is formatted according to a format
// specifier, attributed to the caller of Errf.
func Errf(format string, a ...interface{}) error {
	return newError(fmt.Sprintf(format, a...), true)
}
