// Package stub mirrors the signatures of github.com/hegh/stub for the
// analyzer tests.
package stub

func Stub[T any]() T                                 { panic("not implemented") }
func Stubf[T any](format string, a ...interface{}) T { panic("not implemented") }
func Msg[T any](msg string) T                        { panic("not implemented") }
func Impl[I any]() I                                 { panic("not implemented") }
func Err() error                                     { return nil }
func Errf(format string, a ...interface{}) error     { return nil }
