// Package stubtest helps tests assert that code reaches a placeholder.
package stubtest

import (
	"errors"
	"testing"

	"github.com/hegh/stub"
)

// Catch calls f and returns the placeholder failure it panicked with.
//
// ok is false if f returned normally. Any other panic is passed through
// unchanged.
func Catch(f func()) (err *stub.Error, ok bool) {
	defer func() {
		x := recover()
		if x == nil {
			return
		}
		e, isErr := x.(error)
		if !isErr || !errors.As(e, &err) {
			panic(x)
		}
		ok = true
	}()
	f()
	return nil, false
}

// Expect calls f and fails the test unless f panics with a placeholder
// failure, which it returns.
func Expect(t testing.TB, f func()) *stub.Error {
	t.Helper()
	err, ok := Catch(f)
	if !ok {
		t.Fatal("got normal return, want placeholder panic")
	}
	return err
}

// ExpectMessage is Expect, also failing the test unless the failure's Error
// method returns want.
func ExpectMessage(t testing.TB, want string, f func()) *stub.Error {
	t.Helper()
	err := Expect(t, f)
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q from placeholder", got, want)
	}
	return err
}
