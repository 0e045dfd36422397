// Package c does not import the stub package and is never reported.
package c

type stubs struct{}

func (stubs) Err() error { return nil }

func f() {
	var s stubs
	s.Err()
}
