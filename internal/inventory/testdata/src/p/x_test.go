package p_test

import "github.com/hegh/stub"

func ready() bool {
	return stub.Stub[bool]()
}

var _ = ready
