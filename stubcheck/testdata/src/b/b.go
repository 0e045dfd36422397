package b

import "github.com/hegh/stub"

func typed() uint32 { return stub.Stub[uint32]() } // want `typed placeholder: stub\.Stub`

func message() bool {
	panic(stub.Errf("Send a request to %s", "GitHub")) // want `message placeholder: stub\.Errf`
}

func impl() func() { return stub.Impl[func()]() } // want `impl placeholder: stub\.Impl`
