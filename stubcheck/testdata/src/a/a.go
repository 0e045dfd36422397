package a

import "github.com/hegh/stub"

type Reader interface{ Read(p []byte) (int, error) }

const assigned = "Assigned to: %s"

func typedMessage() uint32 { return stub.Stubf[uint32]("Assigned to: %s", "John") }

func constFormat() uint32 { return stub.Stubf[uint32](assigned, "John") }

func bare() bool { panic(stub.Err()) }

func message() bool { panic(stub.Errf("Send a request to %s", "GitHub")) }

func returnedErr() error { return stub.Errf("load %s", "config") }

func impl() Reader { return stub.Impl[Reader]() }

func implFunc() func() int { return stub.Impl[func() int]() }

func computedMsg(m string) int { return stub.Msg[int](m) }

func typedAssignment() string {
	username := stub.Stub[string]()
	return username
}

func computedFormat(m string) uint32 {
	return stub.Stubf[uint32](m) // want `stub\.Stubf format must be a constant string`
}

func computedErrf(m string) error {
	return stub.Errf(m) // want `stub\.Errf format must be a constant string`
}

func concreteImpl() int {
	return stub.Impl[int]() // want `stub\.Impl type argument int is not an interface or func type`
}

func discarded() {
	stub.Stub[int]() // want `result of stub\.Stub is discarded`
}

func discardedMsg() {
	stub.Msg[bool]("later") // want `result of stub\.Msg is discarded`
}

func discardedErr() {
	stub.Err() // want `result of stub\.Err is discarded`
}

func assignedToBlank() {
	_ = stub.Stub[int]()
	_ = stub.Stubf[uint32]("Assigned to: %s", "John")
}

func discardedGo() {
	go stub.Stub[int]() // want `result of stub\.Stub is discarded`
}

func discardedDefer() {
	defer stub.Err() // want `result of stub\.Err is discarded`
}

func discardedDeferErrf() {
	defer stub.Errf("close %s", "file") // want `result of stub\.Errf is discarded`
}
