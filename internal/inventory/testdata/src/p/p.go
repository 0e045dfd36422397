package p

import "github.com/hegh/stub"

func Owner() uint32 {
	return stub.Stubf[uint32]("Assigned to: %s", "John")
}
