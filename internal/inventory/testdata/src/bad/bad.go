package bad

import "github.com/hegh/stub"

func broken() int {
	return stub.Stub[string]()
}
