///bin/true; exec /usr/bin/env go run "$0" "$@"
// An example program to demonstrate the stub package.
//
// It prints what an unfinished loader returns, then crashes on the first
// placeholder it reaches.
package main

import (
	"fmt"
	"iter"

	"github.com/hegh/stub"
)

func LoadConfig(path string) error {
	return stub.Errf("read %s", path)
}

func Owner() uint32 {
	return stub.Stubf[uint32]("Assigned to: %s", "John")
}

func Evens() iter.Seq[uint32] {
	return stub.Impl[iter.Seq[uint32]]()
}

func main() {
	err := LoadConfig("app.yaml")
	fmt.Printf("LoadConfig returned an error: %+v\n", err)
	fmt.Println()

	for n := range Evens() {
		fmt.Println(n, Owner())
	}
}
