// Package stub provides placeholders for code that has not been written yet.
//
// A placeholder type-checks wherever a value is needed, so the surrounding
// code compiles and can be worked on, and panics with a *Error as soon as it
// is executed. Unlike a bare panic("TODO"), a placeholder in a value position
// does not make the rest of the function unreachable.
//
// There are five forms:
//
//	// impl: the function returns an interface or func type.
//	func evens() iter.Seq[uint32] {
//		return stub.Impl[iter.Seq[uint32]]()
//	}
//
//	// type and message.
//	func owner() uint32 {
//		return stub.Stubf[uint32]("Assigned to: %s", "John")
//	}
//
//	// type only.
//	username := stub.Stub[string]()
//
//	// message only; panic is a terminating statement, so no type is needed.
//	func send() bool {
//		panic(stub.Errf("Send a request to %s", "GitHub"))
//	}
//
//	// no arguments.
//	func status() bool {
//		panic(stub.Err())
//	}
//
// Messages follow the formatting rules of fmt.Sprintf. The panic value's
// Error method returns exactly the formatted message, or Marker when no
// message was supplied.
//
// Go cannot infer a type parameter from an assignment target or a return
// type, so the value forms always name their type. The message-only and
// no-argument forms are spelled with panic instead.
//
// The stubcheck analyzer (github.com/hegh/stub/stubcheck) rejects malformed
// placeholders, and the stubls command lists every placeholder in a set of
// packages.
package stub
