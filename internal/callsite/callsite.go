// Package callsite classifies calls into the stub package by the form of
// placeholder they spell.
package callsite

import (
	"go/ast"
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// PkgPath is the import path of the stub package.
const PkgPath = "github.com/hegh/stub"

// Form is the shape of a placeholder call.
type Form int

const (
	// None is any call that is not a placeholder.
	None Form = iota
	// Impl is stub.Impl[I]().
	Impl
	// TypedMessage is stub.Stubf[T](format, args...) or stub.Msg[T](msg).
	TypedMessage
	// Typed is stub.Stub[T]().
	Typed
	// Message is stub.Errf(format, args...).
	Message
	// Bare is stub.Err().
	Bare
)

var formNames = [...]string{
	None:         "none",
	Impl:         "impl",
	TypedMessage: "typed-message",
	Typed:        "typed",
	Message:      "message",
	Bare:         "bare",
}

func (f Form) String() string {
	if f < 0 || int(f) >= len(formNames) {
		return "invalid"
	}
	return formNames[f]
}

// Valued reports whether the form produces a value of its type argument.
func (f Form) Valued() bool {
	return f == Impl || f == TypedMessage || f == Typed
}

// Formatted reports whether the form's first argument is a message or a
// format string.
func (f Form) Formatted() bool {
	return f == Message || f == TypedMessage
}

// Site is a classified call.
type Site struct {
	Form Form
	Call *ast.CallExpr

	// Func is the called function, such as "Stubf".
	Func string

	// TypeArg is the instantiated type argument of a valued form.
	TypeArg types.Type

	// Message is the constant message or format string, if there is one.
	Message string
	// Constant is false when the message argument is not a constant.
	Constant bool
}

// Classify reports the form of a call. The Form is None for anything that is
// not a call into the stub package.
//
// info must record Uses, Types and Instances.
func Classify(info *types.Info, call *ast.CallExpr) Site {
	site := Site{Call: call}
	fn, _ := typeutil.Callee(info, call).(*types.Func)
	if fn == nil || fn.Pkg() == nil || fn.Pkg().Path() != PkgPath {
		return site
	}
	if sig, _ := fn.Type().(*types.Signature); sig == nil || sig.Recv() != nil {
		return site
	}

	site.Func = fn.Name()
	switch fn.Name() {
	case "Impl":
		site.Form = Impl
	case "Stubf", "Msg":
		site.Form = TypedMessage
	case "Stub":
		site.Form = Typed
	case "Errf":
		site.Form = Message
	case "Err":
		site.Form = Bare
	default:
		site.Func = ""
		return site
	}

	if site.Form.Valued() {
		site.TypeArg = typeArg(info, call.Fun)
	}
	if site.Form.Formatted() && len(call.Args) > 0 {
		site.Constant = true
		if tv, ok := info.Types[call.Args[0]]; ok && tv.Value != nil && tv.Value.Kind() == constant.String {
			site.Message = constant.StringVal(tv.Value)
		} else {
			site.Constant = false
		}
	}
	return site
}

// typeArg returns the single type argument of an instantiated function
// expression, or nil.
func typeArg(info *types.Info, fun ast.Expr) types.Type {
	fun = ast.Unparen(fun)
	if ix, ok := fun.(*ast.IndexExpr); ok {
		fun = ix.X
	}
	var id *ast.Ident
	switch e := ast.Unparen(fun).(type) {
	case *ast.Ident:
		id = e
	case *ast.SelectorExpr:
		id = e.Sel
	}
	if id == nil {
		return nil
	}
	inst, ok := info.Instances[id]
	if !ok || inst.TypeArgs.Len() != 1 {
		return nil
	}
	return inst.TypeArgs.At(0)
}

// Opaque reports whether t may stand behind Impl: an interface or func type.
func Opaque(t types.Type) bool {
	switch t.Underlying().(type) {
	case *types.Interface, *types.Signature:
		return true
	}
	return false
}

// Inspect calls f for every placeholder call in the given files.
func Inspect(info *types.Info, files []*ast.File, f func(Site)) {
	for _, file := range files {
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			if site := Classify(info, call); site.Form != None {
				f(site)
			}
			return true
		})
	}
}
