// Package stubcheck defines an Analyzer that reports malformed placeholders
// from package github.com/hegh/stub.
//
// # Analyzer stubcheck
//
// stubcheck: check placeholder call sites
//
// It reports:
//
//   - a Stubf or Errf format that is not a constant string;
//   - an Impl type argument that is not an interface or func type;
//   - a valued placeholder (Stub, Stubf, Msg, Impl) used as a statement,
//     which should be spelled panic(stub.Err()) instead;
//   - an Err or Errf result that is neither returned, panicked nor used.
//
// With -list it also reports every placeholder along with its form, which
// makes it easy to find what is left to write:
//
//	stubcheck -list ./...
package stubcheck

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/hegh/stub/internal/callsite"
)

// Doc is the documentation of the analyzer; its first line is the summary.
const Doc = `check placeholder call sites

stubcheck reports placeholders from github.com/hegh/stub that are spelled
in a way that loses their type or message, and with -list reports every
placeholder and its form.`

// Analyzer checks the placeholder call sites of packages that import
// github.com/hegh/stub.
var Analyzer = &analysis.Analyzer{
	Name:     "stubcheck",
	Doc:      Doc,
	URL:      "https://pkg.go.dev/github.com/hegh/stub/stubcheck",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var list bool

func init() {
	Analyzer.Flags.BoolVar(&list, "list", false, "report every placeholder and its form")
}

func run(pass *analysis.Pass) (interface{}, error) {
	if !imports(pass.Pkg, callsite.PkgPath) {
		return nil, nil
	}
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.ExprStmt)(nil),
		(*ast.GoStmt)(nil),
		(*ast.DeferStmt)(nil),
		(*ast.CallExpr)(nil),
	}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.ExprStmt:
			if call, ok := ast.Unparen(n.X).(*ast.CallExpr); ok {
				checkDiscarded(pass, call)
			}
		case *ast.GoStmt:
			checkDiscarded(pass, n.Call)
		case *ast.DeferStmt:
			checkDiscarded(pass, n.Call)
		case *ast.CallExpr:
			checkCall(pass, n)
		}
	})
	return nil, nil
}

func checkCall(pass *analysis.Pass, call *ast.CallExpr) {
	site := callsite.Classify(pass.TypesInfo, call)
	if site.Form == callsite.None {
		return
	}

	if list {
		pass.Reportf(call.Pos(), "%s placeholder: stub.%s", site.Form, site.Func)
	}

	switch site.Func {
	case "Stubf", "Errf":
		if len(call.Args) > 0 && !site.Constant {
			pass.ReportRangef(call.Args[0], "stub.%s format must be a constant string; use stub.Msg for a computed message", site.Func)
		}
	case "Impl":
		if site.TypeArg != nil && !callsite.Opaque(site.TypeArg) {
			pass.Reportf(call.Pos(), "stub.Impl type argument %s is not an interface or func type; use stub.Stub",
				types.TypeString(site.TypeArg, types.RelativeTo(pass.Pkg)))
		}
	}
}

// checkDiscarded reports a placeholder call whose result is dropped by an
// expression, go or defer statement.
func checkDiscarded(pass *analysis.Pass, call *ast.CallExpr) {
	site := callsite.Classify(pass.TypesInfo, call)
	switch {
	case site.Form.Valued():
		pass.Reportf(call.Pos(), "result of stub.%s is discarded; use panic(stub.Err()) in statement position", site.Func)
	case site.Form == callsite.Message || site.Form == callsite.Bare:
		pass.Reportf(call.Pos(), "result of stub.%s is discarded; the placeholder error must be returned or panicked", site.Func)
	}
}

// imports reports whether pkg imports path directly.
func imports(pkg *types.Package, path string) bool {
	for _, imp := range pkg.Imports() {
		if imp.Path() == path {
			return true
		}
	}
	return false
}
