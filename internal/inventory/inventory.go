// Package inventory lists the placeholders in a set of Go packages.
package inventory

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"io"
	"os"
	"sort"
	"strconv"

	"golang.org/x/tools/go/packages"
	"gopkg.in/yaml.v3"

	"github.com/hegh/stub/internal/callsite"
	"github.com/hegh/stub/internal/ln"
)

// Entry is a single placeholder found in source.
type Entry struct {
	File    string `yaml:"file"`
	Line    int    `yaml:"line"`
	Column  int    `yaml:"column"`
	Package string `yaml:"package"`
	// Func is the enclosing function or method, empty at package level.
	Func string `yaml:"func,omitempty"`
	Form string `yaml:"form"`
	Call string `yaml:"call"`
	// Type is the type argument of a valued placeholder.
	Type string `yaml:"type,omitempty"`
	// Message is the constant message or format string, if there is one.
	Message string `yaml:"message,omitempty"`
}

// Location returns "file:line:column".
func (e Entry) Location() string {
	return e.File + ":" + strconv.Itoa(e.Line) + ":" + strconv.Itoa(e.Column)
}

// Config controls how Load finds packages.
type Config struct {
	// Dir is the directory patterns are resolved from. Empty means the
	// current directory.
	Dir string

	// Env is added to the environment of the go command, overriding the
	// process environment.
	Env []string
}

// Load loads the packages matching patterns, along with their tests, and
// returns the placeholders in them ordered by position. Each placeholder is
// listed once, even though its file also belongs to the package's test
// variant.
//
// Every package error is logged, and makes Load fail.
func Load(c Config, patterns ...string) ([]Entry, error) {
	env := append(os.Environ(), "GOWORK=off")
	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedTypes |
			packages.NeedTypesInfo |
			packages.NeedSyntax,
		Dir:   c.Dir,
		Tests: true,
		Env:   append(env, c.Env...),
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	ln.V(1).Printf("loaded %d packages for %v", len(pkgs), patterns)
	if len(pkgs) == 0 {
		ln.Warning.Printf("no packages matched %v", patterns)
	}

	var nerrs int
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			ln.Error.Printf("%s: %s", pkg.PkgPath, e.Msg)
			nerrs++
		}
	})
	if nerrs > 0 {
		return nil, fmt.Errorf("%d errors loading packages", nerrs)
	}

	// With Tests set, a package's files show up again in its test variant.
	seen := make(map[string]bool)
	var entries []Entry
	for _, pkg := range pkgs {
		found := FromFiles(pkg.Fset, pkg.PkgPath, pkg.TypesInfo, pkg.Syntax)
		ln.V(2).Printf("%s: %d placeholders", pkg.ID, len(found))
		for _, e := range found {
			if seen[e.Location()] {
				continue
			}
			seen[e.Location()] = true
			entries = append(entries, e)
		}
	}
	Sort(entries)
	return entries, nil
}

// FromFiles returns the placeholders in the given type-checked files, in
// source order.
func FromFiles(fset *token.FileSet, pkgPath string, info *types.Info, files []*ast.File) []Entry {
	var entries []Entry
	for _, file := range files {
		for _, decl := range file.Decls {
			fn := declName(decl)
			ast.Inspect(decl, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				site := callsite.Classify(info, call)
				if site.Form == callsite.None {
					return true
				}
				pos := fset.Position(call.Pos())
				e := Entry{
					File:    pos.Filename,
					Line:    pos.Line,
					Column:  pos.Column,
					Package: pkgPath,
					Func:    fn,
					Form:    site.Form.String(),
					Call:    "stub." + site.Func,
					Message: site.Message,
				}
				if site.TypeArg != nil {
					e.Type = types.TypeString(site.TypeArg, types.RelativeTo(nil))
				}
				entries = append(entries, e)
				return true
			})
		}
	}
	return entries
}

// declName returns the name of a function declaration, with its receiver
// type for methods, and "" for anything else.
func declName(decl ast.Decl) string {
	fd, ok := decl.(*ast.FuncDecl)
	if !ok {
		return ""
	}
	if fd.Recv == nil || len(fd.Recv.List) == 0 {
		return fd.Name.Name
	}
	recv := fd.Recv.List[0].Type
	if star, ok := recv.(*ast.StarExpr); ok {
		recv = star.X
	}
	switch r := recv.(type) {
	case *ast.IndexExpr:
		recv = r.X
	case *ast.IndexListExpr:
		recv = r.X
	}
	if id, ok := recv.(*ast.Ident); ok {
		return id.Name + "." + fd.Name.Name
	}
	return fd.Name.Name
}

// Sort orders entries by file, line and column.
func Sort(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// ANSI colours for each form in text output.
var formColors = map[string]string{
	callsite.Impl.String():         "\x1b[35m",
	callsite.TypedMessage.String(): "\x1b[36m",
	callsite.Typed.String():        "\x1b[34m",
	callsite.Message.String():      "\x1b[33m",
	callsite.Bare.String():         "\x1b[31m",
}

const colorReset = "\x1b[0m"

// WriteText writes one line per entry:
//
//	path/file.go:12:9: typed-message stub.Stubf[uint32] in owner "Assigned to: %s"
//
// Form labels are coloured if color is set.
func WriteText(w io.Writer, entries []Entry, color bool) error {
	for _, e := range entries {
		form := e.Form
		if c, ok := formColors[form]; ok && color {
			form = c + form + colorReset
		}
		line := e.Location() + ": " + form + " " + e.Call
		if e.Type != "" {
			line += "[" + e.Type + "]"
		}
		if e.Func != "" {
			line += " in " + e.Func
		}
		if e.Message != "" {
			line += " " + strconv.Quote(e.Message)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteYAML writes the entries as a YAML sequence.
func WriteYAML(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
