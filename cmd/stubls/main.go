// The stubls command lists the placeholders left in a set of packages.
//
//	stubls ./...
//	stubls -format=yaml ./... > stubs.yaml
//
// It exits with status 1 if the packages cannot be loaded, 2 on bad flags,
// and, with -exit, 3 if any placeholder is found.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/hegh/stub/internal/inventory"
	"github.com/hegh/stub/internal/ln"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("stubls", flag.ContinueOnError)
	format := fs.String("format", "text", "output format: text or yaml")
	color := fs.String("color", "auto", "colour form labels in text output: auto, always or never")
	dir := fs.String("dir", "", "directory to resolve package patterns from")
	exit := fs.Bool("exit", false, "exit with status 3 if any placeholder is found")
	fs.IntVar(&ln.Verbosity, "v", 0, "log verbosity")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: stubls [flags] [packages]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	patterns := fs.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	entries, err := inventory.Load(inventory.Config{Dir: *dir}, patterns...)
	if err != nil {
		ln.Error.Printf("stubls: %v", err)
		return 1
	}
	ln.V(1).Printf("found %d placeholders", len(entries))

	switch *format {
	case "text":
		err = inventory.WriteText(stdout, entries, useColor(*color, stdout))
	case "yaml":
		err = inventory.WriteYAML(stdout, entries)
	default:
		err = fmt.Errorf("unknown format %q", *format)
	}
	if err != nil {
		ln.Error.Printf("stubls: %v", err)
		return 1
	}

	if *exit && len(entries) > 0 {
		return 3
	}
	return 0
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
