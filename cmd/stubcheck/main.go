// The stubcheck command reports malformed placeholders from
// github.com/hegh/stub.
//
//	stubcheck ./...
//	stubcheck -list ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/hegh/stub/stubcheck"
)

func main() { singlechecker.Main(stubcheck.Analyzer) }
