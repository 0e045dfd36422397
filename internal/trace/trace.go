// Package trace captures call sites and stack traces for placeholder failures,
// and formats them the way the Go runtime formats a panic trace.
package trace

import (
	"bytes"
	"fmt"
	"path"
	"runtime"
	"strings"
)

// Depth is the depth to which to take stack traces.
var Depth = 12

// A Site is the function, file and line of a single stack frame.
type Site struct {
	Func string
	File string
	Line int
}

// String renders the site as "func at file:line", or a best-effort variant
// when parts of it are unknown.
func (s Site) String() string {
	switch {
	case s.File == "":
		return "unknown func"
	case s.Func == "":
		return fmt.Sprintf("unknown func at %s:%d", s.File, s.Line)
	}
	return fmt.Sprintf("%s at %s:%d", s.Func, s.File, s.Line)
}

// Short returns the site with the file reduced to its base name and the
// function reduced to its name within the package.
func (s Site) Short() Site {
	if s.File != "" {
		s.File = path.Base(s.File)
	}
	if slash := strings.LastIndexByte(s.Func, '/'); slash != -1 {
		s.Func = s.Func[slash+1:]
	}
	return s
}

// Caller resolves the site skip frames up.
//
// skip = 0 is the caller of Caller.
func Caller(skip int) (Site, bool) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{}, false
	}
	s := Site{File: file, Line: line}
	if f := runtime.FuncForPC(pc); f != nil {
		s.Func = f.Name()
	}
	return s, true
}

// Capture captures a stack trace.
//
// skip = 0 captures a trace starting at the caller of Capture.
func Capture(skip int) []uintptr {
	stack := make([]uintptr, Depth)
	return stack[:runtime.Callers(skip+2, stack)]
}

// Format formats the given stack trace into strings that look like:
//
//	path/package.Function()
//	path/to/file.go:57 +0x123
//	path/other/package.OtherFunction()
//	path/to/different/file.go:83 +0x456
func Format(stack []uintptr) []string {
	result := make([]string, 0, 2*len(stack))
	frames := runtime.CallersFrames(stack)
	for frame, ok := frames.Next(); ok; frame, ok = frames.Next() {
		result = append(result, frame.Function+"()")
		result = append(result, fmt.Sprintf("%s:%d +0x%x", frame.File, frame.Line, frame.PC-frame.Entry))
	}
	return result
}

// String renders a message followed by its stack trace. Every second line is
// indented further, as in a Go panic trace.
func String(msg string, stack []uintptr) string {
	buf := bytes.NewBufferString(msg)
	for i, frame := range Format(stack) {
		buf.WriteString("\n  ")
		if i%2 == 1 {
			buf.WriteString("  ")
		}
		buf.WriteString(frame)
	}
	return buf.String()
}
