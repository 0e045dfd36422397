// Package ln provides the leveled logging used by the stub tools.
//
// An output line will look something like this:
//
//	I1203 10:04:59.846813 Load(inventory.go:60) loaded 3 packages
//
// The first letter is the level: I for Info, W for Warning and E for Error.
// It is followed by the date (MMDD), the time, the function and
// file:line that logged the message, and the message.
//
// Usage:
//
//	ln.V(1).Printf("debug %s", "message")
//	ln.Info.Printf("info %v", "message")
//	ln.Error.Print("error message")
package ln

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/hegh/stub/internal/trace"
)

var (
	// Verbosity controls whether the Logger returned by V does anything.
	Verbosity = 0

	// Info logs messages at Info level.
	Info = New("I", os.Stderr, nil)

	// Warning logs messages at Warning level.
	Warning = New("W", os.Stderr, nil)

	// Error logs messages at Error level.
	Error = New("E", os.Stderr, nil)

	now = time.Now
)

// V returns Info if level is at most Verbosity, and a nil Logger otherwise.
func V(level int) *Logger {
	if level <= Verbosity {
		return Info
	}
	return nil
}

// Logger annotates messages and writes them to an io.Writer.
//
// A nil *Logger is valid and discards everything logged to it.
type Logger struct {
	mu      sync.Mutex
	prefix  string
	w       io.Writer
	trigger func()
}

// New builds a Logger.
//
// prefix: The level prefix written at the start of every line.
// w: Where the logger sends its messages.
// trigger: If not nil, called after each message.
func New(prefix string, w io.Writer, trigger func()) *Logger {
	return &Logger{
		prefix:  prefix,
		w:       w,
		trigger: trigger,
	}
}

// Print logs its arguments, formatted as if passed through fmt.Print, and
// returns the result of writing the line.
func (l *Logger) Print(a ...interface{}) (int, error) {
	if l == nil {
		return 0, nil
	}
	return l.output(fmt.Sprint(a...))
}

// Printf logs a message formatted according to the rules of fmt.Printf, and
// returns the result of writing the line.
func (l *Logger) Printf(format string, a ...interface{}) (int, error) {
	if l == nil {
		return 0, nil
	}
	return l.output(fmt.Sprintf(format, a...))
}

// LogTo replaces the writers the Logger writes to.
func (l *Logger) LogTo(w ...io.Writer) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w = io.MultiWriter(w...)
}

// SetTrigger replaces the function called after each message.
func (l *Logger) SetTrigger(trigger func()) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.trigger = trigger
}

// String returns the prefix of the Logger, or "(nil)".
func (l *Logger) String() string {
	if l == nil {
		return "(nil)"
	}
	return l.prefix
}

// output formats msg and writes it, returning the result of the write. Must
// be called directly by the exported logging methods, so the site it reports
// is theirs.
//
// The trigger runs even if the write fails.
func (l *Logger) output(msg string) (n int, err error) {
	line := assemble(l.prefix, msg)

	l.mu.Lock()
	trigger := l.trigger
	n, err = l.w.Write(line)
	l.mu.Unlock()

	if trigger != nil {
		trigger()
	}
	return n, err
}

// assemble formats a log line for the caller of the Print or Printf method
// that called output.
func assemble(prefix, msg string) []byte {
	t := now()
	loc := "????(???:??)"
	if s, ok := trace.Caller(3); ok {
		s = s.Short()
		fn := s.Func
		if dot := strings.LastIndexByte(fn, '.'); dot != -1 {
			fn = fn[dot+1:]
		}
		loc = fmt.Sprintf("%s(%s:%d)", fn, s.File, s.Line)
	}
	return []byte(fmt.Sprintf("%s%s %s %s %s\n",
		prefix, t.Format("0102"), t.Format("15:04:05.000000"), loc, msg))
}

// PrintWriter adapts a Print function, like the logging methods of testing.T,
// to an io.Writer.
//
//	ln.Info.LogTo(ln.PrintWriter{t.Log})
type PrintWriter struct {
	P func(...interface{})
}

// Write passes p to the Print function as a string.
func (w PrintWriter) Write(p []byte) (int, error) {
	w.P(string(p))
	return len(p), nil
}
