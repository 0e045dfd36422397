package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hegh/stub/internal/ln"
)

// Resolve packages from the inventory testdata in GOPATH mode.
func useTestdata(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("..", "..", "internal", "inventory", "testdata"))
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("GO111MODULE", "off")
	t.Setenv("GOPATH", dir)
	t.Setenv("GOFLAGS", "")

	var logs bytes.Buffer
	ln.Error.LogTo(&logs)
	t.Cleanup(func() { ln.Error.LogTo(os.Stderr) })
	return dir
}

func TestRunStatus(t *testing.T) {
	dir := useTestdata(t)
	tests := []struct {
		args []string
		want int
	}{
		{[]string{"-dir", dir, "p"}, 0},
		{[]string{"-dir", dir, "-exit", "p"}, 3},
		{[]string{"-dir", dir, "-exit", "github.com/hegh/stub"}, 0},
		{[]string{"-dir", dir, "example.com/missing"}, 1},
		{[]string{"-dir", dir, "bad"}, 1},
		{[]string{"-dir", dir, "-format", "json", "p"}, 1},
		{[]string{"-nosuchflag"}, 2},
	}
	for _, test := range tests {
		var out bytes.Buffer
		if got := run(test.args, &out); got != test.want {
			t.Errorf("got status %d, want %d from stubls %s", got, test.want, strings.Join(test.args, " "))
		}
	}
}

func TestRunText(t *testing.T) {
	dir := useTestdata(t)
	var out bytes.Buffer
	if got := run([]string{"-dir", dir, "-color", "never", "p"}, &out); got != 0 {
		t.Fatalf("got status %d, want 0", got)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if got, want := len(lines), 3; got != want {
		t.Fatalf("got %d lines, want %d in\n%s", got, want, out.String())
	}
	if !strings.HasSuffix(lines[0], `p.go:6:9: typed-message stub.Stubf[uint32] in Owner "Assigned to: %s"`) {
		t.Errorf("got %q, want the Owner placeholder first", lines[0])
	}
}

func TestRunYAML(t *testing.T) {
	dir := useTestdata(t)
	var out bytes.Buffer
	if got := run([]string{"-dir", dir, "-format", "yaml", "p"}, &out); got != 0 {
		t.Fatalf("got status %d, want 0", got)
	}
	if got := strings.Count(out.String(), "- file: "); got != 3 {
		t.Errorf("got %d entries, want 3 in\n%s", got, out.String())
	}
}
