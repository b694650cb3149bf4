package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Dr-Obek/textfilter/internal/domain"
)

const wantList = "lowercase, uppercase, no_spaces, slugify, revert, and remove_diacritics"

func runCLI(t *testing.T, args []string, stdin string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errb bytes.Buffer
	code = run(args, streams{In: strings.NewReader(stdin), Out: &out, Err: &errb})
	return code, out.String(), errb.String()
}

// resultLines returns the "Transformed text:" payloads in order.
func resultLines(stdout string) []string {
	var out []string
	for _, l := range strings.Split(stdout, "\n") {
		if rest, ok := strings.CutPrefix(l, "Transformed text: "); ok {
			out = append(out, rest)
		}
	}
	return out
}

// --- argument validation ---

func TestRun_WrongArgCount(t *testing.T) {
	cases := [][]string{
		nil,
		{},
		{"lowercase", "uppercase"},
		{"a", "b", "c"},
	}
	for _, args := range cases {
		code, stdout, stderr := runCLI(t, args, "ignored\n")
		if code != 1 {
			t.Errorf("args %q: exit code = %d, want 1", args, code)
		}
		if stdout != "" {
			t.Errorf("args %q: expected empty stdout, got %q", args, stdout)
		}
		want := "Please provide only one transformation operation as a command-line argument. Supported operations: " + wantList + ".\n"
		if stderr != want {
			t.Errorf("args %q: stderr = %q, want %q", args, stderr, want)
		}
	}
}

func TestRun_UnknownOperation(t *testing.T) {
	for _, name := range []string{"reverse", "", "LOWERCASE", "no-spaces", "help"} {
		code, stdout, stderr := runCLI(t, []string{name}, "x\n")
		if code != 1 {
			t.Errorf("%q: exit code = %d, want 1", name, code)
		}
		if stdout != "" {
			t.Errorf("%q: expected empty stdout, got %q", name, stdout)
		}
		if stderr != "Invalid operation. Supported operations: "+wantList+".\n" {
			t.Errorf("%q: stderr = %q", name, stderr)
		}
	}
}

// --- REPL protocol ---

func TestRun_FullTranscript(t *testing.T) {
	code, stdout, stderr := runCLI(t, []string{"lowercase"}, "HELLO World\n")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr=%q", code, stderr)
	}
	if stderr != "" {
		t.Fatalf("expected empty stderr, got %q", stderr)
	}

	want := "Available text transformation: lowercase\n" +
		"Enter the text you want to transform (Ctrl+C to exit):\n" +
		"Transformed text: hello world\n" +
		"Enter the text you want to transform (Ctrl+C to exit):\n"
	if stdout != want {
		t.Fatalf("stdout mismatch\n got: %q\nwant: %q", stdout, want)
	}
}

func TestRun_EveryOperation(t *testing.T) {
	cases := []struct {
		op    string
		input string
		want  string
	}{
		{"lowercase", "HELLO World", "hello world"},
		{"uppercase", "hello World", "HELLO WORLD"},
		{"no_spaces", "a b  c", "abc"},
		{"slugify", "Hello, World!  Foo", "hello-world-foo"},
		{"revert", "héllo", "olléh"},
		{"remove_diacritics", "café", "cafe"},
	}
	for _, c := range cases {
		code, stdout, stderr := runCLI(t, []string{c.op}, c.input+"\n")
		if code != 0 {
			t.Errorf("%s: exit code = %d, stderr=%q", c.op, code, stderr)
			continue
		}
		got := resultLines(stdout)
		if len(got) != 1 || got[0] != c.want {
			t.Errorf("%s(%q) = %q, want %q", c.op, c.input, got, c.want)
		}
	}
}

func TestRun_TrimsSurroundingWhitespace(t *testing.T) {
	_, stdout, _ := runCLI(t, []string{"uppercase"}, "  spaced out \t\r\n")
	got := resultLines(stdout)
	if len(got) != 1 || got[0] != "SPACED OUT" {
		t.Fatalf("got %q", got)
	}
}

func TestRun_MultipleLinesAndUnterminatedTail(t *testing.T) {
	_, stdout, _ := runCLI(t, []string{"revert"}, "abc\n\nxyz")
	got := resultLines(stdout)
	want := []string{"cba", "", "zyx"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRun_InvalidUTF8IsFatal(t *testing.T) {
	code, stdout, stderr := runCLI(t, []string{"lowercase"}, "OK\n\xff\n")
	if code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if got := resultLines(stdout); len(got) != 1 || got[0] != "ok" {
		t.Fatalf("expected one result before failure, got %q", got)
	}
	if !strings.HasPrefix(stderr, "Failed to read line: ") {
		t.Fatalf("stderr = %q", stderr)
	}
}

// --- flag-like tokens ---

func TestRun_FlagTokensAreNotOperations(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"--version"}, "Invalid operation."},
		{[]string{"--help"}, "Invalid operation."},
		{[]string{"-h"}, "Invalid operation."},
		{[]string{"-x"}, "Invalid operation."},
		{[]string{"--"}, "Invalid operation."},
		{[]string{"--debug", "lowercase"}, "Please provide only one transformation operation"},
		{[]string{"--", "lowercase"}, "Please provide only one transformation operation"},
		{[]string{"--log-file", "x.log", "lowercase"}, "Please provide only one transformation operation"},
	}
	for _, c := range cases {
		code, stdout, stderr := runCLI(t, c.args, "HELLO\n")
		if code != 1 {
			t.Errorf("args %q: exit code = %d, want 1", c.args, code)
		}
		if stdout != "" {
			t.Errorf("args %q: expected empty stdout, got %q", c.args, stdout)
		}
		if !strings.HasPrefix(stderr, c.want) || !strings.HasSuffix(stderr, "Supported operations: "+wantList+".\n") {
			t.Errorf("args %q: stderr = %q", c.args, stderr)
		}
	}
}

// --- diagnostics ---

func TestRun_DiagnosticsSink(t *testing.T) {
	var out, errb, diag bytes.Buffer
	code := run([]string{"slugify"}, streams{
		In:    strings.NewReader("A B\n"),
		Out:   &out,
		Err:   &errb,
		Diag:  &diag,
		Debug: true,
	})
	if code != 0 {
		t.Fatalf("exit code = %d, stderr=%q", code, errb.String())
	}
	if errb.Len() != 0 {
		t.Fatalf("diagnostics must not reach stderr: %q", errb.String())
	}

	for _, ev := range []string{"repl.started", "repl.line", "repl.eof", `"version":"`} {
		if !strings.Contains(diag.String(), ev) {
			t.Errorf("expected %s in diagnostics, got %s", ev, diag.String())
		}
	}
	if strings.Contains(out.String(), "repl.") {
		t.Fatalf("diagnostics leaked to stdout: %q", out.String())
	}
}

// --- error mapping ---

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&domain.OpError{Kind: domain.KindUsage, Err: domain.ErrArgCount}, 1},
		{&domain.OpError{Kind: domain.KindInputRead, Err: errors.New("x")}, 2},
		{errors.New("other"), 1},
	}
	for _, c := range cases {
		if got := exitCode(c.err); got != c.want {
			t.Errorf("exitCode(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
