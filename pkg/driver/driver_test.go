package driver

import (
	"strings"
	"testing"
)

func TestSessionRunExecutesCleanParse(t *testing.T) {
	var out strings.Builder
	outcome, err := New(&out).Run([]byte(`
PROGRAM greet;
BEGIN
    WRITELN('hello')
END.
`))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if outcome.Errors != 0 {
		t.Fatalf("Errors = %d, want 0:\n%s", outcome.Errors, out.String())
	}
	if outcome.RuntimeErr != nil {
		t.Fatalf("unexpected runtime error: %v", outcome.RuntimeErr)
	}
	if got := out.String(); got != "hello\n" {
		t.Fatalf("output = %q, want %q", got, "hello\n")
	}
}

func TestSessionRunSkipsExecutionOnParseErrors(t *testing.T) {
	var out strings.Builder
	outcome, err := New(&out).Run([]byte(`
PROGRAM broken;
BEGIN
    WRITELN('never');
    y :=
END.
`))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if outcome.Errors != 1 {
		t.Fatalf("Errors = %d, want 1:\n%s", outcome.Errors, out.String())
	}
	want := "SYNTAX ERROR at line 5: Unexpected token at 'END'\n"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
	if strings.Contains(out.String(), "never") {
		t.Fatal("program ran despite parse errors")
	}
}

func TestSessionRunInterleavesRuntimeError(t *testing.T) {
	var out strings.Builder
	outcome, err := New(&out).Run([]byte(`
PROGRAM boom;
BEGIN
    WRITELN('before');
    x := 1 / 0
END.
`))
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if outcome.RuntimeErr == nil {
		t.Fatal("expected a runtime error, got none")
	}
	if got := outcome.RuntimeErr.Line; got != 5 {
		t.Fatalf("RuntimeErr.Line = %d, want 5", got)
	}
	want := "before\nRUNTIME ERROR at line 5: Division by zero: /\n"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestSessionCheckParsesWithoutExecuting(t *testing.T) {
	var out strings.Builder
	outcome := New(&out).Check([]byte(`
PROGRAM quiet;
BEGIN
    WRITELN('loud')
END.
`))
	if outcome.Errors != 0 {
		t.Fatalf("Errors = %d, want 0:\n%s", outcome.Errors, out.String())
	}
	if outcome.Tree == nil || outcome.Tree.Text != "quiet" {
		t.Fatalf("tree not returned or misnamed: %#v", outcome.Tree)
	}
	if got := out.String(); got != "" {
		t.Fatalf("Check produced output %q, want none", got)
	}
}

func TestSessionCheckCountsSemanticErrors(t *testing.T) {
	var out strings.Builder
	outcome := New(&out).Check([]byte(`
PROGRAM ghost;
BEGIN
    x := y
END.
`))
	if outcome.Errors != 1 {
		t.Fatalf("Errors = %d, want 1:\n%s", outcome.Errors, out.String())
	}
	want := "SEMANTIC ERROR at line 4: Undeclared identifier at 'y'\n"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}
