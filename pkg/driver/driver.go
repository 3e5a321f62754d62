// Package driver wires the scanner, parser, and executor into a single
// run pipeline and loads program.yml manifests.
package driver

import (
	"errors"
	"fmt"
	"io"

	"pascaline/interpreter-go/pkg/ast"
	"pascaline/interpreter-go/pkg/interpreter"
	"pascaline/interpreter-go/pkg/parser"
	"pascaline/interpreter-go/pkg/runtime"
	"pascaline/interpreter-go/pkg/scanner"
)

// Session binds the pipeline to one output stream. Parser diagnostics,
// program output, and the fatal runtime line all go to that stream, so
// they interleave in the order the run produced them.
type Session struct {
	out io.Writer
}

// New returns a session writing to out.
func New(out io.Writer) *Session {
	return &Session{out: out}
}

// Outcome reports what a session did with one source text.
type Outcome struct {
	Tree       *ast.Node
	Errors     int
	RuntimeErr *interpreter.RuntimeError
}

// Check parses source without executing it. Diagnostics go to the
// session's output stream; the count of them comes back in the outcome.
func (s *Session) Check(source []byte) *Outcome {
	p := parser.New(scanner.New(source), runtime.NewSymtab(), s.out)
	tree := p.ParseProgram()
	return &Outcome{Tree: tree, Errors: p.ErrorCount()}
}

// Run parses source and, when the parse reported no errors, executes
// the tree. A fatal runtime error stops execution, is printed after
// whatever output the program already produced, and is returned in the
// outcome rather than as the error value.
func (s *Session) Run(source []byte) (*Outcome, error) {
	outcome := s.Check(source)
	if outcome.Errors > 0 {
		return outcome, nil
	}
	if err := interpreter.New(s.out).Execute(outcome.Tree); err != nil {
		var runtimeErr *interpreter.RuntimeError
		if !errors.As(err, &runtimeErr) {
			return outcome, err
		}
		outcome.RuntimeErr = runtimeErr
		fmt.Fprintln(s.out, runtimeErr.Error())
	}
	return outcome, nil
}
