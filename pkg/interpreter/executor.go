package interpreter

import (
	"fmt"
	"io"

	"pascaline/interpreter-go/pkg/ast"
	"pascaline/interpreter-go/pkg/runtime"
)

// Executor walks a parse tree once, depth first, writing program output to
// its writer and mutating symbol table entries through the Variable nodes'
// links. It keeps no tree state of its own; the only thing it tracks is the
// line of the statement currently executing, for runtime diagnostics.
//
// The executor assumes a tree the parser produced with a zero error count.
// It stays total over node kinds regardless: unresolved variables read as
// undefined and type-mismatched operands coerce rather than crash.
type Executor struct {
	out  io.Writer
	line int
}

// New returns an executor writing program output to out.
func New(out io.Writer) *Executor {
	return &Executor{out: out}
}

// Execute runs the program rooted at tree. The returned error is nil unless
// evaluation hit the one fatal condition, division by zero; then it is a
// *RuntimeError and nothing after the offending expression has run.
func (e *Executor) Execute(tree *ast.Node) error {
	_, err := e.visit(tree)
	return err
}

// RuntimeError is the fatal evaluation failure. The executor does not print
// it or halt the process; it hands the error to the caller, which owns both
// decisions.
type RuntimeError struct {
	Line     int
	Message  string
	NodeText string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR at line %d: %s: %s", e.Line, e.Message, e.NodeText)
}

func (e *Executor) runtimeError(node *ast.Node, message string) error {
	return &RuntimeError{Line: e.line, Message: message, NodeText: node.Text}
}

// visit dispatches on the node kind. Statements yield no value; expressions
// yield a runtime value. A Test yields the boolean its loop inspects.
func (e *Executor) visit(node *ast.Node) (runtime.Value, error) {
	switch node.Type {
	case ast.NodeProgram:
		return e.visit(node.Children[0])

	case ast.NodeCompound, ast.NodeAssign, ast.NodeLoop, ast.NodeIf,
		ast.NodeWrite, ast.NodeWriteln:
		return e.visitStatement(node)

	case ast.NodeTest:
		return e.visit(node.Children[0])

	default:
		return e.visitExpression(node)
	}
}

func (e *Executor) visitStatement(node *ast.Node) (runtime.Value, error) {
	e.line = node.Line

	switch node.Type {
	case ast.NodeCompound:
		return e.visitCompound(node)
	case ast.NodeAssign:
		return e.visitAssign(node)
	case ast.NodeLoop:
		return e.visitLoop(node)
	case ast.NodeIf:
		return e.visitIf(node)
	case ast.NodeWrite:
		return e.visitWrite(node)
	case ast.NodeWriteln:
		return e.visitWriteln(node)
	default:
		return nil, nil
	}
}
