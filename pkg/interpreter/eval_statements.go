package interpreter

import (
	"fmt"
	"strconv"

	"pascaline/interpreter-go/pkg/ast"
	"pascaline/interpreter-go/pkg/runtime"
)

func (e *Executor) visitCompound(node *ast.Node) (runtime.Value, error) {
	for _, statement := range node.Children {
		if _, err := e.visit(statement); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (e *Executor) visitAssign(node *ast.Node) (runtime.Value, error) {
	value, err := e.visit(node.Children[1])
	if err != nil {
		return nil, err
	}
	if entry := node.Children[0].Entry; entry != nil {
		entry.SetValue(runtime.AsNumber(value))
	}
	return nil, nil
}

// visitLoop runs the generic loop protocol: evaluate the children in order,
// over and over; a Test child that comes up true stops the loop at once,
// skipping the rest of the pass. With the test last this is a post-test
// REPEAT; with a negated test first it is a pre-test WHILE. One protocol
// serves both.
func (e *Executor) visitLoop(node *ast.Node) (runtime.Value, error) {
	for {
		stop := false
		for _, child := range node.Children {
			value, err := e.visit(child)
			if err != nil {
				return nil, err
			}
			stop = child.Type == ast.NodeTest && runtime.AsBool(value)
			if stop {
				break
			}
		}
		if stop {
			return nil, nil
		}
	}
}

// visitIf evaluates the condition and runs the matching branch. A branch can
// be missing (an empty statement parsed to nothing); then the arm is a no-op.
func (e *Executor) visitIf(node *ast.Node) (runtime.Value, error) {
	condition, err := e.visit(node.Children[0])
	if err != nil {
		return nil, err
	}

	if runtime.AsBool(condition) {
		if len(node.Children) > 1 {
			return e.visit(node.Children[1])
		}
	} else if len(node.Children) > 2 {
		return e.visit(node.Children[2])
	}
	return nil, nil
}

func (e *Executor) visitWrite(node *ast.Node) (runtime.Value, error) {
	return nil, e.printValue(node.Children)
}

func (e *Executor) visitWriteln(node *ast.Node) (runtime.Value, error) {
	if len(node.Children) > 0 {
		if err := e.printValue(node.Children); err != nil {
			return nil, err
		}
	}
	fmt.Fprintln(e.out)
	return nil, nil
}

// printValue renders children[0] using the optional field width and decimal
// places in children[1] and children[2]. Numeric values always carry a
// precision, defaulting to 0 ("WRITE(x)" prints a whole number); strings pad
// only when an explicit positive width says so.
func (e *Executor) printValue(children []*ast.Node) error {
	fieldWidth := int64(-1)
	decimalPlaces := int64(0)

	if len(children) > 1 {
		value, err := e.visit(children[1])
		if err != nil {
			return err
		}
		fieldWidth = int64(runtime.AsNumber(value))

		if len(children) > 2 {
			value, err := e.visit(children[2])
			if err != nil {
				return err
			}
			decimalPlaces = int64(runtime.AsNumber(value))
		}
	}

	valueNode := children[0]
	value, err := e.visit(valueNode)
	if err != nil {
		return err
	}

	if valueNode.Type == ast.NodeVariable {
		format := "%"
		if fieldWidth >= 0 {
			format += strconv.FormatInt(fieldWidth, 10)
		}
		if decimalPlaces >= 0 {
			format += "." + strconv.FormatInt(decimalPlaces, 10)
		}
		format += "f"
		fmt.Fprintf(e.out, format, runtime.AsNumber(value))
	} else {
		format := "%"
		if fieldWidth > 0 {
			format += strconv.FormatInt(fieldWidth, 10)
		}
		format += "s"
		fmt.Fprintf(e.out, format, runtime.AsString(value))
	}
	return nil
}
