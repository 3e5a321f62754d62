package interpreter

import (
	"math"

	"pascaline/interpreter-go/pkg/ast"
	"pascaline/interpreter-go/pkg/runtime"
)

// visitExpression evaluates leaves, unary operators, and binary operators.
// Binary operands are always both evaluated, left first; AND and OR do not
// short-circuit.
func (e *Executor) visitExpression(node *ast.Node) (runtime.Value, error) {
	switch node.Type {
	case ast.NodeVariable:
		return e.visitVariable(node), nil
	case ast.NodeIntegerConstant:
		return runtime.NumberValue{Val: float64(node.Value.(int64))}, nil
	case ast.NodeRealConstant:
		return runtime.NumberValue{Val: node.Value.(float64)}, nil
	case ast.NodeStringConstant:
		return runtime.StringValue{Val: node.Value.(string)}, nil
	case ast.NodeNot:
		value, err := e.visit(node.Children[0])
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: !runtime.AsBool(value)}, nil
	case ast.NodeNegate:
		value, err := e.visit(node.Children[0])
		if err != nil {
			return nil, err
		}
		return runtime.NumberValue{Val: -runtime.AsNumber(value)}, nil
	}

	left, err := e.visit(node.Children[0])
	if err != nil {
		return nil, err
	}
	right, err := e.visit(node.Children[1])
	if err != nil {
		return nil, err
	}
	a, b := runtime.AsNumber(left), runtime.AsNumber(right)

	switch node.Type {
	case ast.NodeEq:
		return runtime.BoolValue{Val: a == b}, nil
	case ast.NodeNe:
		return runtime.BoolValue{Val: a != b}, nil
	case ast.NodeLt:
		return runtime.BoolValue{Val: a < b}, nil
	case ast.NodeLte:
		return runtime.BoolValue{Val: a <= b}, nil
	case ast.NodeGt:
		return runtime.BoolValue{Val: a > b}, nil
	case ast.NodeGte:
		return runtime.BoolValue{Val: a >= b}, nil

	case ast.NodeAnd:
		return runtime.BoolValue{Val: runtime.AsBool(left) && runtime.AsBool(right)}, nil
	case ast.NodeOr:
		return runtime.BoolValue{Val: runtime.AsBool(left) || runtime.AsBool(right)}, nil

	case ast.NodeAdd:
		return runtime.NumberValue{Val: a + b}, nil
	case ast.NodeSubtract:
		return runtime.NumberValue{Val: a - b}, nil
	case ast.NodeMultiply:
		return runtime.NumberValue{Val: a * b}, nil

	case ast.NodeDivide:
		if b == 0 {
			return nil, e.runtimeError(node, "Division by zero")
		}
		return runtime.NumberValue{Val: a / b}, nil
	case ast.NodeIntegerDivide:
		// Quotient truncated toward zero, still carried as a number.
		if b == 0 {
			return nil, e.runtimeError(node, "Division by zero")
		}
		return runtime.NumberValue{Val: math.Trunc(a / b)}, nil
	case ast.NodeModulo:
		if b == 0 {
			return nil, e.runtimeError(node, "Division by zero")
		}
		return runtime.NumberValue{Val: math.Mod(a, b)}, nil

	default:
		return runtime.UndefinedValue{}, nil
	}
}

// visitVariable reads the variable's current value. An unresolved entry (the
// name was undeclared) and a never-assigned entry both read as undefined;
// the coercions turn that into zero or false at the point of use.
func (e *Executor) visitVariable(node *ast.Node) runtime.Value {
	if node.Entry == nil {
		return runtime.UndefinedValue{}
	}
	value, ok := node.Entry.Value()
	if !ok {
		return runtime.UndefinedValue{}
	}
	return runtime.NumberValue{Val: value}
}
