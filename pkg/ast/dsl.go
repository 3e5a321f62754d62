package ast

import "pascaline/interpreter-go/pkg/runtime"

// Helpers for assembling trees by hand in tests.

// Leaf helpers.

func Var(name string, entry *runtime.Entry) *Node {
	n := New(NodeVariable)
	n.Text = name
	n.Entry = entry
	return n
}

func Int(value int64) *Node {
	n := New(NodeIntegerConstant)
	n.Value = value
	return n
}

func Real(value float64) *Node {
	n := New(NodeRealConstant)
	n.Value = value
	return n
}

func Str(value string) *Node {
	n := New(NodeStringConstant)
	n.Value = value
	return n
}

// Operator helpers.

func Unary(nodeType NodeType, operand *Node) *Node {
	n := New(nodeType)
	n.Adopt(operand)
	return n
}

func Binary(nodeType NodeType, left, right *Node) *Node {
	n := New(nodeType)
	n.Adopt(left)
	n.Adopt(right)
	return n
}

// Statement helpers.

func Program(name string, body *Node) *Node {
	n := New(NodeProgram)
	n.Text = name
	n.Adopt(body)
	return n
}

func Compound(statements ...*Node) *Node {
	n := New(NodeCompound)
	for _, statement := range statements {
		n.Adopt(statement)
	}
	return n
}

func Assign(target, value *Node) *Node {
	n := New(NodeAssign)
	n.Adopt(target)
	n.Adopt(value)
	return n
}

func Loop(children ...*Node) *Node {
	n := New(NodeLoop)
	for _, child := range children {
		n.Adopt(child)
	}
	return n
}

func Test(condition *Node) *Node {
	n := New(NodeTest)
	n.Adopt(condition)
	return n
}

func If(condition, then *Node) *Node {
	n := New(NodeIf)
	n.Adopt(condition)
	n.Adopt(then)
	return n
}

func IfElse(condition, then, otherwise *Node) *Node {
	n := If(condition, then)
	n.Adopt(otherwise)
	return n
}

func Write(args ...*Node) *Node {
	n := New(NodeWrite)
	for _, arg := range args {
		n.Adopt(arg)
	}
	return n
}

func Writeln(args ...*Node) *Node {
	n := New(NodeWriteln)
	for _, arg := range args {
		n.Adopt(arg)
	}
	return n
}
