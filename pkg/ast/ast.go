package ast

import "pascaline/interpreter-go/pkg/runtime"

// NodeType tags the role a node plays in the parse tree.
type NodeType string

const (
	// Structural nodes.
	NodeProgram  NodeType = "Program"
	NodeCompound NodeType = "Compound"
	NodeAssign   NodeType = "Assign"
	NodeLoop     NodeType = "Loop"
	NodeTest     NodeType = "Test"
	NodeIf       NodeType = "If"
	NodeWrite    NodeType = "Write"
	NodeWriteln  NodeType = "Writeln"

	// Leaves.
	NodeVariable        NodeType = "Variable"
	NodeIntegerConstant NodeType = "IntegerConstant"
	NodeRealConstant    NodeType = "RealConstant"
	NodeStringConstant  NodeType = "StringConstant"

	// Unary operators.
	NodeNegate NodeType = "Negate"
	NodeNot    NodeType = "Not"

	// Binary operators.
	NodeAdd           NodeType = "Add"
	NodeSubtract      NodeType = "Subtract"
	NodeMultiply      NodeType = "Multiply"
	NodeDivide        NodeType = "Divide"
	NodeIntegerDivide NodeType = "IntegerDivide"
	NodeModulo        NodeType = "Modulo"
	NodeAnd           NodeType = "And"
	NodeOr            NodeType = "Or"
	NodeEq            NodeType = "Eq"
	NodeNe            NodeType = "Ne"
	NodeLt            NodeType = "Lt"
	NodeLte           NodeType = "Lte"
	NodeGt            NodeType = "Gt"
	NodeGte           NodeType = "Gte"
)

// Node is one vertex of the parse tree. A single struct covers every node
// type; the parser fills in the attributes that are meaningful for each:
//
//   - Text holds the source spelling for variables, the program name, and
//     operators (operators keep it so runtime diagnostics can show them).
//   - Value holds the literal for constant nodes: int64, float64, or string.
//   - Entry links a variable to its symbol table record. It is nil exactly
//     when the identifier was undeclared at parse time; evaluation must then
//     treat the variable as undefined rather than fail.
//
// Trees are built once during parsing and never mutated afterwards.
type Node struct {
	Type     NodeType
	Text     string
	Value    any
	Entry    *runtime.Entry
	Line     int
	Children []*Node
}

// New returns a node of the given type with no children.
func New(nodeType NodeType) *Node {
	return &Node{Type: nodeType}
}

// Adopt appends child to the node's ordered children. A nil child (from an
// unparsable subexpression) is dropped so error recovery leaves no holes.
func (n *Node) Adopt(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
}
