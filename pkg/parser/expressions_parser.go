package parser

import (
	"pascaline/interpreter-go/pkg/ast"
	"pascaline/interpreter-go/pkg/scanner"
)

// Infix operator nodes record the operator's source spelling in Text so
// runtime diagnostics can point at it.

// parseExpression parses a simple expression, optionally followed by exactly
// one relational operator and a second simple expression. Relational
// operators do not chain.
func (p *Parser) parseExpression() *ast.Node {
	exprNode := p.parseSimpleExpression()

	if nodeType, ok := relationalOperators[p.current.Kind]; ok {
		opNode := ast.New(nodeType)
		opNode.Text = p.current.Text
		p.advance() // past the operator

		opNode.Adopt(exprNode)
		opNode.Adopt(p.parseSimpleExpression())
		exprNode = opNode
	}
	return exprNode
}

// parseSimpleExpression parses a term followed by any number of +, -, or OR
// operators. The operators associate to the left: each new operator node
// adopts the tree built so far as its first child.
func (p *Parser) parseSimpleExpression() *ast.Node {
	simpleNode := p.parseTerm()

	for {
		nodeType, ok := simpleExpressionOperators[p.current.Kind]
		if !ok {
			break
		}
		opNode := ast.New(nodeType)
		opNode.Text = p.current.Text
		p.advance() // past the operator

		opNode.Adopt(simpleNode)
		opNode.Adopt(p.parseTerm())
		simpleNode = opNode
	}
	return simpleNode
}

// parseTerm parses a factor followed by any number of *, /, DIV, MOD, or AND
// operators, again left-associated. A leading sign belongs to the first
// factor only: -a * b negates a, not the product.
func (p *Parser) parseTerm() *ast.Node {
	var termNode *ast.Node

	switch p.current.Kind {
	case scanner.KindPlus:
		p.advance() // a leading + is a no-op
		termNode = p.parseFactor()
	case scanner.KindMinus:
		p.advance()
		termNode = ast.New(ast.NodeNegate)
		termNode.Adopt(p.parseFactor())
	default:
		termNode = p.parseFactor()
	}

	for {
		nodeType, ok := termOperators[p.current.Kind]
		if !ok {
			break
		}
		opNode := ast.New(nodeType)
		opNode.Text = p.current.Text
		p.advance() // past the operator

		opNode.Adopt(termNode)
		opNode.Adopt(p.parseFactor())
		termNode = opNode
	}
	return termNode
}

// parseFactor handles the leaves of the expression grammar plus parenthesized
// subexpressions and NOT. It returns nil after reporting an unexpected token;
// Adopt drops the nil so the hole disappears from the tree.
func (p *Parser) parseFactor() *ast.Node {
	switch p.current.Kind {
	case scanner.KindIdentifier:
		return p.parseVariable()
	case scanner.KindInteger:
		return p.parseIntegerConstant()
	case scanner.KindReal:
		return p.parseRealConstant()
	case scanner.KindLParen:
		p.advance() // past (
		exprNode := p.parseExpression()

		if p.current.Kind == scanner.KindRParen {
			p.advance()
		} else {
			p.syntaxError("Expecting )")
		}
		return exprNode
	case scanner.KindNot:
		notNode := ast.New(ast.NodeNot)
		p.advance() // past NOT
		notNode.Adopt(p.parseFactor())
		return notNode
	default:
		p.syntaxError("Unexpected token")
		return nil
	}
}

// parseVariable builds a Variable node for an identifier read in an
// expression. Reading does not declare: an unknown name draws a semantic
// error, one per occurrence, and leaves the node's Entry nil.
func (p *Parser) parseVariable() *ast.Node {
	variableName := p.current.Text
	entry := p.symtab.Lookup(variableName)
	if entry == nil {
		p.semanticError("Undeclared identifier")
	}

	node := ast.New(ast.NodeVariable)
	node.Text = variableName
	node.Entry = entry

	p.advance() // past the identifier
	return node
}

func (p *Parser) parseIntegerConstant() *ast.Node {
	node := ast.New(ast.NodeIntegerConstant)
	node.Value = p.current.Value
	p.advance()
	return node
}

func (p *Parser) parseRealConstant() *ast.Node {
	node := ast.New(ast.NodeRealConstant)
	node.Value = p.current.Value
	p.advance()
	return node
}

func (p *Parser) parseStringConstant() *ast.Node {
	node := ast.New(ast.NodeStringConstant)
	node.Value = p.current.Value
	p.advance()
	return node
}
