package parser

import (
	"pascaline/interpreter-go/pkg/ast"
	"pascaline/interpreter-go/pkg/scanner"
)

// ParseProgram parses a complete program and returns the root of its parse
// tree. A tree comes back even when errors were reported; it holds whatever
// the error recovery could salvage.
func (p *Parser) ParseProgram() *ast.Node {
	programNode := ast.New(ast.NodeProgram)

	p.advance() // load the first token

	if p.current.Kind == scanner.KindProgram {
		p.advance()
	} else {
		p.syntaxError("Expecting PROGRAM")
	}

	if p.current.Kind == scanner.KindIdentifier {
		programName := p.current.Text
		p.symtab.Enter(programName)
		programNode.Text = programName
		p.advance()
	} else {
		p.syntaxError("Expecting program name")
	}

	if p.current.Kind == scanner.KindSemicolon {
		p.advance()
	} else {
		p.syntaxError("Missing ;")
	}

	if p.current.Kind != scanner.KindBegin {
		p.syntaxError("Expecting BEGIN")
	}
	programNode.Adopt(p.parseCompoundStatement())

	if p.current.Kind != scanner.KindPeriod {
		p.syntaxError("Expecting .")
	}
	return programNode
}

// parseStatement dispatches on the current token. It returns nil for an empty
// statement (a stray semicolon) and for an unrecognized token, after
// reporting the latter.
func (p *Parser) parseStatement() *ast.Node {
	var stmtNode *ast.Node
	savedLine := p.current.Line
	p.line = savedLine

	switch p.current.Kind {
	case scanner.KindIdentifier:
		stmtNode = p.parseAssignmentStatement()
	case scanner.KindBegin:
		stmtNode = p.parseCompoundStatement()
	case scanner.KindRepeat:
		stmtNode = p.parseRepeatStatement()
	case scanner.KindWhile:
		stmtNode = p.parseWhileStatement()
	case scanner.KindIf:
		stmtNode = p.parseIfStatement()
	case scanner.KindWrite:
		stmtNode = p.parseWriteStatement()
	case scanner.KindWriteln:
		stmtNode = p.parseWritelnStatement()
	case scanner.KindSemicolon:
		// Empty statement. The semicolon is left for the caller.
	default:
		p.syntaxError("Unexpected token")
	}

	if stmtNode != nil {
		stmtNode.Line = savedLine
	}
	return stmtNode
}

// parseAssignmentStatement handles "name := expression". Assigning is what
// declares a variable: an unknown target is entered into the symbol table
// rather than reported.
func (p *Parser) parseAssignmentStatement() *ast.Node {
	assignmentNode := ast.New(ast.NodeAssign)

	variableName := p.current.Text
	entry := p.symtab.Lookup(variableName)
	if entry == nil {
		entry = p.symtab.Enter(variableName)
	}

	lhsNode := ast.New(ast.NodeVariable)
	lhsNode.Text = variableName
	lhsNode.Entry = entry
	assignmentNode.Adopt(lhsNode)

	p.advance() // past the target variable

	if p.current.Kind == scanner.KindColonEquals {
		p.advance()
	} else {
		p.syntaxError("Missing :=")
	}

	assignmentNode.Adopt(p.parseExpression())
	return assignmentNode
}

func (p *Parser) parseCompoundStatement() *ast.Node {
	compoundNode := ast.New(ast.NodeCompound)
	compoundNode.Line = p.current.Line

	p.advance() // past BEGIN
	p.parseStatementList(compoundNode, scanner.KindEnd)

	if p.current.Kind == scanner.KindEnd {
		p.advance()
	} else {
		p.syntaxError("Expecting END")
	}
	return compoundNode
}

// parseStatementList adopts statements into parentNode until the expected
// terminal token; any other list ender also stops it, leaving the caller to
// report the mismatch. Semicolons separate statements; runs of them collapse
// into nothing.
func (p *Parser) parseStatementList(parentNode *ast.Node, terminal scanner.Kind) {
	for p.current.Kind != terminal && !statementListEnders[p.current.Kind] {
		parentNode.Adopt(p.parseStatement())

		if p.current.Kind == scanner.KindSemicolon {
			for p.current.Kind == scanner.KindSemicolon {
				p.advance()
			}
		} else if statementStarters[p.current.Kind] {
			p.syntaxError("Missing ;")
		}
	}
}

// parseRepeatStatement builds a Loop whose last child is the Test over the
// UNTIL expression. The loop body runs before the test, so a REPEAT body
// always executes at least once.
func (p *Parser) parseRepeatStatement() *ast.Node {
	loopNode := ast.New(ast.NodeLoop)
	p.advance() // past REPEAT

	p.parseStatementList(loopNode, scanner.KindUntil)

	if p.current.Kind == scanner.KindUntil {
		testNode := ast.New(ast.NodeTest)
		p.line = p.current.Line
		testNode.Line = p.line
		p.advance() // past UNTIL
		testNode.Adopt(p.parseExpression())
		loopNode.Adopt(testNode)
	} else {
		p.syntaxError("Expecting UNTIL")
	}
	return loopNode
}

// parseWhileStatement desugars WHILE into the same Loop/Test form as REPEAT:
// the Test comes first and wraps the condition in a Not, so the loop exits as
// soon as the condition stops holding.
func (p *Parser) parseWhileStatement() *ast.Node {
	loopNode := ast.New(ast.NodeLoop)
	p.advance() // past WHILE

	testNode := ast.New(ast.NodeTest)
	notNode := ast.New(ast.NodeNot)
	loopNode.Adopt(testNode)
	testNode.Adopt(notNode)
	notNode.Adopt(p.parseExpression())

	if p.current.Kind == scanner.KindDo {
		p.advance()
	} else {
		p.syntaxError("Expecting DO")
	}
	loopNode.Adopt(p.parseStatement())
	return loopNode
}

func (p *Parser) parseIfStatement() *ast.Node {
	ifNode := ast.New(ast.NodeIf)
	p.advance() // past IF

	ifNode.Adopt(p.parseExpression())

	if p.current.Kind == scanner.KindThen {
		p.advance()
	} else {
		p.syntaxError("Expecting THEN")
	}

	ifNode.Adopt(p.parseStatement())

	if p.current.Kind == scanner.KindElse {
		p.advance()
		ifNode.Adopt(p.parseStatement())
	}
	return ifNode
}

func (p *Parser) parseWriteStatement() *ast.Node {
	writeNode := ast.New(ast.NodeWrite)
	p.advance() // past WRITE

	p.parseWriteArguments(writeNode)
	if len(writeNode.Children) == 0 {
		p.syntaxError("Invalid WRITE statement")
	}
	return writeNode
}

func (p *Parser) parseWritelnStatement() *ast.Node {
	writelnNode := ast.New(ast.NodeWriteln)
	p.advance() // past WRITELN

	// A bare WRITELN is legal: it just ends the output line.
	if p.current.Kind == scanner.KindLParen {
		p.parseWriteArguments(writelnNode)
	}
	return writelnNode
}

// parseWriteArguments parses "(value)", "(value:width)", or
// "(value:width:decimals)". The value lands in node's first child slot, the
// width and decimals (when given) in the next two.
func (p *Parser) parseWriteArguments(node *ast.Node) {
	hasArgument := false

	if p.current.Kind == scanner.KindLParen {
		p.advance()
	} else {
		p.syntaxError("Missing left parenthesis")
	}

	switch p.current.Kind {
	case scanner.KindIdentifier:
		node.Adopt(p.parseVariable())
		hasArgument = true
	case scanner.KindString:
		node.Adopt(p.parseStringConstant())
		hasArgument = true
	default:
		p.syntaxError("Invalid WRITE or WRITELN statement")
	}

	if hasArgument && p.current.Kind == scanner.KindColon {
		p.advance() // past :

		if p.current.Kind == scanner.KindInteger {
			node.Adopt(p.parseIntegerConstant())

			if p.current.Kind == scanner.KindColon {
				p.advance() // past :

				if p.current.Kind == scanner.KindInteger {
					node.Adopt(p.parseIntegerConstant())
				} else {
					p.syntaxError("Invalid count of decimal places")
				}
			}
		} else {
			p.syntaxError("Invalid field width")
		}
	}

	if p.current.Kind == scanner.KindRParen {
		p.advance()
	} else {
		p.syntaxError("Missing right parenthesis")
	}
}
