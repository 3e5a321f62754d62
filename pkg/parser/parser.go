package parser

import (
	"fmt"
	"io"

	"pascaline/interpreter-go/pkg/ast"
	"pascaline/interpreter-go/pkg/runtime"
	"pascaline/interpreter-go/pkg/scanner"
)

// TokenSource yields the lexical tokens of one source program, ending with an
// end-of-file token that repeats on every further call. *scanner.Scanner
// satisfies it; tests may substitute hand-built streams.
type TokenSource interface {
	NextToken() scanner.Token
}

// Parser builds a parse tree from a token stream by recursive descent.
//
// The parser never stops at the first problem. Each syntax error is written to
// the diagnostic writer and the parser resynchronizes at the next token that
// can follow a statement, so one pass reports every error in the program.
// Callers must check ErrorCount before executing the resulting tree.
type Parser struct {
	tokens  TokenSource
	symtab  *runtime.Symtab
	out     io.Writer
	current scanner.Token
	line    int
	errors  int
}

// New returns a parser that reads from tokens, records variables in symtab,
// and writes diagnostics to out.
func New(tokens TokenSource, symtab *runtime.Symtab, out io.Writer) *Parser {
	return &Parser{tokens: tokens, symtab: symtab, out: out, line: 1}
}

// ErrorCount reports how many syntax and semantic errors have been found.
func (p *Parser) ErrorCount() int { return p.errors }

func (p *Parser) advance() {
	p.current = p.tokens.NextToken()
}

//-----------------------------------------------------------------------------
// Token classification

// Tokens that can start a statement.
var statementStarters = map[scanner.Kind]bool{
	scanner.KindBegin:      true,
	scanner.KindIdentifier: true,
	scanner.KindRepeat:     true,
	scanner.KindWhile:      true,
	scanner.KindIf:         true,
	scanner.KindFor:        true,
	scanner.KindWrite:      true,
	scanner.KindWriteln:    true,
}

// Tokens that can immediately follow a statement. Error recovery skips ahead
// to one of these.
var statementFollowers = map[scanner.Kind]bool{
	scanner.KindSemicolon: true,
	scanner.KindEnd:       true,
	scanner.KindUntil:     true,
	scanner.KindEOF:       true,
}

// Tokens that end a statement list no matter which terminal the caller
// expects. Error recovery parks on follower tokens without consuming them, so
// the list must stop on all of these or a stray END or UNTIL would spin
// forever.
var statementListEnders = map[scanner.Kind]bool{
	scanner.KindEnd:   true,
	scanner.KindUntil: true,
	scanner.KindEOF:   true,
}

var relationalOperators = map[scanner.Kind]ast.NodeType{
	scanner.KindEquals:        ast.NodeEq,
	scanner.KindNotEquals:     ast.NodeNe,
	scanner.KindLessThan:      ast.NodeLt,
	scanner.KindLessEquals:    ast.NodeLte,
	scanner.KindGreaterThan:   ast.NodeGt,
	scanner.KindGreaterEquals: ast.NodeGte,
}

var simpleExpressionOperators = map[scanner.Kind]ast.NodeType{
	scanner.KindPlus:  ast.NodeAdd,
	scanner.KindMinus: ast.NodeSubtract,
	scanner.KindOr:    ast.NodeOr,
}

var termOperators = map[scanner.Kind]ast.NodeType{
	scanner.KindStar:  ast.NodeMultiply,
	scanner.KindSlash: ast.NodeDivide,
	scanner.KindDiv:   ast.NodeIntegerDivide,
	scanner.KindMod:   ast.NodeModulo,
	scanner.KindAnd:   ast.NodeAnd,
}

//-----------------------------------------------------------------------------
// Diagnostics

// syntaxError reports a syntax problem and resynchronizes by skipping tokens
// until one that can follow a statement, abandoning the rest of the current
// statement.
func (p *Parser) syntaxError(message string) {
	fmt.Fprintf(p.out, "SYNTAX ERROR at line %d: %s at '%s'\n", p.line, message, p.current.Text)
	p.errors++

	for !statementFollowers[p.current.Kind] {
		p.advance()
	}
}

// semanticError reports a semantic problem. The parse continues from the
// current token; nothing is skipped.
func (p *Parser) semanticError(message string) {
	fmt.Fprintf(p.out, "SEMANTIC ERROR at line %d: %s at '%s'\n", p.line, message, p.current.Text)
	p.errors++
}
