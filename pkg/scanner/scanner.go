package scanner

import (
	"strconv"
	"strings"
)

// keywords maps lowercased reserved words to token kinds. Pascal is
// case-insensitive, so the scanner folds the word before the lookup.
var keywords = map[string]Kind{
	"program": KindProgram,
	"begin":   KindBegin,
	"end":     KindEnd,
	"repeat":  KindRepeat,
	"until":   KindUntil,
	"while":   KindWhile,
	"do":      KindDo,
	"if":      KindIf,
	"then":    KindThen,
	"else":    KindElse,
	"for":     KindFor,
	"write":   KindWrite,
	"writeln": KindWriteln,
	"div":     KindDiv,
	"mod":     KindMod,
	"and":     KindAnd,
	"or":      KindOr,
	"not":     KindNot,
}

// Scanner turns source text into a token stream in a single forward pass.
// Once the end of input is reached every further call yields an end-of-file
// token.
type Scanner struct {
	source []byte
	cursor int
	line   int
}

// New returns a scanner positioned at the start of source.
func New(source []byte) *Scanner {
	return &Scanner{source: source, line: 1}
}

// NextToken scans and returns the next token.
func (s *Scanner) NextToken() Token {
	s.skipBlanks()
	if s.atEnd() {
		return Token{Kind: KindEOF, Line: s.line}
	}

	ch := s.source[s.cursor]
	switch {
	case isLetter(ch):
		return s.scanWord()
	case isDigit(ch):
		return s.scanNumber()
	case ch == '\'':
		return s.scanString()
	default:
		return s.scanSymbol()
	}
}

func (s *Scanner) skipBlanks() {
	for !s.atEnd() {
		switch s.source[s.cursor] {
		case ' ', '\t', '\r':
			s.cursor++
		case '\n':
			s.line++
			s.cursor++
		case '{':
			s.skipComment()
		default:
			return
		}
	}
}

func (s *Scanner) skipComment() {
	s.cursor++ // opening brace
	for !s.atEnd() {
		ch := s.source[s.cursor]
		s.cursor++
		if ch == '\n' {
			s.line++
		}
		if ch == '}' {
			return
		}
	}
}

func (s *Scanner) scanWord() Token {
	start := s.cursor
	line := s.line
	for !s.atEnd() && isLetterOrDigit(s.source[s.cursor]) {
		s.cursor++
	}
	text := string(s.source[start:s.cursor])
	if kind, ok := keywords[strings.ToLower(text)]; ok {
		return Token{Kind: kind, Text: text, Line: line}
	}
	return Token{Kind: KindIdentifier, Text: text, Line: line}
}

func (s *Scanner) scanNumber() Token {
	start := s.cursor
	line := s.line
	for !s.atEnd() && isDigit(s.source[s.cursor]) {
		s.cursor++
	}

	// A decimal point makes this a real constant, but only when a digit
	// follows: the program's trailing period must stay its own token.
	isReal := false
	if s.peek() == '.' && isDigit(s.peekNext()) {
		isReal = true
		s.cursor++ // decimal point
		for !s.atEnd() && isDigit(s.source[s.cursor]) {
			s.cursor++
		}
	}

	text := string(s.source[start:s.cursor])
	if isReal {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{Kind: KindError, Text: text, Line: line}
		}
		return Token{Kind: KindReal, Text: text, Value: value, Line: line}
	}
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{Kind: KindError, Text: text, Line: line}
	}
	return Token{Kind: KindInteger, Text: text, Value: value, Line: line}
}

func (s *Scanner) scanString() Token {
	start := s.cursor
	line := s.line
	s.cursor++ // opening quote

	var value strings.Builder
	for !s.atEnd() {
		ch := s.source[s.cursor]
		if ch == '\n' {
			break // strings do not span lines
		}
		if ch == '\'' {
			if s.peekNext() == '\'' {
				// A doubled quote embeds a single quote.
				value.WriteByte('\'')
				s.cursor += 2
				continue
			}
			s.cursor++ // closing quote
			return Token{
				Kind:  KindString,
				Text:  string(s.source[start:s.cursor]),
				Value: value.String(),
				Line:  line,
			}
		}
		value.WriteByte(ch)
		s.cursor++
	}
	return Token{Kind: KindError, Text: string(s.source[start:s.cursor]), Line: line}
}

func (s *Scanner) scanSymbol() Token {
	line := s.line
	ch := s.source[s.cursor]
	s.cursor++

	kind := KindError
	text := string(ch)

	switch ch {
	case ';':
		kind = KindSemicolon
	case '.':
		kind = KindPeriod
	case ',':
		kind = KindComma
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '*':
		kind = KindStar
	case '/':
		kind = KindSlash
	case '=':
		kind = KindEquals
	case ':':
		kind = KindColon
		if s.peek() == '=' {
			kind = KindColonEquals
			text = ":="
			s.cursor++
		}
	case '<':
		kind = KindLessThan
		switch s.peek() {
		case '=':
			kind = KindLessEquals
			text = "<="
			s.cursor++
		case '>':
			kind = KindNotEquals
			text = "<>"
			s.cursor++
		}
	case '>':
		kind = KindGreaterThan
		if s.peek() == '=' {
			kind = KindGreaterEquals
			text = ">="
			s.cursor++
		}
	}

	return Token{Kind: kind, Text: text, Line: line}
}

func (s *Scanner) atEnd() bool { return s.cursor >= len(s.source) }

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.cursor]
}

func (s *Scanner) peekNext() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isLetterOrDigit(ch byte) bool { return isLetter(ch) || isDigit(ch) }
