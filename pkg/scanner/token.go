package scanner

// Kind classifies a lexical token.
type Kind uint8

const (
	KindEOF Kind = iota
	KindError

	// Reserved words.
	KindProgram
	KindBegin
	KindEnd
	KindRepeat
	KindUntil
	KindWhile
	KindDo
	KindIf
	KindThen
	KindElse
	KindFor
	KindWrite
	KindWriteln
	KindDiv
	KindMod
	KindAnd
	KindOr
	KindNot

	// Punctuation and operators.
	KindSemicolon
	KindColon
	KindColonEquals
	KindPeriod
	KindComma
	KindLParen
	KindRParen
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindEquals
	KindNotEquals
	KindLessThan
	KindLessEquals
	KindGreaterThan
	KindGreaterEquals

	// Literals and names.
	KindIdentifier
	KindInteger
	KindReal
	KindString
)

var kindNames = map[Kind]string{
	KindEOF:           "end-of-file",
	KindError:         "error",
	KindProgram:       "PROGRAM",
	KindBegin:         "BEGIN",
	KindEnd:           "END",
	KindRepeat:        "REPEAT",
	KindUntil:         "UNTIL",
	KindWhile:         "WHILE",
	KindDo:            "DO",
	KindIf:            "IF",
	KindThen:          "THEN",
	KindElse:          "ELSE",
	KindFor:           "FOR",
	KindWrite:         "WRITE",
	KindWriteln:       "WRITELN",
	KindDiv:           "DIV",
	KindMod:           "MOD",
	KindAnd:           "AND",
	KindOr:            "OR",
	KindNot:           "NOT",
	KindSemicolon:     ";",
	KindColon:         ":",
	KindColonEquals:   ":=",
	KindPeriod:        ".",
	KindComma:         ",",
	KindLParen:        "(",
	KindRParen:        ")",
	KindPlus:          "+",
	KindMinus:         "-",
	KindStar:          "*",
	KindSlash:         "/",
	KindEquals:        "=",
	KindNotEquals:     "<>",
	KindLessThan:      "<",
	KindLessEquals:    "<=",
	KindGreaterThan:   ">",
	KindGreaterEquals: ">=",
	KindIdentifier:    "identifier",
	KindInteger:       "integer",
	KindReal:          "real",
	KindString:        "string",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is one lexical unit of a source program. Text is the raw source
// spelling; Value carries the decoded literal for integer (int64), real
// (float64), and string (string) tokens and is nil otherwise.
type Token struct {
	Kind  Kind
	Text  string
	Value any
	Line  int
}
