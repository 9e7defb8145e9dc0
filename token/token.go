package token

import "strconv"

type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF
	COMMENT

	literal_beg
	// Identifiers + literals
	IDENT  // puts, console, x
	INT    // 42
	FLOAT  // 3.14
	BIGINT // 42n
	STRING // 'abc' or "abc"
	literal_end

	operator_beg
	// Operators and delimiters
	ASSIGN // =
	NOT    // !

	ADD // +
	SUB // -
	MUL // *
	QUO // /
	REM // %

	ADD_ASSIGN // +=
	SUB_ASSIGN // -=
	MUL_ASSIGN // *=
	QUO_ASSIGN // /=

	INC // ++
	DEC // --

	LAND  // &&
	LOR   // ||
	ARROW // =>

	LPAREN // (
	LBRACK // [
	LBRACE // {
	COMMA  // ,
	PERIOD // .
	SEMI   // ;
	COLON  // :
	RPAREN // )
	RBRACK // ]
	RBRACE // }
	operator_end

	comparison_beg
	EQL        // ==
	STRICT_EQL // ===
	LSS        // <
	GTR        // >
	NEQ        // !=
	STRICT_NEQ // !==
	LEQ        // <=
	GEQ        // >=
	comparison_end

	keyword_beg
	FUNCTION
	VAR
	LET
	CONST
	TRUE
	FALSE
	NULL
	UNDEFINED
	IF
	ELSE
	WHILE
	DO
	FOR
	IN
	OF
	RETURN
	BREAK
	CONTINUE
	THROW
	NEW
	IMPORT
	EXPORT
	keyword_end
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	COMMENT: "COMMENT",

	IDENT:  "IDENT",
	INT:    "INT",
	FLOAT:  "FLOAT",
	BIGINT: "BIGINT",
	STRING: "STRING",

	ASSIGN: "=",
	NOT:    "!",

	ADD: "+",
	SUB: "-",
	MUL: "*",
	QUO: "/",
	REM: "%",

	ADD_ASSIGN: "+=",
	SUB_ASSIGN: "-=",
	MUL_ASSIGN: "*=",
	QUO_ASSIGN: "/=",

	INC: "++",
	DEC: "--",

	LAND:  "&&",
	LOR:   "||",
	ARROW: "=>",

	LPAREN: "(",
	LBRACK: "[",
	LBRACE: "{",
	COMMA:  ",",
	PERIOD: ".",
	SEMI:   ";",
	COLON:  ":",
	RPAREN: ")",
	RBRACK: "]",
	RBRACE: "}",

	EQL:        "==",
	STRICT_EQL: "===",
	LSS:        "<",
	GTR:        ">",
	NEQ:        "!=",
	STRICT_NEQ: "!==",
	LEQ:        "<=",
	GEQ:        ">=",

	FUNCTION:  "function",
	VAR:       "var",
	LET:       "let",
	CONST:     "const",
	TRUE:      "true",
	FALSE:     "false",
	NULL:      "null",
	UNDEFINED: "undefined",
	IF:        "if",
	ELSE:      "else",
	WHILE:     "while",
	DO:        "do",
	FOR:       "for",
	IN:        "in",
	OF:        "of",
	RETURN:    "return",
	BREAK:     "break",
	CONTINUE:  "continue",
	THROW:     "throw",
	NEW:       "new",
	IMPORT:    "import",
	EXPORT:    "export",
}

var keywords map[string]TokenType

func init() {
	keywords = make(map[string]TokenType, keyword_end-keyword_beg)
	for t := keyword_beg + 1; t < keyword_end; t++ {
		keywords[tokens[t]] = t
	}
}

// LookupIdent returns the keyword token type for ident, or IDENT.
func LookupIdent(ident string) TokenType {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return IDENT
}

type Token struct {
	FileName string
	Type     TokenType
	Literal  string
	Line     int
	Column   int
}

func (t Token) IsComparison() bool {
	return comparison_beg < t.Type && t.Type < comparison_end
}

func (t Token) IsLiteral() bool {
	return literal_beg < t.Type && t.Type < literal_end
}

func (t Token) IsKeyword() bool {
	return keyword_beg < t.Type && t.Type < keyword_end
}

func (t Token) String() string {
	return t.Type.String()
}

func (tokenType TokenType) String() string {
	s := ""
	if 0 <= tokenType && tokenType < TokenType(len(tokens)) {
		s = tokens[tokenType]
	}

	if s == "" {
		s = "token(" + strconv.Itoa(int(tokenType)) + ")"
	}

	return s
}
