package lexer

import (
	"jscc/token"
	"strings"
)

type Lexer struct {
	fileName     string
	input        []rune
	position     int  // current position in input (points to current rune)
	readPosition int  // current reading position in input (after current rune)
	curr         rune // current rune under examination
	line         int
	column       int
}

func New(fileName, input string) *Lexer {
	l := &Lexer{
		fileName: fileName,
		input:    []rune(input),
		line:     1,
		column:   0,
	}
	l.readRune()
	return l
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	tok := token.Token{
		FileName: l.fileName,
		Line:     l.line,
		Column:   l.column,
	}

	switch l.curr {
	case '=':
		switch {
		case l.peekRune() == '=':
			l.readRune()
			if l.peekRune() == '=' {
				l.readRune()
				tok.Type, tok.Literal = token.STRICT_EQL, "==="
			} else {
				tok.Type, tok.Literal = token.EQL, "=="
			}
		case l.peekRune() == '>':
			l.readRune()
			tok.Type, tok.Literal = token.ARROW, "=>"
		default:
			tok.Type, tok.Literal = token.ASSIGN, "="
		}
	case '!':
		if l.peekRune() == '=' {
			l.readRune()
			if l.peekRune() == '=' {
				l.readRune()
				tok.Type, tok.Literal = token.STRICT_NEQ, "!=="
			} else {
				tok.Type, tok.Literal = token.NEQ, "!="
			}
		} else {
			tok.Type, tok.Literal = token.NOT, "!"
		}
	case '+':
		switch l.peekRune() {
		case '+':
			l.readRune()
			tok.Type, tok.Literal = token.INC, "++"
		case '=':
			l.readRune()
			tok.Type, tok.Literal = token.ADD_ASSIGN, "+="
		default:
			tok.Type, tok.Literal = token.ADD, "+"
		}
	case '-':
		switch l.peekRune() {
		case '-':
			l.readRune()
			tok.Type, tok.Literal = token.DEC, "--"
		case '=':
			l.readRune()
			tok.Type, tok.Literal = token.SUB_ASSIGN, "-="
		default:
			tok.Type, tok.Literal = token.SUB, "-"
		}
	case '*':
		if l.peekRune() == '=' {
			l.readRune()
			tok.Type, tok.Literal = token.MUL_ASSIGN, "*="
		} else {
			tok.Type, tok.Literal = token.MUL, "*"
		}
	case '/':
		switch l.peekRune() {
		case '/':
			tok.Type, tok.Literal = token.COMMENT, l.readLineComment()
			return tok
		case '*':
			tok.Type, tok.Literal = token.COMMENT, l.readBlockComment()
			return tok
		case '=':
			l.readRune()
			tok.Type, tok.Literal = token.QUO_ASSIGN, "/="
		default:
			tok.Type, tok.Literal = token.QUO, "/"
		}
	case '%':
		tok.Type, tok.Literal = token.REM, "%"
	case '&':
		if l.peekRune() == '&' {
			l.readRune()
			tok.Type, tok.Literal = token.LAND, "&&"
		} else {
			tok.Type, tok.Literal = token.ILLEGAL, "&"
		}
	case '|':
		if l.peekRune() == '|' {
			l.readRune()
			tok.Type, tok.Literal = token.LOR, "||"
		} else {
			tok.Type, tok.Literal = token.ILLEGAL, "|"
		}
	case '<':
		if l.peekRune() == '=' {
			l.readRune()
			tok.Type, tok.Literal = token.LEQ, "<="
		} else {
			tok.Type, tok.Literal = token.LSS, "<"
		}
	case '>':
		if l.peekRune() == '=' {
			l.readRune()
			tok.Type, tok.Literal = token.GEQ, ">="
		} else {
			tok.Type, tok.Literal = token.GTR, ">"
		}
	case ',':
		tok.Type, tok.Literal = token.COMMA, ","
	case ';':
		tok.Type, tok.Literal = token.SEMI, ";"
	case ':':
		tok.Type, tok.Literal = token.COLON, ":"
	case '.':
		tok.Type, tok.Literal = token.PERIOD, "."
	case '(':
		tok.Type, tok.Literal = token.LPAREN, "("
	case ')':
		tok.Type, tok.Literal = token.RPAREN, ")"
	case '{':
		tok.Type, tok.Literal = token.LBRACE, "{"
	case '}':
		tok.Type, tok.Literal = token.RBRACE, "}"
	case '[':
		tok.Type, tok.Literal = token.LBRACK, "["
	case ']':
		tok.Type, tok.Literal = token.RBRACK, "]"
	case '\'', '"':
		lit, ok := l.readString(l.curr)
		tok.Literal = lit
		if ok {
			tok.Type = token.STRING
		} else {
			tok.Type = token.ILLEGAL
		}
		return tok
	case 0:
		tok.Type, tok.Literal = token.EOF, ""
	default:
		if isIdentStart(l.curr) {
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
			return tok
		}
		if isDigit(l.curr) {
			tok.Type, tok.Literal = l.readNumber()
			return tok
		}
		tok.Type, tok.Literal = token.ILLEGAL, string(l.curr)
	}

	l.readRune()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.curr == ' ' || l.curr == '\t' || l.curr == '\n' || l.curr == '\r' {
		l.readRune()
	}
}

func (l *Lexer) readRune() {
	if l.curr == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.curr = 0
	} else {
		l.curr = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekRune() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isIdentStart(l.curr) || isDigit(l.curr) {
		l.readRune()
	}
	return string(l.input[position:l.position])
}

// readNumber scans an integer, float (decimal point or exponent), or
// BigInt (trailing 'n') literal and reports the resulting token type.
func (l *Lexer) readNumber() (token.TokenType, string) {
	position := l.position
	typ := token.INT

	for isDigit(l.curr) {
		l.readRune()
	}
	if l.curr == '.' && isDigit(l.peekRune()) {
		typ = token.FLOAT
		l.readRune()
		for isDigit(l.curr) {
			l.readRune()
		}
	}
	if l.curr == 'e' || l.curr == 'E' {
		typ = token.FLOAT
		l.readRune()
		if l.curr == '+' || l.curr == '-' {
			l.readRune()
		}
		for isDigit(l.curr) {
			l.readRune()
		}
	}
	if l.curr == 'n' && typ == token.INT {
		l.readRune()
		// literal keeps the digits only; the suffix marks the kind
		return token.BIGINT, string(l.input[position : l.position-1])
	}
	return typ, string(l.input[position:l.position])
}

// readString scans a single- or double-quoted string with the usual escapes.
// ok is false when the string is unterminated.
func (l *Lexer) readString(quote rune) (string, bool) {
	var sb strings.Builder
	l.readRune() // consume opening quote

	for l.curr != quote {
		if l.curr == 0 || l.curr == '\n' {
			return sb.String(), false
		}
		if l.curr == '\\' {
			l.readRune()
			switch l.curr {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case 'r':
				sb.WriteRune('\r')
			case '0':
				sb.WriteRune(0)
			case '\\', '\'', '"':
				sb.WriteRune(l.curr)
			default:
				sb.WriteRune(l.curr)
			}
			l.readRune()
			continue
		}
		sb.WriteRune(l.curr)
		l.readRune()
	}
	l.readRune() // consume closing quote
	return sb.String(), true
}

func (l *Lexer) readLineComment() string {
	position := l.position
	for l.curr != '\n' && l.curr != 0 {
		l.readRune()
	}
	return string(l.input[position:l.position])
}

func (l *Lexer) readBlockComment() string {
	position := l.position
	l.readRune() // '/'
	l.readRune() // '*'
	for {
		if l.curr == 0 {
			break
		}
		if l.curr == '*' && l.peekRune() == '/' {
			l.readRune()
			l.readRune()
			break
		}
		l.readRune()
	}
	return string(l.input[position:l.position])
}

func isIdentStart(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_' || r == '$'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
