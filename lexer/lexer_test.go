package lexer

import (
	"testing"

	"jscc/token"
)

type Test struct {
	expectedType    token.TokenType
	expectedLiteral string
}

func checkInput(t *testing.T, input string, tests []Test) {
	t.Helper()
	l := New("lexer_test", input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken(t *testing.T) {
	input := `let five = 5;
const ten = 10;
while (five < ten) {
	puts('hi');
}
10 === 10; 10 !== 9;
a && b || !c;
x => x;
`

	tests := []Test{
		{token.LET, "let"},
		{token.IDENT, "five"},
		{token.ASSIGN, "="},
		{token.INT, "5"},
		{token.SEMI, ";"},
		{token.CONST, "const"},
		{token.IDENT, "ten"},
		{token.ASSIGN, "="},
		{token.INT, "10"},
		{token.SEMI, ";"},
		{token.WHILE, "while"},
		{token.LPAREN, "("},
		{token.IDENT, "five"},
		{token.LSS, "<"},
		{token.IDENT, "ten"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "puts"},
		{token.LPAREN, "("},
		{token.STRING, "hi"},
		{token.RPAREN, ")"},
		{token.SEMI, ";"},
		{token.RBRACE, "}"},
		{token.INT, "10"},
		{token.STRICT_EQL, "==="},
		{token.INT, "10"},
		{token.SEMI, ";"},
		{token.INT, "10"},
		{token.STRICT_NEQ, "!=="},
		{token.INT, "9"},
		{token.SEMI, ";"},
		{token.IDENT, "a"},
		{token.LAND, "&&"},
		{token.IDENT, "b"},
		{token.LOR, "||"},
		{token.NOT, "!"},
		{token.IDENT, "c"},
		{token.SEMI, ";"},
		{token.IDENT, "x"},
		{token.ARROW, "=>"},
		{token.IDENT, "x"},
		{token.SEMI, ";"},
		{token.EOF, ""},
	}

	checkInput(t, input, tests)
}

func TestNumbers(t *testing.T) {
	input := `7 3.14 1e9 2.5e-3 123n 0`

	tests := []Test{
		{token.INT, "7"},
		{token.FLOAT, "3.14"},
		{token.FLOAT, "1e9"},
		{token.FLOAT, "2.5e-3"},
		{token.BIGINT, "123"},
		{token.INT, "0"},
		{token.EOF, ""},
	}

	checkInput(t, input, tests)
}

func TestStrings(t *testing.T) {
	input := `'Hello, World!\n' "double" 'it\'s' "tab\there"`

	tests := []Test{
		{token.STRING, "Hello, World!\n"},
		{token.STRING, "double"},
		{token.STRING, "it's"},
		{token.STRING, "tab\there"},
		{token.EOF, ""},
	}

	checkInput(t, input, tests)
}

func TestUnterminatedString(t *testing.T) {
	l := New("lexer_test", "'oops")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for unterminated string, got %q", tok.Type)
	}
}

func TestComments(t *testing.T) {
	input := `// line comment
foo /* block
comment */ bar`

	tests := []Test{
		{token.COMMENT, "// line comment"},
		{token.IDENT, "foo"},
		{token.COMMENT, "/* block\ncomment */"},
		{token.IDENT, "bar"},
		{token.EOF, ""},
	}

	checkInput(t, input, tests)
}

func TestLineAndColumn(t *testing.T) {
	input := "a\n  b"
	l := New("lexer_test", input)

	a := l.NextToken()
	if a.Line != 1 || a.Column != 1 {
		t.Fatalf("a position wrong. got line=%d column=%d", a.Line, a.Column)
	}
	b := l.NextToken()
	if b.Line != 2 || b.Column != 3 {
		t.Fatalf("b position wrong. got line=%d column=%d", b.Line, b.Column)
	}
	if b.FileName != "lexer_test" {
		t.Fatalf("filename wrong. got %q", b.FileName)
	}
}

func TestKeywords(t *testing.T) {
	input := `function return if else for in of do break continue throw true false null undefined new import export`

	tests := []Test{
		{token.FUNCTION, "function"},
		{token.RETURN, "return"},
		{token.IF, "if"},
		{token.ELSE, "else"},
		{token.FOR, "for"},
		{token.IN, "in"},
		{token.OF, "of"},
		{token.DO, "do"},
		{token.BREAK, "break"},
		{token.CONTINUE, "continue"},
		{token.THROW, "throw"},
		{token.TRUE, "true"},
		{token.FALSE, "false"},
		{token.NULL, "null"},
		{token.UNDEFINED, "undefined"},
		{token.NEW, "new"},
		{token.IMPORT, "import"},
		{token.EXPORT, "export"},
		{token.EOF, ""},
	}

	checkInput(t, input, tests)
}
