package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"jscc/ast"
	"jscc/lexer"
	"jscc/token"
)

func mustParse(t *testing.T, input string) *ast.Program {
	t.Helper()
	l := lexer.New(t.Name(), input)
	p := New(l)
	program := p.Parse()
	require.Empty(t, p.Errors(), "unexpected parse errors for input %q: %v", input, p.Errors())
	return program
}

// requireOnlyExprStmt asserts the program has exactly one ExpressionStatement
// and returns it.
func requireOnlyExprStmt(t *testing.T, program *ast.Program) *ast.ExpressionStatement {
	t.Helper()
	require.Len(t, program.Items, 1, "expected exactly one item, got %d", len(program.Items))
	stmt, ok := program.Items[0].(*ast.ExpressionStatement)
	require.Truef(t, ok, "expected *ast.ExpressionStatement, got %T", program.Items[0])
	return stmt
}

func TestCallStatement(t *testing.T) {
	program := mustParse(t, `puts('Hello, World!\n');`)

	stmt := requireOnlyExprStmt(t, program)
	call, ok := stmt.Expression.(*ast.CallExpression)
	require.Truef(t, ok, "expected *ast.CallExpression, got %T", stmt.Expression)

	callee, ok := call.Callee.(*ast.Identifier)
	require.Truef(t, ok, "expected identifier callee, got %T", call.Callee)
	require.Equal(t, "puts", callee.Value)

	require.Len(t, call.Arguments, 1)
	str, ok := call.Arguments[0].(*ast.StringLiteral)
	require.Truef(t, ok, "expected string argument, got %T", call.Arguments[0])
	require.Equal(t, "Hello, World!\n", str.Value)
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, e ast.Expression)
	}{
		{"integer", "7;", func(t *testing.T, e ast.Expression) {
			lit, ok := e.(*ast.IntegerLiteral)
			require.True(t, ok)
			require.Equal(t, int64(7), lit.Value)
		}},
		{"float", "3.14;", func(t *testing.T, e ast.Expression) {
			lit, ok := e.(*ast.FloatLiteral)
			require.True(t, ok)
			require.Equal(t, 3.14, lit.Value)
		}},
		{"exponent float", "1e3;", func(t *testing.T, e ast.Expression) {
			lit, ok := e.(*ast.FloatLiteral)
			require.True(t, ok)
			require.Equal(t, 1000.0, lit.Value)
		}},
		{"true", "true;", func(t *testing.T, e ast.Expression) {
			lit, ok := e.(*ast.BooleanLiteral)
			require.True(t, ok)
			require.True(t, lit.Value)
		}},
		{"false", "false;", func(t *testing.T, e ast.Expression) {
			lit, ok := e.(*ast.BooleanLiteral)
			require.True(t, ok)
			require.False(t, lit.Value)
		}},
		{"null", "null;", func(t *testing.T, e ast.Expression) {
			_, ok := e.(*ast.NullLiteral)
			require.True(t, ok)
		}},
		{"undefined", "undefined;", func(t *testing.T, e ast.Expression) {
			_, ok := e.(*ast.UndefinedLiteral)
			require.True(t, ok)
		}},
		{"bigint", "123n;", func(t *testing.T, e ast.Expression) {
			lit, ok := e.(*ast.BigIntLiteral)
			require.True(t, ok)
			require.Equal(t, "123", lit.Digits)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := mustParse(t, tt.input)
			stmt := requireOnlyExprStmt(t, program)
			tt.check(t, stmt.Expression)
		})
	}
}

func TestWhileStatement(t *testing.T) {
	program := mustParse(t, `while (false) { beep(); }`)

	require.Len(t, program.Items, 1)
	while, ok := program.Items[0].(*ast.WhileStatement)
	require.Truef(t, ok, "expected *ast.WhileStatement, got %T", program.Items[0])

	cond, ok := while.Condition.(*ast.BooleanLiteral)
	require.True(t, ok)
	require.False(t, cond.Value)

	body, ok := while.Body.(*ast.BlockStatement)
	require.Truef(t, ok, "expected block body, got %T", while.Body)
	require.Len(t, body.Statements, 1)
}

func TestWhileWithSingleStatementBody(t *testing.T) {
	program := mustParse(t, `while (true) beep();`)

	while, ok := program.Items[0].(*ast.WhileStatement)
	require.True(t, ok)
	_, ok = while.Body.(*ast.ExpressionStatement)
	require.Truef(t, ok, "expected expression statement body, got %T", while.Body)
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expStr string
	}{
		{"mul binds tighter than add", "1 + 2 * 3;", "(1 + (2 * 3));"},
		{"comparison over sum", "a + b < c;", "((a + b) < c);"},
		{"logical and over or", "a || b && c;", "(a || (b && c));"},
		{"strict equality", "a === b !== c;", "((a === b) !== c);"},
		{"grouping", "(1 + 2) * 3;", "((1 + 2) * 3);"},
		{"prefix", "!a && -b;", "((!a) && (-b));"},
		{"call argument expressions", "f(1 + 2, g(3));", "f((1 + 2), g(3));"},
		{"member then call", "console.log(x);", "console.log(x);"},
		{"index", "a[1 + 2];", "a[(1 + 2)];"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := mustParse(t, tt.input)
			require.Equal(t, tt.expStr, program.String())
		})
	}
}

func TestAssignExpression(t *testing.T) {
	program := mustParse(t, `x = y = 1;`)

	stmt := requireOnlyExprStmt(t, program)
	assign, ok := stmt.Expression.(*ast.AssignExpression)
	require.True(t, ok)
	require.Equal(t, "x", assign.Target.String())

	// right-associative
	inner, ok := assign.Value.(*ast.AssignExpression)
	require.True(t, ok)
	require.Equal(t, "y", inner.Target.String())
}

func TestVarStatements(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		expKind token.TokenType
		expName string
		hasInit bool
	}{
		{"var with init", "var x = 1;", token.VAR, "x", true},
		{"let with init", "let y = 2;", token.LET, "y", true},
		{"const with init", "const z = 3;", token.CONST, "z", true},
		{"bare let", "let w;", token.LET, "w", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := mustParse(t, tt.input)
			require.Len(t, program.Items, 1)
			decl, ok := program.Items[0].(*ast.VarStatement)
			require.Truef(t, ok, "expected *ast.VarStatement, got %T", program.Items[0])
			require.Equal(t, tt.expKind, decl.Token.Type)
			require.Equal(t, tt.expName, decl.Name.Value)
			require.Equal(t, tt.hasInit, decl.Value != nil)
		})
	}
}

func TestControlFlowStatements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, s ast.Statement)
	}{
		{"if else", "if (a) { f(); } else { g(); }", func(t *testing.T, s ast.Statement) {
			stmt, ok := s.(*ast.IfStatement)
			require.True(t, ok)
			require.NotNil(t, stmt.Alternative)
		}},
		{"if without else", "if (a) f();", func(t *testing.T, s ast.Statement) {
			stmt, ok := s.(*ast.IfStatement)
			require.True(t, ok)
			require.Nil(t, stmt.Alternative)
		}},
		{"do while", "do { f(); } while (a);", func(t *testing.T, s ast.Statement) {
			_, ok := s.(*ast.DoWhileStatement)
			require.True(t, ok)
		}},
		{"classic for", "for (let i = 0; i < 10; i = i + 1) { f(); }", func(t *testing.T, s ast.Statement) {
			stmt, ok := s.(*ast.ForStatement)
			require.True(t, ok)
			require.NotNil(t, stmt.Init)
			require.NotNil(t, stmt.Condition)
			require.NotNil(t, stmt.Update)
		}},
		{"for with empty clauses", "for (;;) { f(); }", func(t *testing.T, s ast.Statement) {
			stmt, ok := s.(*ast.ForStatement)
			require.True(t, ok)
			require.Nil(t, stmt.Init)
			require.Nil(t, stmt.Condition)
			require.Nil(t, stmt.Update)
		}},
		{"for in", "for (let k in obj) { f(); }", func(t *testing.T, s ast.Statement) {
			stmt, ok := s.(*ast.ForInStatement)
			require.True(t, ok)
			require.False(t, stmt.Of)
		}},
		{"for of", "for (const v of xs) { f(); }", func(t *testing.T, s ast.Statement) {
			stmt, ok := s.(*ast.ForInStatement)
			require.True(t, ok)
			require.True(t, stmt.Of)
		}},
		{"return value", "return 1;", func(t *testing.T, s ast.Statement) {
			stmt, ok := s.(*ast.ReturnStatement)
			require.True(t, ok)
			require.NotNil(t, stmt.Value)
		}},
		{"bare return", "return;", func(t *testing.T, s ast.Statement) {
			stmt, ok := s.(*ast.ReturnStatement)
			require.True(t, ok)
			require.Nil(t, stmt.Value)
		}},
		{"break", "break;", func(t *testing.T, s ast.Statement) {
			_, ok := s.(*ast.BreakStatement)
			require.True(t, ok)
		}},
		{"continue", "continue;", func(t *testing.T, s ast.Statement) {
			_, ok := s.(*ast.ContinueStatement)
			require.True(t, ok)
		}},
		{"throw", "throw x;", func(t *testing.T, s ast.Statement) {
			_, ok := s.(*ast.ThrowStatement)
			require.True(t, ok)
		}},
		{"empty statement", ";", func(t *testing.T, s ast.Statement) {
			_, ok := s.(*ast.EmptyStatement)
			require.True(t, ok)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := mustParse(t, tt.input)
			require.Len(t, program.Items, 1)
			tt.check(t, program.Items[0])
		})
	}
}

func TestModuleDeclarations(t *testing.T) {
	program := mustParse(t, `import './side-effects.js';
export const answer = 42;`)

	require.Len(t, program.Items, 2)

	imp, ok := program.Items[0].(*ast.ImportDeclaration)
	require.True(t, ok)
	require.Equal(t, "./side-effects.js", imp.Path)

	exp, ok := program.Items[1].(*ast.ExportDeclaration)
	require.True(t, ok)
	_, ok = exp.Item.(*ast.VarStatement)
	require.True(t, ok)
}

func TestFunctionLiteral(t *testing.T) {
	program := mustParse(t, `function add(a, b) { return a + b; }`)

	stmt := requireOnlyExprStmt(t, program)
	fn, ok := stmt.Expression.(*ast.FunctionLiteral)
	require.Truef(t, ok, "expected *ast.FunctionLiteral, got %T", stmt.Expression)
	require.Equal(t, "add", fn.Name.Value)
	require.Len(t, fn.Parameters, 2)
}

func TestCommentsAreSkipped(t *testing.T) {
	program := mustParse(t, `// leading comment
puts('a'); /* inline */ puts('b');`)

	require.Len(t, program.Items, 2)
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing paren", "while true) { f(); }"},
		{"unterminated block", "{ f();"},
		{"dangling operator", "1 + ;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lexer.New(t.Name(), tt.input)
			p := New(l)
			p.Parse()
			errs := p.Errors()
			require.NotEmpty(t, errs, "expected parse errors for input %q", tt.input)
			require.Equal(t, token.SyntaxError, errs[0].Kind)
		})
	}
}

func TestErrorCarriesPosition(t *testing.T) {
	l := lexer.New("script.js", "while { f(); }")
	p := New(l)
	p.Parse()

	errs := p.Errors()
	require.NotEmpty(t, errs)
	require.Equal(t, "script.js", errs[0].Token.FileName)
	require.Equal(t, 1, errs[0].Token.Line)
	require.Contains(t, errs[0].Error(), "script.js:1:")
}
