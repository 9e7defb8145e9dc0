package parser

import (
	"fmt"
	"strconv"

	"jscc/ast"
	"jscc/lexer"
	"jscc/token"
)

const (
	_ int = iota
	LOWEST
	ASSIGN      // =
	LOR         // ||
	LAND        // &&
	EQUALS      // == != === !==
	LESSGREATER // > or <
	SUM         // +
	PRODUCT     // *
	PREFIX      // -x or !x
	CALL        // callee(x), obj.prop, obj[x]
)

var precedences = map[token.TokenType]int{
	token.ASSIGN:     ASSIGN,
	token.ADD_ASSIGN: ASSIGN,
	token.SUB_ASSIGN: ASSIGN,
	token.MUL_ASSIGN: ASSIGN,
	token.QUO_ASSIGN: ASSIGN,
	token.LOR:        LOR,
	token.LAND:       LAND,
	token.EQL:        EQUALS,
	token.NEQ:        EQUALS,
	token.STRICT_EQL: EQUALS,
	token.STRICT_NEQ: EQUALS,
	token.LSS:        LESSGREATER,
	token.GTR:        LESSGREATER,
	token.LEQ:        LESSGREATER,
	token.GEQ:        LESSGREATER,
	token.ADD:        SUM,
	token.SUB:        SUM,
	token.MUL:        PRODUCT,
	token.QUO:        PRODUCT,
	token.REM:        PRODUCT,
	token.LPAREN:     CALL,
	token.PERIOD:     CALL,
	token.LBRACK:     CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	l      *lexer.Lexer
	errors []*token.CompileError

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: []*token.CompileError{},
	}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.BIGINT, p.parseBigIntLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NULL, p.parseNullLiteral)
	p.registerPrefix(token.UNDEFINED, p.parseUndefinedLiteral)
	p.registerPrefix(token.NOT, p.parsePrefixExpression)
	p.registerPrefix(token.SUB, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.LBRACK, p.parseArrayLiteral)
	p.registerPrefix(token.FUNCTION, p.parseFunctionLiteral)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, t := range []token.TokenType{
		token.ADD, token.SUB, token.MUL, token.QUO, token.REM,
		token.EQL, token.NEQ, token.STRICT_EQL, token.STRICT_NEQ,
		token.LSS, token.GTR, token.LEQ, token.GEQ,
		token.LAND, token.LOR,
	} {
		p.registerInfix(t, p.parseInfixExpression)
	}
	for _, t := range []token.TokenType{
		token.ASSIGN, token.ADD_ASSIGN, token.SUB_ASSIGN,
		token.MUL_ASSIGN, token.QUO_ASSIGN,
	} {
		p.registerInfix(t, p.parseAssignExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.PERIOD, p.parseMemberExpression)
	p.registerInfix(token.LBRACK, p.parseIndexExpression)

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
	for p.peekToken.Type == token.COMMENT {
		p.peekToken = p.l.NextToken()
	}
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) Errors() []*token.CompileError {
	return p.errors
}

func (p *Parser) addError(tok token.Token, format string, args ...any) {
	p.errors = append(p.errors, &token.CompileError{
		Token: tok,
		Kind:  token.SyntaxError,
		Msg:   fmt.Sprintf(format, args...),
	})
}

func (p *Parser) peekError(t token.TokenType) {
	p.addError(p.peekToken, "expected next token to be %s, got %s instead", t, p.peekToken)
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	p.addError(tok, "unexpected token %s in expression", tok)
}

// consumeSemi eats an optional statement terminator.
func (p *Parser) consumeSemi() {
	if p.peekTokenIs(token.SEMI) {
		p.nextToken()
	}
}

// Parse parses the whole module.
func (p *Parser) Parse() *ast.Program {
	program := &ast.Program{Items: []ast.Statement{}}

	for !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Items = append(program.Items, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DO:
		return p.parseDoWhileStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		stmt := &ast.BreakStatement{Token: p.curToken}
		p.consumeSemi()
		return stmt
	case token.CONTINUE:
		stmt := &ast.ContinueStatement{Token: p.curToken}
		p.consumeSemi()
		return stmt
	case token.THROW:
		return p.parseThrowStatement()
	case token.VAR, token.LET, token.CONST:
		return p.parseVarStatement()
	case token.SEMI:
		return &ast.EmptyStatement{Token: p.curToken}
	case token.IMPORT:
		return p.parseImportDeclaration()
	case token.EXPORT:
		return p.parseExportDeclaration()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}

	p.nextToken()
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.addError(p.curToken, "unterminated block, expected }")
			return block
		}
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	stmt := &ast.DoWhileStatement{Token: p.curToken}

	p.nextToken()
	stmt.Body = p.parseStatement()
	if !p.expectPeek(token.WHILE) {
		return nil
	}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.consumeSemi()
	return stmt
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Consequence = p.parseStatement()
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		p.nextToken()
		stmt.Alternative = p.parseStatement()
	}
	return stmt
}

// parseForStatement handles the classic three-clause form plus the
// for-in/for-of forms, distinguished after the opening variable.
func (p *Parser) parseForStatement() ast.Statement {
	forTok := p.curToken

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()

	var init ast.Statement
	switch p.curToken.Type {
	case token.SEMI:
		// no init clause
	case token.VAR, token.LET, token.CONST:
		declTok := p.curToken
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
		if p.peekTokenIs(token.IN) || p.peekTokenIs(token.OF) {
			return p.parseForInTail(forTok, name)
		}
		decl := &ast.VarStatement{Token: declTok, Name: name}
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			decl.Value = p.parseExpression(LOWEST)
		}
		init = decl
		if !p.expectPeek(token.SEMI) {
			return nil
		}
	default:
		expr := p.parseExpression(LOWEST)
		if p.peekTokenIs(token.IN) || p.peekTokenIs(token.OF) {
			return p.parseForInTail(forTok, expr)
		}
		init = &ast.ExpressionStatement{Token: expr.Tok(), Expression: expr}
		if !p.expectPeek(token.SEMI) {
			return nil
		}
	}

	stmt := &ast.ForStatement{Token: forTok, Init: init}

	p.nextToken()
	if !p.curTokenIs(token.SEMI) {
		stmt.Condition = p.parseExpression(LOWEST)
		if !p.expectPeek(token.SEMI) {
			return nil
		}
	}

	p.nextToken()
	if !p.curTokenIs(token.RPAREN) {
		stmt.Update = p.parseExpression(LOWEST)
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
	}

	p.nextToken()
	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseForInTail(forTok token.Token, variable ast.Expression) ast.Statement {
	p.nextToken() // onto in/of
	stmt := &ast.ForInStatement{
		Token:    forTok,
		Variable: variable,
		Of:       p.curTokenIs(token.OF),
	}
	p.nextToken()
	stmt.Object = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	if p.peekTokenIs(token.SEMI) || p.peekTokenIs(token.RBRACE) || p.peekTokenIs(token.EOF) {
		p.consumeSemi()
		return stmt
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	p.consumeSemi()
	return stmt
}

func (p *Parser) parseThrowStatement() ast.Statement {
	stmt := &ast.ThrowStatement{Token: p.curToken}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	p.consumeSemi()
	return stmt
}

func (p *Parser) parseVarStatement() ast.Statement {
	stmt := &ast.VarStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
	}
	p.consumeSemi()
	return stmt
}

// parseImportDeclaration accepts only the bare `import 'path';` form;
// named imports have no lowering rule anyway.
func (p *Parser) parseImportDeclaration() ast.Statement {
	stmt := &ast.ImportDeclaration{Token: p.curToken}
	if !p.expectPeek(token.STRING) {
		return nil
	}
	stmt.Path = p.curToken.Literal
	p.consumeSemi()
	return stmt
}

func (p *Parser) parseExportDeclaration() ast.Statement {
	stmt := &ast.ExportDeclaration{Token: p.curToken}
	p.nextToken()
	stmt.Item = p.parseStatement()
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}
	p.consumeSemi()
	return stmt
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()

	for !p.peekTokenIs(token.SEMI) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}

	return leftExp
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.addError(p.curToken, "could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	lit := &ast.FloatLiteral{Token: p.curToken}
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.addError(p.curToken, "could not parse %q as float", p.curToken.Literal)
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseBigIntLiteral() ast.Expression {
	return &ast.BigIntLiteral{Token: p.curToken, Digits: p.curToken.Literal}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Token: p.curToken}
}

func (p *Parser) parseUndefinedLiteral() ast.Expression {
	return &ast.UndefinedLiteral{Token: p.curToken}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}
	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	return expr
}

func (p *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	expr := &ast.AssignExpression{
		Token:    p.curToken,
		Target:   left,
		Operator: p.curToken.Literal,
	}
	p.nextToken()
	// right-associative
	expr.Value = p.parseExpression(ASSIGN - 1)
	return expr
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.curToken, Callee: callee}
	expr.Arguments = p.parseExpressionList(token.RPAREN)
	return expr
}

func (p *Parser) parseMemberExpression(object ast.Expression) ast.Expression {
	expr := &ast.MemberExpression{Token: p.curToken, Object: object}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	expr.Property = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	return expr
}

func (p *Parser) parseIndexExpression(object ast.Expression) ast.Expression {
	expr := &ast.IndexExpression{Token: p.curToken, Object: object}
	p.nextToken()
	expr.Index = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACK) {
		return nil
	}
	return expr
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	lit := &ast.ArrayLiteral{Token: p.curToken}
	lit.Elements = p.parseExpressionList(token.RBRACK)
	return lit
}

func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curToken}

	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		lit.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	lit.Parameters = p.parseFunctionParameters()
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	lit.Body = p.parseBlockStatement()
	return lit
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	params := []*ast.Identifier{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	p.nextToken()
	params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}
