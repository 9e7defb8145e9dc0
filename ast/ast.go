package ast

import (
	"bytes"
	"strings"

	"jscc/token"
)

// The base Node interface
type Node interface {
	Tok() token.Token
	String() string
}

// All statement nodes implement this
type Statement interface {
	Node
	statementNode()
}

// All expression nodes implement this
type Expression interface {
	Node
	expressionNode()
}

// Program is one parsed module: an ordered sequence of module items.
// Items are statements, declarations, or import/export declarations.
type Program struct {
	Items []Statement
}

func (p *Program) Tok() token.Token {
	if len(p.Items) > 0 {
		return p.Items[0].Tok()
	}
	return token.Token{Type: token.EOF}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, item := range p.Items {
		out.WriteString(item.String())
	}
	return out.String()
}

func printVec(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// Statements

type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()   {}
func (es *ExpressionStatement) Tok() token.Token { return es.Token }
func (es *ExpressionStatement) String() string   { return es.Expression.String() + ";" }

type BlockStatement struct {
	Token      token.Token // the { token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()   {}
func (bs *BlockStatement) Tok() token.Token { return bs.Token }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range bs.Statements {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

type WhileStatement struct {
	Token     token.Token // the while token
	Condition Expression
	Body      Statement
}

func (ws *WhileStatement) statementNode()   {}
func (ws *WhileStatement) Tok() token.Token { return ws.Token }
func (ws *WhileStatement) String() string {
	return "while (" + ws.Condition.String() + ") " + ws.Body.String()
}

type DoWhileStatement struct {
	Token     token.Token // the do token
	Body      Statement
	Condition Expression
}

func (dw *DoWhileStatement) statementNode()   {}
func (dw *DoWhileStatement) Tok() token.Token { return dw.Token }
func (dw *DoWhileStatement) String() string {
	return "do " + dw.Body.String() + " while (" + dw.Condition.String() + ");"
}

type IfStatement struct {
	Token       token.Token // the if token
	Condition   Expression
	Consequence Statement
	Alternative Statement // nil when there is no else
}

func (is *IfStatement) statementNode()   {}
func (is *IfStatement) Tok() token.Token { return is.Token }
func (is *IfStatement) String() string {
	out := "if (" + is.Condition.String() + ") " + is.Consequence.String()
	if is.Alternative != nil {
		out += " else " + is.Alternative.String()
	}
	return out
}

type ForStatement struct {
	Token     token.Token // the for token
	Init      Statement   // nil when omitted
	Condition Expression  // nil when omitted
	Update    Expression  // nil when omitted
	Body      Statement
}

func (fs *ForStatement) statementNode()   {}
func (fs *ForStatement) Tok() token.Token { return fs.Token }
func (fs *ForStatement) String() string   { return "for (...) " + fs.Body.String() }

// ForInStatement covers both for-in and for-of; Of distinguishes them.
type ForInStatement struct {
	Token    token.Token // the for token
	Variable Expression
	Object   Expression
	Of       bool
	Body     Statement
}

func (fi *ForInStatement) statementNode()   {}
func (fi *ForInStatement) Tok() token.Token { return fi.Token }
func (fi *ForInStatement) String() string {
	kw := "in"
	if fi.Of {
		kw = "of"
	}
	return "for (" + fi.Variable.String() + " " + kw + " " + fi.Object.String() + ") " + fi.Body.String()
}

type ReturnStatement struct {
	Token token.Token // the return token
	Value Expression  // nil for bare return
}

func (rs *ReturnStatement) statementNode()   {}
func (rs *ReturnStatement) Tok() token.Token { return rs.Token }
func (rs *ReturnStatement) String() string {
	if rs.Value == nil {
		return "return;"
	}
	return "return " + rs.Value.String() + ";"
}

type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) statementNode()   {}
func (bs *BreakStatement) Tok() token.Token { return bs.Token }
func (bs *BreakStatement) String() string   { return "break;" }

type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) statementNode()   {}
func (cs *ContinueStatement) Tok() token.Token { return cs.Token }
func (cs *ContinueStatement) String() string   { return "continue;" }

type ThrowStatement struct {
	Token token.Token
	Value Expression
}

func (ts *ThrowStatement) statementNode()   {}
func (ts *ThrowStatement) Tok() token.Token { return ts.Token }
func (ts *ThrowStatement) String() string   { return "throw " + ts.Value.String() + ";" }

// VarStatement covers var, let and const declarations; the token
// distinguishes the declaration kind.
type VarStatement struct {
	Token token.Token // var, let or const
	Name  *Identifier
	Value Expression // nil for bare declarations
}

func (vs *VarStatement) statementNode()   {}
func (vs *VarStatement) Tok() token.Token { return vs.Token }
func (vs *VarStatement) String() string {
	out := vs.Token.Literal + " " + vs.Name.String()
	if vs.Value != nil {
		out += " = " + vs.Value.String()
	}
	return out + ";"
}

type EmptyStatement struct {
	Token token.Token // the ; token
}

func (es *EmptyStatement) statementNode()   {}
func (es *EmptyStatement) Tok() token.Token { return es.Token }
func (es *EmptyStatement) String() string   { return ";" }

type ImportDeclaration struct {
	Token token.Token // the import token
	Path  string
}

func (id *ImportDeclaration) statementNode()   {}
func (id *ImportDeclaration) Tok() token.Token { return id.Token }
func (id *ImportDeclaration) String() string   { return "import '" + id.Path + "';" }

type ExportDeclaration struct {
	Token token.Token // the export token
	Item  Statement
}

func (ed *ExportDeclaration) statementNode()   {}
func (ed *ExportDeclaration) Tok() token.Token { return ed.Token }
func (ed *ExportDeclaration) String() string   { return "export " + ed.Item.String() }

// Expressions

type Identifier struct {
	Token token.Token // the token.IDENT token
	Value string
}

func (i *Identifier) expressionNode()  {}
func (i *Identifier) Tok() token.Token { return i.Token }
func (i *Identifier) String() string   { return i.Value }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()  {}
func (sl *StringLiteral) Tok() token.Token { return sl.Token }
func (sl *StringLiteral) String() string   { return "'" + sl.Value + "'" }

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()  {}
func (il *IntegerLiteral) Tok() token.Token { return il.Token }
func (il *IntegerLiteral) String() string   { return il.Token.Literal }

type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()  {}
func (fl *FloatLiteral) Tok() token.Token { return fl.Token }
func (fl *FloatLiteral) String() string   { return fl.Token.Literal }

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()  {}
func (bl *BooleanLiteral) Tok() token.Token { return bl.Token }
func (bl *BooleanLiteral) String() string   { return bl.Token.Literal }

type NullLiteral struct {
	Token token.Token
}

func (nl *NullLiteral) expressionNode()  {}
func (nl *NullLiteral) Tok() token.Token { return nl.Token }
func (nl *NullLiteral) String() string   { return "null" }

type UndefinedLiteral struct {
	Token token.Token
}

func (ul *UndefinedLiteral) expressionNode()  {}
func (ul *UndefinedLiteral) Tok() token.Token { return ul.Token }
func (ul *UndefinedLiteral) String() string   { return "undefined" }

// BigIntLiteral keeps the digits as text; no lowering rule consumes them.
type BigIntLiteral struct {
	Token  token.Token
	Digits string
}

func (bl *BigIntLiteral) expressionNode()  {}
func (bl *BigIntLiteral) Tok() token.Token { return bl.Token }
func (bl *BigIntLiteral) String() string   { return bl.Digits + "n" }

type CallExpression struct {
	Token     token.Token // the ( token
	Callee    Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()  {}
func (ce *CallExpression) Tok() token.Token { return ce.Token }
func (ce *CallExpression) String() string {
	return ce.Callee.String() + "(" + printVec(ce.Arguments) + ")"
}

type InfixExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()  {}
func (ie *InfixExpression) Tok() token.Token { return ie.Token }
func (ie *InfixExpression) String() string {
	return "(" + ie.Left.String() + " " + ie.Operator + " " + ie.Right.String() + ")"
}

type PrefixExpression struct {
	Token    token.Token // the prefix token, e.g. !
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()  {}
func (pe *PrefixExpression) Tok() token.Token { return pe.Token }
func (pe *PrefixExpression) String() string {
	return "(" + pe.Operator + pe.Right.String() + ")"
}

type AssignExpression struct {
	Token    token.Token // the = token
	Target   Expression
	Operator string
	Value    Expression
}

func (ae *AssignExpression) expressionNode()  {}
func (ae *AssignExpression) Tok() token.Token { return ae.Token }
func (ae *AssignExpression) String() string {
	return ae.Target.String() + " " + ae.Operator + " " + ae.Value.String()
}

type MemberExpression struct {
	Token    token.Token // the . token
	Object   Expression
	Property *Identifier
}

func (me *MemberExpression) expressionNode()  {}
func (me *MemberExpression) Tok() token.Token { return me.Token }
func (me *MemberExpression) String() string {
	return me.Object.String() + "." + me.Property.String()
}

type IndexExpression struct {
	Token  token.Token // the [ token
	Object Expression
	Index  Expression
}

func (ie *IndexExpression) expressionNode()  {}
func (ie *IndexExpression) Tok() token.Token { return ie.Token }
func (ie *IndexExpression) String() string {
	return ie.Object.String() + "[" + ie.Index.String() + "]"
}

type ArrayLiteral struct {
	Token    token.Token // the [ token
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()  {}
func (al *ArrayLiteral) Tok() token.Token { return al.Token }
func (al *ArrayLiteral) String() string   { return "[" + printVec(al.Elements) + "]" }

type FunctionLiteral struct {
	Token      token.Token // the function token
	Name       *Identifier // nil for anonymous functions
	Parameters []*Identifier
	Body       *BlockStatement
}

func (fl *FunctionLiteral) expressionNode()  {}
func (fl *FunctionLiteral) Tok() token.Token { return fl.Token }
func (fl *FunctionLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("function")
	if fl.Name != nil {
		out.WriteString(" " + fl.Name.String())
	}
	out.WriteString("(")
	params := make([]Expression, len(fl.Parameters))
	for i, p := range fl.Parameters {
		params[i] = p
	}
	out.WriteString(printVec(params))
	out.WriteString(") ")
	out.WriteString(fl.Body.String())
	return out.String()
}
