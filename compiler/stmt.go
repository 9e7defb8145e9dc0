package compiler

import (
	"fmt"

	"jscc/ast"
	"jscc/token"
	"tinygo.org/x/go-llvm"
)

func (c *Compiler) compileStatement(stmt ast.Statement) (llvm.Value, *token.CompileError) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		return c.compileExpression(s.Expression)
	case *ast.BlockStatement:
		return c.compileBlock(s)
	case *ast.WhileStatement:
		return llvm.Value{}, c.compileWhile(s)
	case *ast.DoWhileStatement:
		return llvm.Value{}, c.unsupported(s, "do-while statement")
	case *ast.IfStatement:
		return llvm.Value{}, c.unsupported(s, "if statement")
	case *ast.ForStatement:
		return llvm.Value{}, c.unsupported(s, "for statement")
	case *ast.ForInStatement:
		if s.Of {
			return llvm.Value{}, c.unsupported(s, "for-of statement")
		}
		return llvm.Value{}, c.unsupported(s, "for-in statement")
	case *ast.ReturnStatement:
		return llvm.Value{}, c.unsupported(s, "return statement")
	case *ast.BreakStatement:
		return llvm.Value{}, c.unsupported(s, "break statement")
	case *ast.ContinueStatement:
		return llvm.Value{}, c.unsupported(s, "continue statement")
	case *ast.ThrowStatement:
		return llvm.Value{}, c.unsupported(s, "throw statement")
	case *ast.VarStatement:
		return llvm.Value{}, c.unsupported(s, fmt.Sprintf("%s declaration", s.Token.Literal))
	case *ast.EmptyStatement:
		return llvm.Value{}, c.unsupported(s, "empty statement")
	case *ast.ImportDeclaration:
		return llvm.Value{}, c.unsupported(s, "import declaration")
	case *ast.ExportDeclaration:
		return llvm.Value{}, c.unsupported(s, "export declaration")
	default:
		panic(fmt.Sprintf("unknown statement type %T", stmt))
	}
}

// compileBlock lowers the block's statements in order into the current
// block. Blocks do not open a new basic block by themselves; only control
// flow does.
func (c *Compiler) compileBlock(block *ast.BlockStatement) (llvm.Value, *token.CompileError) {
	var last llvm.Value
	for _, stmt := range block.Statements {
		val, cerr := c.compileStatement(stmt)
		if cerr != nil {
			return llvm.Value{}, cerr
		}
		if !val.IsNil() {
			last = val
		}
	}
	return last, nil
}

// compileWhile lowers a while loop into three blocks on the enclosing
// function:
//
//	br condition
//	condition: <predicate>; condbr body, end
//	body: <body>; br condition
//	end:
//
// On return the insertion point sits at end, which is reachable from
// condition and still unterminated, so subsequent statements append there.
func (c *Compiler) compileWhile(s *ast.WhileStatement) *token.CompileError {
	fn := c.InsertBlock().Parent()
	condBlock := c.Ctx.Context.AddBasicBlock(fn, "condition")
	bodyBlock := c.Ctx.Context.AddBasicBlock(fn, "body")
	endBlock := c.Ctx.Context.AddBasicBlock(fn, "end")

	c.Ctx.builder.CreateBr(condBlock)

	c.Ctx.builder.SetInsertPointAtEnd(condBlock)
	cond, cerr := c.compileExpression(s.Condition)
	if cerr != nil {
		return cerr
	}
	if cond.Type() != c.Ctx.Context.Int1Type() {
		return &token.CompileError{
			Token: s.Condition.Tok(),
			Kind:  token.UnsupportedConstruct,
			Msg:   "loop condition must be a boolean",
		}
	}
	c.Ctx.builder.CreateCondBr(cond, bodyBlock, endBlock)

	c.Ctx.builder.SetInsertPointAtEnd(bodyBlock)
	if _, cerr := c.compileStatement(s.Body); cerr != nil {
		return cerr
	}
	c.Ctx.builder.CreateBr(condBlock)

	c.Ctx.builder.SetInsertPointAtEnd(endBlock)
	return nil
}
