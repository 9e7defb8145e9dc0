package compiler

import (
	"fmt"

	"jscc/ast"
	"jscc/token"
	"tinygo.org/x/go-llvm"
)

// compileExpression converts one expression node into exactly one value,
// or fails. Only literals of the mapped kinds and call expressions have
// lowering rules; every other expression kind is named here so adding a
// node kind forces this dispatch to be revisited.
func (c *Compiler) compileExpression(expr ast.Expression) (llvm.Value, *token.CompileError) {
	switch e := expr.(type) {
	case *ast.StringLiteral:
		return c.Ctx.CreateStringLiteral(e.Value), nil
	case *ast.FloatLiteral:
		return c.Ctx.ConstF64(e.Value), nil
	case *ast.IntegerLiteral:
		return c.Ctx.ConstI32(e.Value), nil
	case *ast.BooleanLiteral:
		return c.Ctx.ConstBool(e.Value), nil
	case *ast.NullLiteral:
		return llvm.Value{}, c.unsupported(e, "null literal")
	case *ast.UndefinedLiteral:
		return llvm.Value{}, c.unsupported(e, "undefined literal")
	case *ast.BigIntLiteral:
		return llvm.Value{}, c.unsupported(e, "BigInt literal")
	case *ast.CallExpression:
		return c.compileCallExpression(e)
	case *ast.Identifier:
		return llvm.Value{}, c.unsupported(e, "identifier reference")
	case *ast.InfixExpression:
		return llvm.Value{}, c.unsupported(e, fmt.Sprintf("binary operator %q", e.Operator))
	case *ast.PrefixExpression:
		return llvm.Value{}, c.unsupported(e, fmt.Sprintf("unary operator %q", e.Operator))
	case *ast.AssignExpression:
		return llvm.Value{}, c.unsupported(e, "assignment")
	case *ast.MemberExpression:
		return llvm.Value{}, c.unsupported(e, "property access")
	case *ast.IndexExpression:
		return llvm.Value{}, c.unsupported(e, "index expression")
	case *ast.ArrayLiteral:
		return llvm.Value{}, c.unsupported(e, "array literal")
	case *ast.FunctionLiteral:
		return llvm.Value{}, c.unsupported(e, "function literal")
	default:
		panic(fmt.Sprintf("unknown expression type %T", expr))
	}
}

// compileCallExpression lowers a call to an external function.
//
// This is the one place the compiler infers an interface instead of
// consuming one: an undeclared identifier called as a function is treated
// as a foreign symbol whose signature is derived from the call site's
// argument types, returning i32. The first call site fixes the declared
// signature; a later call with a different argument type pattern is
// rejected rather than emitted against a diverging signature.
func (c *Compiler) compileCallExpression(e *ast.CallExpression) (llvm.Value, *token.CompileError) {
	callee, ok := e.Callee.(*ast.Identifier)
	if !ok {
		return llvm.Value{}, &token.CompileError{
			Token: e.Callee.Tok(),
			Kind:  token.InvalidCallTarget,
			Msg:   fmt.Sprintf("callee must be a plain identifier, got %s", e.Callee.String()),
		}
	}

	args := make([]llvm.Value, 0, len(e.Arguments))
	argTypes := make([]llvm.Type, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		val, cerr := c.compileExpression(arg)
		if cerr != nil {
			return llvm.Value{}, cerr
		}
		args = append(args, val)
		argTypes = append(argTypes, val.Type())
	}

	fnType := llvm.FunctionType(c.Ctx.Context.Int32Type(), argTypes, false)

	ef, declared := c.Symbols.Lookup(callee.Value)
	if !declared {
		ef = c.Symbols.Declare(c.Ctx, callee.Value, fnType)
	} else if ef.Type != fnType {
		return llvm.Value{}, &token.CompileError{
			Token: callee.Token,
			Kind:  token.SignatureMismatch,
			Msg: fmt.Sprintf("%s was declared with a different argument type pattern",
				callee.Value),
		}
	}

	return c.Ctx.builder.CreateCall(ef.Type, ef.Fn, args, ""), nil
}
