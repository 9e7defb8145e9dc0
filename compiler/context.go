package compiler

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"tinygo.org/x/go-llvm"
)

// Context owns the backend handles for one compilation: the LLVM context,
// the module, the instruction builder, and the synthesized entry function
// with its first basic block. It is the sole owner of these handles; no
// other component may extend their lifetime.
type Context struct {
	Context    llvm.Context
	Module     llvm.Module
	builder    llvm.Builder
	MainFunc   llvm.Value
	EntryBlock llvm.BasicBlock

	strGlobals map[string]llvm.Value
	disposed   bool
}

// NewContext creates the context, module, builder and the implicit entry
// function main (no parameters, void return) with its entry block, and
// positions the insertion point at the entry block.
func NewContext(moduleName string) *Context {
	ctx := llvm.NewContext()
	module := ctx.NewModule(moduleName)
	builder := ctx.NewBuilder()

	mainType := llvm.FunctionType(ctx.VoidType(), []llvm.Type{}, false)
	mainFunc := llvm.AddFunction(module, "main", mainType)
	entry := ctx.AddBasicBlock(mainFunc, "entry")
	builder.SetInsertPointAtEnd(entry)

	return &Context{
		Context:    ctx,
		Module:     module,
		builder:    builder,
		MainFunc:   mainFunc,
		EntryBlock: entry,
		strGlobals: make(map[string]llvm.Value),
	}
}

// Dispose releases the backend handles in builder, module, context order.
// It is safe to call more than once; only the first call releases.
func (c *Context) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.builder.Dispose()
	c.Module.Dispose()
	c.Context.Dispose()
}

// CreateStringLiteral interns text as a null-terminated private constant
// global and returns an i8 pointer to its first byte, emitted at the
// current insertion point. Equal text reuses the interned global; the
// pointer GEP is fresh per call site.
func (c *Context) CreateStringLiteral(text string) llvm.Value {
	arrType := llvm.ArrayType(c.Context.Int8Type(), len(text)+1)

	global, ok := c.strGlobals[text]
	if !ok {
		name := fmt.Sprintf("str_%016x", xxhash.Sum64String(text))
		strConst := llvm.ConstString(text, true)
		global = llvm.AddGlobal(c.Module, arrType, name)
		global.SetInitializer(strConst)
		global.SetLinkage(llvm.PrivateLinkage)
		global.SetUnnamedAddr(true)
		global.SetGlobalConstant(true)
		c.strGlobals[text] = global
	}

	zero := llvm.ConstInt(c.Context.Int32Type(), 0, false)
	return c.builder.CreateGEP(arrType, global, []llvm.Value{zero, zero}, "str_ptr")
}
