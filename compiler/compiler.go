package compiler

import (
	"fmt"

	"jscc/ast"
	"jscc/token"
	"tinygo.org/x/go-llvm"
)

// Compiler lowers one parsed module into LLVM IR. It owns the single
// insertion point through the Context's builder: every control-flow
// construct leaves the insertion point at a reachable, unterminated block
// representing "what comes after".
type Compiler struct {
	Ctx     *Context
	Symbols *SymbolTable
	Errors  []*token.CompileError

	// LastValue is the value of the last lowered expression statement,
	// for callers compiling a terminal expression.
	LastValue llvm.Value
}

func NewCompiler(moduleName string) *Compiler {
	return &Compiler{
		Ctx:     NewContext(moduleName),
		Symbols: NewSymbolTable(),
		Errors:  []*token.CompileError{},
	}
}

// Dispose releases the backend handles. Safe to call on every exit path.
func (c *Compiler) Dispose() {
	c.Ctx.Dispose()
}

// CompileModule lowers the module items in order. The first error is
// fatal: lowering stops immediately with no partial-module recovery.
func (c *Compiler) CompileModule(program *ast.Program) *token.CompileError {
	for _, item := range program.Items {
		val, cerr := c.compileModuleItem(item)
		if cerr != nil {
			c.Errors = append(c.Errors, cerr)
			return cerr
		}
		if !val.IsNil() {
			c.LastValue = val
		}
	}
	return nil
}

func (c *Compiler) compileModuleItem(item ast.Statement) (llvm.Value, *token.CompileError) {
	switch s := item.(type) {
	case *ast.ImportDeclaration:
		return llvm.Value{}, c.unsupported(s, "import declaration")
	case *ast.ExportDeclaration:
		return llvm.Value{}, c.unsupported(s, "export declaration")
	default:
		return c.compileStatement(item)
	}
}

// Finish emits the void return terminating the entry function's current
// block, closing the implicit main.
func (c *Compiler) Finish() {
	c.Ctx.builder.CreateRetVoid()
}

// Verify runs the backend's module verifier.
func (c *Compiler) Verify() error {
	return llvm.VerifyModule(c.Ctx.Module, llvm.ReturnStatusAction)
}

// GenerateIR returns the textual dump of the lowered module.
func (c *Compiler) GenerateIR() string {
	return c.Ctx.Module.String()
}

// InsertBlock returns the block the insertion point currently refers to.
func (c *Compiler) InsertBlock() llvm.BasicBlock {
	return c.Ctx.builder.GetInsertBlock()
}

func (c *Compiler) unsupported(n ast.Node, construct string) *token.CompileError {
	return &token.CompileError{
		Token: n.Tok(),
		Kind:  token.UnsupportedConstruct,
		Msg:   fmt.Sprintf("cannot compile %s", construct),
	}
}
