package compiler

import "tinygo.org/x/go-llvm"

// ExternFunc is a declared external function: its handle and the signature
// fixed at first declaration.
type ExternFunc struct {
	Fn   llvm.Value
	Type llvm.Type
}

// SymbolTable maps external function names to their declarations. It is
// lazily populated at call sites; a name resolves to at most one function
// handle for the lifetime of the module.
type SymbolTable struct {
	funcs map[string]*ExternFunc
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{funcs: make(map[string]*ExternFunc)}
}

func (st *SymbolTable) Lookup(name string) (*ExternFunc, bool) {
	ef, ok := st.funcs[name]
	return ef, ok
}

// Declare adds an external-linkage function declaration to the module and
// records it. The caller must have checked that name is absent.
func (st *SymbolTable) Declare(ctx *Context, name string, fnType llvm.Type) *ExternFunc {
	fn := llvm.AddFunction(ctx.Module, name, fnType)
	fn.SetLinkage(llvm.ExternalLinkage)
	ef := &ExternFunc{Fn: fn, Type: fnType}
	st.funcs[name] = ef
	return ef
}

func (st *SymbolTable) Len() int {
	return len(st.funcs)
}
