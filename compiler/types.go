package compiler

import "tinygo.org/x/go-llvm"

// Literal kinds map to fixed IR types:
//
//	string  → i8 pointer into an interned global byte buffer
//	float   → double
//	integer → i32, truncating when out of range
//	boolean → i1
//
// Every other literal kind has no mapping and fails lowering.

// ConstI32 builds an i32 constant, truncating v to 32 bits.
func (c *Context) ConstI32(v int64) llvm.Value {
	return llvm.ConstInt(c.Context.Int32Type(), uint64(v), false)
}

// ConstF64 builds a double constant.
func (c *Context) ConstF64(v float64) llvm.Value {
	return llvm.ConstFloat(c.Context.DoubleType(), v)
}

// ConstBool builds an i1 constant: 1 for true, 0 for false.
func (c *Context) ConstBool(b bool) llvm.Value {
	v := uint64(0)
	if b {
		v = 1
	}
	return llvm.ConstInt(c.Context.Int1Type(), v, false)
}

// BytePtrType returns the i8 pointer type strings lower to.
func (c *Context) BytePtrType() llvm.Type {
	return llvm.PointerType(c.Context.Int8Type(), 0)
}
