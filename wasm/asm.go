package wasm

import "bytes"

// Asm accumulates the encoded instructions of one function body. It covers
// the straight-line subset the guest builder needs; there is deliberately no
// emitter for memory.grow.
type Asm struct {
	buf bytes.Buffer
}

// NewAsm creates an empty function body builder.
func NewAsm() *Asm {
	return &Asm{}
}

// Body returns the encoded body with the closing end opcode appended.
func (a *Asm) Body() []byte {
	out := make([]byte, a.buf.Len(), a.buf.Len()+1)
	copy(out, a.buf.Bytes())
	return append(out, OpEnd)
}

func (a *Asm) op(b byte) *Asm {
	a.buf.WriteByte(b)
	return a
}

// I32Const pushes a constant.
func (a *Asm) I32Const(v int32) *Asm {
	a.buf.WriteByte(OpI32Const)
	WriteLEB128s(&a.buf, v)
	return a
}

// LocalGet pushes a local.
func (a *Asm) LocalGet(idx uint32) *Asm {
	a.buf.WriteByte(OpLocalGet)
	WriteLEB128u(&a.buf, idx)
	return a
}

// LocalSet pops into a local.
func (a *Asm) LocalSet(idx uint32) *Asm {
	a.buf.WriteByte(OpLocalSet)
	WriteLEB128u(&a.buf, idx)
	return a
}

// LocalTee stores the top of stack into a local, leaving it on the stack.
func (a *Asm) LocalTee(idx uint32) *Asm {
	a.buf.WriteByte(OpLocalTee)
	WriteLEB128u(&a.buf, idx)
	return a
}

// I32Add pops two values and pushes their sum.
func (a *Asm) I32Add() *Asm { return a.op(OpI32Add) }

// I32Sub pops two values and pushes their difference.
func (a *Asm) I32Sub() *Asm { return a.op(OpI32Sub) }

// I32Or pops two values and pushes their bitwise or.
func (a *Asm) I32Or() *Asm { return a.op(OpI32Or) }

// I32GtS pops two values and pushes 1 if the first is signed-greater.
func (a *Asm) I32GtS() *Asm { return a.op(OpI32GtS) }

// I32LtS pops two values and pushes 1 if the first is signed-less.
func (a *Asm) I32LtS() *Asm { return a.op(OpI32LtS) }

// If opens a void conditional block consuming the top of stack.
func (a *Asm) If() *Asm {
	a.buf.WriteByte(OpIf)
	a.buf.WriteByte(BlockTypeVoid)
	return a
}

// End closes the innermost block.
func (a *Asm) End() *Asm { return a.op(OpEnd) }

// Return returns from the function, consuming the declared results.
func (a *Asm) Return() *Asm { return a.op(OpReturn) }

// I32Store8 pops a value and an address and stores the low byte at
// address+offset.
func (a *Asm) I32Store8(offset uint32) *Asm {
	a.buf.WriteByte(OpI32Store8)
	WriteLEB128u(&a.buf, 0) // alignment exponent
	WriteLEB128u(&a.buf, offset)
	return a
}

// MemoryCopy pops length, source, and destination and copies the range
// within memory 0. Bulk transfer over existing addresses; never grows.
func (a *Asm) MemoryCopy() *Asm {
	a.buf.WriteByte(OpPrefixMisc)
	WriteLEB128u(&a.buf, MiscMemoryCopy)
	a.buf.WriteByte(0) // destination memory index
	a.buf.WriteByte(0) // source memory index
	return a
}
