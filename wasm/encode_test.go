package wasm

import (
	"bytes"
	"testing"
)

var header = []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}

func TestEncode_MinimalFunction(t *testing.T) {
	m := &Module{}
	typeIdx := m.AddType(FuncType{Results: []ValType{ValI32}})
	m.Funcs = []uint32{typeIdx}
	m.Exports = []Export{{Name: "answer", Kind: KindFunc, Idx: 0}}
	m.Code = []FuncBody{{Code: NewAsm().I32Const(42).Body()}}

	got := m.Encode()

	want := append([]byte{}, header...)
	// type section: one type, () -> i32
	want = append(want, SectionType, 0x05, 0x01, FuncTypeByte, 0x00, 0x01, byte(ValI32))
	// function section: one function of type 0
	want = append(want, SectionFunction, 0x02, 0x01, 0x00)
	// export section: "answer" as func 0
	want = append(want, SectionExport, 0x0A, 0x01, 0x06)
	want = append(want, []byte("answer")...)
	want = append(want, KindFunc, 0x00)
	// code section: no locals, i32.const 42, end
	want = append(want, SectionCode, 0x06, 0x01, 0x04, 0x00, OpI32Const, 0x2A, OpEnd)

	if !bytes.Equal(got, want) {
		t.Errorf("Encode mismatch\n got %x\nwant %x", got, want)
	}
}

func TestEncode_PinnedMemory(t *testing.T) {
	max := uint64(1)
	m := &Module{
		Memories: []MemoryType{{Limits: Limits{Min: 1, Max: &max}}},
		Exports:  []Export{{Name: "memory", Kind: KindMemory, Idx: 0}},
	}

	got := m.Encode()

	want := append([]byte{}, header...)
	// memory section: limits flag has-max, min 1, max 1
	want = append(want, SectionMemory, 0x04, 0x01, LimitsHasMax, 0x01, 0x01)
	// export section: "memory" as memory 0
	want = append(want, SectionExport, 0x0A, 0x01, 0x06)
	want = append(want, []byte("memory")...)
	want = append(want, KindMemory, 0x00)

	if !bytes.Equal(got, want) {
		t.Errorf("Encode mismatch\n got %x\nwant %x", got, want)
	}
}

func TestEncode_LocalsAndParams(t *testing.T) {
	m := &Module{}
	typeIdx := m.AddType(FuncType{Params: []ValType{ValI32, ValI32}, Results: []ValType{ValI32}})
	m.Funcs = []uint32{typeIdx}
	m.Code = []FuncBody{{
		Locals: []LocalEntry{{Count: 1, ValType: ValI32}},
		Code:   NewAsm().LocalGet(0).LocalGet(1).I32Add().LocalTee(2).Body(),
	}}

	got := m.Encode()

	// code section: one body with one local group
	wantBody := []byte{
		0x01, 0x01, byte(ValI32), // locals: 1 group, 1 x i32
		OpLocalGet, 0x00,
		OpLocalGet, 0x01,
		OpI32Add,
		OpLocalTee, 0x02,
		OpEnd,
	}
	wantCode := append([]byte{SectionCode, byte(2 + len(wantBody)), 0x01, byte(len(wantBody))}, wantBody...)
	if !bytes.HasSuffix(got, wantCode) {
		t.Errorf("code section mismatch\n got %x\nwant suffix %x", got, wantCode)
	}
}

func TestAddType_Dedup(t *testing.T) {
	m := &Module{}
	a := m.AddType(FuncType{Params: []ValType{ValI32}, Results: []ValType{ValI32}})
	b := m.AddType(FuncType{Params: []ValType{ValI32}, Results: []ValType{ValI32}})
	c := m.AddType(FuncType{Results: []ValType{ValI32}})

	if a != b {
		t.Errorf("identical types got distinct indices %d, %d", a, b)
	}
	if a == c {
		t.Error("distinct types share an index")
	}
	if len(m.Types) != 2 {
		t.Errorf("expected 2 types, got %d", len(m.Types))
	}
}

func TestAsm_EncodesKnownSequences(t *testing.T) {
	// memory.copy is the 0xFC-prefixed bulk opcode with two memory indices.
	got := NewAsm().I32Const(32).I32Const(0).LocalGet(0).MemoryCopy().Body()
	want := []byte{
		OpI32Const, 0x20,
		OpI32Const, 0x00,
		OpLocalGet, 0x00,
		OpPrefixMisc, 0x0A, 0x00, 0x00,
		OpEnd,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Asm output %x, want %x", got, want)
	}

	// i32.store8 carries alignment then offset immediates.
	got = NewAsm().I32Const(32).I32Const(44).I32Store8(1).Body()
	want = []byte{
		OpI32Const, 0x20,
		OpI32Const, 0x2C,
		OpI32Store8, 0x00, 0x01,
		OpEnd,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Asm output %x, want %x", got, want)
	}
}
