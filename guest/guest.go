// Package guest emits the greeting guest as a WebAssembly core module.
//
// The guest exports one linear memory and the four protocol entry points.
// Its memory limits are min == max == 1 page, so a grow request is rejected
// by any conforming runtime before it can move the block; the combine body
// itself is straight-line bulk copies and byte stores over fixed addresses.
package guest

import (
	"github.com/wasmlab/greetmem/arena"
	"github.com/wasmlab/greetmem/wasm"
)

// Export names forming the guest ABI.
const (
	ExportMemory        = "memory"
	ExportSalutationPtr = "get_salutation_ptr"
	ExportNamePtr       = "get_name_ptr"
	ExportMessagePtr    = "get_msg_ptr"
	ExportSetName       = "set_name"
)

// CombineFailed is the sentinel set_name returns when the checked bounds
// fail. Nothing has been written when it appears.
const CombineFailed int32 = -1

// Build emits the guest module binary. The output is deterministic: the
// same bytes on every call.
func Build() []byte {
	m := &wasm.Module{}

	getterType := m.AddType(wasm.FuncType{Results: []wasm.ValType{wasm.ValI32}})
	setNameType := m.AddType(wasm.FuncType{
		Params:  []wasm.ValType{wasm.ValI32, wasm.ValI32},
		Results: []wasm.ValType{wasm.ValI32},
	})

	m.Funcs = []uint32{getterType, getterType, getterType, setNameType}

	// One page, pinned: min == max makes memory.grow fail by type.
	maxPages := uint64(1)
	m.Memories = []wasm.MemoryType{{Limits: wasm.Limits{Min: 1, Max: &maxPages}}}

	m.Exports = []wasm.Export{
		{Name: ExportMemory, Kind: wasm.KindMemory, Idx: 0},
		{Name: ExportSalutationPtr, Kind: wasm.KindFunc, Idx: 0},
		{Name: ExportNamePtr, Kind: wasm.KindFunc, Idx: 1},
		{Name: ExportMessagePtr, Kind: wasm.KindFunc, Idx: 2},
		{Name: ExportSetName, Kind: wasm.KindFunc, Idx: 3},
	}

	m.Code = []wasm.FuncBody{
		{Code: offsetGetter(arena.SalutationOffset)},
		{Code: offsetGetter(arena.NameOffset)},
		{Code: offsetGetter(arena.MessageOffset)},
		{
			Locals: []wasm.LocalEntry{{Count: 1, ValType: wasm.ValI32}},
			Code:   setNameBody(),
		},
	}

	return m.Encode()
}

func offsetGetter(offset uint32) []byte {
	return wasm.NewAsm().I32Const(int32(offset)).Body()
}

// setNameBody encodes the combine operation.
//
// Parameters: local 0 = salutation length, local 1 = name length.
// Local 2 holds the total result length.
//
// The body first validates every bound, then performs exactly four writes
// into the message region: copy salutation, store ", ", copy name, store
// '!'. There is no allocation and no instruction that could grow memory.
func setNameBody() []byte {
	const (
		salutationLen = 0
		nameLen       = 1
		total         = 2
	)

	salOff := int32(arena.SalutationOffset)
	nameOff := int32(arena.NameOffset)
	msgOff := int32(arena.MessageOffset)

	a := wasm.NewAsm()

	// Reject: salutationLen > input capacity
	a.LocalGet(salutationLen).I32Const(arena.InputCapacity).I32GtS()
	// Reject: nameLen > input capacity
	a.LocalGet(nameLen).I32Const(arena.InputCapacity).I32GtS()
	a.I32Or()
	// total = salutationLen + nameLen + 3; reject if it exceeds the
	// message region
	a.LocalGet(salutationLen).LocalGet(nameLen).I32Add()
	a.I32Const(arena.DecorationLen).I32Add()
	a.LocalTee(total)
	a.I32Const(int32(arena.MessageCapacity)).I32GtS()
	a.I32Or()
	// Reject negative lengths
	a.LocalGet(salutationLen).I32Const(0).I32LtS()
	a.I32Or()
	a.LocalGet(nameLen).I32Const(0).I32LtS()
	a.I32Or()
	a.If()
	a.I32Const(CombineFailed)
	a.Return()
	a.End()

	// memory.copy(msgOff, salOff, salutationLen)
	a.I32Const(msgOff).I32Const(salOff).LocalGet(salutationLen).MemoryCopy()

	// ", " at msgOff+salutationLen
	a.I32Const(msgOff).LocalGet(salutationLen).I32Add()
	a.I32Const(',').I32Store8(0)
	a.I32Const(msgOff).LocalGet(salutationLen).I32Add()
	a.I32Const(' ').I32Store8(1)

	// memory.copy(msgOff+salutationLen+2, nameOff, nameLen)
	a.I32Const(msgOff + 2).LocalGet(salutationLen).I32Add()
	a.I32Const(nameOff).LocalGet(nameLen).MemoryCopy()

	// '!' at msgOff+salutationLen+2+nameLen
	a.I32Const(msgOff + 2).LocalGet(salutationLen).I32Add().LocalGet(nameLen).I32Add()
	a.I32Const('!').I32Store8(0)

	a.LocalGet(total)
	return a.Body()
}
