package wasm

// Module represents a WebAssembly core module to be encoded.
type Module struct {
	Types    []FuncType
	Imports  []Import
	Funcs    []uint32 // Type indices for declared functions
	Memories []MemoryType
	Globals  []Global
	Exports  []Export
	Start    *uint32
	Code     []FuncBody
	Data     []DataSegment

	CustomSections []CustomSection
}

// FuncType represents a function signature with parameter and result types.
type FuncType struct {
	Params  []ValType
	Results []ValType
}

// ValType represents a WebAssembly value type.
type ValType byte

func (v ValType) String() string {
	switch v {
	case ValI32:
		return "i32"
	case ValI64:
		return "i64"
	case ValF32:
		return "f32"
	case ValF64:
		return "f64"
	default:
		return "unknown"
	}
}

// Import represents an imported function, memory, or global.
type Import struct {
	Desc   ImportDesc
	Module string
	Name   string
}

// ImportDesc describes an imported item.
// Kind uses the KindFunc, KindMemory, or KindGlobal constants.
type ImportDesc struct {
	Memory  *MemoryType
	Global  *GlobalType
	TypeIdx uint32
	Kind    byte
}

// MemoryType describes a linear memory with size limits.
type MemoryType struct {
	Limits Limits
}

// Limits describes size constraints for a memory, in pages.
// A nil Max leaves the memory growable up to the runtime's cap; Min == *Max
// pins the memory so growth is rejected at the type level.
type Limits struct {
	Max *uint64
	Min uint64
}

// GlobalType describes a global variable's type and mutability.
type GlobalType struct {
	ValType ValType
	Mutable bool
}

// Global represents a global variable with type and initialization.
type Global struct {
	Type GlobalType
	Init []byte // Raw init expression bytes, including end opcode
}

// Export describes an exported item.
// Kind uses the KindFunc, KindMemory, or KindGlobal constants.
type Export struct {
	Name string
	Kind byte
	Idx  uint32
}

// FuncBody represents a function's local declarations and bytecode.
type FuncBody struct {
	Locals []LocalEntry
	Code   []byte // Raw code bytes including end opcode
}

// LocalEntry represents a group of local variables with the same type.
type LocalEntry struct {
	Count   uint32
	ValType ValType
}

// DataSegment represents a data segment.
// Flags determine the format:
//   - 0: active, memIdx=0, offset expr, vec(byte)
//   - 1: passive, vec(byte)
//   - 2: active, memIdx, offset expr, vec(byte)
type DataSegment struct {
	Offset []byte
	Init   []byte
	Flags  uint32
	MemIdx uint32
}

// CustomSection holds a named custom section's data.
type CustomSection struct {
	Name string
	Data []byte
}

// NumImportedFuncs returns the number of imported functions
func (m *Module) NumImportedFuncs() int {
	count := 0
	for _, imp := range m.Imports {
		if imp.Desc.Kind == KindFunc {
			count++
		}
	}
	return count
}

// AddType adds a function type and returns its index, reusing existing if equal
func (m *Module) AddType(ft FuncType) uint32 {
	for i, t := range m.Types {
		if typesEqual(t, ft) {
			return uint32(i)
		}
	}
	idx := uint32(len(m.Types))
	m.Types = append(m.Types, ft)
	return idx
}

func typesEqual(a, b FuncType) bool {
	if len(a.Params) != len(b.Params) || len(a.Results) != len(b.Results) {
		return false
	}
	for i := range a.Params {
		if a.Params[i] != b.Params[i] {
			return false
		}
	}
	for i := range a.Results {
		if a.Results[i] != b.Results[i] {
			return false
		}
	}
	return true
}
