package wasm

// WebAssembly binary format magic number and version.
const (
	// Magic is the WebAssembly binary magic number ("\0asm" in little-endian).
	Magic uint32 = 0x6D736100

	// Version is the supported WebAssembly binary format version.
	Version uint32 = 0x01
)

// Section IDs define the binary identifiers for each module section.
// Sections must appear in increasing order by ID (except custom sections).
const (
	SectionCustom   byte = 0  // Custom section (can appear anywhere)
	SectionType     byte = 1  // Type section (function signatures)
	SectionImport   byte = 2  // Import section
	SectionFunction byte = 3  // Function section (type indices)
	SectionMemory   byte = 5  // Memory section
	SectionGlobal   byte = 6  // Global section
	SectionExport   byte = 7  // Export section
	SectionStart    byte = 8  // Start section
	SectionCode     byte = 10 // Code section (function bodies)
	SectionData     byte = 11 // Data section
)

// Import/Export descriptor kinds identify the type of imported or exported item.
const (
	KindFunc   byte = 0 // Function import/export
	KindTable  byte = 1 // Table import/export
	KindMemory byte = 2 // Memory import/export
	KindGlobal byte = 3 // Global import/export
)

// Value type encodings as defined in the WebAssembly binary format.
const (
	ValI32 ValType = 0x7F // 32-bit integer
	ValI64 ValType = 0x7E // 64-bit integer
	ValF32 ValType = 0x7D // 32-bit float
	ValF64 ValType = 0x7C // 64-bit float
)

// Block type for blocks that leave nothing on the stack.
const BlockTypeVoid byte = 0x40

// Control flow opcodes
const (
	OpUnreachable byte = 0x00
	OpNop         byte = 0x01
	OpBlock       byte = 0x02
	OpLoop        byte = 0x03
	OpIf          byte = 0x04
	OpElse        byte = 0x05
	OpEnd         byte = 0x0B
	OpBr          byte = 0x0C
	OpBrIf        byte = 0x0D
	OpReturn      byte = 0x0F
	OpCall        byte = 0x10
)

// Variable access opcodes
const (
	OpLocalGet  byte = 0x20
	OpLocalSet  byte = 0x21
	OpLocalTee  byte = 0x22
	OpGlobalGet byte = 0x23
	OpGlobalSet byte = 0x24
)

// Memory access opcodes
const (
	OpI32Load   byte = 0x28
	OpI32Load8U byte = 0x2D
	OpI32Store  byte = 0x36
	OpI32Store8 byte = 0x3A
)

// Memory size/grow opcodes. OpMemoryGrow is defined for completeness; the
// guest builder must never emit it.
const (
	OpMemorySize byte = 0x3F
	OpMemoryGrow byte = 0x40
)

// Constant opcodes
const (
	OpI32Const byte = 0x41
	OpI64Const byte = 0x42
)

// i32 comparison opcodes
const (
	OpI32Eqz byte = 0x45
	OpI32Eq  byte = 0x46
	OpI32Ne  byte = 0x47
	OpI32LtS byte = 0x48
	OpI32LtU byte = 0x49
	OpI32GtS byte = 0x4A
	OpI32GtU byte = 0x4B
	OpI32LeS byte = 0x4C
	OpI32LeU byte = 0x4D
	OpI32GeS byte = 0x4E
	OpI32GeU byte = 0x4F
)

// i32 numeric opcodes
const (
	OpI32Add byte = 0x6A
	OpI32Sub byte = 0x6B
	OpI32Mul byte = 0x6C
	OpI32And byte = 0x71
	OpI32Or  byte = 0x72
	OpI32Xor byte = 0x73
)

// OpPrefixMisc introduces the multi-byte instruction set holding the bulk
// memory operations. The prefix is followed by a LEB128-encoded sub-opcode.
const OpPrefixMisc byte = 0xFC

// Misc opcodes (0xFC prefix)
const (
	MiscMemoryInit uint32 = 0x08
	MiscDataDrop   uint32 = 0x09
	MiscMemoryCopy uint32 = 0x0A
	MiscMemoryFill uint32 = 0x0B
)

// Limits flags
const (
	LimitsNoMax  byte = 0x00
	LimitsHasMax byte = 0x01
)

// FuncTypeByte introduces a function type in the type section.
const FuncTypeByte byte = 0x60
