// Package arena implements the fixed-capacity memory map and the in-place
// region combiner.
//
// # Memory Layout
//
// The arena is a single 128-byte block partitioned into three fixed regions:
//
//	Offset  Region      Capacity  Written by  Read by
//	──────────────────────────────────────────────────
//	0       salutation  16        caller      Combine
//	16      name        16        caller      Combine
//	32      message     96        Combine     caller
//
// Offsets are compile-time constants and the block is a fixed-length array
// embedded in the Arena value, so no operation can move or grow it. That is
// the core contract: a caller holding a view over the block (the Bytes slice,
// or a host-side view over guest memory) keeps a valid view for the arena's
// whole lifetime.
//
// # Combine
//
// Combine reads the two input regions and writes "<salutation>, <name>!"
// into the message region using only block copies between sub-ranges of the
// one array. It never constructs an intermediate buffer: growable staging
// (string concatenation, byte-slice append) is exactly what could trigger a
// reallocation in a shared-memory setting, so the write path is auditable
// for the absence of any allocation.
//
// All bounds are checked before the first byte is written; a refused combine
// leaves the message region untouched.
//
// # Thread Safety
//
// Arena is not safe for concurrent use. The protocol assumes one caller
// driving one combine at a time; overlapping combines would interleave
// partial writes into the message region.
package arena
