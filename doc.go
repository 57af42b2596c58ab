// Package greetmem implements a fixed-layout shared-memory greeting protocol
// between a WebAssembly guest and its host.
//
// The protocol is a single 128-byte memory map with three fixed regions:
//
//	Offset  Region      Written by  Read by
//	────────────────────────────────────────
//	0       salutation  host        combine
//	16      name        host        combine
//	32      message     combine     host
//
// The host writes the two input regions, invokes the combine entry point with
// the input lengths, and reads back the formatted message ("<salutation>,
// <name>!"). The load-bearing invariant is that no operation ever grows the
// underlying memory block: a host that holds a view over guest memory keeps
// that view for the life of the instance, and any reallocation would silently
// invalidate it (the "detached buffer" failure mode).
//
// # Packages
//
//	greetmem/        Root package with the Memory view interfaces
//	├── arena/       Fixed-capacity memory map and in-place region combiner
//	├── wasm/        Minimal WebAssembly binary encoder
//	├── guest/       Builder emitting the greeting guest as a wasm module
//	├── host/        wazero-based host runtime driving the protocol
//	└── errors/      Structured error types
//
// The arena package is the canonical in-process implementation of the memory
// map; the guest and host packages carry the same protocol across the wasm
// boundary. Both uphold the no-growth invariant by construction: the arena
// backs its map with a fixed-length array, and the guest declares its memory
// with min == max so growth is rejected at the wasm type level.
//
// # Thread Safety
//
// An arena or instance serves one caller at a time. Nothing in this module
// locks internally; concurrent combines over the same block would interleave
// partial writes into the message region.
package greetmem
