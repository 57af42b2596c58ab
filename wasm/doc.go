// Package wasm provides minimal WebAssembly core binary encoding.
//
// It models just enough of the binary format to emit the greeting guest
// module: function types, linear memory with limits, exports, and function
// bodies, encoded into the type, function, memory, global, export, start,
// code, data, and custom sections. The post-MVP proposals (GC, SIMD,
// threads, exception handling) are out of scope.
//
// The Asm type is a small straight-line instruction emitter for building
// function bodies without hand-writing opcode bytes.
package wasm
