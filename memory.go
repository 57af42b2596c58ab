package greetmem

// Memory is a bounded byte-addressable view over a fixed block of linear
// memory. Implementations must never change the address or capacity of the
// underlying block; Read and Write fail instead of growing.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
}

// MemorySizer reports the current size of the underlying block in bytes.
// For conforming implementations the value is constant for the lifetime of
// the block; callers use it to detect capacity violations.
type MemorySizer interface {
	Size() uint32
}
