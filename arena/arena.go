package arena

import (
	greetmem "github.com/wasmlab/greetmem"
	"github.com/wasmlab/greetmem/errors"
)

// Fixed memory layout. Offsets are part of the wire contract with the host
// and must match the guest module exactly.
const (
	Capacity = 128

	SalutationOffset uint32 = 0
	NameOffset       uint32 = 16
	MessageOffset    uint32 = 32

	// InputCapacity is the gap between an input region's start and the next
	// region's start. Content longer than this would cross region bounds.
	InputCapacity = 16

	// MessageCapacity is the space between the message region's start and
	// the end of the block.
	MessageCapacity = Capacity - int(MessageOffset)
)

// Region names the three sub-ranges of the block.
type Region string

const (
	RegionSalutation Region = "salutation"
	RegionName       Region = "name"
	RegionMessage    Region = "message"
)

// OffsetOf returns the fixed start offset of a region.
// Unknown names are a checked error, not undefined behavior.
func OffsetOf(r Region) (uint32, error) {
	switch r {
	case RegionSalutation:
		return SalutationOffset, nil
	case RegionName:
		return NameOffset, nil
	case RegionMessage:
		return MessageOffset, nil
	default:
		return 0, errors.InvalidRegion(string(r))
	}
}

// capacityOf returns the writable byte count of a region.
func capacityOf(r Region) int {
	if r == RegionMessage {
		return MessageCapacity
	}
	return InputCapacity
}

// Arena owns the block. The backing store is a fixed-length array, not a
// slice: the capacity is decided here, once, and cannot be revisited.
type Arena struct {
	buf [Capacity]byte
}

// New allocates the block. The zero value is also usable; New exists so
// ownership is explicit at the single initialization site.
func New() *Arena {
	return &Arena{}
}

// Size returns the block capacity in bytes. Constant for the arena's
// lifetime; callers use it to assert capacity invariance.
func (a *Arena) Size() uint32 {
	return Capacity
}

// Bytes returns the caller-facing view over the whole block. The slice
// aliases the arena's array and stays valid forever; writing input regions
// through it is the intended raw access path.
func (a *Arena) Bytes() []byte {
	return a.buf[:]
}

// Read returns a view over length bytes starting at offset.
func (a *Arena) Read(offset uint32, length uint32) ([]byte, error) {
	if uint64(offset)+uint64(length) > Capacity {
		return nil, errors.OutOfBounds(errors.PhaseHost, "", int(offset)+int(length), Capacity)
	}
	return a.buf[offset : offset+length], nil
}

// Write copies data into the block starting at offset.
func (a *Arena) Write(offset uint32, data []byte) error {
	if uint64(offset)+uint64(len(data)) > Capacity {
		return errors.OutOfBounds(errors.PhaseHost, "", int(offset)+len(data), Capacity)
	}
	copy(a.buf[offset:], data)
	return nil
}

// WriteRegion copies data to the start of a named region, refusing content
// that would cross into the next region.
func (a *Arena) WriteRegion(r Region, data []byte) error {
	off, err := OffsetOf(r)
	if err != nil {
		return err
	}
	if len(data) > capacityOf(r) {
		return errors.OutOfBounds(errors.PhaseHost, string(r), len(data), capacityOf(r))
	}
	copy(a.buf[off:], data)
	return nil
}

// ReadRegion returns a view over the first length bytes of a named region.
func (a *Arena) ReadRegion(r Region, length int) ([]byte, error) {
	off, err := OffsetOf(r)
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, errors.InvalidInput(errors.PhaseHost, "negative length")
	}
	if length > capacityOf(r) {
		return nil, errors.OutOfBounds(errors.PhaseHost, string(r), length, capacityOf(r))
	}
	return a.buf[off : off+uint32(length)], nil
}

var (
	_ greetmem.Memory      = (*Arena)(nil)
	_ greetmem.MemorySizer = (*Arena)(nil)
)
