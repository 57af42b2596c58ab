package arena

import (
	"github.com/wasmlab/greetmem/errors"
)

// Separator and terminator bytes of the formatted message.
const (
	byteComma byte = 44 // ','
	byteSpace byte = 32 // ' '
	byteBang  byte = 33 // '!'

	// DecorationLen is the byte overhead Combine adds around the inputs:
	// the two-byte ", " separator plus the trailing '!'.
	DecorationLen = 3
)

// Combine writes "<salutation>, <name>!" into the message region and returns
// the number of bytes written (salutationLen + nameLen + DecorationLen).
//
// The caller must have placed exactly salutationLen bytes at the salutation
// offset and nameLen bytes at the name offset. All bounds are verified up
// front; on error nothing is written. The write path is pure block transfer
// within the arena's array, so it cannot allocate and cannot grow the block.
func (a *Arena) Combine(salutationLen, nameLen int) (int, error) {
	if salutationLen < 0 || nameLen < 0 {
		return 0, errors.InvalidInput(errors.PhaseCombine, "negative input length")
	}
	if salutationLen > InputCapacity {
		return 0, errors.OutOfBounds(errors.PhaseCombine, string(RegionSalutation), salutationLen, InputCapacity)
	}
	if nameLen > InputCapacity {
		return 0, errors.OutOfBounds(errors.PhaseCombine, string(RegionName), nameLen, InputCapacity)
	}

	total := salutationLen + nameLen + DecorationLen
	if total > MessageCapacity {
		return 0, errors.OutOfBounds(errors.PhaseCombine, string(RegionMessage), total, MessageCapacity)
	}

	w := int(MessageOffset)
	copy(a.buf[w:w+salutationLen], a.buf[SalutationOffset:int(SalutationOffset)+salutationLen])
	w += salutationLen

	a.buf[w] = byteComma
	a.buf[w+1] = byteSpace
	w += 2

	copy(a.buf[w:w+nameLen], a.buf[NameOffset:int(NameOffset)+nameLen])
	w += nameLen

	a.buf[w] = byteBang
	w++

	return w - int(MessageOffset), nil
}
