package wasm

import (
	"bytes"
	"testing"
)

func TestLEB128u_RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 300, 16384, 0xFFFFFFFF}

	for _, v := range values {
		enc := EncodeLEB128u(v)
		got, err := ReadLEB128u(bytes.NewReader(enc))
		if err != nil {
			t.Fatalf("ReadLEB128u(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d -> %d", v, got)
		}
	}
}

func TestLEB128s_RoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 63, 64, -64, -65, 127, 128, -12345, 2147483647, -2147483648}

	for _, v := range values {
		enc := EncodeLEB128s(v)
		got, err := ReadLEB128s(bytes.NewReader(enc))
		if err != nil {
			t.Fatalf("ReadLEB128s(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d -> %d", v, got)
		}
	}
}

func TestLEB128s_KnownEncodings(t *testing.T) {
	// -1 must be a single 0x7F byte, not a sign-extension chain.
	if enc := EncodeLEB128s(-1); !bytes.Equal(enc, []byte{0x7F}) {
		t.Errorf("EncodeLEB128s(-1) = %x, want 7f", enc)
	}
	// 64 needs a continuation byte because bit 6 doubles as the sign bit.
	if enc := EncodeLEB128s(64); !bytes.Equal(enc, []byte{0xC0, 0x00}) {
		t.Errorf("EncodeLEB128s(64) = %x, want c000", enc)
	}
}

func TestLEB128u_Overflow(t *testing.T) {
	// Six continuation bytes exceed the 32-bit range.
	_, err := ReadLEB128u(bytes.NewReader([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}))
	if err != ErrOverflow {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}
