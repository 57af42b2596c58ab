package host

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/wasmlab/greetmem/arena"
	"github.com/wasmlab/greetmem/errors"
)

func newGreeter(t *testing.T) (*Greeter, func()) {
	t.Helper()
	ctx := context.Background()
	rt, err := New(ctx)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g, err := rt.Instantiate(ctx)
	if err != nil {
		rt.Close(ctx)
		t.Fatalf("Instantiate: %v", err)
	}
	return g, func() {
		g.Close(ctx)
		rt.Close(ctx)
	}
}

func TestOffsets(t *testing.T) {
	g, done := newGreeter(t)
	defer done()

	if got := g.SalutationOffset(); got != arena.SalutationOffset {
		t.Errorf("salutation offset = %d, want %d", got, arena.SalutationOffset)
	}
	if got := g.NameOffset(); got != arena.NameOffset {
		t.Errorf("name offset = %d, want %d", got, arena.NameOffset)
	}
	if got := g.MessageOffset(); got != arena.MessageOffset {
		t.Errorf("message offset = %d, want %d", got, arena.MessageOffset)
	}
}

func TestGreet_ByteExact(t *testing.T) {
	g, done := newGreeter(t)
	defer done()

	msg, err := g.Greet(context.Background(), "Ahoy there", "Testy McTestface")
	if err != nil {
		t.Fatalf("Greet: %v", err)
	}
	const want = "Ahoy there, Testy McTestface!"
	if msg != want {
		t.Errorf("message = %q, want %q", msg, want)
	}
	if len(msg) != 10+16+arena.DecorationLen {
		t.Errorf("length = %d, want %d", len(msg), 10+16+arena.DecorationLen)
	}
}

func TestCombine_EmptyInputs(t *testing.T) {
	g, done := newGreeter(t)
	defer done()
	ctx := context.Background()

	n, err := g.Combine(ctx, 0, 0)
	if err != nil {
		t.Fatalf("Combine(0, 0): %v", err)
	}
	if n != arena.DecorationLen {
		t.Errorf("n = %d, want %d", n, arena.DecorationLen)
	}
	msg, err := g.Message(n)
	if err != nil {
		t.Fatalf("Message: %v", err)
	}
	if string(msg) != ", !" {
		t.Errorf("message = %q, want %q", msg, ", !")
	}
}

func TestCombine_Idempotent(t *testing.T) {
	g, done := newGreeter(t)
	defer done()
	ctx := context.Background()

	if err := g.WriteSalutation([]byte("Hello")); err != nil {
		t.Fatalf("WriteSalutation: %v", err)
	}
	if err := g.WriteName([]byte("World")); err != nil {
		t.Fatalf("WriteName: %v", err)
	}

	var first []byte
	for i := 0; i < 5; i++ {
		n, err := g.Combine(ctx, 5, 5)
		if err != nil {
			t.Fatalf("Combine #%d: %v", i, err)
		}
		msg, err := g.Message(n)
		if err != nil {
			t.Fatalf("Message #%d: %v", i, err)
		}
		if i == 0 {
			first = append([]byte(nil), msg...)
			if string(first) != "Hello, World!" {
				t.Fatalf("message = %q, want %q", first, "Hello, World!")
			}
			continue
		}
		if !bytes.Equal(msg, first) {
			t.Errorf("combine #%d produced %q, first produced %q", i, msg, first)
		}
	}
}

func TestCombine_OutOfBoundsLeavesMessageUntouched(t *testing.T) {
	g, done := newGreeter(t)
	defer done()
	ctx := context.Background()

	// Sentinel-fill the message region through the raw view, then ask for a
	// combine the guest must refuse.
	sentinel := bytes.Repeat([]byte{0xEE}, arena.MessageCapacity)
	if err := g.Memory().Write(g.MessageOffset(), sentinel); err != nil {
		t.Fatalf("sentinel write: %v", err)
	}

	cases := []struct {
		name           string
		salLen, namLen int
	}{
		{"salutation too long", arena.InputCapacity + 1, 0},
		{"name too long", 0, arena.InputCapacity + 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.Combine(ctx, tc.salLen, tc.namLen)
			if err == nil {
				t.Fatal("expected error")
			}
			if !stderrors.Is(err, errors.OutOfBounds(errors.PhaseCombine, "", 0, 0)) {
				t.Errorf("error = %v, want out of bounds", err)
			}
			got, err := g.Memory().Read(g.MessageOffset(), uint32(arena.MessageCapacity))
			if err != nil {
				t.Fatalf("read back: %v", err)
			}
			if !bytes.Equal(got, sentinel) {
				t.Error("message region modified by refused combine")
			}
		})
	}
}

func TestCombine_NegativeInput(t *testing.T) {
	g, done := newGreeter(t)
	defer done()

	if _, err := g.Combine(context.Background(), -1, 5); err == nil {
		t.Fatal("expected error for negative salutation length")
	}
	if _, err := g.Combine(context.Background(), 5, -1); err == nil {
		t.Fatal("expected error for negative name length")
	}
}

func TestMemorySizeInvariant(t *testing.T) {
	g, done := newGreeter(t)
	defer done()
	ctx := context.Background()

	const page = 65536
	if size := g.MemorySize(); size != page {
		t.Fatalf("initial memory size = %d, want %d", size, page)
	}

	if err := g.WriteSalutation([]byte("Ahoy there")); err != nil {
		t.Fatalf("WriteSalutation: %v", err)
	}
	if err := g.WriteName([]byte("Testy McTestface")); err != nil {
		t.Fatalf("WriteName: %v", err)
	}
	for i := 0; i < 1000; i++ {
		if _, err := g.Combine(ctx, 10, 16); err != nil {
			t.Fatalf("Combine #%d: %v", i, err)
		}
	}
	if size := g.MemorySize(); size != page {
		t.Errorf("memory size after 1000 combines = %d, want %d", size, page)
	}
}

func TestWriteInput_TooLong(t *testing.T) {
	g, done := newGreeter(t)
	defer done()

	long := strings.Repeat("x", arena.InputCapacity+1)
	err := g.WriteSalutation([]byte(long))
	if err == nil {
		t.Fatal("expected error")
	}
	if !stderrors.Is(err, errors.OutOfBounds(errors.PhaseHost, "", 0, 0)) {
		t.Errorf("error = %v, want out of bounds", err)
	}
	if err := g.WriteName([]byte(long)); err == nil {
		t.Fatal("expected error")
	}
}

func TestGuestMatchesArena(t *testing.T) {
	g, done := newGreeter(t)
	defer done()
	ctx := context.Background()

	cases := []struct {
		salutation, name string
	}{
		{"Hi", "Bob"},
		{"", ""},
		{"Ahoy there", "Testy McTestface"},
		{"0123456789ABCDEF", "0123456789ABCDEF"},
	}
	for _, tc := range cases {
		a := arena.New()
		if err := a.WriteRegion(arena.RegionSalutation, []byte(tc.salutation)); err != nil {
			t.Fatalf("arena write salutation: %v", err)
		}
		if err := a.WriteRegion(arena.RegionName, []byte(tc.name)); err != nil {
			t.Fatalf("arena write name: %v", err)
		}
		wantN, err := a.Combine(len(tc.salutation), len(tc.name))
		if err != nil {
			t.Fatalf("arena combine: %v", err)
		}
		want, err := a.ReadRegion(arena.RegionMessage, wantN)
		if err != nil {
			t.Fatalf("arena read: %v", err)
		}

		got, err := g.Greet(ctx, tc.salutation, tc.name)
		if err != nil {
			t.Fatalf("Greet(%q, %q): %v", tc.salutation, tc.name, err)
		}
		if got != string(want) {
			t.Errorf("Greet(%q, %q) = %q, arena produced %q", tc.salutation, tc.name, got, want)
		}
	}
}

func TestExports(t *testing.T) {
	sigs := Exports()
	if len(sigs) != 4 {
		t.Fatalf("len(Exports()) = %d, want 4", len(sigs))
	}
	var setName string
	for _, s := range sigs {
		if s.Name == "set_name" {
			setName = s.String()
		}
	}
	if setName != "set_name(s32, s32) -> s32" {
		t.Errorf("set_name signature = %q", setName)
	}
}
