package host

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	greetmem "github.com/wasmlab/greetmem"
	"github.com/wasmlab/greetmem/arena"
	"github.com/wasmlab/greetmem/errors"
	"github.com/wasmlab/greetmem/guest"
)

// Greeter is one instantiated guest plus the host's single view over its
// memory. Region offsets and the baseline memory size are resolved once at
// instantiation and never refreshed.
type Greeter struct {
	mod     api.Module
	mem     api.Memory
	setName api.Function

	salutationOff uint32
	nameOff       uint32
	messageOff    uint32

	// baseSize is the memory size captured at instantiation. Every combine
	// asserts the current size against it.
	baseSize uint32
}

// Instantiate creates a fresh guest instance and resolves its ABI.
func (r *Runtime) Instantiate(ctx context.Context) (*Greeter, error) {
	mod, err := r.runtime.InstantiateModule(ctx, r.compiled, wazero.NewModuleConfig().WithName(""))
	if err != nil {
		return nil, errors.Load("instantiate guest", err)
	}

	g := &Greeter{mod: mod, mem: mod.Memory()}
	if g.mem == nil {
		_ = mod.Close(ctx)
		return nil, errors.NotFound(errors.PhaseLoad, "exported memory "+guest.ExportMemory)
	}

	offsets := []struct {
		export string
		dst    *uint32
	}{
		{guest.ExportSalutationPtr, &g.salutationOff},
		{guest.ExportNamePtr, &g.nameOff},
		{guest.ExportMessagePtr, &g.messageOff},
	}
	for _, o := range offsets {
		fn := mod.ExportedFunction(o.export)
		if fn == nil {
			_ = mod.Close(ctx)
			return nil, errors.NotFound(errors.PhaseLoad, "exported function "+o.export)
		}
		res, err := fn.Call(ctx)
		if err != nil {
			_ = mod.Close(ctx)
			return nil, errors.Load("resolve "+o.export, err)
		}
		*o.dst = uint32(api.DecodeI32(res[0]))
	}

	g.setName = mod.ExportedFunction(guest.ExportSetName)
	if g.setName == nil {
		_ = mod.Close(ctx)
		return nil, errors.NotFound(errors.PhaseLoad, "exported function "+guest.ExportSetName)
	}

	g.baseSize = g.mem.Size()
	memorySizeBytes.Set(float64(g.baseSize))

	Logger().Debug("guest instantiated",
		zap.Uint32("salutation_offset", g.salutationOff),
		zap.Uint32("name_offset", g.nameOff),
		zap.Uint32("message_offset", g.messageOff),
		zap.Uint32("memory_bytes", g.baseSize))

	return g, nil
}

// SalutationOffset returns the fixed offset of the salutation region.
func (g *Greeter) SalutationOffset() uint32 { return g.salutationOff }

// NameOffset returns the fixed offset of the name region.
func (g *Greeter) NameOffset() uint32 { return g.nameOff }

// MessageOffset returns the fixed offset of the message region.
func (g *Greeter) MessageOffset() uint32 { return g.messageOff }

// MemorySize returns the current guest memory size in bytes.
func (g *Greeter) MemorySize() uint32 { return g.mem.Size() }

// Memory returns the host's bounded view over guest memory.
func (g *Greeter) Memory() greetmem.Memory { return guestMemory{g.mem} }

// WriteSalutation places the salutation bytes at the start of its region.
func (g *Greeter) WriteSalutation(data []byte) error {
	return g.writeInput(string(arena.RegionSalutation), g.salutationOff, data)
}

// WriteName places the name bytes at the start of its region.
func (g *Greeter) WriteName(data []byte) error {
	return g.writeInput(string(arena.RegionName), g.nameOff, data)
}

func (g *Greeter) writeInput(region string, offset uint32, data []byte) error {
	if len(data) > arena.InputCapacity {
		return errors.OutOfBounds(errors.PhaseHost, region, len(data), arena.InputCapacity)
	}
	return guestMemory{g.mem}.Write(offset, data)
}

// Combine invokes the guest's combine entry point and returns the number of
// message bytes written. The guest refuses out-of-bounds requests without
// writing; Combine additionally verifies the memory block did not change
// size during the call.
func (g *Greeter) Combine(ctx context.Context, salutationLen, nameLen int) (int, error) {
	if salutationLen < 0 || nameLen < 0 {
		return 0, errors.InvalidInput(errors.PhaseCombine, "negative input length")
	}

	combinesTotal.Inc()

	res, err := g.setName.Call(ctx, uint64(uint32(salutationLen)), uint64(uint32(nameLen)))
	if err != nil {
		combineErrorsTotal.Inc()
		return 0, errors.Wrap(errors.PhaseCombine, errors.KindInvalidData, err, "call "+guest.ExportSetName)
	}

	n := api.DecodeI32(res[0])
	if n == guest.CombineFailed {
		combineErrorsTotal.Inc()
		return 0, errors.New(errors.PhaseCombine, errors.KindOutOfBounds).
			Region(string(arena.RegionMessage)).
			Need(salutationLen + nameLen + arena.DecorationLen).
			Avail(arena.MessageCapacity).
			Detail("guest refused combine").
			Build()
	}

	if size := g.mem.Size(); size != g.baseSize {
		// The central invariant. Reaching this line means the guest is
		// broken and every cached offset may be stale.
		combineErrorsTotal.Inc()
		memorySizeBytes.Set(float64(size))
		return 0, errors.MemoryGrowth(g.baseSize, size)
	}

	combineBytesTotal.Add(float64(n))
	return int(n), nil
}

// Message returns a view over the first length bytes of the message region.
// The bytes alias guest memory and are valid until the next combine or
// instance close.
func (g *Greeter) Message(length int) ([]byte, error) {
	if length < 0 {
		return nil, errors.InvalidInput(errors.PhaseHost, "negative length")
	}
	if length > arena.MessageCapacity {
		return nil, errors.OutOfBounds(errors.PhaseHost, string(arena.RegionMessage), length, arena.MessageCapacity)
	}
	return guestMemory{g.mem}.Read(g.messageOff, uint32(length))
}

// Greet is the whole protocol round trip: write both inputs, combine, and
// copy out the formatted message.
func (g *Greeter) Greet(ctx context.Context, salutation, name string) (string, error) {
	if err := g.WriteSalutation([]byte(salutation)); err != nil {
		return "", err
	}
	if err := g.WriteName([]byte(name)); err != nil {
		return "", err
	}
	n, err := g.Combine(ctx, len(salutation), len(name))
	if err != nil {
		return "", err
	}
	msg, err := g.Message(n)
	if err != nil {
		return "", err
	}
	return string(msg), nil
}

// Close releases the guest instance.
func (g *Greeter) Close(ctx context.Context) error {
	return g.mod.Close(ctx)
}

// guestMemory adapts wazero's memory to the module's bounded view
// interfaces.
type guestMemory struct {
	mem api.Memory
}

func (m guestMemory) Read(offset uint32, length uint32) ([]byte, error) {
	b, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseHost, "", int(offset)+int(length), int(m.mem.Size()))
	}
	return b, nil
}

func (m guestMemory) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return errors.OutOfBounds(errors.PhaseHost, "", int(offset)+len(data), int(m.mem.Size()))
	}
	return nil
}

func (m guestMemory) Size() uint32 {
	return m.mem.Size()
}

var (
	_ greetmem.Memory      = guestMemory{}
	_ greetmem.MemorySizer = guestMemory{}
)
