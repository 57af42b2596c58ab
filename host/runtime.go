package host

import (
	"context"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	"github.com/wasmlab/greetmem/errors"
	"github.com/wasmlab/greetmem/guest"
)

// Config holds configuration for runtime creation
type Config struct {
	// MemoryLimitPages caps guest memory in 64KB pages. The greeting guest
	// declares exactly one pinned page; the default limit of 1 makes the
	// runtime enforce the same bound independently of the module's own
	// limits.
	MemoryLimitPages uint32
}

// Runtime owns the wazero runtime and the compiled guest module.
type Runtime struct {
	runtime  wazero.Runtime
	compiled wazero.CompiledModule
}

// New creates a runtime with the default 1-page memory limit and compiles
// the embedded greeting guest.
func New(ctx context.Context) (*Runtime, error) {
	return NewWithConfig(ctx, nil)
}

// NewWithConfig creates a runtime with custom configuration
func NewWithConfig(ctx context.Context, cfg *Config) (*Runtime, error) {
	limit := uint32(1)
	if cfg != nil && cfg.MemoryLimitPages > 0 {
		limit = cfg.MemoryLimitPages
	}

	runtimeCfg := wazero.NewRuntimeConfig().WithMemoryLimitPages(limit)
	runtime := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	bin := guest.Build()
	compiled, err := runtime.CompileModule(ctx, bin)
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, errors.Load("compile guest", err)
	}

	Logger().Debug("guest compiled",
		zap.Int("binary_bytes", len(bin)),
		zap.Uint32("memory_limit_pages", limit))

	return &Runtime{
		runtime:  runtime,
		compiled: compiled,
	}, nil
}

// Close releases all runtime resources.
// All instances must be closed before calling this.
func (r *Runtime) Close(ctx context.Context) error {
	return r.runtime.Close(ctx)
}
