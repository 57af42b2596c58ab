package wasm

import (
	"github.com/wasmlab/greetmem/wasm/internal/binary"
)

// Encode encodes the module to WebAssembly binary format
func (m *Module) Encode() []byte {
	w := binary.NewWriter()

	// Magic number and version
	w.WriteU32LE(Magic)
	w.WriteU32LE(Version)

	// Type section
	if len(m.Types) > 0 {
		sec := binary.NewWriter()
		sec.WriteU32(uint32(len(m.Types)))
		for _, ft := range m.Types {
			sec.Byte(FuncTypeByte)
			writeValTypes(sec, ft.Params)
			writeValTypes(sec, ft.Results)
		}
		writeSection(w, SectionType, sec.Bytes())
	}

	// Import section
	if len(m.Imports) > 0 {
		sec := binary.NewWriter()
		sec.WriteU32(uint32(len(m.Imports)))
		for _, imp := range m.Imports {
			sec.WriteName(imp.Module)
			sec.WriteName(imp.Name)
			sec.Byte(imp.Desc.Kind)
			switch imp.Desc.Kind {
			case KindFunc:
				sec.WriteU32(imp.Desc.TypeIdx)
			case KindMemory:
				if imp.Desc.Memory != nil {
					writeMemoryType(sec, *imp.Desc.Memory)
				}
			case KindGlobal:
				if imp.Desc.Global != nil {
					writeGlobalType(sec, *imp.Desc.Global)
				}
			}
		}
		writeSection(w, SectionImport, sec.Bytes())
	}

	// Function section
	if len(m.Funcs) > 0 {
		sec := binary.NewWriter()
		sec.WriteU32(uint32(len(m.Funcs)))
		for _, typeIdx := range m.Funcs {
			sec.WriteU32(typeIdx)
		}
		writeSection(w, SectionFunction, sec.Bytes())
	}

	// Memory section
	if len(m.Memories) > 0 {
		sec := binary.NewWriter()
		sec.WriteU32(uint32(len(m.Memories)))
		for _, mem := range m.Memories {
			writeMemoryType(sec, mem)
		}
		writeSection(w, SectionMemory, sec.Bytes())
	}

	// Global section
	if len(m.Globals) > 0 {
		sec := binary.NewWriter()
		sec.WriteU32(uint32(len(m.Globals)))
		for _, g := range m.Globals {
			writeGlobalType(sec, g.Type)
			sec.WriteBytes(g.Init)
		}
		writeSection(w, SectionGlobal, sec.Bytes())
	}

	// Export section
	if len(m.Exports) > 0 {
		sec := binary.NewWriter()
		sec.WriteU32(uint32(len(m.Exports)))
		for _, exp := range m.Exports {
			sec.WriteName(exp.Name)
			sec.Byte(exp.Kind)
			sec.WriteU32(exp.Idx)
		}
		writeSection(w, SectionExport, sec.Bytes())
	}

	// Start section
	if m.Start != nil {
		sec := binary.NewWriter()
		sec.WriteU32(*m.Start)
		writeSection(w, SectionStart, sec.Bytes())
	}

	// Code section
	if len(m.Code) > 0 {
		sec := binary.NewWriter()
		sec.WriteU32(uint32(len(m.Code)))
		for _, body := range m.Code {
			bodyBuf := binary.NewWriter()
			bodyBuf.WriteU32(uint32(len(body.Locals)))
			for _, local := range body.Locals {
				bodyBuf.WriteU32(local.Count)
				bodyBuf.Byte(byte(local.ValType))
			}
			bodyBuf.WriteBytes(body.Code)
			sec.WriteU32(uint32(bodyBuf.Len()))
			sec.WriteBytes(bodyBuf.Bytes())
		}
		writeSection(w, SectionCode, sec.Bytes())
	}

	// Data section
	if len(m.Data) > 0 {
		sec := binary.NewWriter()
		sec.WriteU32(uint32(len(m.Data)))
		for _, d := range m.Data {
			sec.WriteU32(d.Flags)

			if d.Flags == 2 {
				sec.WriteU32(d.MemIdx)
			}

			if d.Flags != 1 {
				sec.WriteBytes(d.Offset)
			}

			sec.WriteU32(uint32(len(d.Init)))
			sec.WriteBytes(d.Init)
		}
		writeSection(w, SectionData, sec.Bytes())
	}

	// Custom sections (at end)
	for _, cs := range m.CustomSections {
		sec := binary.NewWriter()
		sec.WriteName(cs.Name)
		sec.WriteBytes(cs.Data)
		writeSection(w, SectionCustom, sec.Bytes())
	}

	return w.Bytes()
}

func writeSection(w *binary.Writer, id byte, data []byte) {
	w.Byte(id)
	w.WriteU32(uint32(len(data)))
	w.WriteBytes(data)
}

func writeValTypes(w *binary.Writer, types []ValType) {
	w.WriteU32(uint32(len(types)))
	for _, t := range types {
		w.Byte(byte(t))
	}
}

func writeLimits(w *binary.Writer, l Limits) {
	if l.Max != nil {
		w.Byte(LimitsHasMax)
		w.WriteU32(uint32(l.Min))
		w.WriteU32(uint32(*l.Max))
	} else {
		w.Byte(LimitsNoMax)
		w.WriteU32(uint32(l.Min))
	}
}

func writeMemoryType(w *binary.Writer, m MemoryType) {
	writeLimits(w, m.Limits)
}

func writeGlobalType(w *binary.Writer, g GlobalType) {
	w.Byte(byte(g.ValType))
	if g.Mutable {
		w.Byte(1)
	} else {
		w.Byte(0)
	}
}
