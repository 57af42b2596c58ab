package host

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/wasmlab/greetmem/guest"
)

// ExportSig describes one guest export in WIT value types. Core modules
// carry no type metadata, so the host keeps the ABI table itself.
type ExportSig struct {
	Name    string
	Params  []wit.Type
	Results []wit.Type
}

// Exports returns the greeting guest's ABI.
func Exports() []ExportSig {
	return []ExportSig{
		{Name: guest.ExportSalutationPtr, Results: []wit.Type{wit.U32{}}},
		{Name: guest.ExportNamePtr, Results: []wit.Type{wit.U32{}}},
		{Name: guest.ExportMessagePtr, Results: []wit.Type{wit.U32{}}},
		{Name: guest.ExportSetName, Params: []wit.Type{wit.S32{}, wit.S32{}}, Results: []wit.Type{wit.S32{}}},
	}
}

// String renders the signature as "name(s32, s32) -> s32".
func (e ExportSig) String() string {
	params := make([]string, len(e.Params))
	for i, p := range e.Params {
		params[i] = witTypeStr(p)
	}
	s := e.Name + "(" + strings.Join(params, ", ") + ")"
	if len(e.Results) > 0 {
		s += " -> " + witTypeStr(e.Results[0])
	}
	return s
}

func witTypeStr(t wit.Type) string {
	switch t.(type) {
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	default:
		return fmt.Sprintf("%T", t)
	}
}
