package httpapi

import (
	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
)

func toResponse(r instr.Result) ResultResponse {
	return ResultResponse{
		Hex:      r.Hex,
		Bin:      r.Bin,
		Asm:      r.Asm,
		Fmt:      r.Fmt,
		Isa:      r.Isa,
		BinFrags: toFragmentViews(r.BinFrags),
		AsmFrags: toFragmentViews(r.AsmFrags),
	}
}

func toFragmentViews(frags []fragment.Fragment) []FragmentView {
	out := make([]FragmentView, len(frags))
	for i, f := range frags {
		out[i] = FragmentView{
			Assembly: f.Assembly,
			Bits:     f.Bits,
			Field:    f.Field,
			Mem:      f.Mem,
			Index:    f.Index,
		}
	}
	return out
}

// isaConfig resolves an {isa, abi} request pair into isa.Config,
// defaulting to isa.DefaultConfig() when isaName is empty.
func isaConfig(isaName string, abi bool) (isa.Config, bool) {
	if isaName == "" {
		cfg := isa.DefaultConfig()
		cfg.ABI = abi
		return cfg, true
	}
	switch isaName {
	case string(isa.RV32I):
		return isa.Config{ISA: isa.RV32I, ABI: abi}, true
	case string(isa.RV64I):
		return isa.Config{ISA: isa.RV64I, ABI: abi}, true
	default:
		return isa.Config{}, false
	}
}
