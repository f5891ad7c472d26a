package decoder

import (
	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// decodeMiscMem handles MISC_MEM: fence pred,succ and fence.i, both
// I-type shaped but fm/pred/succ replace the usual imm_11_0 split
// (specification §6 "Fence masks").
func decodeMiscMem(word uint32, cfg isa.Config) (instr.Result, error) {
	funct3 := sliceField(word, isa.Funct3)
	m, ok := isa.LookupByFunct3(isa.OpMiscMem, funct3)
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "no MISC_MEM instruction with funct3=%s", funct3)
	}
	if err := checkIsaMismatch(m, cfg); err != nil {
		return instr.Result{}, err
	}

	rdBits := sliceField(word, isa.Rd)
	rs1Bits := sliceField(word, isa.Rs1)
	if m.Name == "fence.i" {
		if mustUint(rdBits) != 0 || mustUint(rs1Bits) != 0 {
			return instr.Result{}, rverrors.New(rverrors.NonZeroReserved, "fence.i requires rd and rs1 to be zero")
		}
		op := opFrag(word, m.Name)
		f3 := fixedFrag(isa.Funct3, funct3, m.Name)
		rest := sliceField(word, isa.ImmI)
		immF := fixedFrag(isa.ImmI, rest, m.Name)
		rdF := fixedFrag(isa.Rd, rdBits, m.Name)
		rs1F := fixedFrag(isa.Rs1, rs1Bits, m.Name)
		return instr.Result{
			Asm:      m.Name,
			Fmt:      string(isa.FmtI),
			Isa:      m.Isa,
			BinFrags: []fragment.Fragment{op, immF, rs1F, f3, rdF},
			AsmFrags: []fragment.Fragment{op},
		}, nil
	}

	fmBits := sliceField(word, isa.FenceFm)
	predBits := sliceField(word, isa.FencePred)
	succBits := sliceField(word, isa.FenceSucc)
	if mustUint(rdBits) != 0 || mustUint(rs1Bits) != 0 {
		return instr.Result{}, rverrors.New(rverrors.NonZeroReserved, "fence requires rd and rs1 to be zero")
	}
	predName, err := isa.FenceMaskName(predBits)
	if err != nil {
		return instr.Result{}, rverrors.Wrap(rverrors.InvalidFence, err, "predecessor mask")
	}
	succName, err := isa.FenceMaskName(succBits)
	if err != nil {
		return instr.Result{}, rverrors.Wrap(rverrors.InvalidFence, err, "successor mask")
	}

	op := opFrag(word, m.Name)
	f3 := fixedFrag(isa.Funct3, funct3, m.Name)
	fm := fixedFrag(isa.FenceFm, fmBits, m.Name)
	rdF := fixedFrag(isa.Rd, rdBits, m.Name)
	rs1F := fixedFrag(isa.Rs1, rs1Bits, m.Name)
	predF := fragment.New(predName, predBits, isa.FencePred.Name, isa.FencePred.High-isa.FencePred.Width+1, false)
	succF := fragment.New(succName, succBits, isa.FenceSucc.Name, isa.FenceSucc.High-isa.FenceSucc.Width+1, false)

	return instr.Result{
		Asm:      asmLine(m.Name, predName, succName),
		Fmt:      string(isa.FmtI),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, fm, predF, succF, rs1F, f3, rdF},
		AsmFrags: []fragment.Fragment{op, predF, succF},
	}, nil
}
