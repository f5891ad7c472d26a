package decoder

import (
	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// decodeFma handles the R4-type fused multiply-add family (MADD, MSUB,
// NMSUB, NMADD opcodes): rd, rs1, rs2, rs3, rm (specification §6 R4
// field layout: rs3||fmt||rs2||rs1||rm||rd||opcode).
func decodeFma(word uint32, cfg isa.Config, opName isa.OpcodeName) (instr.Result, error) {
	fmtBits := sliceField(word, isa.FpFmt)
	if fmtBits != "00" {
		return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "only single-precision (fmt=00) is supported, got fmt=%s", fmtBits)
	}
	m, ok := isa.LookupFma(opName, fmtBits)
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "no %s instruction with fmt=%s", opName, fmtBits)
	}
	if err := checkIsaMismatch(m, cfg); err != nil {
		return instr.Result{}, err
	}

	rdNum := mustUint(sliceField(word, isa.Rd))
	rs1Num := mustUint(sliceField(word, isa.Rs1))
	rs2Num := mustUint(sliceField(word, isa.Rs2))
	rs3Num := mustUint(sliceField(word, isa.Rs3))
	rmBits := sliceField(word, isa.RmOrF3)

	op := opFrag(word, m.Name)
	fmtF := fixedFrag(isa.FpFmt, fmtBits, m.Name)
	rmName, rmF := rmOperand(rmBits)
	rd := regFrag(isa.Rd, rdNum, m.RdFloat, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, m.Rs1Float, cfg, false)
	rs2 := regFrag(isa.Rs2, rs2Num, m.Rs2Float, cfg, false)
	rs3 := regFrag(isa.Rs3, rs3Num, m.Rs3Float, cfg, false)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly, rs2.Assembly, rs3.Assembly, rmName),
		Fmt:      string(isa.FmtR4),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{rs3, fmtF, rs2, rs1, rmF, rd, op},
		AsmFrags: []fragment.Fragment{op, rd, rs1, rs2, rs3, rmF},
	}, nil
}
