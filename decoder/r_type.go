package decoder

import (
	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// decodeR handles OP and OP_32: integer register-register arithmetic,
// including the EXT_M multiply/divide family sharing the same format
// (specification §4.2, funct7||funct3 dispatch).
func decodeR(word uint32, cfg isa.Config, opName isa.OpcodeName) (instr.Result, error) {
	funct7 := sliceField(word, isa.Funct7)
	funct3 := sliceField(word, isa.Funct3)
	m, ok := isa.LookupOp(opName, funct7, funct3)
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "no %s instruction with funct7=%s funct3=%s", opName, funct7, funct3)
	}
	if err := checkIsaMismatch(m, cfg); err != nil {
		return instr.Result{}, err
	}

	rdNum := mustUint(sliceField(word, isa.Rd))
	rs1Num := mustUint(sliceField(word, isa.Rs1))
	rs2Num := mustUint(sliceField(word, isa.Rs2))

	op := opFrag(word, m.Name)
	f7 := fixedFrag(isa.Funct7, funct7, m.Name)
	f3 := fixedFrag(isa.Funct3, funct3, m.Name)
	rd := regFrag(isa.Rd, rdNum, m.RdFloat, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, m.Rs1Float, cfg, false)
	rs2 := regFrag(isa.Rs2, rs2Num, m.Rs2Float, cfg, false)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly, rs2.Assembly),
		Fmt:      string(isa.FmtR),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, f7, rs2, rs1, f3, rd},
		AsmFrags: []fragment.Fragment{op, rd, rs1, rs2},
	}, nil
}
