package decoder

import (
	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// decodeBranch handles BRANCH: rs1, rs2, offset (offset rendered relative
// to the current instruction, per specification §6).
func decodeBranch(word uint32, cfg isa.Config) (instr.Result, error) {
	funct3 := sliceField(word, isa.Funct3)
	m, ok := isa.LookupByFunct3(isa.OpBranch, funct3)
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "no BRANCH instruction with funct3=%s", funct3)
	}
	if err := checkIsaMismatch(m, cfg); err != nil {
		return instr.Result{}, err
	}

	rs1Num := mustUint(sliceField(word, isa.Rs1))
	rs2Num := mustUint(sliceField(word, isa.Rs2))
	_, immText, f12, f10_5, f4_1, f11 := bImm(word)

	op := opFrag(word, m.Name)
	f3 := fixedFrag(isa.Funct3, funct3, m.Name)
	rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, false)
	rs2 := regFrag(isa.Rs2, rs2Num, false, cfg, false)

	return instr.Result{
		Asm:      asmLine(m.Name, rs1.Assembly, rs2.Assembly, immText),
		Fmt:      string(isa.FmtB),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, f12, f10_5, rs2, rs1, f3, f4_1, f11},
		AsmFrags: []fragment.Fragment{op, rs1, rs2, f12},
	}, nil
}
