package decoder

import (
	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// decodeStore handles STORE and STORE_FP: rs2, offset(rs1).
func decodeStore(word uint32, cfg isa.Config, opName isa.OpcodeName) (instr.Result, error) {
	funct3 := sliceField(word, isa.Funct3)
	m, ok := isa.LookupByFunct3(opName, funct3)
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "no %s instruction with funct3=%s", opName, funct3)
	}
	if err := checkIsaMismatch(m, cfg); err != nil {
		return instr.Result{}, err
	}

	rs1Num := mustUint(sliceField(word, isa.Rs1))
	rs2Num := mustUint(sliceField(word, isa.Rs2))
	_, immText, hi, lo := sImm(word)

	op := opFrag(word, m.Name)
	f3 := fixedFrag(isa.Funct3, funct3, m.Name)
	rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, true)
	rs2 := regFrag(isa.Rs2, rs2Num, m.Rs2Float, cfg, false)
	mem := immText + "(" + rs1.Assembly + ")"

	return instr.Result{
		Asm:      asmLine(m.Name, rs2.Assembly, mem),
		Fmt:      string(isa.FmtS),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, hi, rs2, rs1, f3, lo},
		AsmFrags: []fragment.Fragment{op, rs2, hi, rs1},
	}, nil
}
