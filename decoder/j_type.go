package decoder

import (
	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// decodeJal handles JAL: rd, offset.
func decodeJal(word uint32, cfg isa.Config) (instr.Result, error) {
	m, ok := isa.Lookup("jal")
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.InternalErrorKind, "jal missing from mnemonic table")
	}
	if err := checkIsaMismatch(m, cfg); err != nil {
		return instr.Result{}, err
	}

	rdNum := mustUint(sliceField(word, isa.Rd))
	_, immText, f20, f10_1, f11, f19_12 := jImm(word)
	op := opFrag(word, m.Name)
	rd := regFrag(isa.Rd, rdNum, false, cfg, false)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, immText),
		Fmt:      string(isa.FmtJ),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, f20, f19_12, f11, f10_1, rd},
		AsmFrags: []fragment.Fragment{op, rd, f20},
	}, nil
}
