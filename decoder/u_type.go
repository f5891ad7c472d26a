package decoder

import (
	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// decodeU handles LUI and AUIPC: rd, imm.
func decodeU(word uint32, cfg isa.Config, opName isa.OpcodeName) (instr.Result, error) {
	name := "lui"
	if opName == isa.OpAuipc {
		name = "auipc"
	}
	m, ok := isa.Lookup(name)
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.InternalErrorKind, "%s missing from mnemonic table", name)
	}
	if err := checkIsaMismatch(m, cfg); err != nil {
		return instr.Result{}, err
	}

	rdNum := mustUint(sliceField(word, isa.Rd))
	immText, immFragV := uImm(word)
	op := opFrag(word, m.Name)
	rd := regFrag(isa.Rd, rdNum, false, cfg, false)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, immText),
		Fmt:      string(isa.FmtU),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, immFragV, rd},
		AsmFrags: []fragment.Fragment{op, rd, immFragV},
	}, nil
}
