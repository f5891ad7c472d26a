package decoder

import (
	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// decodeAmo handles the EXT_A atomic family: lr/sc and the amo<op>.w/.d
// instructions, R-type shaped with aq/rl flags replacing two funct7 bits
// (specification §6 AMO fields).
func decodeAmo(word uint32, cfg isa.Config) (instr.Result, error) {
	funct5 := sliceField(word, isa.Funct5)
	funct3 := sliceField(word, isa.Funct3)
	m, ok := isa.LookupAmo(funct5, funct3)
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "no AMO instruction with funct5=%s funct3=%s", funct5, funct3)
	}
	if err := checkIsaMismatch(m, cfg); err != nil {
		return instr.Result{}, err
	}

	aqBits := sliceField(word, isa.Aq)
	rlBits := sliceField(word, isa.Rl)
	rdNum := mustUint(sliceField(word, isa.Rd))
	rs1Num := mustUint(sliceField(word, isa.Rs1))
	rs2Num := mustUint(sliceField(word, isa.Rs2))

	name := amoSuffix(m.Name, aqBits == "1", rlBits == "1")
	op := opFrag(word, name)
	f5 := fixedFrag(isa.Funct5, funct5, name)
	f3 := fixedFrag(isa.Funct3, funct3, name)
	aq := fixedFrag(isa.Aq, aqBits, name)
	rl := fixedFrag(isa.Rl, rlBits, name)
	rd := regFrag(isa.Rd, rdNum, false, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, true)
	mem := "(" + rs1.Assembly + ")"

	if m.NoRs2 {
		rs2Zero := sliceField(word, isa.Rs2)
		if mustUint(rs2Zero) != 0 {
			return instr.Result{}, rverrors.New(rverrors.NonZeroReserved, "%s requires rs2 to be zero", m.Name)
		}
		rs2F := fixedFrag(isa.Rs2, rs2Zero, name)
		return instr.Result{
			Asm:      asmLine(name, rd.Assembly, mem),
			Fmt:      string(isa.FmtR),
			Isa:      m.Isa,
			BinFrags: []fragment.Fragment{op, f5, aq, rl, rs2F, rs1, f3, rd},
			AsmFrags: []fragment.Fragment{op, rd, rs1},
		}, nil
	}

	rs2 := regFrag(isa.Rs2, rs2Num, false, cfg, false)
	return instr.Result{
		Asm:      asmLine(name, rd.Assembly, rs2.Assembly, mem),
		Fmt:      string(isa.FmtR),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, f5, aq, rl, rs2, rs1, f3, rd},
		AsmFrags: []fragment.Fragment{op, rd, rs2, rs1},
	}, nil
}

// amoSuffix appends the conventional .aq/.rl/.aqrl ordering suffix used
// by RISC-V disassemblers when either memory-ordering bit is set.
func amoSuffix(name string, aq, rl bool) string {
	switch {
	case aq && rl:
		return name + ".aqrl"
	case aq:
		return name + ".aq"
	case rl:
		return name + ".rl"
	default:
		return name
	}
}
