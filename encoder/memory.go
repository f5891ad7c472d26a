package encoder

import (
	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/bits"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// encodeLoad assembles LOAD and LOAD_FP: "lw x5, 8(x6)".
func encodeLoad(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
	if err := reqOperands(m.Name, operands, 2); err != nil {
		return instr.Result{}, err
	}
	rdNum, err := parseReg(operands[0], m.RdFloat)
	if err != nil {
		return instr.Result{}, err
	}
	offsetTok, regTok, err := parseMem(operands[1])
	if err != nil {
		return instr.Result{}, err
	}
	rs1Num, err := parseReg(regTok, false)
	if err != nil {
		return instr.Result{}, err
	}
	offset, err := parseDecimal(offsetTok)
	if err != nil {
		return instr.Result{}, err
	}
	immBits, err := bits.EmitImm(offset, 12, true)
	if err != nil {
		return instr.Result{}, rverrors.Wrap(rverrors.ImmediateOutOfRange, err, "%s offset", m.Name)
	}

	op := opFrag(m.Opcode.Bits(), m.Name)
	f3 := fixedFrag(isa.Funct3, m.Funct3, m.Name)
	rd := regFrag(isa.Rd, rdNum, m.RdFloat, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, true)
	immText := renderSignedImm(offset)
	immF := immFrag(isa.ImmI, immBits, immText)
	mem := immText + "(" + rs1.Assembly + ")"

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, mem),
		Fmt:      string(isa.FmtI),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, immF, rs1, f3, rd},
		AsmFrags: []fragment.Fragment{op, rd, immF, rs1},
	}, nil
}

// encodeStore assembles STORE and STORE_FP: "sw x7, 12(x8)".
func encodeStore(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
	if err := reqOperands(m.Name, operands, 2); err != nil {
		return instr.Result{}, err
	}
	rs2Num, err := parseReg(operands[0], m.Rs2Float)
	if err != nil {
		return instr.Result{}, err
	}
	offsetTok, regTok, err := parseMem(operands[1])
	if err != nil {
		return instr.Result{}, err
	}
	rs1Num, err := parseReg(regTok, false)
	if err != nil {
		return instr.Result{}, err
	}
	offset, err := parseDecimal(offsetTok)
	if err != nil {
		return instr.Result{}, err
	}
	full, err := bits.EmitImm(offset, 12, true)
	if err != nil {
		return instr.Result{}, rverrors.Wrap(rverrors.ImmediateOutOfRange, err, "%s offset", m.Name)
	}
	hiBits, loBits := full[0:7], full[7:12]

	op := opFrag(m.Opcode.Bits(), m.Name)
	f3 := fixedFrag(isa.Funct3, m.Funct3, m.Name)
	rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, true)
	rs2 := regFrag(isa.Rs2, rs2Num, m.Rs2Float, cfg, false)
	immText := renderSignedImm(offset)
	hi := immFrag(isa.SImmHi, hiBits, immText)
	lo := immFrag(isa.SImmLo, loBits, immText)
	mem := immText + "(" + rs1.Assembly + ")"

	return instr.Result{
		Asm:      asmLine(m.Name, rs2.Assembly, mem),
		Fmt:      string(isa.FmtS),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, hi, rs2, rs1, f3, lo},
		AsmFrags: []fragment.Fragment{op, rs2, hi, rs1},
	}, nil
}

// encodeJalr assembles JALR: "jalr x1, x2, 4".
func encodeJalr(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
	if err := reqOperands(m.Name, operands, 3); err != nil {
		return instr.Result{}, err
	}
	rdNum, err := parseReg(operands[0], false)
	if err != nil {
		return instr.Result{}, err
	}
	rs1Num, err := parseReg(operands[1], false)
	if err != nil {
		return instr.Result{}, err
	}
	offset, err := parseDecimal(operands[2])
	if err != nil {
		return instr.Result{}, err
	}
	immBits, err := bits.EmitImm(offset, 12, true)
	if err != nil {
		return instr.Result{}, rverrors.Wrap(rverrors.ImmediateOutOfRange, err, "%s offset", m.Name)
	}

	op := opFrag(m.Opcode.Bits(), m.Name)
	f3 := fixedFrag(isa.Funct3, m.Funct3, m.Name)
	rd := regFrag(isa.Rd, rdNum, false, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, false)
	immText := renderSignedImm(offset)
	immF := immFrag(isa.ImmI, immBits, immText)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly, immText),
		Fmt:      string(isa.FmtI),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, immF, rs1, f3, rd},
		AsmFrags: []fragment.Fragment{op, rd, rs1, immF},
	}, nil
}
