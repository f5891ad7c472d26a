package encoder

import (
	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/bits"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// encodeR assembles OP and OP_32: "add x10, x11, x12", including the
// EXT_M multiply/divide family sharing the same R-type shape.
func encodeR(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
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
	rs2Num, err := parseReg(operands[2], false)
	if err != nil {
		return instr.Result{}, err
	}

	op := opFrag(m.Opcode.Bits(), m.Name)
	f7 := fixedFrag(isa.Funct7, m.Funct7, m.Name)
	f3 := fixedFrag(isa.Funct3, m.Funct3, m.Name)
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

// encodeOpImm assembles OP_IMM and OP_IMM_32: immediate arithmetic plus
// the shift family, whose shamt/shtyp bit split depends on m.Shtyp and
// the ISA profile (specification §4.4 "shift width resolution").
func encodeOpImm(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
	if m.Shtyp != "" {
		return encodeShift(m, operands, cfg)
	}
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
	imm, err := parseDecimal(operands[2])
	if err != nil {
		return instr.Result{}, err
	}
	immBits, err := bits.EmitImm(imm, 12, true)
	if err != nil {
		return instr.Result{}, rverrors.Wrap(rverrors.ImmediateOutOfRange, err, "%s immediate", m.Name)
	}

	op := opFrag(m.Opcode.Bits(), m.Name)
	f3 := fixedFrag(isa.Funct3, m.Funct3, m.Name)
	rd := regFrag(isa.Rd, rdNum, false, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, false)
	immText := renderSignedImm(imm)
	immF := immFrag(isa.ImmI, immBits, immText)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly, immText),
		Fmt:      string(isa.FmtI),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, immF, rs1, f3, rd},
		AsmFrags: []fragment.Fragment{op, rd, rs1, immF},
	}, nil
}

// encodeShift assembles slli/srli/srai and their -w variants. OP_IMM_32
// always uses the narrow (5-bit shamt, 7-bit shtyp) split; OP_IMM uses
// the wide (6-bit/6-bit) split only under RV64I.
func encodeShift(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
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
	shamt, err := parseDecimal(operands[2])
	if err != nil {
		return instr.Result{}, err
	}

	wide := m.Opcode == isa.OpOpImm && cfg.IsRV64()
	shtypField, shamtField := isa.ShiftTypeHigh5, isa.Shamt5
	shtypBits := m.Shtyp
	if wide {
		shtypField, shamtField = isa.ShiftTypeHigh6, isa.Shamt6
		shtypBits = m.Shtyp[:len(m.Shtyp)-1]
	}
	shamtBits, err := bits.EmitImm(shamt, shamtField.Width, false)
	if err != nil {
		return instr.Result{}, rverrors.Wrap(rverrors.ShiftOutOfRange, err, "%s shamt", m.Name)
	}

	op := opFrag(m.Opcode.Bits(), m.Name)
	f3 := fixedFrag(isa.Funct3, m.Funct3, m.Name)
	shtyp := fixedFrag(shtypField, shtypBits, m.Name)
	rd := regFrag(isa.Rd, rdNum, false, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, false)
	shamtText := renderSignedImm(shamt)
	shamtFrag := fragment.New(shamtText, shamtBits, shamtField.Name, shamtField.High-shamtField.Width+1, false)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly, shamtText),
		Fmt:      string(isa.FmtI),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, shtyp, shamtFrag, rs1, f3, rd},
		AsmFrags: []fragment.Fragment{op, rd, rs1, shamtFrag},
	}, nil
}
