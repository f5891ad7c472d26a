package encoder

import (
	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/bits"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// encodeBranch assembles BRANCH: "beq x1, x2, 8" (specification §6, B-type
// splits a 13-bit signed byte offset across four bit-groups with an
// implicit zero LSB).
func encodeBranch(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
	if err := reqOperands(m.Name, operands, 3); err != nil {
		return instr.Result{}, err
	}
	rs1Num, err := parseReg(operands[0], false)
	if err != nil {
		return instr.Result{}, err
	}
	rs2Num, err := parseReg(operands[1], false)
	if err != nil {
		return instr.Result{}, err
	}
	offset, err := parseDecimal(operands[2])
	if err != nil {
		return instr.Result{}, err
	}
	if offset%2 != 0 {
		return instr.Result{}, rverrors.New(rverrors.OperandSyntax, "%s offset %d must be even", m.Name, offset)
	}
	full, err := bits.EmitImm(offset, 13, true)
	if err != nil {
		return instr.Result{}, rverrors.Wrap(rverrors.ImmediateOutOfRange, err, "%s branch offset", m.Name)
	}
	b12Bits, b11Bits, b10_5Bits, b4_1Bits := full[0:1], full[1:2], full[2:8], full[8:12]

	op := opFrag(m.Opcode.Bits(), m.Name)
	f3 := fixedFrag(isa.Funct3, m.Funct3, m.Name)
	rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, false)
	rs2 := regFrag(isa.Rs2, rs2Num, false, cfg, false)
	offsetText := renderSignedImm(offset)
	f12 := immFrag(isa.BImm12, b12Bits, offsetText)
	f11 := immFrag(isa.BImm11, b11Bits, offsetText)
	f10_5 := immFrag(isa.BImm10_5, b10_5Bits, offsetText)
	f4_1 := immFrag(isa.BImm4_1, b4_1Bits, offsetText)

	return instr.Result{
		Asm:      asmLine(m.Name, rs1.Assembly, rs2.Assembly, offsetText),
		Fmt:      string(isa.FmtB),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, f12, f10_5, rs2, rs1, f3, f4_1, f11},
		AsmFrags: []fragment.Fragment{op, rs1, rs2, f12},
	}, nil
}
