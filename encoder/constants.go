package encoder

import (
	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/bits"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// encodeU assembles LUI/AUIPC: "lui x5, 74565" — the 20-bit immediate is
// taken literally, already occupying bits[31:12] (specification §6
// "imm_31_12"), never left-shifted by this codec.
func encodeU(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
	if err := reqOperands(m.Name, operands, 2); err != nil {
		return instr.Result{}, err
	}
	rdNum, err := parseReg(operands[0], false)
	if err != nil {
		return instr.Result{}, err
	}
	imm, err := parseDecimal(operands[1])
	if err != nil {
		return instr.Result{}, err
	}
	immBits, err := bits.EmitImm(imm, 20, false)
	if err != nil {
		return instr.Result{}, rverrors.Wrap(rverrors.ImmediateOutOfRange, err, "%s immediate", m.Name)
	}

	op := opFrag(m.Opcode.Bits(), m.Name)
	rd := regFrag(isa.Rd, rdNum, false, cfg, false)
	immText := renderSignedImm(imm)
	immF := immFrag(isa.ImmU, immBits, immText)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, immText),
		Fmt:      string(isa.FmtU),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, immF, rd},
		AsmFrags: []fragment.Fragment{op, rd, immF},
	}, nil
}

// encodeJal assembles JAL: "jal x1, 16" — a 21-bit signed byte offset
// split imm[20|10:1|11|19:12] with an implicit zero LSB.
func encodeJal(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
	if err := reqOperands(m.Name, operands, 2); err != nil {
		return instr.Result{}, err
	}
	rdNum, err := parseReg(operands[0], false)
	if err != nil {
		return instr.Result{}, err
	}
	offset, err := parseDecimal(operands[1])
	if err != nil {
		return instr.Result{}, err
	}
	if offset%2 != 0 {
		return instr.Result{}, rverrors.New(rverrors.OperandSyntax, "%s offset %d must be even", m.Name, offset)
	}
	full, err := bits.EmitImm(offset, 21, true)
	if err != nil {
		return instr.Result{}, rverrors.Wrap(rverrors.ImmediateOutOfRange, err, "%s offset", m.Name)
	}
	b20Bits, b19_12Bits, b11Bits, b10_1Bits := full[0:1], full[1:9], full[9:10], full[10:20]

	op := opFrag(m.Opcode.Bits(), m.Name)
	rd := regFrag(isa.Rd, rdNum, false, cfg, false)
	offsetText := renderSignedImm(offset)
	f20 := immFrag(isa.JImm20, b20Bits, offsetText)
	f19_12 := immFrag(isa.JImm19_12, b19_12Bits, offsetText)
	f11 := immFrag(isa.JImm11, b11Bits, offsetText)
	f10_1 := immFrag(isa.JImm10_1, b10_1Bits, offsetText)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, offsetText),
		Fmt:      string(isa.FmtJ),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, f20, f19_12, f11, f10_1, rd},
		AsmFrags: []fragment.Fragment{op, rd, f20},
	}, nil
}
