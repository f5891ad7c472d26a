package encoder

import (
	"strconv"
	"strings"

	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/bits"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// parseAmoMem strips the parens off an AMO memory operand, e.g. "(x7)".
func parseAmoMem(tok string) (string, error) {
	if !strings.HasPrefix(tok, "(") || !strings.HasSuffix(tok, ")") {
		return "", rverrors.New(rverrors.OperandSyntax, "expected (reg) memory operand, got %q", tok)
	}
	return strings.TrimSpace(tok[1 : len(tok)-1]), nil
}

func rmBitsOf(m *isa.Mnemonic, tok string) (name string, bitsText string, err error) {
	name = strings.ToLower(tok)
	bitsText, ok := isa.RoundingModeBits(name)
	if !ok {
		return "", "", rverrors.New(rverrors.OperandSyntax, "%s: unknown rounding mode %q", m.Name, tok)
	}
	return name, bitsText, nil
}

// encodeMiscMem assembles MISC_MEM: "fence iorw, iorw" and "fence.i".
func encodeMiscMem(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
	op := opFrag(m.Opcode.Bits(), m.Name)
	f3 := fixedFrag(isa.Funct3, m.Funct3, m.Name)
	rdF := fixedFrag(isa.Rd, "00000", m.Name)
	rs1F := fixedFrag(isa.Rs1, "00000", m.Name)

	if m.Name == "fence.i" {
		if err := reqOperands(m.Name, operands, 0); err != nil {
			return instr.Result{}, err
		}
		immF := fixedFrag(isa.ImmI, "000000000000", m.Name)
		return instr.Result{
			Asm:      m.Name,
			Fmt:      string(isa.FmtI),
			Isa:      m.Isa,
			BinFrags: []fragment.Fragment{op, immF, rs1F, f3, rdF},
			AsmFrags: []fragment.Fragment{op},
		}, nil
	}

	if err := reqOperands(m.Name, operands, 2); err != nil {
		return instr.Result{}, err
	}
	predBits, err := isa.FenceMaskBits(operands[0])
	if err != nil {
		return instr.Result{}, rverrors.Wrap(rverrors.InvalidFence, err, "predecessor mask")
	}
	succBits, err := isa.FenceMaskBits(operands[1])
	if err != nil {
		return instr.Result{}, rverrors.Wrap(rverrors.InvalidFence, err, "successor mask")
	}
	predName, _ := isa.FenceMaskName(predBits)
	succName, _ := isa.FenceMaskName(succBits)

	fm := fixedFrag(isa.FenceFm, "0000", m.Name)
	predF := fragment.New(predName, predBits, isa.FencePred.Name, isa.FencePred.High-isa.FencePred.Width+1, false)
	succF := fragment.New(succName, succBits, isa.FenceSucc.Name, isa.FenceSucc.High-isa.FenceSucc.Width+1, false)

	return instr.Result{
		Asm:      asmLine(m.Name, predName, succName),
		Fmt:      string(isa.FmtI),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, fm, predF, succF, rs1F, f3, rdF},
		AsmFrags: []fragment.Fragment{op, predF, succF},
	}, nil
}

// encodeSystem assembles SYSTEM: ecall/ebreak and the Zicsr family.
func encodeSystem(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
	if m.Funct3 == "000" {
		if err := reqOperands(m.Name, operands, 0); err != nil {
			return instr.Result{}, err
		}
		op := opFrag(m.Opcode.Bits(), m.Name)
		f3 := fixedFrag(isa.Funct3, "000", m.Name)
		f12 := fragment.New(m.Name, m.Funct12, "funct12", 20, false)
		rdF := fixedFrag(isa.Rd, "00000", m.Name)
		rs1F := fixedFrag(isa.Rs1, "00000", m.Name)
		return instr.Result{
			Asm:      m.Name,
			Fmt:      string(isa.FmtI),
			Isa:      m.Isa,
			BinFrags: []fragment.Fragment{op, f12, rs1F, f3, rdF},
			AsmFrags: []fragment.Fragment{op},
		}, nil
	}

	if err := reqOperands(m.Name, operands, 3); err != nil {
		return instr.Result{}, err
	}
	rdNum, err := parseReg(operands[0], false)
	if err != nil {
		return instr.Result{}, err
	}
	csrAddr, ok := isa.CSRAddress(operands[1])
	if !ok {
		v, perr := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(operands[1]), "0x"), 16, 12)
		if perr != nil {
			return instr.Result{}, rverrors.New(rverrors.BadCsr, "unrecognized CSR %q", operands[1])
		}
		csrAddr = uint32(v)
	}
	csrBits := bits.ToBinary(csrAddr, isa.ImmI.Width)
	csrName := isa.CSRName(csrAddr)

	op := opFrag(m.Opcode.Bits(), m.Name)
	f3 := fixedFrag(isa.Funct3, m.Funct3, m.Name)
	rd := regFrag(isa.Rd, rdNum, false, cfg, false)
	csrF := fragment.New(csrName, csrBits, isa.ImmI.Name, isa.ImmI.High-isa.ImmI.Width+1, false)

	if strings.HasSuffix(m.Name, "i") {
		uimm, perr := parseDecimal(operands[2])
		if perr != nil {
			return instr.Result{}, perr
		}
		uimmBits, eerr := bits.EmitImm(uimm, isa.Rs1.Width, false)
		if eerr != nil {
			return instr.Result{}, rverrors.Wrap(rverrors.ImmediateOutOfRange, eerr, "%s immediate", m.Name)
		}
		uimmText := renderSignedImm(uimm)
		uimmF := fragment.New(uimmText, uimmBits, isa.Rs1.Name, isa.Rs1.High-isa.Rs1.Width+1, false)
		return instr.Result{
			Asm:      asmLine(m.Name, rd.Assembly, csrName, uimmText),
			Fmt:      string(isa.FmtI),
			Isa:      m.Isa,
			BinFrags: []fragment.Fragment{op, csrF, uimmF, f3, rd},
			AsmFrags: []fragment.Fragment{op, rd, csrF, uimmF},
		}, nil
	}

	rs1Num, err := parseReg(operands[2], false)
	if err != nil {
		return instr.Result{}, err
	}
	rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, false)
	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, csrName, rs1.Assembly),
		Fmt:      string(isa.FmtI),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, csrF, rs1, f3, rd},
		AsmFrags: []fragment.Fragment{op, rd, csrF, rs1},
	}, nil
}

// encodeAmo assembles the EXT_A atomic family: "amoadd.w x5, x6, (x7)"
// and "lr.w x5, (x7)".
func encodeAmo(m *isa.Mnemonic, operands []string, cfg isa.Config, aq, rl bool) (instr.Result, error) {
	aqBits, rlBits := "0", "0"
	if aq {
		aqBits = "1"
	}
	if rl {
		rlBits = "1"
	}
	name := amoSuffix(m.Name, aq, rl)
	op := opFrag(m.Opcode.Bits(), name)
	f5 := fixedFrag(isa.Funct5, m.Funct5, name)
	f3 := fixedFrag(isa.Funct3, m.Funct3, name)
	aqF := fixedFrag(isa.Aq, aqBits, name)
	rlF := fixedFrag(isa.Rl, rlBits, name)

	if m.NoRs2 {
		if err := reqOperands(m.Name, operands, 2); err != nil {
			return instr.Result{}, err
		}
		rdNum, err := parseReg(operands[0], false)
		if err != nil {
			return instr.Result{}, err
		}
		regTok, err := parseAmoMem(operands[1])
		if err != nil {
			return instr.Result{}, err
		}
		rs1Num, err := parseReg(regTok, false)
		if err != nil {
			return instr.Result{}, err
		}
		rd := regFrag(isa.Rd, rdNum, false, cfg, false)
		rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, true)
		rs2F := fixedFrag(isa.Rs2, "00000", name)
		mem := "(" + rs1.Assembly + ")"
		return instr.Result{
			Asm:      asmLine(name, rd.Assembly, mem),
			Fmt:      string(isa.FmtR),
			Isa:      m.Isa,
			BinFrags: []fragment.Fragment{op, f5, aqF, rlF, rs2F, rs1, f3, rd},
			AsmFrags: []fragment.Fragment{op, rd, rs1},
		}, nil
	}

	if err := reqOperands(m.Name, operands, 3); err != nil {
		return instr.Result{}, err
	}
	rdNum, err := parseReg(operands[0], false)
	if err != nil {
		return instr.Result{}, err
	}
	rs2Num, err := parseReg(operands[1], false)
	if err != nil {
		return instr.Result{}, err
	}
	regTok, err := parseAmoMem(operands[2])
	if err != nil {
		return instr.Result{}, err
	}
	rs1Num, err := parseReg(regTok, false)
	if err != nil {
		return instr.Result{}, err
	}
	rd := regFrag(isa.Rd, rdNum, false, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, true)
	rs2 := regFrag(isa.Rs2, rs2Num, false, cfg, false)
	mem := "(" + rs1.Assembly + ")"

	return instr.Result{
		Asm:      asmLine(name, rd.Assembly, rs2.Assembly, mem),
		Fmt:      string(isa.FmtR),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, f5, aqF, rlF, rs2, rs1, f3, rd},
		AsmFrags: []fragment.Fragment{op, rd, rs2, rs1},
	}, nil
}

// amoSuffix appends the conventional .aq/.rl/.aqrl ordering suffix.
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

// encodeOpFP dispatches OP_FP across its four operand shapes, mirroring
// the decoder's four-level family split.
func encodeOpFP(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
	switch {
	case m.Rs2Fixed != "":
		return encodeOpFPConvert(m, operands, cfg)
	case m.NoRs2 && m.Funct3 != "":
		return encodeOpFPUnarySelector(m, operands, cfg)
	case m.Funct3 != "":
		return encodeOpFPTernary(m, operands, cfg)
	default:
		return encodeOpFPDirect(m, operands, cfg)
	}
}

// encodeOpFPDirect handles fadd/fsub/fmul/fdiv.s (rd,rs1,rs2,rm) and
// fsqrt.s (rd,rs1,rm with rs2 forced to zero).
func encodeOpFPDirect(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
	n := 4
	if m.NoRs2 {
		n = 3
	}
	if err := reqOperands(m.Name, operands, n); err != nil {
		return instr.Result{}, err
	}
	rdNum, err := parseReg(operands[0], m.RdFloat)
	if err != nil {
		return instr.Result{}, err
	}
	rs1Num, err := parseReg(operands[1], m.Rs1Float)
	if err != nil {
		return instr.Result{}, err
	}

	op := opFrag(m.Opcode.Bits(), m.Name)
	f5 := fixedFrag(isa.Funct5, m.Funct5, m.Name)
	fmtF := fixedFrag(isa.FpFmt, m.FmtBits, m.Name)
	rd := regFrag(isa.Rd, rdNum, m.RdFloat, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, m.Rs1Float, cfg, false)

	if m.NoRs2 {
		rmName, rmBits, rerr := rmBitsOf(m, operands[2])
		if rerr != nil {
			return instr.Result{}, rerr
		}
		rmF := fragment.New(rmName, rmBits, isa.RmOrF3.Name, isa.RmOrF3.High-isa.RmOrF3.Width+1, false)
		rs2F := fixedFrag(isa.Rs2, "00000", m.Name)
		return instr.Result{
			Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly, rmName),
			Fmt:      string(isa.FmtR),
			Isa:      m.Isa,
			BinFrags: []fragment.Fragment{op, f5, fmtF, rs2F, rs1, rmF, rd},
			AsmFrags: []fragment.Fragment{op, rd, rs1, rmF},
		}, nil
	}

	rs2Num, err := parseReg(operands[2], m.Rs2Float)
	if err != nil {
		return instr.Result{}, err
	}
	rmName, rmBits, rerr := rmBitsOf(m, operands[3])
	if rerr != nil {
		return instr.Result{}, rerr
	}
	rmF := fragment.New(rmName, rmBits, isa.RmOrF3.Name, isa.RmOrF3.High-isa.RmOrF3.Width+1, false)
	rs2 := regFrag(isa.Rs2, rs2Num, m.Rs2Float, cfg, false)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly, rs2.Assembly, rmName),
		Fmt:      string(isa.FmtR),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, f5, fmtF, rs2, rs1, rmF, rd},
		AsmFrags: []fragment.Fragment{op, rd, rs1, rs2, rmF},
	}, nil
}

// encodeOpFPTernary handles fsgnj/fsgnjn/fsgnjx, fmin/fmax, feq/flt/fle:
// rd, rs1, rs2 with no rounding-mode operand.
func encodeOpFPTernary(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
	if err := reqOperands(m.Name, operands, 3); err != nil {
		return instr.Result{}, err
	}
	rdNum, err := parseReg(operands[0], m.RdFloat)
	if err != nil {
		return instr.Result{}, err
	}
	rs1Num, err := parseReg(operands[1], m.Rs1Float)
	if err != nil {
		return instr.Result{}, err
	}
	rs2Num, err := parseReg(operands[2], m.Rs2Float)
	if err != nil {
		return instr.Result{}, err
	}

	op := opFrag(m.Opcode.Bits(), m.Name)
	f5 := fixedFrag(isa.Funct5, m.Funct5, m.Name)
	fmtF := fixedFrag(isa.FpFmt, m.FmtBits, m.Name)
	f3 := fixedFrag(isa.RmOrF3, m.Funct3, m.Name)
	rd := regFrag(isa.Rd, rdNum, m.RdFloat, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, m.Rs1Float, cfg, false)
	rs2 := regFrag(isa.Rs2, rs2Num, m.Rs2Float, cfg, false)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly, rs2.Assembly),
		Fmt:      string(isa.FmtR),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, f5, fmtF, rs2, rs1, f3, rd},
		AsmFrags: []fragment.Fragment{op, rd, rs1, rs2},
	}, nil
}

// encodeOpFPUnarySelector handles fclass.s/fmv.x.w/fmv.w.x: a single
// operand, rs2 forced to zero.
func encodeOpFPUnarySelector(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
	if err := reqOperands(m.Name, operands, 2); err != nil {
		return instr.Result{}, err
	}
	rdNum, err := parseReg(operands[0], m.RdFloat)
	if err != nil {
		return instr.Result{}, err
	}
	rs1Num, err := parseReg(operands[1], m.Rs1Float)
	if err != nil {
		return instr.Result{}, err
	}

	op := opFrag(m.Opcode.Bits(), m.Name)
	f5 := fixedFrag(isa.Funct5, m.Funct5, m.Name)
	fmtF := fixedFrag(isa.FpFmt, m.FmtBits, m.Name)
	f3 := fixedFrag(isa.RmOrF3, m.Funct3, m.Name)
	rs2F := fixedFrag(isa.Rs2, "00000", m.Name)
	rd := regFrag(isa.Rd, rdNum, m.RdFloat, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, m.Rs1Float, cfg, false)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly),
		Fmt:      string(isa.FmtR),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, f5, fmtF, rs2F, rs1, f3, rd},
		AsmFrags: []fragment.Fragment{op, rd, rs1},
	}, nil
}

// encodeOpFPConvert handles fcvt.w.s/fcvt.wu.s/fcvt.s.w/fcvt.s.wu: one
// operand plus a rounding-mode operand, rs2 fixed to the width/signedness
// selector.
func encodeOpFPConvert(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
	if err := reqOperands(m.Name, operands, 3); err != nil {
		return instr.Result{}, err
	}
	rdNum, err := parseReg(operands[0], m.RdFloat)
	if err != nil {
		return instr.Result{}, err
	}
	rs1Num, err := parseReg(operands[1], m.Rs1Float)
	if err != nil {
		return instr.Result{}, err
	}
	rmName, rmBits, rerr := rmBitsOf(m, operands[2])
	if rerr != nil {
		return instr.Result{}, rerr
	}

	op := opFrag(m.Opcode.Bits(), m.Name)
	f5 := fixedFrag(isa.Funct5, m.Funct5, m.Name)
	fmtF := fixedFrag(isa.FpFmt, m.FmtBits, m.Name)
	rs2F := fixedFrag(isa.Rs2, m.Rs2Fixed, m.Name)
	rmF := fragment.New(rmName, rmBits, isa.RmOrF3.Name, isa.RmOrF3.High-isa.RmOrF3.Width+1, false)
	rd := regFrag(isa.Rd, rdNum, m.RdFloat, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, m.Rs1Float, cfg, false)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly, rmName),
		Fmt:      string(isa.FmtR),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, f5, fmtF, rs2F, rs1, rmF, rd},
		AsmFrags: []fragment.Fragment{op, rd, rs1, rmF},
	}, nil
}

// encodeFma assembles the R4-type fused multiply-add family: rd, rs1,
// rs2, rs3, rm.
func encodeFma(m *isa.Mnemonic, operands []string, cfg isa.Config) (instr.Result, error) {
	if err := reqOperands(m.Name, operands, 5); err != nil {
		return instr.Result{}, err
	}
	rdNum, err := parseReg(operands[0], true)
	if err != nil {
		return instr.Result{}, err
	}
	rs1Num, err := parseReg(operands[1], true)
	if err != nil {
		return instr.Result{}, err
	}
	rs2Num, err := parseReg(operands[2], true)
	if err != nil {
		return instr.Result{}, err
	}
	rs3Num, err := parseReg(operands[3], true)
	if err != nil {
		return instr.Result{}, err
	}
	rmName, rmBits, rerr := rmBitsOf(m, operands[4])
	if rerr != nil {
		return instr.Result{}, rerr
	}

	op := opFrag(m.Opcode.Bits(), m.Name)
	fmtF := fixedFrag(isa.FpFmt, m.FmtBits, m.Name)
	rmF := fragment.New(rmName, rmBits, isa.RmOrF3.Name, isa.RmOrF3.High-isa.RmOrF3.Width+1, false)
	rd := regFrag(isa.Rd, rdNum, true, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, true, cfg, false)
	rs2 := regFrag(isa.Rs2, rs2Num, true, cfg, false)
	rs3 := regFrag(isa.Rs3, rs3Num, true, cfg, false)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly, rs2.Assembly, rs3.Assembly, rmName),
		Fmt:      string(isa.FmtR4),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{rs3, fmtF, rs2, rs1, rmF, rd, op},
		AsmFrags: []fragment.Fragment{op, rd, rs1, rs2, rs3, rmF},
	}, nil
}
