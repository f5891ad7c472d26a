package decoder

import (
	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// decodeOpFP handles OP_FP: single-precision floating point arithmetic,
// sign-injection, min/max, compare, classify and move/convert
// instructions, which share the R-type shape but split funct7 into
// funct5||fmt and overload bits[14:12] as either a real operand
// (rounding mode) or a fixed sub-opcode selector depending on the family
// (specification §4.2 "OP-FP" three/four-level dispatch).
func decodeOpFP(word uint32, cfg isa.Config) (instr.Result, error) {
	funct5 := sliceField(word, isa.Funct5)
	fmtBits := sliceField(word, isa.FpFmt)
	if fmtBits != "00" {
		return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "only single-precision (fmt=00) is supported, got fmt=%s", fmtBits)
	}

	rdNum := mustUint(sliceField(word, isa.Rd))
	rs1Num := mustUint(sliceField(word, isa.Rs1))
	rs2Bits := sliceField(word, isa.Rs2)
	rmBits := sliceField(word, isa.RmOrF3)

	direct, byFunct3, noRs2ByFunct3, byRs2, ok := isa.LookupOpFP(funct5)
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "no OP_FP instruction with funct5=%s", funct5)
	}

	switch {
	case direct != nil:
		return decodeOpFPDirect(word, cfg, direct, fmtBits, rdNum, rs1Num, rs2Bits, rmBits)
	case byFunct3 != nil:
		m, ok := byFunct3[rmBits]
		if !ok {
			return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "no OP_FP funct5=%s instruction with funct3=%s", funct5, rmBits)
		}
		return decodeOpFPTernary(word, cfg, m, fmtBits, rdNum, rs1Num, rs2Bits, rmBits)
	case noRs2ByFunct3 != nil:
		m, ok := noRs2ByFunct3[rmBits]
		if !ok {
			return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "no OP_FP funct5=%s instruction with funct3=%s", funct5, rmBits)
		}
		return decodeOpFPUnarySelector(word, cfg, m, fmtBits, rdNum, rs1Num, rs2Bits, rmBits)
	default:
		m, ok := byRs2[rs2Bits]
		if !ok {
			return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "no OP_FP funct5=%s instruction with rs2=%s", funct5, rs2Bits)
		}
		return decodeOpFPConvert(word, cfg, m, fmtBits, rdNum, rs1Num, rs2Bits, rmBits)
	}
}

func rmOperand(rmBits string) (string, fragment.Fragment) {
	name, ok := isa.RoundingModeName(rmBits)
	if !ok {
		name = isa.DefaultRoundingMode
	}
	return name, fragment.New(name, rmBits, isa.RmOrF3.Name, isa.RmOrF3.High-isa.RmOrF3.Width+1, false)
}

// decodeOpFPDirect handles fadd/fsub/fmul/fdiv.s (rd,rs1,rs2,rm) and
// fsqrt.s (rd,rs1,rm with rs2 forced to zero).
func decodeOpFPDirect(word uint32, cfg isa.Config, m *isa.Mnemonic, fmtBits string, rdNum, rs1Num uint32, rs2Bits, rmBits string) (instr.Result, error) {
	op := opFrag(word, m.Name)
	f5 := fixedFrag(isa.Funct5, sliceField(word, isa.Funct5), m.Name)
	fmtF := fixedFrag(isa.FpFmt, fmtBits, m.Name)
	rmName, rmF := rmOperand(rmBits)
	rd := regFrag(isa.Rd, rdNum, m.RdFloat, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, m.Rs1Float, cfg, false)

	if m.NoRs2 {
		if mustUint(rs2Bits) != 0 {
			return instr.Result{}, rverrors.New(rverrors.NonZeroReserved, "%s requires rs2 to be zero", m.Name)
		}
		rs2F := fixedFrag(isa.Rs2, rs2Bits, m.Name)
		return instr.Result{
			Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly, rmName),
			Fmt:      string(isa.FmtR),
			Isa:      m.Isa,
			BinFrags: []fragment.Fragment{op, f5, fmtF, rs2F, rs1, rmF, rd},
			AsmFrags: []fragment.Fragment{op, rd, rs1, rmF},
		}, nil
	}

	rs2Num := mustUint(rs2Bits)
	rs2 := regFrag(isa.Rs2, rs2Num, m.Rs2Float, cfg, false)
	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly, rs2.Assembly, rmName),
		Fmt:      string(isa.FmtR),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, f5, fmtF, rs2, rs1, rmF, rd},
		AsmFrags: []fragment.Fragment{op, rd, rs1, rs2, rmF},
	}, nil
}

// decodeOpFPTernary handles fsgnj/fsgnjn/fsgnjx, fmin/fmax, feq/flt/fle:
// rd, rs1, rs2 with no rounding-mode operand (bits[14:12] already spent
// selecting the mnemonic).
func decodeOpFPTernary(word uint32, cfg isa.Config, m *isa.Mnemonic, fmtBits string, rdNum, rs1Num uint32, rs2Bits, funct3Bits string) (instr.Result, error) {
	op := opFrag(word, m.Name)
	f5 := fixedFrag(isa.Funct5, sliceField(word, isa.Funct5), m.Name)
	fmtF := fixedFrag(isa.FpFmt, fmtBits, m.Name)
	f3 := fixedFrag(isa.RmOrF3, funct3Bits, m.Name)
	rd := regFrag(isa.Rd, rdNum, m.RdFloat, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, m.Rs1Float, cfg, false)
	rs2 := regFrag(isa.Rs2, mustUint(rs2Bits), m.Rs2Float, cfg, false)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly, rs2.Assembly),
		Fmt:      string(isa.FmtR),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, f5, fmtF, rs2, rs1, f3, rd},
		AsmFrags: []fragment.Fragment{op, rd, rs1, rs2},
	}, nil
}

// decodeOpFPUnarySelector handles fclass.s/fmv.x.w/fmv.w.x: a single
// operand, rs2 forced to zero, bits[14:12] a true fixed selector.
func decodeOpFPUnarySelector(word uint32, cfg isa.Config, m *isa.Mnemonic, fmtBits string, rdNum, rs1Num uint32, rs2Bits, funct3Bits string) (instr.Result, error) {
	if mustUint(rs2Bits) != 0 {
		return instr.Result{}, rverrors.New(rverrors.NonZeroReserved, "%s requires rs2 to be zero", m.Name)
	}
	op := opFrag(word, m.Name)
	f5 := fixedFrag(isa.Funct5, sliceField(word, isa.Funct5), m.Name)
	fmtF := fixedFrag(isa.FpFmt, fmtBits, m.Name)
	f3 := fixedFrag(isa.RmOrF3, funct3Bits, m.Name)
	rs2F := fixedFrag(isa.Rs2, rs2Bits, m.Name)
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

// decodeOpFPConvert handles fcvt.w.s/fcvt.wu.s/fcvt.s.w/fcvt.s.wu: a
// single operand plus the rounding-mode operand, rs2's bit pattern
// having already selected the width/signedness variant.
func decodeOpFPConvert(word uint32, cfg isa.Config, m *isa.Mnemonic, fmtBits string, rdNum, rs1Num uint32, rs2Bits, rmBits string) (instr.Result, error) {
	op := opFrag(word, m.Name)
	f5 := fixedFrag(isa.Funct5, sliceField(word, isa.Funct5), m.Name)
	fmtF := fixedFrag(isa.FpFmt, fmtBits, m.Name)
	rs2F := fixedFrag(isa.Rs2, rs2Bits, m.Name)
	rmName, rmF := rmOperand(rmBits)
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
