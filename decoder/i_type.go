package decoder

import (
	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// decodeOpImm handles OP_IMM and OP_IMM_32: immediate arithmetic and the
// shift family (slli/srli/srai and their -w variants), whose shamt/shtyp
// split width depends on the ISA profile (specification §4.3 step 4 "shift
// width resolution").
func decodeOpImm(word uint32, cfg isa.Config, opName isa.OpcodeName) (instr.Result, error) {
	funct3 := sliceField(word, isa.Funct3)
	rdNum := mustUint(sliceField(word, isa.Rd))
	rs1Num := mustUint(sliceField(word, isa.Rs1))

	if sub, isShift := isa.LookupOpImmShift(opName, funct3); isShift {
		return decodeShift(word, cfg, opName, sub, rdNum, rs1Num, funct3)
	}

	m, ok := isa.LookupOpImm(opName, funct3)
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "no %s instruction with funct3=%s", opName, funct3)
	}
	if err := checkIsaMismatch(m, cfg); err != nil {
		return instr.Result{}, err
	}

	_, immText, immFragV := iImm(word)
	op := opFrag(word, m.Name)
	f3 := fixedFrag(isa.Funct3, funct3, m.Name)
	rd := regFrag(isa.Rd, rdNum, false, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, false)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly, immText),
		Fmt:      string(isa.FmtI),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, immFragV, rs1, f3, rd},
		AsmFrags: []fragment.Fragment{op, rd, rs1, immFragV},
	}, nil
}

// decodeShift resolves and builds the shift-family instructions once the
// caller has determined funct3 names a shift. OP_IMM_32 always uses the
// narrow (5-bit shamt, 7-bit shtyp) split since it always produces a
// 32-bit result; OP_IMM uses the wide (6-bit/6-bit) split only under
// RV64I.
func decodeShift(word uint32, cfg isa.Config, opName isa.OpcodeName, sub map[string]*isa.Mnemonic, rdNum, rs1Num uint32, funct3 string) (instr.Result, error) {
	wide := opName == isa.OpOpImm && cfg.IsRV64()

	var shtypField, shamtField isa.Field
	var shtypKey string
	var shtypBits, shamtBits string
	if wide {
		shtypField, shamtField = isa.ShiftTypeHigh6, isa.Shamt6
		shtypBits = sliceField(word, shtypField)
		shamtBits = sliceField(word, shamtField)
		shtypKey = shtypBits + "0"
	} else {
		shtypField, shamtField = isa.ShiftTypeHigh5, isa.Shamt5
		shtypBits = sliceField(word, shtypField)
		shamtBits = sliceField(word, shamtField)
		shtypKey = shtypBits
	}

	m, ok := sub[shtypKey]
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.BadShtyp, "shift type bits %s do not match a known logical/arithmetic shift pattern", shtypBits)
	}
	if err := checkIsaMismatch(m, cfg); err != nil {
		return instr.Result{}, err
	}

	shamt := mustUint(shamtBits)
	op := opFrag(word, m.Name)
	f3 := fixedFrag(isa.Funct3, funct3, m.Name)
	shtyp := fixedFrag(shtypField, shtypBits, m.Name)
	rd := regFrag(isa.Rd, rdNum, false, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, false)
	shamtText := renderSignedImm(int64(shamt))
	shamtFrag := fragment.New(shamtText, shamtBits, shamtField.Name, shamtField.High-shamtField.Width+1, false)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly, shamtText),
		Fmt:      string(isa.FmtI),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, shtyp, shamtFrag, rs1, f3, rd},
		AsmFrags: []fragment.Fragment{op, rd, rs1, shamtFrag},
	}, nil
}

// decodeLoad handles LOAD and LOAD_FP: rd, offset(rs1).
func decodeLoad(word uint32, cfg isa.Config, opName isa.OpcodeName) (instr.Result, error) {
	funct3 := sliceField(word, isa.Funct3)
	m, ok := isa.LookupByFunct3(opName, funct3)
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "no %s instruction with funct3=%s", opName, funct3)
	}
	if err := checkIsaMismatch(m, cfg); err != nil {
		return instr.Result{}, err
	}

	rdNum := mustUint(sliceField(word, isa.Rd))
	rs1Num := mustUint(sliceField(word, isa.Rs1))
	_, immText, immFragV := iImm(word)

	op := opFrag(word, m.Name)
	f3 := fixedFrag(isa.Funct3, funct3, m.Name)
	rd := regFrag(isa.Rd, rdNum, m.RdFloat, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, true)
	mem := immText + "(" + rs1.Assembly + ")"

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, mem),
		Fmt:      string(isa.FmtI),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, immFragV, rs1, f3, rd},
		AsmFrags: []fragment.Fragment{op, rd, immFragV, rs1},
	}, nil
}

// decodeJalr handles JALR: rd, rs1, offset.
func decodeJalr(word uint32, cfg isa.Config) (instr.Result, error) {
	m, ok := isa.Lookup("jalr")
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.InternalErrorKind, "jalr missing from mnemonic table")
	}
	funct3 := sliceField(word, isa.Funct3)
	if funct3 != m.Funct3 {
		return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "jalr requires funct3=000, got %s", funct3)
	}

	rdNum := mustUint(sliceField(word, isa.Rd))
	rs1Num := mustUint(sliceField(word, isa.Rs1))
	_, immText, immFragV := iImm(word)

	op := opFrag(word, m.Name)
	f3 := fixedFrag(isa.Funct3, funct3, m.Name)
	rd := regFrag(isa.Rd, rdNum, false, cfg, false)
	rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, false)

	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, rs1.Assembly, immText),
		Fmt:      string(isa.FmtI),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, immFragV, rs1, f3, rd},
		AsmFrags: []fragment.Fragment{op, rd, rs1, immFragV},
	}, nil
}
