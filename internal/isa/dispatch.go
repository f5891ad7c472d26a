package isa

// This file builds the decoder's nested dispatch tables (specification
// §4.2) from the single mnemonicTable declared in mnemonics.go, so the
// encoder's by-name lookup and the decoder's by-bits lookup can never
// drift apart.

// opFunct7Funct3 serves OP[funct7‖funct3] and OP_32[funct7‖funct3].
var opFunct7Funct3 = map[OpcodeName]map[string]*Mnemonic{}

// opImmFunct3 serves OP_IMM[funct3] and OP_IMM_32[funct3] for the
// non-shift mnemonics; shift mnemonics are routed through opImmShift.
var opImmFunct3 = map[OpcodeName]map[string]*Mnemonic{}

// opImmShift serves the nested shtyp sub-table for OP_IMM[funct3] /
// OP_IMM_32[funct3] shift entries.
var opImmShift = map[OpcodeName]map[string]map[string]*Mnemonic{}

// funct3Only serves LOAD, LOAD_FP, STORE, STORE_FP, BRANCH, MISC_MEM.
var funct3Only = map[OpcodeName]map[string]*Mnemonic{}

// systemFunct12 serves SYSTEM's funct3==0 trap sub-table.
var systemFunct12 = map[string]*Mnemonic{}

// systemZicsr serves SYSTEM's funct3!=0 Zicsr family.
var systemZicsr = map[string]*Mnemonic{}

// amoFunct5Funct3 serves AMO[funct5‖funct3].
var amoFunct5Funct3 = map[string]*Mnemonic{}

// opFPDirect serves OP_FP[funct5] entries that need no further
// disambiguation beyond fmt (fadd.s, fsub.s, fmul.s, fdiv.s).
var opFPDirect = map[string]*Mnemonic{}

// opFPByFunct3 serves OP_FP[funct5] families disambiguated by funct3
// (fsgnj/fsgnjn/fsgnjx, fmin/fmax, feq/flt/fle).
var opFPByFunct3 = map[string]map[string]*Mnemonic{}

// opFPNoRs2ByFunct3 serves OP_FP[funct5] families with no rs2 operand,
// disambiguated by funct3 (fclass.s/fmv.x.w, fmv.w.x, fsqrt.s is direct
// with a fixed rs2 of zero so it lives in opFPDirect instead).
var opFPNoRs2ByFunct3 = map[string]map[string]*Mnemonic{}

// opFPByRs2 serves the fcvt.{w,wu,s}.{s,w,wu} family, where rs2's bit
// pattern (not funct3) selects the integer width/signedness and bits
// [14:12] remain the free-standing rounding-mode operand.
var opFPByRs2 = map[string]map[string]*Mnemonic{}

// fpFma serves MADD/MSUB/NMADD/NMSUB[fmt].
var fpFma = map[OpcodeName]map[string]*Mnemonic{}

func init() {
	for i := range mnemonicTable {
		m := &mnemonicTable[i]
		switch m.Opcode {
		case OpOp, OpOp32:
			if m.Funct7 != "" {
				sub := opFunct7Funct3[m.Opcode]
				if sub == nil {
					sub = map[string]*Mnemonic{}
					opFunct7Funct3[m.Opcode] = sub
				}
				sub[m.Funct7+m.Funct3] = m
			}
		case OpOpImm, OpOpImm32:
			if m.Shtyp != "" {
				byF3 := opImmShift[m.Opcode]
				if byF3 == nil {
					byF3 = map[string]map[string]*Mnemonic{}
					opImmShift[m.Opcode] = byF3
				}
				sub := byF3[m.Funct3]
				if sub == nil {
					sub = map[string]*Mnemonic{}
					byF3[m.Funct3] = sub
				}
				sub[m.Shtyp] = m
			} else {
				sub := opImmFunct3[m.Opcode]
				if sub == nil {
					sub = map[string]*Mnemonic{}
					opImmFunct3[m.Opcode] = sub
				}
				sub[m.Funct3] = m
			}
		case OpLoad, OpLoadFP, OpStore, OpStoreFP, OpBranch:
			sub := funct3Only[m.Opcode]
			if sub == nil {
				sub = map[string]*Mnemonic{}
				funct3Only[m.Opcode] = sub
			}
			sub[m.Funct3] = m
		case OpMiscMem:
			sub := funct3Only[m.Opcode]
			if sub == nil {
				sub = map[string]*Mnemonic{}
				funct3Only[m.Opcode] = sub
			}
			sub[m.Funct3] = m
		case OpSystem:
			if m.Funct3 == "000" {
				systemFunct12[m.Funct12] = m
			} else {
				systemZicsr[m.Funct3] = m
			}
		case OpAmo:
			amoFunct5Funct3[m.Funct5+m.Funct3] = m
		case OpOpFP:
			switch {
			case m.Rs2Fixed != "":
				sub := opFPByRs2[m.Funct5]
				if sub == nil {
					sub = map[string]*Mnemonic{}
					opFPByRs2[m.Funct5] = sub
				}
				sub[m.Rs2Fixed] = m
			case m.Funct3 != "" && m.NoRs2:
				sub := opFPNoRs2ByFunct3[m.Funct5]
				if sub == nil {
					sub = map[string]*Mnemonic{}
					opFPNoRs2ByFunct3[m.Funct5] = sub
				}
				sub[m.Funct3] = m
			case m.Funct3 != "":
				sub := opFPByFunct3[m.Funct5]
				if sub == nil {
					sub = map[string]*Mnemonic{}
					opFPByFunct3[m.Funct5] = sub
				}
				sub[m.Funct3] = m
			default:
				opFPDirect[m.Funct5] = m
			}
		case OpMadd, OpMsub, OpNmadd, OpNmsub:
			sub := fpFma[m.Opcode]
			if sub == nil {
				sub = map[string]*Mnemonic{}
				fpFma[m.Opcode] = sub
			}
			sub[m.FmtBits] = m
		}
	}
}

// LookupOp resolves OP/OP_32 by concatenated funct7+funct3.
func LookupOp(opcode OpcodeName, funct7, funct3 string) (*Mnemonic, bool) {
	m, ok := opFunct7Funct3[opcode][funct7+funct3]
	return m, ok
}

// LookupOpImm resolves a non-shift OP_IMM/OP_IMM_32 entry by funct3.
func LookupOpImm(opcode OpcodeName, funct3 string) (*Mnemonic, bool) {
	m, ok := opImmFunct3[opcode][funct3]
	return m, ok
}

// LookupOpImmShift returns the shtyp-keyed sub-table of OP_IMM/OP_IMM_32
// shift entries for funct3, reporting whether funct3 names a shift at all.
func LookupOpImmShift(opcode OpcodeName, funct3 string) (map[string]*Mnemonic, bool) {
	sub, ok := opImmShift[opcode][funct3]
	return sub, ok
}

// LookupByFunct3 resolves LOAD/LOAD_FP/STORE/STORE_FP/BRANCH/MISC_MEM by
// funct3.
func LookupByFunct3(opcode OpcodeName, funct3 string) (*Mnemonic, bool) {
	m, ok := funct3Only[opcode][funct3]
	return m, ok
}

// LookupSystemTrap resolves the SYSTEM funct3==0 family by funct12.
func LookupSystemTrap(funct12 string) (*Mnemonic, bool) {
	m, ok := systemFunct12[funct12]
	return m, ok
}

// LookupSystemZicsr resolves the SYSTEM funct3!=0 family by funct3.
func LookupSystemZicsr(funct3 string) (*Mnemonic, bool) {
	m, ok := systemZicsr[funct3]
	return m, ok
}

// LookupAmo resolves AMO by concatenated funct5+funct3.
func LookupAmo(funct5, funct3 string) (*Mnemonic, bool) {
	m, ok := amoFunct5Funct3[funct5+funct3]
	return m, ok
}

// LookupOpFP resolves OP-FP through up to four nested lookups: first by
// funct5 alone, then (if that family is not a direct mnemonic) by funct3
// or by rs2's fixed bit pattern, reporting which table matched.
func LookupOpFP(funct5 string) (direct *Mnemonic, byFunct3 map[string]*Mnemonic, noRs2ByFunct3 map[string]*Mnemonic, byRs2 map[string]*Mnemonic, ok bool) {
	if m, found := opFPDirect[funct5]; found {
		return m, nil, nil, nil, true
	}
	if sub, found := opFPByFunct3[funct5]; found {
		return nil, sub, nil, nil, true
	}
	if sub, found := opFPNoRs2ByFunct3[funct5]; found {
		return nil, nil, sub, nil, true
	}
	if sub, found := opFPByRs2[funct5]; found {
		return nil, nil, nil, sub, true
	}
	return nil, nil, nil, nil, false
}

// LookupFma resolves MADD/MSUB/NMADD/NMSUB by fmt.
func LookupFma(opcode OpcodeName, fmtBits string) (*Mnemonic, bool) {
	m, ok := fpFma[opcode][fmtBits]
	return m, ok
}
