package isa

// Format identifies one of the seven base instruction encodings plus the
// R4 (fused multiply-add) shape used by the floating-point extensions.
type Format string

const (
	FmtR  Format = "R-type"
	FmtR4 Format = "R4-type"
	FmtI  Format = "I-type"
	FmtS  Format = "S-type"
	FmtB  Format = "B-type"
	FmtU  Format = "U-type"
	FmtJ  Format = "J-type"
)

// Field describes one contiguous bit-field of the 32-bit word: its name,
// the index of its most significant bit, and its width. This is the
// schema both the decoder and the encoder populate fragments from, so
// the two directions cannot drift apart.
type Field struct {
	Name  string
	High  int
	Width int
}

// Opcode is the universal 7-bit field at bits [6:0].
var Opcode = Field{Name: "opcode", High: 6, Width: 7}

// Common R-type fields.
var (
	Funct7 = Field{Name: "funct7", High: 31, Width: 7}
	Rs2    = Field{Name: "rs2", High: 24, Width: 5}
	Rs1    = Field{Name: "rs1", High: 19, Width: 5}
	Funct3 = Field{Name: "funct3", High: 14, Width: 3}
	Rd     = Field{Name: "rd", High: 11, Width: 5}
)

// I-type immediate (also used by JALR, LOAD, OP-IMM).
var ImmI = Field{Name: "imm_11_0", High: 31, Width: 12}

// Funct12 is the SYSTEM trap family's fixed 12-bit discriminator
// (ecall/ebreak), occupying the same bits as ImmI.
var Funct12 = Field{Name: "funct12", High: 31, Width: 12}

// S-type immediate halves.
var (
	SImmHi = Field{Name: "imm_11_5", High: 31, Width: 7}
	SImmLo = Field{Name: "imm_4_0", High: 11, Width: 5}
)

// B-type immediate pieces (bit 0 is implicit zero, never encoded).
var (
	BImm12   = Field{Name: "b_imm_12", High: 31, Width: 1}
	BImm10_5 = Field{Name: "b_imm_10_5", High: 30, Width: 6}
	BImm4_1  = Field{Name: "b_imm_4_1", High: 11, Width: 4}
	BImm11   = Field{Name: "b_imm_11", High: 7, Width: 1}
)

// U-type immediate.
var ImmU = Field{Name: "imm_31_12", High: 31, Width: 20}

// J-type immediate pieces (bit 0 is implicit zero, never encoded).
var (
	JImm20    = Field{Name: "j_imm_20", High: 31, Width: 1}
	JImm10_1  = Field{Name: "j_imm_10_1", High: 30, Width: 10}
	JImm11    = Field{Name: "j_imm_11", High: 20, Width: 1}
	JImm19_12 = Field{Name: "j_imm_19_12", High: 19, Width: 8}
)

// R4 / fused multiply-add fields.
var (
	Rs3    = Field{Name: "rs3", High: 31, Width: 5}
	FpFmt  = Field{Name: "fmt", High: 26, Width: 2}
	RmOrF3 = Field{Name: "rm", High: 14, Width: 3}
)

// AMO fields.
var (
	Funct5 = Field{Name: "funct5", High: 31, Width: 5}
	Aq     = Field{Name: "aq", High: 26, Width: 1}
	Rl     = Field{Name: "rl", High: 25, Width: 1}
)

// Shift (OP-IMM) fields.
var (
	ShiftTypeHigh5 = Field{Name: "shtyp", High: 31, Width: 7} // 0||shtyp||00000 over imm[11:5] for 5-bit shamt
	ShiftTypeHigh6 = Field{Name: "shtyp", High: 31, Width: 6} // 0||shtyp||0000 for 6-bit shamt
	Shamt5         = Field{Name: "shamt", High: 24, Width: 5}
	Shamt6         = Field{Name: "shamt", High: 25, Width: 6}
)

// Fence fields.
var (
	FenceFm   = Field{Name: "fm", High: 31, Width: 4}
	FencePred = Field{Name: "pred", High: 27, Width: 4}
	FenceSucc = Field{Name: "succ", High: 23, Width: 4}
)
