package isa

import "github.com/lookbusy1344/arm-emulator/internal/bits"

// Extension / base tags, used as the Isa field and surfaced verbatim in
// InstructionResult.isa.
const (
	IsaRV32I    = "RV32I"
	IsaRV64I    = "RV64I"
	IsaExtM     = "EXT_M"
	IsaExtA     = "EXT_A"
	IsaExtF     = "EXT_F"
	IsaZicsr    = "EXT_Zicsr"
	IsaZifencei = "EXT_Zifencei"
)

// Mnemonic is one row of the ISA table (specification §4.2): the format
// and ISA tag, the concrete field values the mnemonic fixes, and which
// operand slots (if any) are float registers.
type Mnemonic struct {
	Name     string
	Fmt      Format
	Isa      string
	Opcode   OpcodeName
	Funct3   string // binary text, "" if funct3 does not select the mnemonic (no such field, or it holds rm)
	Funct7   string
	Funct5   string
	Funct12  string
	FmtBits  string // fp precision field: "00" single (only precision this codec supports)
	Shtyp    string // "" unless this is a shift mnemonic
	RdFloat  bool
	Rs1Float bool
	Rs2Float bool
	Rs3Float bool
	NoRs2    bool   // true where rs2 is not an operand: lr.*, fsqrt.s, fclass.s, fmv.*, fcvt.*
	Rs2Fixed string // for fcvt.*: rs2's bit pattern selects the integer width/signedness instead of naming a register
	RV64Only bool
}

func b(n uint32, w int) string { return bits.ToBinary(n, w) }

// mnemonicTable is the single declarative source for both the encoder's
// name lookup and the decoder's dispatch tables (built in dispatch.go's
// init from this same slice).
var mnemonicTable = []Mnemonic{
	// U-type
	{Name: "lui", Fmt: FmtU, Isa: IsaRV32I, Opcode: OpLui},
	{Name: "auipc", Fmt: FmtU, Isa: IsaRV32I, Opcode: OpAuipc},

	// J-type
	{Name: "jal", Fmt: FmtJ, Isa: IsaRV32I, Opcode: OpJal},

	// I-type JALR
	{Name: "jalr", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpJalr, Funct3: b(0, 3)},

	// B-type
	{Name: "beq", Fmt: FmtB, Isa: IsaRV32I, Opcode: OpBranch, Funct3: b(0, 3)},
	{Name: "bne", Fmt: FmtB, Isa: IsaRV32I, Opcode: OpBranch, Funct3: b(1, 3)},
	{Name: "blt", Fmt: FmtB, Isa: IsaRV32I, Opcode: OpBranch, Funct3: b(4, 3)},
	{Name: "bge", Fmt: FmtB, Isa: IsaRV32I, Opcode: OpBranch, Funct3: b(5, 3)},
	{Name: "bltu", Fmt: FmtB, Isa: IsaRV32I, Opcode: OpBranch, Funct3: b(6, 3)},
	{Name: "bgeu", Fmt: FmtB, Isa: IsaRV32I, Opcode: OpBranch, Funct3: b(7, 3)},

	// LOAD (I-type)
	{Name: "lb", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpLoad, Funct3: b(0, 3)},
	{Name: "lh", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpLoad, Funct3: b(1, 3)},
	{Name: "lw", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpLoad, Funct3: b(2, 3)},
	{Name: "ld", Fmt: FmtI, Isa: IsaRV64I, Opcode: OpLoad, Funct3: b(3, 3), RV64Only: true},
	{Name: "lbu", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpLoad, Funct3: b(4, 3)},
	{Name: "lhu", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpLoad, Funct3: b(5, 3)},
	{Name: "lwu", Fmt: FmtI, Isa: IsaRV64I, Opcode: OpLoad, Funct3: b(6, 3), RV64Only: true},

	// LOAD-FP
	{Name: "flw", Fmt: FmtI, Isa: IsaExtF, Opcode: OpLoadFP, Funct3: b(2, 3), RdFloat: true},

	// STORE (S-type)
	{Name: "sb", Fmt: FmtS, Isa: IsaRV32I, Opcode: OpStore, Funct3: b(0, 3)},
	{Name: "sh", Fmt: FmtS, Isa: IsaRV32I, Opcode: OpStore, Funct3: b(1, 3)},
	{Name: "sw", Fmt: FmtS, Isa: IsaRV32I, Opcode: OpStore, Funct3: b(2, 3)},
	{Name: "sd", Fmt: FmtS, Isa: IsaRV64I, Opcode: OpStore, Funct3: b(3, 3), RV64Only: true},

	// STORE-FP
	{Name: "fsw", Fmt: FmtS, Isa: IsaExtF, Opcode: OpStoreFP, Funct3: b(2, 3), Rs2Float: true},

	// OP-IMM (I-type, arithmetic)
	{Name: "addi", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpOpImm, Funct3: b(0, 3)},
	{Name: "slti", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpOpImm, Funct3: b(2, 3)},
	{Name: "sltiu", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpOpImm, Funct3: b(3, 3)},
	{Name: "xori", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpOpImm, Funct3: b(4, 3)},
	{Name: "ori", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpOpImm, Funct3: b(6, 3)},
	{Name: "andi", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpOpImm, Funct3: b(7, 3)},

	// OP-IMM shifts
	{Name: "slli", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpOpImm, Funct3: b(1, 3), Shtyp: shtypLogical},
	{Name: "srli", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpOpImm, Funct3: b(5, 3), Shtyp: shtypLogical},
	{Name: "srai", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpOpImm, Funct3: b(5, 3), Shtyp: shtypArithmetic},

	// OP-IMM-32 (RV64I only)
	{Name: "addiw", Fmt: FmtI, Isa: IsaRV64I, Opcode: OpOpImm32, Funct3: b(0, 3), RV64Only: true},
	{Name: "slliw", Fmt: FmtI, Isa: IsaRV64I, Opcode: OpOpImm32, Funct3: b(1, 3), Shtyp: shtypLogical, RV64Only: true},
	{Name: "srliw", Fmt: FmtI, Isa: IsaRV64I, Opcode: OpOpImm32, Funct3: b(5, 3), Shtyp: shtypLogical, RV64Only: true},
	{Name: "sraiw", Fmt: FmtI, Isa: IsaRV64I, Opcode: OpOpImm32, Funct3: b(5, 3), Shtyp: shtypArithmetic, RV64Only: true},

	// OP (R-type, integer reg-reg)
	{Name: "add", Fmt: FmtR, Isa: IsaRV32I, Opcode: OpOp, Funct7: b(0, 7), Funct3: b(0, 3)},
	{Name: "sub", Fmt: FmtR, Isa: IsaRV32I, Opcode: OpOp, Funct7: b(0x20, 7), Funct3: b(0, 3)},
	{Name: "sll", Fmt: FmtR, Isa: IsaRV32I, Opcode: OpOp, Funct7: b(0, 7), Funct3: b(1, 3)},
	{Name: "slt", Fmt: FmtR, Isa: IsaRV32I, Opcode: OpOp, Funct7: b(0, 7), Funct3: b(2, 3)},
	{Name: "sltu", Fmt: FmtR, Isa: IsaRV32I, Opcode: OpOp, Funct7: b(0, 7), Funct3: b(3, 3)},
	{Name: "xor", Fmt: FmtR, Isa: IsaRV32I, Opcode: OpOp, Funct7: b(0, 7), Funct3: b(4, 3)},
	{Name: "srl", Fmt: FmtR, Isa: IsaRV32I, Opcode: OpOp, Funct7: b(0, 7), Funct3: b(5, 3)},
	{Name: "sra", Fmt: FmtR, Isa: IsaRV32I, Opcode: OpOp, Funct7: b(0x20, 7), Funct3: b(5, 3)},
	{Name: "or", Fmt: FmtR, Isa: IsaRV32I, Opcode: OpOp, Funct7: b(0, 7), Funct3: b(6, 3)},
	{Name: "and", Fmt: FmtR, Isa: IsaRV32I, Opcode: OpOp, Funct7: b(0, 7), Funct3: b(7, 3)},

	// OP-32 (RV64I only)
	{Name: "addw", Fmt: FmtR, Isa: IsaRV64I, Opcode: OpOp32, Funct7: b(0, 7), Funct3: b(0, 3), RV64Only: true},
	{Name: "subw", Fmt: FmtR, Isa: IsaRV64I, Opcode: OpOp32, Funct7: b(0x20, 7), Funct3: b(0, 3), RV64Only: true},
	{Name: "sllw", Fmt: FmtR, Isa: IsaRV64I, Opcode: OpOp32, Funct7: b(0, 7), Funct3: b(1, 3), RV64Only: true},
	{Name: "srlw", Fmt: FmtR, Isa: IsaRV64I, Opcode: OpOp32, Funct7: b(0, 7), Funct3: b(5, 3), RV64Only: true},
	{Name: "sraw", Fmt: FmtR, Isa: IsaRV64I, Opcode: OpOp32, Funct7: b(0x20, 7), Funct3: b(5, 3), RV64Only: true},

	// EXT_M (OP, funct7=0000001)
	{Name: "mul", Fmt: FmtR, Isa: IsaExtM, Opcode: OpOp, Funct7: b(1, 7), Funct3: b(0, 3)},
	{Name: "mulh", Fmt: FmtR, Isa: IsaExtM, Opcode: OpOp, Funct7: b(1, 7), Funct3: b(1, 3)},
	{Name: "mulhsu", Fmt: FmtR, Isa: IsaExtM, Opcode: OpOp, Funct7: b(1, 7), Funct3: b(2, 3)},
	{Name: "mulhu", Fmt: FmtR, Isa: IsaExtM, Opcode: OpOp, Funct7: b(1, 7), Funct3: b(3, 3)},
	{Name: "div", Fmt: FmtR, Isa: IsaExtM, Opcode: OpOp, Funct7: b(1, 7), Funct3: b(4, 3)},
	{Name: "divu", Fmt: FmtR, Isa: IsaExtM, Opcode: OpOp, Funct7: b(1, 7), Funct3: b(5, 3)},
	{Name: "rem", Fmt: FmtR, Isa: IsaExtM, Opcode: OpOp, Funct7: b(1, 7), Funct3: b(6, 3)},
	{Name: "remu", Fmt: FmtR, Isa: IsaExtM, Opcode: OpOp, Funct7: b(1, 7), Funct3: b(7, 3)},

	// EXT_M on OP-32 (RV64I only)
	{Name: "mulw", Fmt: FmtR, Isa: IsaExtM, Opcode: OpOp32, Funct7: b(1, 7), Funct3: b(0, 3), RV64Only: true},
	{Name: "divw", Fmt: FmtR, Isa: IsaExtM, Opcode: OpOp32, Funct7: b(1, 7), Funct3: b(4, 3), RV64Only: true},
	{Name: "divuw", Fmt: FmtR, Isa: IsaExtM, Opcode: OpOp32, Funct7: b(1, 7), Funct3: b(5, 3), RV64Only: true},
	{Name: "remw", Fmt: FmtR, Isa: IsaExtM, Opcode: OpOp32, Funct7: b(1, 7), Funct3: b(6, 3), RV64Only: true},
	{Name: "remuw", Fmt: FmtR, Isa: IsaExtM, Opcode: OpOp32, Funct7: b(1, 7), Funct3: b(7, 3), RV64Only: true},

	// MISC-MEM
	{Name: "fence", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpMiscMem, Funct3: b(0, 3)},
	{Name: "fence.i", Fmt: FmtI, Isa: IsaZifencei, Opcode: OpMiscMem, Funct3: b(1, 3)},

	// SYSTEM trap family (funct3 = 0)
	{Name: "ecall", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpSystem, Funct3: b(0, 3), Funct12: b(0, 12)},
	{Name: "ebreak", Fmt: FmtI, Isa: IsaRV32I, Opcode: OpSystem, Funct3: b(0, 3), Funct12: b(1, 12)},

	// SYSTEM Zicsr family
	{Name: "csrrw", Fmt: FmtI, Isa: IsaZicsr, Opcode: OpSystem, Funct3: b(1, 3)},
	{Name: "csrrs", Fmt: FmtI, Isa: IsaZicsr, Opcode: OpSystem, Funct3: b(2, 3)},
	{Name: "csrrc", Fmt: FmtI, Isa: IsaZicsr, Opcode: OpSystem, Funct3: b(3, 3)},
	{Name: "csrrwi", Fmt: FmtI, Isa: IsaZicsr, Opcode: OpSystem, Funct3: b(5, 3)},
	{Name: "csrrsi", Fmt: FmtI, Isa: IsaZicsr, Opcode: OpSystem, Funct3: b(6, 3)},
	{Name: "csrrci", Fmt: FmtI, Isa: IsaZicsr, Opcode: OpSystem, Funct3: b(7, 3)},

	// EXT_A: AMO (funct5, funct3 selects word/doubleword)
	{Name: "lr.w", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x02, 5), Funct3: b(2, 3), NoRs2: true},
	{Name: "sc.w", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x03, 5), Funct3: b(2, 3)},
	{Name: "amoswap.w", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x01, 5), Funct3: b(2, 3)},
	{Name: "amoadd.w", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x00, 5), Funct3: b(2, 3)},
	{Name: "amoxor.w", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x04, 5), Funct3: b(2, 3)},
	{Name: "amoand.w", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x0C, 5), Funct3: b(2, 3)},
	{Name: "amoor.w", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x08, 5), Funct3: b(2, 3)},
	{Name: "amomin.w", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x10, 5), Funct3: b(2, 3)},
	{Name: "amomax.w", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x14, 5), Funct3: b(2, 3)},
	{Name: "amominu.w", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x18, 5), Funct3: b(2, 3)},
	{Name: "amomaxu.w", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x1C, 5), Funct3: b(2, 3)},

	{Name: "lr.d", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x02, 5), Funct3: b(3, 3), NoRs2: true, RV64Only: true},
	{Name: "sc.d", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x03, 5), Funct3: b(3, 3), RV64Only: true},
	{Name: "amoswap.d", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x01, 5), Funct3: b(3, 3), RV64Only: true},
	{Name: "amoadd.d", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x00, 5), Funct3: b(3, 3), RV64Only: true},
	{Name: "amoxor.d", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x04, 5), Funct3: b(3, 3), RV64Only: true},
	{Name: "amoand.d", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x0C, 5), Funct3: b(3, 3), RV64Only: true},
	{Name: "amoor.d", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x08, 5), Funct3: b(3, 3), RV64Only: true},
	{Name: "amomin.d", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x10, 5), Funct3: b(3, 3), RV64Only: true},
	{Name: "amomax.d", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x14, 5), Funct3: b(3, 3), RV64Only: true},
	{Name: "amominu.d", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x18, 5), Funct3: b(3, 3), RV64Only: true},
	{Name: "amomaxu.d", Fmt: FmtR, Isa: IsaExtA, Opcode: OpAmo, Funct5: b(0x1C, 5), Funct3: b(3, 3), RV64Only: true},

	// EXT_F: arithmetic (R-type-fp), single precision only (fmt=00)
	{Name: "fadd.s", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x00, 5), FmtBits: "00", RdFloat: true, Rs1Float: true, Rs2Float: true},
	{Name: "fsub.s", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x01, 5), FmtBits: "00", RdFloat: true, Rs1Float: true, Rs2Float: true},
	{Name: "fmul.s", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x02, 5), FmtBits: "00", RdFloat: true, Rs1Float: true, Rs2Float: true},
	{Name: "fdiv.s", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x03, 5), FmtBits: "00", RdFloat: true, Rs1Float: true, Rs2Float: true},
	{Name: "fsqrt.s", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x0B, 5), FmtBits: "00", RdFloat: true, Rs1Float: true, NoRs2: true},
	{Name: "fsgnj.s", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x04, 5), FmtBits: "00", Funct3: b(0, 3), RdFloat: true, Rs1Float: true, Rs2Float: true},
	{Name: "fsgnjn.s", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x04, 5), FmtBits: "00", Funct3: b(1, 3), RdFloat: true, Rs1Float: true, Rs2Float: true},
	{Name: "fsgnjx.s", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x04, 5), FmtBits: "00", Funct3: b(2, 3), RdFloat: true, Rs1Float: true, Rs2Float: true},
	{Name: "fmin.s", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x05, 5), FmtBits: "00", Funct3: b(0, 3), RdFloat: true, Rs1Float: true, Rs2Float: true},
	{Name: "fmax.s", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x05, 5), FmtBits: "00", Funct3: b(1, 3), RdFloat: true, Rs1Float: true, Rs2Float: true},
	{Name: "feq.s", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x14, 5), FmtBits: "00", Funct3: b(2, 3), Rs1Float: true, Rs2Float: true},
	{Name: "flt.s", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x14, 5), FmtBits: "00", Funct3: b(1, 3), Rs1Float: true, Rs2Float: true},
	{Name: "fle.s", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x14, 5), FmtBits: "00", Funct3: b(0, 3), Rs1Float: true, Rs2Float: true},
	{Name: "fclass.s", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x1C, 5), FmtBits: "00", Funct3: b(1, 3), Rs1Float: true, NoRs2: true},
	{Name: "fmv.x.w", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x1C, 5), FmtBits: "00", Funct3: b(0, 3), Rs1Float: true, NoRs2: true},
	{Name: "fmv.w.x", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x1E, 5), FmtBits: "00", Funct3: b(0, 3), RdFloat: true, NoRs2: true},
	{Name: "fcvt.w.s", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x18, 5), FmtBits: "00", Rs2Fixed: b(0, 5), Rs1Float: true, NoRs2: true},
	{Name: "fcvt.wu.s", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x18, 5), FmtBits: "00", Rs2Fixed: b(1, 5), Rs1Float: true, NoRs2: true},
	{Name: "fcvt.s.w", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x1A, 5), FmtBits: "00", Rs2Fixed: b(0, 5), RdFloat: true, NoRs2: true},
	{Name: "fcvt.s.wu", Fmt: FmtR, Isa: IsaExtF, Opcode: OpOpFP, Funct5: b(0x1A, 5), FmtBits: "00", Rs2Fixed: b(1, 5), RdFloat: true, NoRs2: true},

	// EXT_F: fused multiply-add family (R4-type, single precision only)
	{Name: "fmadd.s", Fmt: FmtR4, Isa: IsaExtF, Opcode: OpMadd, FmtBits: "00", RdFloat: true, Rs1Float: true, Rs2Float: true, Rs3Float: true},
	{Name: "fmsub.s", Fmt: FmtR4, Isa: IsaExtF, Opcode: OpMsub, FmtBits: "00", RdFloat: true, Rs1Float: true, Rs2Float: true, Rs3Float: true},
	{Name: "fnmsub.s", Fmt: FmtR4, Isa: IsaExtF, Opcode: OpNmsub, FmtBits: "00", RdFloat: true, Rs1Float: true, Rs2Float: true, Rs3Float: true},
	{Name: "fnmadd.s", Fmt: FmtR4, Isa: IsaExtF, Opcode: OpNmadd, FmtBits: "00", RdFloat: true, Rs1Float: true, Rs2Float: true, Rs3Float: true},
}

// byName resolves an encoder mnemonic (lowercase) to its table row.
var byName = func() map[string]*Mnemonic {
	m := make(map[string]*Mnemonic, len(mnemonicTable))
	for i := range mnemonicTable {
		m[mnemonicTable[i].Name] = &mnemonicTable[i]
	}
	return m
}()

// Lookup resolves a lowercase mnemonic name to its ISA table row.
func Lookup(name string) (*Mnemonic, bool) {
	m, ok := byName[name]
	return m, ok
}

// DefaultRoundingMode is the name the decoder renders when the rm field
// holds a reserved pattern (101 or 110) that has no mnemonic.
const DefaultRoundingMode = "rne"

var roundingModes = map[string]string{
	"000": "rne",
	"001": "rtz",
	"010": "rdn",
	"011": "rup",
	"100": "rmm",
	"111": "dyn",
}

var roundingModesByName = func() map[string]string {
	m := make(map[string]string, len(roundingModes))
	for bitsText, name := range roundingModes {
		m[name] = bitsText
	}
	return m
}()

// RoundingModeName renders the 3-bit rm field as its mnemonic text.
func RoundingModeName(bitsText string) (string, bool) {
	name, ok := roundingModes[bitsText]
	return name, ok
}

// RoundingModeBits resolves a rounding-mode mnemonic to its 3-bit field.
func RoundingModeBits(name string) (string, bool) {
	bitsText, ok := roundingModesByName[name]
	return bitsText, ok
}
