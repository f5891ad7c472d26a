package decoder_test

import (
	"testing"

	"github.com/lookbusy1344/arm-emulator/decoder"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

func TestDecodeTable(t *testing.T) {
	cfg := isa.DefaultConfig()
	cases := []struct {
		name string
		word uint32
		asm  string
		fmt  isa.Format
	}{
		{"add", 0xc58533, "add x10, x11, x12", isa.FmtR},
		{"addi", 0x558513, "addi x10, x11, 5", isa.FmtI},
		{"addi-negative", 0xffc58513, "addi x10, x11, -4", isa.FmtI},
		{"lw", 0x832283, "lw x5, 8(x6)", isa.FmtI},
		{"sw", 0x742623, "sw x7, 12(x8)", isa.FmtS},
		{"beq", 0x208463, "beq x1, x2, 8", isa.FmtB},
		{"jal", 0x10000ef, "jal x1, 16", isa.FmtJ},
		{"lui", 0x123452b7, "lui x5, 74565", isa.FmtU},
		{"slli", 0x331293, "slli x5, x6, 3", isa.FmtI},
		{"srai", 0x40335293, "srai x5, x6, 3", isa.FmtI},
		{"fence", 0xff0000f, "fence iorw, iorw", isa.FmtI},
		{"ecall", 0x73, "ecall", isa.FmtI},
		{"ebreak", 0x100073, "ebreak", isa.FmtI},
		{"csrrs", 0x305322f3, "csrrs x5, mtvec, x6", isa.FmtI},
		{"csrrwi", 0x3051d2f3, "csrrwi x5, mtvec, 3", isa.FmtI},
		{"amoadd.w", 0x63a2af, "amoadd.w x5, x6, (x7)", isa.FmtR},
		{"lr.w", 0x1003a2af, "lr.w x5, (x7)", isa.FmtR},
		{"fadd.s", 0x208053, "fadd.s f0, f1, f2, rne", isa.FmtR},
		{"fsqrt.s", 0x58008053, "fsqrt.s f0, f1, rne", isa.FmtR},
		{"fsgnj.s", 0x20208053, "fsgnj.s f0, f1, f2", isa.FmtR},
		{"feq.s", 0xa020a2d3, "feq.s x5, f1, f2", isa.FmtR},
		{"fclass.s", 0xe00092d3, "fclass.s x5, f1", isa.FmtR},
		{"fmv.x.w", 0xe00082d3, "fmv.x.w x5, f1", isa.FmtR},
		{"fcvt.w.s", 0xc00082d3, "fcvt.w.s x5, f1, rne", isa.FmtR},
		{"fcvt.wu.s", 0xc01082d3, "fcvt.wu.s x5, f1, rne", isa.FmtR},
		{"fcvt.s.w", 0xd0008053, "fcvt.s.w f0, x1, rne", isa.FmtR},
		{"fmadd.s", 0x18208043, "fmadd.s f0, f1, f2, f3, rne", isa.FmtR4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := decoder.Decode(tc.word, cfg)
			if err != nil {
				t.Fatalf("Decode(%#08x) returned error: %v", tc.word, err)
			}
			if res.Asm != tc.asm {
				t.Errorf("Asm = %q, want %q", res.Asm, tc.asm)
			}
			if res.Fmt != string(tc.fmt) {
				t.Errorf("Fmt = %q, want %q", res.Fmt, tc.fmt)
			}
			if err := res.CheckInvariants(); err != nil {
				t.Errorf("CheckInvariants: %v", err)
			}
			for i := 1; i < len(res.BinFrags); i++ {
				if res.BinFrags[i-1].Index < res.BinFrags[i].Index {
					t.Errorf("BinFrags not MSB->LSB ordered: %q (index %d) precedes %q (index %d)",
						res.BinFrags[i-1].Field, res.BinFrags[i-1].Index, res.BinFrags[i].Field, res.BinFrags[i].Index)
					break
				}
			}
		})
	}
}

func TestDecodeRV64OnlyUnderRV32IsaMismatch(t *testing.T) {
	cfg := isa.DefaultConfig() // RV32I
	// addw x5, x6, x7 (OP_32, RV64I only)
	word := uint32(0x007302bb)
	_, err := decoder.Decode(word, cfg)
	if !rverrors.Is(err, rverrors.IsaMismatch) {
		t.Fatalf("expected IsaMismatch, got %v", err)
	}
}

func TestDecodeInvalidFenceAllZeroMask(t *testing.T) {
	cfg := isa.DefaultConfig()
	// fence with pred=succ=0000
	word := uint32(0x0000000f)
	_, err := decoder.Decode(word, cfg)
	if !rverrors.Is(err, rverrors.InvalidFence) {
		t.Fatalf("expected InvalidFence, got %v", err)
	}
}

func TestDecodeUnrecognizedOpcode(t *testing.T) {
	cfg := isa.DefaultConfig()
	_, err := decoder.Decode(0x00000000, cfg) // opcode 0000000 is not a valid 7-bit family
	if !rverrors.Is(err, rverrors.InvalidOpcode) {
		t.Fatalf("expected InvalidOpcode, got %v", err)
	}
}
