package encoder_test

import (
	"strconv"
	"testing"

	"github.com/lookbusy1344/arm-emulator/decoder"
	"github.com/lookbusy1344/arm-emulator/encoder"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

func TestEncodeTable(t *testing.T) {
	cfg := isa.DefaultConfig()
	cases := []struct {
		name string
		asm  string
		hex  string
	}{
		{"add", "add x10, x11, x12", "00c58533"},
		{"addi", "addi x10, x11, 5", "00558513"},
		{"addi-negative", "addi x10, x11, -4", "ffc58513"},
		{"lw", "lw x5, 8(x6)", "00832283"},
		{"sw", "sw x7, 12(x8)", "00742623"},
		{"beq", "beq x1, x2, 8", "00208463"},
		{"jal", "jal x1, 16", "010000ef"},
		{"lui", "lui x5, 74565", "123452b7"},
		{"slli", "slli x5, x6, 3", "00331293"},
		{"srai", "srai x5, x6, 3", "40335293"},
		{"fence", "fence iorw, iorw", "0ff0000f"},
		{"ecall", "ecall", "00000073"},
		{"ebreak", "ebreak", "00100073"},
		{"csrrs", "csrrs x5, mtvec, x6", "305322f3"},
		{"csrrwi", "csrrwi x5, mtvec, 3", "3051d2f3"},
		{"amoadd.w", "amoadd.w x5, x6, (x7)", "0063a2af"},
		{"lr.w", "lr.w x5, (x7)", "1003a2af"},
		{"fadd.s", "fadd.s f0, f1, f2, rne", "00208053"},
		{"fsqrt.s", "fsqrt.s f0, f1, rne", "58008053"},
		{"fsgnj.s", "fsgnj.s f0, f1, f2", "20208053"},
		{"feq.s", "feq.s x5, f1, f2", "a020a2d3"},
		{"fclass.s", "fclass.s x5, f1", "e00092d3"},
		{"fmv.x.w", "fmv.x.w x5, f1", "e00082d3"},
		{"fcvt.w.s", "fcvt.w.s x5, f1, rne", "c00082d3"},
		{"fcvt.wu.s", "fcvt.wu.s x5, f1, rne", "c01082d3"},
		{"fcvt.s.w", "fcvt.s.w f0, x1, rne", "d0008053"},
		{"fmadd.s", "fmadd.s f0, f1, f2, f3, rne", "18208043"},
		{"nop-alias", "nop", "00000013"},
		{"ret-alias", "ret", "00008067"},
		{"mv-alias", "mv x5, x6", "00030293"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := encoder.Encode(tc.asm, cfg)
			if err != nil {
				t.Fatalf("Encode(%q) returned error: %v", tc.asm, err)
			}
			if res.Hex != tc.hex {
				t.Errorf("Hex = %q, want %q", res.Hex, tc.hex)
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

func TestEncodeUnknownMnemonic(t *testing.T) {
	cfg := isa.DefaultConfig()
	_, err := encoder.Encode("frobnicate x1, x2", cfg)
	if !rverrors.Is(err, rverrors.UnknownMnemonic) {
		t.Fatalf("expected UnknownMnemonic, got %v", err)
	}
}

func TestEncodeRV64OnlyUnderRV32IsaMismatch(t *testing.T) {
	cfg := isa.DefaultConfig() // RV32I
	_, err := encoder.Encode("addw x5, x6, x7", cfg)
	if !rverrors.Is(err, rverrors.IsaMismatch) {
		t.Fatalf("expected IsaMismatch, got %v", err)
	}
}

func TestEncodeImmediateOutOfRange(t *testing.T) {
	cfg := isa.DefaultConfig()
	_, err := encoder.Encode("addi x5, x6, 4096", cfg)
	if !rverrors.Is(err, rverrors.ImmediateOutOfRange) {
		t.Fatalf("expected ImmediateOutOfRange, got %v", err)
	}
}

func TestEncodeBadOperandCount(t *testing.T) {
	cfg := isa.DefaultConfig()
	_, err := encoder.Encode("add x5, x6", cfg)
	if !rverrors.Is(err, rverrors.OperandSyntax) {
		t.Fatalf("expected OperandSyntax, got %v", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cfg := isa.DefaultConfig()
	asms := []string{
		"add x10, x11, x12",
		"addi x10, x11, 5",
		"lw x5, 8(x6)",
		"sw x7, 12(x8)",
		"fadd.s f0, f1, f2, rne",
	}
	for _, asm := range asms {
		res, err := encoder.Encode(asm, cfg)
		if err != nil {
			t.Fatalf("Encode(%q): %v", asm, err)
		}
		if res.Asm != asm {
			t.Errorf("round-trip Asm = %q, want %q", res.Asm, asm)
		}
		w, err := strconv.ParseUint(res.Hex, 16, 32)
		if err != nil {
			t.Fatalf("ParseUint(%q): %v", res.Hex, err)
		}
		dec, err := decoder.Decode(uint32(w), cfg)
		if err != nil {
			t.Fatalf("Decode(%s): %v", res.Hex, err)
		}
		if dec.Asm != asm {
			t.Errorf("Decode(%s).Asm = %q, want %q", res.Hex, dec.Asm, asm)
		}
	}
}
