package riscv_test

import (
	"testing"

	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/riscv"
)

func TestInstructionDecodesHexWord(t *testing.T) {
	res, err := riscv.Instruction("00c58533")
	if err != nil {
		t.Fatalf("Instruction: %v", err)
	}
	if res.Asm != "add x10, x11, x12" {
		t.Errorf("Asm = %q, want %q", res.Asm, "add x10, x11, x12")
	}
}

func TestInstructionDecodesBinWord(t *testing.T) {
	res, err := riscv.Instruction("00000000110001011000010100110011")
	if err != nil {
		t.Fatalf("Instruction: %v", err)
	}
	if res.Hex != "00c58533" {
		t.Errorf("Hex = %q, want %q", res.Hex, "00c58533")
	}
}

func TestInstructionEncodesAssembly(t *testing.T) {
	res, err := riscv.Instruction("add x10, x11, x12")
	if err != nil {
		t.Fatalf("Instruction: %v", err)
	}
	if res.Hex != "00c58533" {
		t.Errorf("Hex = %q, want %q", res.Hex, "00c58533")
	}
}

func TestInstructionRejectsMultipleConfigs(t *testing.T) {
	_, err := riscv.Instruction("add x10, x11, x12", isa.DefaultConfig(), isa.DefaultConfig())
	if err == nil {
		t.Fatal("expected error for multiple configs")
	}
}
