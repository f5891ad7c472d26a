package isa_test

import (
	"testing"

	"github.com/lookbusy1344/arm-emulator/internal/isa"
)

func TestLookupOpFindsAdd(t *testing.T) {
	m, ok := isa.LookupOp(isa.OpOp, "0000000", "000")
	if !ok {
		t.Fatalf("expected to find add")
	}
	if m.Name != "add" {
		t.Errorf("Name = %q, want add", m.Name)
	}
}

func TestLookupOpImmShiftDisambiguatesBySthyp(t *testing.T) {
	sub, ok := isa.LookupOpImmShift(isa.OpOpImm, "101")
	if !ok {
		t.Fatalf("expected funct3=101 to be a shift family")
	}
	if sub["0000000"].Name != "srli" {
		t.Errorf("logical shift = %q, want srli", sub["0000000"].Name)
	}
	if sub["0100000"].Name != "srai" {
		t.Errorf("arithmetic shift = %q, want srai", sub["0100000"].Name)
	}
}

func TestLookupSystemTrapFamily(t *testing.T) {
	m, ok := isa.LookupSystemTrap("000000000000")
	if !ok || m.Name != "ecall" {
		t.Errorf("ecall lookup failed: %v %v", m, ok)
	}
	m, ok = isa.LookupSystemTrap("000000000001")
	if !ok || m.Name != "ebreak" {
		t.Errorf("ebreak lookup failed: %v %v", m, ok)
	}
}

func TestLookupAmoFindsLRW(t *testing.T) {
	m, ok := isa.LookupAmo("00010", "010")
	if !ok || m.Name != "lr.w" {
		t.Errorf("lr.w lookup failed: %v %v", m, ok)
	}
	if !m.NoRs2 {
		t.Errorf("lr.w should have NoRs2 set")
	}
}

func TestLookupOpFPDispatchLevels(t *testing.T) {
	if m, _, _, _, ok := isa.LookupOpFP("00000"); !ok || m.Name != "fadd.s" {
		t.Errorf("fadd.s direct lookup failed: %v %v", m, ok)
	}
	if _, sub, _, _, ok := isa.LookupOpFP("00100"); !ok || sub["000"].Name != "fsgnj.s" {
		t.Errorf("fsgnj family lookup failed: %v", sub)
	}
	if _, _, sub, _, ok := isa.LookupOpFP("11100"); !ok || sub["000"].Name != "fmv.x.w" {
		t.Errorf("fmv.x.w family lookup failed: %v", sub)
	}
	if _, _, _, sub, ok := isa.LookupOpFP("11000"); !ok || sub["00000"].Name != "fcvt.w.s" {
		t.Errorf("fcvt.w.s rs2-dispatch lookup failed: %v", sub)
	}
}

func TestCSRRoundTrip(t *testing.T) {
	if name := isa.CSRName(0x305); name != "mtvec" {
		t.Errorf("CSRName(0x305) = %q, want mtvec", name)
	}
	if name := isa.CSRName(0x7FF); name != "0x7ff" {
		t.Errorf("CSRName(0x7ff) = %q, want 0x7ff", name)
	}
	addr, ok := isa.CSRAddress("MTVEC")
	if !ok || addr != 0x305 {
		t.Errorf("CSRAddress(MTVEC) = %#x, %v", addr, ok)
	}
}

func TestFenceMaskRoundTrip(t *testing.T) {
	name, err := isa.FenceMaskName("1111")
	if err != nil || name != "iorw" {
		t.Errorf("FenceMaskName(1111) = %q, %v", name, err)
	}
	if _, err := isa.FenceMaskName("0000"); err == nil {
		t.Errorf("expected invalid fence error for empty mask")
	}
	bitsText, err := isa.FenceMaskBits("iorw")
	if err != nil || bitsText != "1111" {
		t.Errorf("FenceMaskBits(iorw) = %q, %v", bitsText, err)
	}
}

func TestParseRegisterNumericAndABI(t *testing.T) {
	n, err := isa.ParseRegister("x10", false)
	if err != nil || n != 10 {
		t.Errorf("ParseRegister(x10) = %d, %v", n, err)
	}
	n, err = isa.ParseRegister("a0", false)
	if err != nil || n != 10 {
		t.Errorf("ParseRegister(a0) = %d, %v", n, err)
	}
	if _, err := isa.ParseRegister("x32", false); err == nil {
		t.Errorf("expected error for out-of-range register")
	}
}
