package inspector

import (
	"strings"
	"testing"

	"github.com/lookbusy1344/arm-emulator/decoder"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
)

func TestNewRendersFragments(t *testing.T) {
	res, err := decoder.Decode(0x00c58533, isa.DefaultConfig()) // add x10, x11, x12
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	ins := New(res)
	if ins.App == nil {
		t.Fatal("expected non-nil App")
	}

	bitText := ins.BitView.GetText(true)
	if !strings.Contains(bitText, "0000000") {
		t.Errorf("BitView missing opcode/funct7 bits: %q", bitText)
	}

	asmText := ins.AsmView.GetText(true)
	if !strings.Contains(asmText, "add") {
		t.Errorf("AsmView missing mnemonic: %q", asmText)
	}
}

func TestColorTagCycles(t *testing.T) {
	if colorTag(0) != palette[0] {
		t.Errorf("colorTag(0) = %q, want %q", colorTag(0), palette[0])
	}
	if colorTag(len(palette)) != palette[0] {
		t.Errorf("colorTag wraps at palette length")
	}
}

func TestPad(t *testing.T) {
	if got := pad("rs1", 5); got != "rs1  " {
		t.Errorf("pad short = %q", got)
	}
	if got := pad("opcode", 3); got != "opc" {
		t.Errorf("pad truncate = %q", got)
	}
}
