package fragment_test

import (
	"testing"

	"github.com/lookbusy1344/arm-emulator/internal/fragment"
)

func TestSortBinaryOrdersDescendingByIndex(t *testing.T) {
	in := []fragment.Fragment{
		fragment.New("x12", "01100", "rs2", 20, false),
		fragment.New("add", "0000000", "funct7", 25, false),
		fragment.New("add", "1100011", "opcode", 0, false),
	}
	out := fragment.SortBinary(in)
	if out[0].Field != "funct7" || out[1].Field != "rs2" || out[2].Field != "opcode" {
		t.Fatalf("unexpected order: %+v", out)
	}
}

func TestConcatBitsAndTotalWidth(t *testing.T) {
	frags := []fragment.Fragment{
		fragment.New("add", "0000000", "funct7", 25, false),
		fragment.New("x12", "01100", "rs2", 20, false),
	}
	if got := fragment.ConcatBits(frags); got != "000000001100" {
		t.Errorf("ConcatBits() = %q", got)
	}
	if got := fragment.TotalWidth(frags); got != 12 {
		t.Errorf("TotalWidth() = %d, want 12", got)
	}
}
