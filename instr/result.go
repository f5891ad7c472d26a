// Package instr defines the InstructionResult value both the decoder and
// the encoder produce, so the two directions are interchangeable
// (specification §3 "Instruction result").
package instr

import (
	"fmt"

	"github.com/lookbusy1344/arm-emulator/internal/fragment"
)

// Result is the uniform product of decoding a word or encoding an
// assembly line.
type Result struct {
	Hex      string
	Bin      string
	Asm      string
	Fmt      string
	Isa      string
	BinFrags []fragment.Fragment
	AsmFrags []fragment.Fragment
}

// CheckInvariants verifies the two universal structural properties from
// specification §8: binFrags partitions the 32-bit word with no gaps or
// overlaps, and concatenating its Bits MSB->LSB reconstructs Bin exactly.
// Both the decoder and the encoder call this before returning a Result,
// so a layout bug anywhere in the table-driven field placement surfaces
// immediately as InternalError instead of a silently wrong Result.
func (r Result) CheckInvariants() error {
	sorted := fragment.SortBinary(r.BinFrags)
	if w := fragment.TotalWidth(sorted); w != 32 {
		return fmt.Errorf("binFrags cover %d bits, want 32", w)
	}
	expectLow := 31
	for _, f := range sorted {
		width := len(f.Bits)
		high := f.Index + width - 1
		if high != expectLow {
			return fmt.Errorf("binFrags gap or overlap at bit %d (fragment %s covers down to %d)", expectLow, f.Field, f.Index)
		}
		expectLow = f.Index - 1
	}
	if expectLow != -1 {
		return fmt.Errorf("binFrags leave bits [%d:0] uncovered", expectLow)
	}
	if got := fragment.ConcatBits(sorted); got != r.Bin {
		return fmt.Errorf("binFrags concatenation %q does not match word %q", got, r.Bin)
	}
	return nil
}
