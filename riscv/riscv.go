// Package riscv is the top-level façade over decoder and encoder
// (specification §4.1 "Instruction"): it accepts either a textual
// instruction word or an assembly line and returns the fragment-annotated
// Result common to both directions, picking the direction by inspecting
// the shape of the input text.
package riscv

import (
	"strings"

	"github.com/lookbusy1344/arm-emulator/decoder"
	"github.com/lookbusy1344/arm-emulator/encoder"
	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/bits"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// Instruction codes or decodes input depending on its lexical shape: an
// 8-digit hex word or a 32-digit binary word decodes, anything else is
// treated as an assembly line and encoded. cfg defaults to
// isa.DefaultConfig() when omitted; passing more than one is an error.
func Instruction(input string, cfg ...isa.Config) (instr.Result, error) {
	c := isa.DefaultConfig()
	switch len(cfg) {
	case 0:
	case 1:
		c = cfg[0]
	default:
		return instr.Result{}, rverrors.New(rverrors.InternalErrorKind, "Instruction accepts at most one isa.Config, got %d", len(cfg))
	}

	trimmed := strings.TrimSpace(input)
	if bits.IsHexWord(trimmed) || bits.IsBinWord(trimmed) {
		word, _, _, err := bits.ParseWord(trimmed)
		if err != nil {
			return instr.Result{}, err
		}
		return decoder.Decode(word, c)
	}
	return encoder.Encode(input, c)
}

// Decode is a narrow entry point for callers that already know their
// input is a word, bypassing the lexical sniff in Instruction.
func Decode(word uint32, cfg isa.Config) (instr.Result, error) {
	return decoder.Decode(word, cfg)
}

// Encode is a narrow entry point for callers that already know their
// input is an assembly line, bypassing the lexical sniff in Instruction.
func Encode(text string, cfg isa.Config) (instr.Result, error) {
	return encoder.Encode(text, cfg)
}
