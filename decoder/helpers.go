package decoder

import (
	"strconv"

	"github.com/lookbusy1344/arm-emulator/internal/bits"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// sliceField extracts f from word, wrapping the (practically unreachable,
// since every Field is a fixed constant) bit_slice failure as InternalError
// rather than surfacing a MalformedField to a caller who passed nothing
// but a plain 32-bit word.
func sliceField(word uint32, f isa.Field) string {
	text, err := bits.Slice(word, f.High, f.Width)
	if err != nil {
		panic(rverrors.New(rverrors.InternalErrorKind, "fixed field %s: %v", f.Name, err))
	}
	return text
}

// opFrag builds the opcode fragment; its assembly token is the mnemonic
// itself, per specification §3.
func opFrag(word uint32, mnemonic string) fragment.Fragment {
	b := sliceField(word, isa.Opcode)
	return fragment.New(mnemonic, b, isa.Opcode.Name, isa.Opcode.High-isa.Opcode.Width+1, false)
}

// fixedFrag builds a non-operand fragment (funct3, funct7, funct5,
// funct12, fmt, shtyp) whose assembly token equals the mnemonic.
func fixedFrag(f isa.Field, bitsText, mnemonic string) fragment.Fragment {
	return fragment.New(mnemonic, bitsText, f.Name, f.High-f.Width+1, false)
}

// regFrag builds an operand fragment for a register field.
func regFrag(f isa.Field, num uint32, float bool, cfg isa.Config, mem bool) fragment.Fragment {
	text := bits.ToBinary(num, f.Width)
	return fragment.New(isa.ABIName(num, float, cfg.ABI), text, f.Name, f.High-f.Width+1, mem)
}

// immFrag builds an operand fragment covering one immediate bit-group,
// whose assembly token is the fully reconstructed (and rendered) value —
// every bit-group of a scattered immediate shares the same assembly text,
// per the specification's Fragment definition.
func immFrag(f isa.Field, bitsText, assembly string) fragment.Fragment {
	return fragment.New(assembly, bitsText, f.Name, f.High-f.Width+1, false)
}

func renderSignedImm(v int64) string {
	return strconv.FormatInt(v, 10)
}

// rverr wraps a bare error from the bits package (practically unreachable
// here, since every caller passes already-sliced fixed-width text) as a
// MalformedField so it still surfaces through Decode's recover.
func rverr(err error) *rverrors.Error {
	return rverrors.Wrap(rverrors.MalformedFieldKind, err, "malformed immediate bits")
}

// mustUint parses a binary text already produced by sliceField, so the
// error case is unreachable in practice.
func mustUint(binText string) uint32 {
	v, err := bits.ParseImm(binText, false)
	if err != nil {
		panic(rverr(err))
	}
	return uint32(v)
}
