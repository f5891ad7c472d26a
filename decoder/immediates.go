package decoder

import (
	"github.com/lookbusy1344/arm-emulator/internal/bits"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
)

// iImm slices and sign-extends the 12-bit I-type immediate, returning its
// value, decimal rendering and a single contiguous Fragment.
func iImm(word uint32) (val int64, text string, frag fragment.Fragment) {
	b := sliceField(word, isa.ImmI)
	v, err := bits.ParseImm(b, true)
	if err != nil {
		panic(rverr(err))
	}
	text = renderSignedImm(v)
	return v, text, immFrag(isa.ImmI, b, text)
}

// sImm reconstructs the S-type immediate from its two bit-groups,
// returning the value, rendering, and the two binFrags-level fragments
// (each keeping its own field name, per the format's schema).
func sImm(word uint32) (val int64, text string, hi, lo fragment.Fragment) {
	hiBits := sliceField(word, isa.SImmHi)
	loBits := sliceField(word, isa.SImmLo)
	full := bits.Concat(hiBits, loBits)
	v, err := bits.ParseImm(full, true)
	if err != nil {
		panic(rverr(err))
	}
	text = renderSignedImm(v)
	return v, text, immFrag(isa.SImmHi, hiBits, text), immFrag(isa.SImmLo, loBits, text)
}

// bImm reconstructs the B-type branch offset: imm[12|10:5|4:1|11] with an
// implicit zero LSB, returning the four binFrags fragments plus the
// signed byte-offset value and its decimal rendering.
func bImm(word uint32) (val int64, text string, f12, f10_5, f4_1, f11 fragment.Fragment) {
	b12 := sliceField(word, isa.BImm12)
	b10_5 := sliceField(word, isa.BImm10_5)
	b4_1 := sliceField(word, isa.BImm4_1)
	b11 := sliceField(word, isa.BImm11)
	full := bits.Concat(b12, b11, b10_5, b4_1, "0")
	v, err := bits.ParseImm(full, true)
	if err != nil {
		panic(rverr(err))
	}
	text = renderSignedImm(v)
	return v, text,
		immFrag(isa.BImm12, b12, text),
		immFrag(isa.BImm10_5, b10_5, text),
		immFrag(isa.BImm4_1, b4_1, text),
		immFrag(isa.BImm11, b11, text)
}

// jImm reconstructs the J-type offset: imm[20|10:1|11|19:12] with an
// implicit zero LSB.
func jImm(word uint32) (val int64, text string, f20, f10_1, f11, f19_12 fragment.Fragment) {
	b20 := sliceField(word, isa.JImm20)
	b10_1 := sliceField(word, isa.JImm10_1)
	b11 := sliceField(word, isa.JImm11)
	b19_12 := sliceField(word, isa.JImm19_12)
	full := bits.Concat(b20, b19_12, b11, b10_1, "0")
	v, err := bits.ParseImm(full, true)
	if err != nil {
		panic(rverr(err))
	}
	text = renderSignedImm(v)
	return v, text,
		immFrag(isa.JImm20, b20, text),
		immFrag(isa.JImm10_1, b10_1, text),
		immFrag(isa.JImm11, b11, text),
		immFrag(isa.JImm19_12, b19_12, text)
}

// uImm renders the U-type 20-bit immediate as it appears literally in the
// instruction word's high bits (LUI/AUIPC place it pre-shifted, the
// assembler/disassembler never shifts it -- specification §6 "imm_31_12").
func uImm(word uint32) (text string, frag fragment.Fragment) {
	b := sliceField(word, isa.ImmU)
	v, err := bits.ParseImm(b, false)
	if err != nil {
		panic(rverr(err))
	}
	text = renderSignedImm(v)
	return text, immFrag(isa.ImmU, b, text)
}
