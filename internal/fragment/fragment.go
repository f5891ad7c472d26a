// Package fragment defines the shared value type that ties one
// contiguous bit-slice of an encoded instruction word to the role it
// plays in the corresponding assembly rendering. Both the decoder and
// the encoder build the same fragment lists from a single per-format
// schema so the two directions never drift apart.
package fragment

import "sort"

// Fragment is an immutable record pairing one bit-field of the encoded
// word with the assembly token it contributes to.
type Fragment struct {
	Assembly string // token this slice contributes to, e.g. "x5", "-12", "add"
	Bits     string // binary text of the slice, MSB first
	Field    string // field descriptor name, e.g. "opcode", "rs1", "b_imm_10_5"
	Mem      bool   // true iff this is the base register inside offset(base) syntax
	Index    int    // position of the slice's least-significant bit in the word
}

// New builds a Fragment whose Index is the given low bit of the slice.
func New(assembly, binText, field string, low int, mem bool) Fragment {
	return Fragment{
		Assembly: assembly,
		Bits:     binText,
		Field:    field,
		Mem:      mem,
		Index:    low,
	}
}

// SortBinary orders fragments MSB-to-LSB across the 32-bit word, i.e.
// descending by Index. The decoder and encoder both call this after
// building a format's field list so binFrags always partitions the word
// in the canonical order regardless of the order fields were appended.
func SortBinary(frags []Fragment) []Fragment {
	out := make([]Fragment, len(frags))
	copy(out, frags)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Index > out[j].Index
	})
	return out
}

// ConcatBits concatenates the Bits of frags (assumed already MSB-first
// ordered) into a single binary text — used to verify the partition
// invariant that binFrags reconstructs the full word.
func ConcatBits(frags []Fragment) string {
	total := ""
	for _, f := range frags {
		total += f.Bits
	}
	return total
}

// TotalWidth sums the bit width of frags.
func TotalWidth(frags []Fragment) int {
	n := 0
	for _, f := range frags {
		n += len(f.Bits)
	}
	return n
}
