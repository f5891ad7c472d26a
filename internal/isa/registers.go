package isa

import (
	"fmt"
	"strconv"
	"strings"
)

// intABI is indexed by numeric register number 0..31 and gives the
// standard RISC-V integer ABI name (specification §6).
var intABI = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// floatABI is indexed by numeric register number 0..31.
var floatABI = [32]string{
	"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7",
	"fs0", "fs1", "fa0", "fa1", "fa2", "fa3", "fa4", "fa5",
	"fa6", "fa7", "fs2", "fs3", "fs4", "fs5", "fs6", "fs7",
	"fs8", "fs9", "fs10", "fs11", "ft8", "ft9", "ft10", "ft11",
}

var intABIToNum = buildReverse(intABI[:])
var floatABIToNum = buildReverse(floatABI[:])

func buildReverse(names []string) map[string]uint32 {
	m := make(map[string]uint32, len(names))
	for i, n := range names {
		m[n] = uint32(i)
	}
	return m
}

// ABIName renders register num (0..31) in ABI or numeric style.
func ABIName(num uint32, float bool, abi bool) string {
	prefix := "x"
	table := intABI[:]
	if float {
		prefix = "f"
		table = floatABI[:]
	}
	if abi {
		return table[num]
	}
	return fmt.Sprintf("%s%d", prefix, num)
}

// ParseRegister accepts either numeric (x0..x31 / f0..f31) or ABI
// register names and returns the register number. float selects which
// register file the numeric prefix and ABI table belong to.
func ParseRegister(tok string, float bool) (uint32, error) {
	tok = strings.TrimSpace(tok)
	lower := strings.ToLower(tok)

	prefix := "x"
	abiTable := intABIToNum
	if float {
		prefix = "f"
		abiTable = floatABIToNum
	}

	if strings.HasPrefix(lower, prefix) {
		if n, err := strconv.ParseUint(lower[1:], 10, 32); err == nil && n <= 31 {
			return uint32(n), nil
		}
	}
	if n, ok := abiTable[lower]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("invalid register: %s", tok)
}
