package isa

import (
	"fmt"
	"strconv"
	"strings"
)

// csrNames maps standard 12-bit CSR addresses to their names
// (specification §6 "CSR names"). Unrecognized addresses round-trip as
// 0xNNN, handled by CSRName below.
var csrNames = map[uint32]string{
	0x001: "fflags",
	0x002: "frm",
	0x003: "fcsr",
	0xC00: "cycle",
	0xC01: "time",
	0xC02: "instret",
	0xC80: "cycleh",
	0xC81: "timeh",
	0xC82: "instreth",
	0x100: "sstatus",
	0x104: "sie",
	0x105: "stvec",
	0x140: "sscratch",
	0x141: "sepc",
	0x142: "scause",
	0x143: "stval",
	0x144: "sip",
	0x180: "satp",
	0x300: "mstatus",
	0x301: "misa",
	0x302: "medeleg",
	0x303: "mideleg",
	0x304: "mie",
	0x305: "mtvec",
	0x306: "mcounteren",
	0x340: "mscratch",
	0x341: "mepc",
	0x342: "mcause",
	0x343: "mtval",
	0x344: "mip",
	0xF11: "mvendorid",
	0xF12: "marchid",
	0xF13: "mimpid",
	0xF14: "mhartid",
}

var csrByName = func() map[string]uint32 {
	m := make(map[string]uint32, len(csrNames))
	for addr, name := range csrNames {
		m[name] = addr
	}
	return m
}()

// CSRName renders a 12-bit CSR address as its standard name, falling
// back to a zero-padded lowercase 0xNNN form for unrecognized addresses.
func CSRName(addr uint32) string {
	if name, ok := csrNames[addr]; ok {
		return name
	}
	return fmt.Sprintf("0x%03x", addr&0xFFF)
}

// CSRAddress resolves a CSR token (name, case-insensitively, or a
// 0xNNN/decimal literal) to its 12-bit address.
func CSRAddress(tok string) (uint32, bool) {
	if addr, ok := csrByName[strings.ToLower(tok)]; ok {
		return addr, true
	}
	if v, err := strconv.ParseUint(tok, 0, 12); err == nil {
		return uint32(v), true
	}
	return 0, false
}
