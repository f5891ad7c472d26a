package encoder

// expandAlias rewrites the common RISC-V assembler pseudo-instructions
// into their base-ISA equivalent before mnemonic lookup (specification
// §6 "Assembler aliases"). Lines that name no alias pass through
// unchanged.
func expandAlias(ln line) line {
	switch ln.mnemonic {
	case "nop":
		return line{mnemonic: "addi", operands: []string{"x0", "x0", "0"}}
	case "ret":
		return line{mnemonic: "jalr", operands: []string{"x0", "x1", "0"}}
	case "j":
		if len(ln.operands) == 1 {
			return line{mnemonic: "jal", operands: []string{"x0", ln.operands[0]}}
		}
	case "jr":
		if len(ln.operands) == 1 {
			return line{mnemonic: "jalr", operands: []string{"x0", ln.operands[0], "0"}}
		}
	case "mv":
		if len(ln.operands) == 2 {
			return line{mnemonic: "addi", operands: []string{ln.operands[0], ln.operands[1], "0"}}
		}
	case "not":
		if len(ln.operands) == 2 {
			return line{mnemonic: "xori", operands: []string{ln.operands[0], ln.operands[1], "-1"}}
		}
	case "neg":
		if len(ln.operands) == 2 {
			return line{mnemonic: "sub", operands: []string{ln.operands[0], "x0", ln.operands[1]}}
		}
	}
	return ln
}
