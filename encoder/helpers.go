// Package encoder implements the assembly-to-word half of the codec
// (specification §4.4): tokenize a line, resolve its mnemonic, parse
// operands per format, assemble the 32-bit word, and build the same
// fragment structure the decoder would have produced for that word.
package encoder

import (
	"strconv"
	"strings"

	"github.com/lookbusy1344/arm-emulator/internal/bits"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// line is a tokenized assembly instruction: mnemonic plus raw operand
// text split on commas (memory operands like "8(x6)" stay as one token
// until parseMem splits them further).
type line struct {
	mnemonic string
	operands []string
}

// tokenize splits "mnemonic op1, op2, op3" into a line, tolerating extra
// whitespace around commas. An empty operand list is valid (ecall).
func tokenize(text string) (line, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return line{}, rverrors.New(rverrors.MalformedInput, "empty instruction text")
	}
	fields := strings.SplitN(text, " ", 2)
	mnemonic := strings.ToLower(fields[0])
	if len(fields) == 1 {
		return line{mnemonic: mnemonic}, nil
	}
	rest := strings.TrimSpace(fields[1])
	if rest == "" {
		return line{mnemonic: mnemonic}, nil
	}
	parts := strings.Split(rest, ",")
	operands := make([]string, len(parts))
	for i, p := range parts {
		operands[i] = strings.TrimSpace(p)
	}
	return line{mnemonic: mnemonic, operands: operands}, nil
}

// parseMem splits "offset(reg)" into its immediate and register tokens.
func parseMem(tok string) (offset, reg string, err error) {
	open := strings.IndexByte(tok, '(')
	if open < 0 || !strings.HasSuffix(tok, ")") {
		return "", "", rverrors.New(rverrors.OperandSyntax, "expected offset(reg) memory operand, got %q", tok)
	}
	return strings.TrimSpace(tok[:open]), strings.TrimSpace(tok[open+1 : len(tok)-1]), nil
}

// parseDecimal parses a base-10 (optionally signed) integer operand.
func parseDecimal(tok string) (int64, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, rverrors.Wrap(rverrors.OperandSyntax, err, "expected a decimal immediate, got %q", tok)
	}
	return v, nil
}

func reqOperands(m string, operands []string, n int) error {
	if len(operands) != n {
		return rverrors.New(rverrors.OperandSyntax, "%s requires %d operand(s), got %d", m, n, len(operands))
	}
	return nil
}

func opFrag(opBits, mnemonic string) fragment.Fragment {
	return fragment.New(mnemonic, opBits, isa.Opcode.Name, isa.Opcode.High-isa.Opcode.Width+1, false)
}

func fixedFrag(f isa.Field, bitsText, mnemonic string) fragment.Fragment {
	return fragment.New(mnemonic, bitsText, f.Name, f.High-f.Width+1, false)
}

func regFrag(f isa.Field, num uint32, float bool, cfg isa.Config, mem bool) fragment.Fragment {
	text := bits.ToBinary(num, f.Width)
	return fragment.New(isa.ABIName(num, float, cfg.ABI), text, f.Name, f.High-f.Width+1, mem)
}

func immFrag(f isa.Field, bitsText, assembly string) fragment.Fragment {
	return fragment.New(assembly, bitsText, f.Name, f.High-f.Width+1, false)
}

func parseReg(tok string, float bool) (uint32, error) {
	n, err := isa.ParseRegister(tok, float)
	if err != nil {
		return 0, rverrors.Wrap(rverrors.BadRegister, err, "%s", tok)
	}
	return n, nil
}

func renderSignedImm(v int64) string {
	return strconv.FormatInt(v, 10)
}

func asmOperands(tokens ...string) string {
	s := ""
	for i, t := range tokens {
		if i > 0 {
			s += ", "
		}
		s += t
	}
	return s
}

func asmLine(mnemonic string, operands ...string) string {
	if len(operands) == 0 {
		return mnemonic
	}
	return mnemonic + " " + asmOperands(operands...)
}
