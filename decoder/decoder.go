// Package decoder implements the word-to-assembly half of the codec
// (specification §4.3): dispatch by opcode, format-specific field
// extraction, immediate reconstruction, mnemonic lookup, invariant
// validation, and fragment construction.
package decoder

import (
	"fmt"

	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/bits"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// Decode converts a 32-bit instruction word into an InstructionResult
// under the given ISA profile.
func Decode(word uint32, cfg isa.Config) (result instr.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*rverrors.Error); ok {
				err = ie
				return
			}
			err = rverrors.New(rverrors.InternalErrorKind, "panic during decode: %v", r)
		}
	}()

	opcodeBits := sliceField(word, isa.Opcode)
	opName, ok := isa.OpcodeFromBits(opcodeBits)
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.InvalidOpcode, "opcode %s is not a recognized RISC-V opcode", opcodeBits)
	}

	var res instr.Result
	var derr error
	switch opName {
	case isa.OpOp, isa.OpOp32:
		res, derr = decodeR(word, cfg, opName)
	case isa.OpOpImm, isa.OpOpImm32:
		res, derr = decodeOpImm(word, cfg, opName)
	case isa.OpLoad, isa.OpLoadFP:
		res, derr = decodeLoad(word, cfg, opName)
	case isa.OpJalr:
		res, derr = decodeJalr(word, cfg)
	case isa.OpStore, isa.OpStoreFP:
		res, derr = decodeStore(word, cfg, opName)
	case isa.OpBranch:
		res, derr = decodeBranch(word, cfg)
	case isa.OpLui, isa.OpAuipc:
		res, derr = decodeU(word, cfg, opName)
	case isa.OpJal:
		res, derr = decodeJal(word, cfg)
	case isa.OpMiscMem:
		res, derr = decodeMiscMem(word, cfg)
	case isa.OpSystem:
		res, derr = decodeSystem(word, cfg)
	case isa.OpAmo:
		res, derr = decodeAmo(word, cfg)
	case isa.OpOpFP:
		res, derr = decodeOpFP(word, cfg)
	case isa.OpMadd, isa.OpMsub, isa.OpNmadd, isa.OpNmsub:
		res, derr = decodeFma(word, cfg, opName)
	default:
		return instr.Result{}, rverrors.New(rverrors.InvalidOpcode, "opcode %s is not a recognized RISC-V opcode", opcodeBits)
	}
	if derr != nil {
		return instr.Result{}, derr
	}

	res.BinFrags = fragment.SortBinary(res.BinFrags)
	res.Hex = bits.HexOf(word)
	res.Bin = bits.ToBinary(word, bits.WordWidth)
	if err := res.CheckInvariants(); err != nil {
		return instr.Result{}, rverrors.Wrap(rverrors.InternalErrorKind, err, "decoded fragments for %s failed invariant check", res.Asm)
	}
	return res, nil
}

// checkIsaMismatch rejects mnemonics whose Isa tag is RV64-only while the
// profile is RV32I (specification §4.3 step 3).
func checkIsaMismatch(m *isa.Mnemonic, cfg isa.Config) error {
	if m.RV64Only && cfg.ISA == isa.RV32I {
		return rverrors.New(rverrors.IsaMismatch, "%s belongs to %s, disallowed under RV32I", m.Name, m.Isa)
	}
	return nil
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
	return fmt.Sprintf("%s %s", mnemonic, asmOperands(operands...))
}
