// Package encoder implements the assembly-to-word half of the codec
// (specification §4.4): tokenize a line, resolve its mnemonic, parse
// operands per format, assemble the 32-bit word, and build the same
// fragment structure the decoder would have produced for that word.
package encoder

import (
	"strings"

	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/bits"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// Encode converts one assembly instruction line into its 32-bit word
// under the given ISA profile.
func Encode(text string, cfg isa.Config) (result instr.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*rverrors.Error); ok {
				err = ie
				return
			}
			err = rverrors.New(rverrors.InternalErrorKind, "panic during encode: %v", r)
		}
	}()

	ln, terr := tokenize(text)
	if terr != nil {
		return instr.Result{}, terr
	}
	ln = expandAlias(ln)

	m, aq, rl, ok := resolveMnemonic(ln.mnemonic)
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.UnknownMnemonic, "unrecognized mnemonic %q", ln.mnemonic)
	}
	if m.RV64Only && cfg.ISA == isa.RV32I {
		return instr.Result{}, rverrors.New(rverrors.IsaMismatch, "%s belongs to %s, disallowed under RV32I", m.Name, m.Isa)
	}

	var res instr.Result
	var eerr error
	switch m.Opcode {
	case isa.OpLui, isa.OpAuipc:
		res, eerr = encodeU(m, ln.operands, cfg)
	case isa.OpJal:
		res, eerr = encodeJal(m, ln.operands, cfg)
	case isa.OpJalr:
		res, eerr = encodeJalr(m, ln.operands, cfg)
	case isa.OpBranch:
		res, eerr = encodeBranch(m, ln.operands, cfg)
	case isa.OpLoad, isa.OpLoadFP:
		res, eerr = encodeLoad(m, ln.operands, cfg)
	case isa.OpStore, isa.OpStoreFP:
		res, eerr = encodeStore(m, ln.operands, cfg)
	case isa.OpOpImm, isa.OpOpImm32:
		res, eerr = encodeOpImm(m, ln.operands, cfg)
	case isa.OpOp, isa.OpOp32:
		res, eerr = encodeR(m, ln.operands, cfg)
	case isa.OpMiscMem:
		res, eerr = encodeMiscMem(m, ln.operands, cfg)
	case isa.OpSystem:
		res, eerr = encodeSystem(m, ln.operands, cfg)
	case isa.OpAmo:
		res, eerr = encodeAmo(m, ln.operands, cfg, aq, rl)
	case isa.OpOpFP:
		res, eerr = encodeOpFP(m, ln.operands, cfg)
	case isa.OpMadd, isa.OpMsub, isa.OpNmadd, isa.OpNmsub:
		res, eerr = encodeFma(m, ln.operands, cfg)
	default:
		return instr.Result{}, rverrors.New(rverrors.InternalErrorKind, "mnemonic %s has unhandled opcode %s", m.Name, m.Opcode)
	}
	if eerr != nil {
		return instr.Result{}, eerr
	}

	word := wordFromFrags(res)
	res.BinFrags = fragment.SortBinary(res.BinFrags)
	res.Hex = bits.HexOf(word)
	res.Bin = bits.ToBinary(word, bits.WordWidth)
	if err := res.CheckInvariants(); err != nil {
		return instr.Result{}, rverrors.Wrap(rverrors.InternalErrorKind, err, "encoded fragments for %q failed invariant check", text)
	}
	return res, nil
}

// resolveMnemonic looks up a mnemonic directly, falling back to stripping
// a .aq/.rl/.aqrl atomic-ordering suffix when the bare name is unknown.
func resolveMnemonic(name string) (m *isa.Mnemonic, aq, rl bool, ok bool) {
	if m, ok := isa.Lookup(name); ok {
		return m, false, false, true
	}
	base, suffix, found := cutSuffix(name)
	if !found {
		return nil, false, false, false
	}
	m, ok = isa.Lookup(base)
	if !ok {
		return nil, false, false, false
	}
	switch suffix {
	case "aqrl":
		return m, true, true, true
	case "aq":
		return m, true, false, true
	case "rl":
		return m, false, true, true
	default:
		return nil, false, false, false
	}
}

func cutSuffix(name string) (base, suffix string, ok bool) {
	for _, s := range []string{".aqrl", ".aq", ".rl"} {
		if strings.HasSuffix(name, s) {
			return strings.TrimSuffix(name, s), strings.TrimPrefix(s, "."), true
		}
	}
	return name, "", false
}

// wordFromFrags reassembles the 32-bit word from BinFrags. It relies on
// the same partition invariant CheckInvariants verifies: every bit of the
// word is covered by exactly one fragment.
func wordFromFrags(res instr.Result) uint32 {
	var word uint32
	for _, f := range res.BinFrags {
		width := len(f.Bits)
		v, _ := bits.ParseImm(f.Bits, false)
		word = bits.Put(word, f.Index+width-1, width, uint32(v))
	}
	return word
}
