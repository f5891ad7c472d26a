package decoder

import (
	"strconv"
	"strings"

	"github.com/lookbusy1344/arm-emulator/instr"
	"github.com/lookbusy1344/arm-emulator/internal/fragment"
	"github.com/lookbusy1344/arm-emulator/internal/isa"
	"github.com/lookbusy1344/arm-emulator/rverrors"
)

// decodeSystem handles SYSTEM: the funct3==0 trap family (ecall/ebreak)
// and the Zicsr family (specification §4.2).
func decodeSystem(word uint32, cfg isa.Config) (instr.Result, error) {
	funct3 := sliceField(word, isa.Funct3)
	if funct3 == "000" {
		return decodeTrap(word, cfg)
	}
	return decodeZicsr(word, cfg, funct3)
}

func decodeTrap(word uint32, cfg isa.Config) (instr.Result, error) {
	funct12 := sliceField(word, isa.Funct12)
	m, ok := isa.LookupSystemTrap(funct12)
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "no SYSTEM trap instruction with funct12=%s", funct12)
	}
	if err := checkIsaMismatch(m, cfg); err != nil {
		return instr.Result{}, err
	}
	rdBits := sliceField(word, isa.Rd)
	rs1Bits := sliceField(word, isa.Rs1)
	if mustUint(rdBits) != 0 || mustUint(rs1Bits) != 0 {
		return instr.Result{}, rverrors.New(rverrors.NonZeroReserved, "%s requires rd and rs1 to be zero", m.Name)
	}

	op := opFrag(word, m.Name)
	f3 := fixedFrag(isa.Funct3, "000", m.Name)
	f12 := fragment.New(m.Name, funct12, "funct12", 20, false)
	rdF := fixedFrag(isa.Rd, rdBits, m.Name)
	rs1F := fixedFrag(isa.Rs1, rs1Bits, m.Name)

	return instr.Result{
		Asm:      m.Name,
		Fmt:      string(isa.FmtI),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, f12, rs1F, f3, rdF},
		AsmFrags: []fragment.Fragment{op},
	}, nil
}

func decodeZicsr(word uint32, cfg isa.Config, funct3 string) (instr.Result, error) {
	m, ok := isa.LookupSystemZicsr(funct3)
	if !ok {
		return instr.Result{}, rverrors.New(rverrors.InvalidFunct, "no Zicsr instruction with funct3=%s", funct3)
	}
	if err := checkIsaMismatch(m, cfg); err != nil {
		return instr.Result{}, err
	}

	csrBits := sliceField(word, isa.ImmI)
	csrAddr := mustUint(csrBits)
	csrName := isa.CSRName(csrAddr)
	rdNum := mustUint(sliceField(word, isa.Rd))

	op := opFrag(word, m.Name)
	f3 := fixedFrag(isa.Funct3, funct3, m.Name)
	rd := regFrag(isa.Rd, rdNum, false, cfg, false)
	csrF := fragment.New(csrName, csrBits, isa.ImmI.Name, isa.ImmI.High-isa.ImmI.Width+1, false)

	immediate := strings.HasSuffix(m.Name, "i")
	if immediate {
		uimmBits := sliceField(word, isa.Rs1)
		uimm := mustUint(uimmBits)
		uimmText := strconv.FormatUint(uint64(uimm), 10)
		uimmF := fragment.New(uimmText, uimmBits, isa.Rs1.Name, isa.Rs1.High-isa.Rs1.Width+1, false)
		return instr.Result{
			Asm:      asmLine(m.Name, rd.Assembly, csrName, uimmText),
			Fmt:      string(isa.FmtI),
			Isa:      m.Isa,
			BinFrags: []fragment.Fragment{op, csrF, uimmF, f3, rd},
			AsmFrags: []fragment.Fragment{op, rd, csrF, uimmF},
		}, nil
	}

	rs1Num := mustUint(sliceField(word, isa.Rs1))
	rs1 := regFrag(isa.Rs1, rs1Num, false, cfg, false)
	return instr.Result{
		Asm:      asmLine(m.Name, rd.Assembly, csrName, rs1.Assembly),
		Fmt:      string(isa.FmtI),
		Isa:      m.Isa,
		BinFrags: []fragment.Fragment{op, csrF, rs1, f3, rd},
		AsmFrags: []fragment.Fragment{op, rd, csrF, rs1},
	}, nil
}
