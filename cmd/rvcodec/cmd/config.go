package cmd

import (
	"fmt"

	"github.com/lookbusy1344/arm-emulator/internal/isa"
)

// resolveConfig turns the persistent --isa/--abi flags into isa.Config.
func resolveConfig() (isa.Config, error) {
	switch isaFlag {
	case string(isa.RV32I):
		return isa.Config{ISA: isa.RV32I, ABI: abiFlag}, nil
	case string(isa.RV64I):
		return isa.Config{ISA: isa.RV64I, ABI: abiFlag}, nil
	default:
		return isa.Config{}, fmt.Errorf("unknown --isa %q, want RV32I or RV64I", isaFlag)
	}
}
