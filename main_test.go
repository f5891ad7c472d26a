package main

import (
	"testing"

	"github.com/lookbusy1344/arm-emulator/internal/isa"
)

func TestResolveConfig(t *testing.T) {
	cfg, err := resolveConfig("RV32I", true)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.ISA != isa.RV32I || !cfg.ABI {
		t.Errorf("resolveConfig(RV32I, true) = %+v", cfg)
	}

	cfg, err = resolveConfig("RV64I", false)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.ISA != isa.RV64I || cfg.ABI {
		t.Errorf("resolveConfig(RV64I, false) = %+v", cfg)
	}
}

func TestResolveConfigRejectsUnknownProfile(t *testing.T) {
	if _, err := resolveConfig("RV128I", false); err == nil {
		t.Fatal("expected error for unknown isa profile")
	}
}
