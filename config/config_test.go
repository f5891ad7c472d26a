package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lookbusy1344/arm-emulator/internal/isa"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Profile.ISA != "RV32I" {
		t.Errorf("Expected ISA=RV32I, got %s", cfg.Profile.ISA)
	}
	if cfg.Profile.ABI {
		t.Error("Expected ABI=false")
	}
}

func TestISAConfig(t *testing.T) {
	cfg := DefaultConfig()
	ic, err := cfg.ISAConfig()
	if err != nil {
		t.Fatalf("ISAConfig: %v", err)
	}
	if ic != isa.DefaultConfig() {
		t.Errorf("ISAConfig() = %+v, want %+v", ic, isa.DefaultConfig())
	}

	cfg.Profile.ISA = "RV64I"
	cfg.Profile.ABI = true
	ic, err = cfg.ISAConfig()
	if err != nil {
		t.Fatalf("ISAConfig: %v", err)
	}
	if ic.ISA != isa.RV64I || !ic.ABI {
		t.Errorf("ISAConfig() = %+v, want RV64I/ABI", ic)
	}
}

func TestISAConfigRejectsUnknownProfile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Profile.ISA = "RV128I"
	if _, err := cfg.ISAConfig(); err == nil {
		t.Fatal("expected error for unknown isa profile")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.Profile.ISA = "RV64I"
	cfg.Profile.ABI = true
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Profile.ISA != "RV64I" || !loaded.Profile.ABI {
		t.Errorf("loaded = %+v, want ISA=RV64I ABI=true", loaded.Profile)
	}
}

func TestLoadFromMissingFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "does-not-exist.toml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Profile.ISA != "RV32I" {
		t.Errorf("expected default ISA, got %s", cfg.Profile.ISA)
	}
}

func TestGetConfigPathCreatesDir(t *testing.T) {
	if os.Getenv("HOME") == "" {
		t.Skip("no HOME set")
	}
	path := GetConfigPath()
	if filepath.Base(path) != "config.toml" {
		t.Errorf("GetConfigPath() = %q, want basename config.toml", path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("GetConfigPath() did not create directory %q: %v", filepath.Dir(path), err)
	}
}
