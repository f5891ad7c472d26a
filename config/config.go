// Package config loads and saves the codec's ISA profile from a TOML
// file, the same shape the teacher's own config package uses for its
// emulator settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/lookbusy1344/arm-emulator/internal/isa"
)

// Config is the on-disk codec configuration: which ISA profile to
// decode/encode against, and how to render register names.
type Config struct {
	Profile struct {
		ISA string `toml:"isa"` // "RV32I" or "RV64I"
		ABI bool   `toml:"abi"` // render registers as "a0" instead of "x10"
	} `toml:"profile"`
}

// DefaultConfig returns RV32I with numeric register rendering, the same
// default isa.DefaultConfig() picks.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Profile.ISA = "RV32I"
	cfg.Profile.ABI = false
	return cfg
}

// ISAConfig converts the on-disk profile into the isa.Config the
// decoder/encoder actually consume.
func (c *Config) ISAConfig() (isa.Config, error) {
	var profile isa.Profile
	switch c.Profile.ISA {
	case "RV32I":
		profile = isa.RV32I
	case "RV64I":
		profile = isa.RV64I
	default:
		return isa.Config{}, fmt.Errorf("unknown isa profile %q in config", c.Profile.ISA)
	}
	return isa.Config{ISA: profile, ABI: c.Profile.ABI}, nil
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "rvcodec")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "rvcodec")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// LoadConfig loads configuration from the default config file, falling
// back to DefaultConfig() when no file exists.
func LoadConfig() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
