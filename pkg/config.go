package dirdupes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
)

// Config represents the dirdupes configuration. It is only ever read; a missing
// file yields the defaults and nothing is written back.
type Config struct {
	ini *ini.File
}

// HashConfig represents hash algorithm configuration
type HashConfig struct {
	Default string // Digest algorithm name
}

// OutputConfig represents output format configuration
type OutputConfig struct {
	Format string // human, json, yaml, fdupes
	Color  string // auto, always, never
}

// VerboseConfig represents verbosity configuration
type VerboseConfig struct {
	Level int    // 0=quiet, 1=basic, 2=detailed, 3=trace
	Debug string // comma-separated debug flags
}

// AllConfig represents all configuration options
type AllConfig struct {
	Hash    *HashConfig
	Output  *OutputConfig
	Verbose *VerboseConfig
}

// DefaultConfigPath returns <user config dir>/dirdupes/config
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName), nil
}

// LoadConfig loads configuration from configPath. A missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		cfg.ini = ini.Empty()
		return cfg, nil
	}

	iniFile, err := ini.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	cfg.ini = iniFile

	return cfg, nil
}

// LoadConfigData parses configuration from an in-memory INI document
func LoadConfigData(data []byte) (*Config, error) {
	iniFile, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &Config{ini: iniFile}, nil
}

// GetHashConfig returns the hash configuration
func (c *Config) GetHashConfig() *HashConfig {
	hashConfig := &HashConfig{
		Default: "sha256",
	}

	if c.ini.HasSection("filehash") {
		section := c.ini.Section("filehash")
		if section.HasKey("default") {
			hashConfig.Default = section.Key("default").String()
		}
	}

	return hashConfig
}

// GetOutputConfig returns the output configuration
func (c *Config) GetOutputConfig() *OutputConfig {
	outputConfig := &OutputConfig{
		Format: FormatHuman,
		Color:  ColorAuto,
	}

	if c.ini.HasSection("output") {
		section := c.ini.Section("output")
		if section.HasKey("format") {
			outputConfig.Format = section.Key("format").String()
		}
		if section.HasKey("color") {
			outputConfig.Color = section.Key("color").String()
		}
	}

	return outputConfig
}

// GetVerboseConfig returns the verbose configuration
func (c *Config) GetVerboseConfig() *VerboseConfig {
	verboseConfig := &VerboseConfig{}

	if c.ini.HasSection("verbose") {
		section := c.ini.Section("verbose")
		if section.HasKey("level") {
			if level, err := section.Key("level").Int(); err == nil {
				verboseConfig.Level = level
			}
		}
		if section.HasKey("debug") {
			verboseConfig.Debug = section.Key("debug").String()
		}
	}

	return verboseConfig
}

// GetAllConfig returns all configuration options
func (c *Config) GetAllConfig() *AllConfig {
	return &AllConfig{
		Hash:    c.GetHashConfig(),
		Output:  c.GetOutputConfig(),
		Verbose: c.GetVerboseConfig(),
	}
}

// Validate checks every configured value
func (c *Config) Validate() error {
	all := c.GetAllConfig()

	if err := ValidateHashAlgorithm(all.Hash.Default); err != nil {
		return err
	}
	if err := ValidateOutputFormat(all.Output.Format); err != nil {
		return err
	}
	if err := ValidateColorMode(all.Output.Color); err != nil {
		return err
	}
	if c.ini.HasSection("verbose") && c.ini.Section("verbose").HasKey("level") {
		level, err := c.ini.Section("verbose").Key("level").Int()
		if err != nil {
			return fmt.Errorf("invalid verbose level: %w", err)
		}
		if err := ValidateVerboseLevel(level); err != nil {
			return err
		}
	}
	return nil
}

// ApplyVerbose installs the configured verbose level and debug flags
func (c *Config) ApplyVerbose() {
	verboseConfig := c.GetVerboseConfig()
	SetVerboseLevel(verboseConfig.Level)
	SetDebugFlags(verboseConfig.Debug)
}

// ValidateHashAlgorithm validates that a hash algorithm is supported
func ValidateHashAlgorithm(algorithm string) error {
	_, err := GetHashAlgorithm(algorithm)
	return err
}

// ValidateOutputFormat validates that an output format is supported
func ValidateOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatHuman, FormatJSON, FormatYAML, FormatFdupes:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s (supported: human, json, yaml, fdupes)", format)
	}
}

// ValidateColorMode validates that a colour mode is supported
func ValidateColorMode(mode string) error {
	switch strings.ToLower(mode) {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("unsupported color mode: %s (supported: auto, always, never)", mode)
	}
}

// ValidateVerboseLevel validates that a verbose level is valid
func ValidateVerboseLevel(level int) error {
	if level < 0 || level > 3 {
		return fmt.Errorf("invalid verbose level: %d (supported: 0-3)", level)
	}
	return nil
}
