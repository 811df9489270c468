package dirdupes

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ConfigDirName, ConfigFileName)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	all := cfg.GetAllConfig()
	if all.Hash.Default != "sha256" {
		t.Errorf("Expected default hash sha256, got %s", all.Hash.Default)
	}
	if all.Output.Format != FormatHuman || all.Output.Color != ColorAuto {
		t.Errorf("Unexpected output defaults: %+v", all.Output)
	}
	if all.Verbose.Level != 0 || all.Verbose.Debug != "" {
		t.Errorf("Unexpected verbose defaults: %+v", all.Verbose)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Defaults should validate: %v", err)
	}

	// Loading must never create the file
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Errorf("Expected config file not to be created, stat returned %v", err)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config")
	content := `[filehash]
default = sha512_256

[output]
format = fdupes
color = never

[verbose]
level = 2
debug = scan,report:false
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	all := cfg.GetAllConfig()
	if all.Hash.Default != "sha512_256" {
		t.Errorf("Expected sha512_256, got %s", all.Hash.Default)
	}
	if all.Output.Format != FormatFdupes || all.Output.Color != ColorNever {
		t.Errorf("Unexpected output config: %+v", all.Output)
	}
	if all.Verbose.Level != 2 || all.Verbose.Debug != "scan,report:false" {
		t.Errorf("Unexpected verbose config: %+v", all.Verbose)
	}

	scanner, err := NewScannerFromConfig(cfg, nil)
	if err != nil {
		t.Fatalf("NewScannerFromConfig failed: %v", err)
	}
	if scanner.Algorithm().Name != "sha512_256" {
		t.Errorf("Expected scanner to use sha512_256, got %s", scanner.Algorithm().Name)
	}
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"empty", "", false},
		{"bad hash", "[filehash]\ndefault = md5\n", true},
		{"bad format", "[output]\nformat = xml\n", true},
		{"bad color", "[output]\ncolor = rainbow\n", true},
		{"level too high", "[verbose]\nlevel = 7\n", true},
		{"level not a number", "[verbose]\nlevel = loud\n", true},
		{"all valid", "[filehash]\ndefault = SHA256\n[output]\nformat = yaml\ncolor = always\n[verbose]\nlevel = 3\n", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadConfigData([]byte(tc.content))
			if err != nil {
				t.Fatalf("LoadConfigData failed: %v", err)
			}
			err = cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestConfig_ApplyVerbose(t *testing.T) {
	defer SetVerboseLevel(0)
	defer SetDebugFlags("")

	cfg, err := LoadConfigData([]byte("[verbose]\nlevel = 1\ndebug = scan\n"))
	if err != nil {
		t.Fatalf("LoadConfigData failed: %v", err)
	}
	cfg.ApplyVerbose()

	if GetVerboseLevel() != 1 {
		t.Errorf("Expected verbose level 1, got %d", GetVerboseLevel())
	}
	if !IsDebugEnabled("scan") {
		t.Error("Expected scan debug flag to be enabled")
	}
}

func TestValidateVerboseLevel(t *testing.T) {
	for level := 0; level <= 3; level++ {
		if err := ValidateVerboseLevel(level); err != nil {
			t.Errorf("Level %d should be valid: %v", level, err)
		}
	}
	for _, level := range []int{-1, 4} {
		if err := ValidateVerboseLevel(level); err == nil {
			t.Errorf("Level %d should be invalid", level)
		}
	}
}
