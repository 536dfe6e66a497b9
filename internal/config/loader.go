package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configName is the file name looked up in the user and local config directories.
const configName = "dasher.yaml"

// LoadDasher loads the runner configuration and validates it.
// Search order: customPath -> ~/.dasher/configs/dasher.yaml -> ./configs/dasher.yaml -> embedded default.
// Values missing from a file keep their defaults.
func LoadDasher(customPath string) (DasherConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DasherConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data, customPath)
		if err != nil {
			return DasherConfig{}, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then the local one. Broken files there are
	// skipped rather than fatal, the same as a missing file.
	for _, path := range []string{userConfigPath(configName), filepath.Join("configs", configName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data, path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDasherYAML, configName)
	if err != nil {
		return DefaultDasherConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// Parse decodes a config file on top of the defaults.
// The format is picked from the file name: .toml uses TOML, anything else YAML.
func Parse(data []byte, name string) (DasherConfig, error) {
	cfg := DefaultDasherConfig()
	// Layers replace the default list wholesale when present.
	cfg.Scene.Layers = nil

	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return DasherConfig{}, fmt.Errorf("config: failed to parse %s: %w", name, err)
	}

	if len(cfg.Scene.Layers) == 0 {
		cfg.Scene.Layers = DefaultDasherConfig().Scene.Layers
	}
	return cfg, nil
}

// WriteYAML writes cfg in the format Parse reads.
func WriteYAML(w io.Writer, cfg DasherConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: failed to encode: %w", err)
	}
	return enc.Close()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dasher", "configs", filename)
}
