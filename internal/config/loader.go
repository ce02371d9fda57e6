package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search paths.
const FileName = "clicker.yaml"

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// Load reads the clicker configuration.
// Search order: customPath -> ~/.clicker/configs/clicker.yaml ->
// ./configs/clicker.yaml -> embedded default -> hardcoded default.
//
// A custom path that cannot be read, parsed or validated is an error.
// Broken files in the implicit locations are skipped.
func Load(customPath string) (ClickerConfig, Source, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := LoadFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, SourceLocal, nil
	}

	if cfg, err := Parse(defaultClickerYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}

	return DefaultClickerConfig(), SourceBuiltin, nil
}

// LoadFile reads, parses and validates a single configuration file.
func LoadFile(path string) (ClickerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ClickerConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults, so a file only needs
// the keys it wants to change, and validates the result. An upgrades list in
// the file replaces the default list entirely.
func Parse(data []byte) (ClickerConfig, error) {
	cfg := DefaultClickerConfig()
	cfg.Upgrades = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if cfg.Upgrades == nil {
		cfg.Upgrades = DefaultClickerConfig().Upgrades
	}

	if err := Validate(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg ClickerConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return buf.Bytes(), nil
}

// UserConfigPath returns the per-user config file path, or empty if the
// home directory is unavailable.
func UserConfigPath() string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", FileName)
}

// UserDir returns ~/.clicker, or empty if the home directory is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".clicker")
}
