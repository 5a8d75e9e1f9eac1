// Package config provides configuration loading for prchangelog using koanf.
// Values are layered with priority: explicit --config file > project config
// (.prchangelog.yml) > defaults. A legacy .prchangelog.json project file is
// still read, with a deprecation warning, when no YAML config exists.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the prchangelog CLI configuration
type Configuration struct {
	// Changelog is the destination changelog path used when --changelog is not given.
	Changelog string `koanf:"changelog"`
	// Plain disables colors and icons in terminal output.
	Plain bool `koanf:"plain"`
	// Summary prints the per-category summary after a merge.
	Summary bool `koanf:"summary"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ConfigPath is an explicit config file. It must exist when set.
	ConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings
	SkipWarnings bool
}

// LoadWithOptions loads configuration from opts.ConfigPath, or from the
// project config in the current directory when it is empty.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := opts.WarningWriter
	if warningWriter == nil {
		warningWriter = os.Stderr
	}

	loadDefaults(k)

	if opts.ConfigPath != "" {
		if !fileExists(opts.ConfigPath) {
			return nil, fmt.Errorf("config file not found: %s", opts.ConfigPath)
		}
		if err := loadFile(k, opts.ConfigPath); err != nil {
			return nil, err
		}
	} else if err := loadProjectConfig(k, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, opts.ConfigPath); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadProjectConfig loads .prchangelog.yml, falling back to the legacy
// .prchangelog.json with a warning.
func loadProjectConfig(k *koanf.Koanf, warningWriter io.Writer, skipWarnings bool) error {
	yamlPath := ProjectConfigPath()
	legacyPath := LegacyProjectConfigPath()

	yamlExists := fileExists(yamlPath)
	legacyExists := fileExists(legacyPath)

	switch {
	case yamlExists:
		if err := loadFile(k, yamlPath); err != nil {
			return err
		}
		if legacyExists && !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Legacy JSON config found at %s (ignored, using %s)\n\n", legacyPath, yamlPath)
		}
	case legacyExists:
		if err := loadFile(k, legacyPath); err != nil {
			return err
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", legacyPath)
			fmt.Fprintf(warningWriter, "  Rename it to %s and convert it to YAML.\n\n", yamlPath)
		}
	}
	return nil
}

// loadFile loads a config file, picking the parser from its extension.
func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		parser = json.Parser()
	case ".yml", ".yaml":
		if err := ValidateYAMLSyntax(path); err != nil {
			return fmt.Errorf("validating YAML syntax: %w", err)
		}
		parser = yaml.Parser()
	default:
		return fmt.Errorf("unsupported config format %q (use .yml, .yaml or .json)", filepath.Ext(path))
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
