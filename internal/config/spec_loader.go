package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilename is the default configuration filename.
const DefaultConfigFilename = "tierplan.yaml"

// LoadSpec loads and validates a configuration from a file.
func LoadSpec(path string) (*Spec, error) {
	cfg, err := LoadSpecWithoutValidation(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadSpecWithoutValidation loads a configuration from a file without validation.
func LoadSpecWithoutValidation(path string) (*Spec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the user's config file
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := parseSpec(data)
	if err != nil {
		return nil, err
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// LoadSpecFromBytes loads and validates a configuration from bytes.
func LoadSpecFromBytes(data []byte) (*Spec, error) {
	cfg, err := parseSpec(data)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// parseSpec parses YAML data into a Spec struct.
func parseSpec(data []byte) (*Spec, error) {
	var cfg Spec
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &cfg, nil
}

// FindConfigFile searches the current directory and its parents for
// tierplan.yaml.
func FindConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return findConfigFileFrom(cwd)
}

func findConfigFileFrom(dir string) (string, error) {
	for {
		path := filepath.Join(dir, DefaultConfigFilename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("config file %s not found: %w", DefaultConfigFilename, fs.ErrNotExist)
}

// SaveSpec writes a configuration to a file.
func SaveSpec(cfg *Spec, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
