package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Load reads the file at path. An empty path means DefaultPath, which may be
// missing: the defaults are returned then.
func Load(path string) (*File, error) {
	if path != "" {
		return LoadFile(path)
	}

	f, err := LoadFile(DefaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return f, err
}

// Parse parses YAML data into a File. Keys that are absent keep their
// default values.
func Parse(data []byte) (*File, error) {
	f := Default()

	err := yaml.Unmarshal(data, f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(f)

	return f, nil
}

// applyDefaults fills in values that were set explicitly empty.
func applyDefaults(f *File) {
	def := Default()

	if f.Version == "" {
		f.Version = def.Version
	}

	if f.Package == "" {
		f.Package = def.Package
	}

	if f.Output == "" {
		f.Output = def.Output
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
