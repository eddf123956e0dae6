package config

import (
	"errors"
	"fmt"
	"os"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve loads the config at path, or the nearest one above the working
// directory when path is empty. When no file is found, defaults apply and
// the returned path is empty.
func Resolve(path string) (Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	found, err := FindConfigPath("")
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return Default(), "", nil
		}
		return Config{}, "", err
	}
	cfg, err := Load(found)
	return cfg, found, err
}
