package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"syntaxquiz/internal/completion"
	"syntaxquiz/internal/config"
)

// newProvider builds the completion provider for a config. Tests replace it.
var newProvider = func(cfg config.Config) (completion.Provider, error) {
	return completion.ProviderFromEnv(cfg.Provider, cfg.CompletionOptions())
}

// stdin is read by play and parse. Tests replace it.
var stdin io.Reader = os.Stdin

// resolveConfigPath normalizes an explicit config path or finds one from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadProvider loads config (defaults when none exists) and builds a provider.
func loadProvider(configPath string, stderr io.Writer) (config.Config, completion.Provider, bool) {
	cfg, _, err := config.Resolve(strings.TrimSpace(configPath))
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
		return config.Config{}, nil, false
	}
	provider, err := newProvider(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to configure provider: %v\n", err)
		return config.Config{}, nil, false
	}
	return cfg, provider, true
}
