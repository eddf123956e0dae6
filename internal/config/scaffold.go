package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
# gemini | openrouter | ollama; LLM_PROVIDER is used when empty.
provider: gemini
model: gemini-2.0-flash-exp
timeout_seconds: 0
generation:
  temperature: 1
  top_p: 0.95
  top_k: 40
  max_output_tokens: 8192
  response_mime_type: text/plain
ui:
  mode: auto
  no_color: false
`

// Scaffold writes a starter config to path, refusing to overwrite.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
