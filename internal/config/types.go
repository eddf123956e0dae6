package config

import (
	"time"

	"syntaxquiz/internal/completion"
)

// UI modes accepted by ui.mode.
const (
	UIModeAuto  = "auto"
	UIModeLive  = "live"
	UIModePlain = "plain"
)

// IsUIMode reports whether mode is one of the accepted ui.mode values.
func IsUIMode(mode string) bool {
	switch mode {
	case UIModeAuto, UIModeLive, UIModePlain:
		return true
	}
	return false
}

// Config is the contents of .syntaxquiz/config.yml.
type Config struct {
	Version        int              `yaml:"version"`
	Provider       string           `yaml:"provider"`
	Model          string           `yaml:"model"`
	BaseURL        string           `yaml:"base_url"`
	TimeoutSeconds int              `yaml:"timeout_seconds"`
	Generation     GenerationConfig `yaml:"generation"`
	UI             UIConfig         `yaml:"ui"`
}

// GenerationConfig mirrors completion.GenerationConfig in YAML form.
type GenerationConfig struct {
	Temperature      *float64 `yaml:"temperature"`
	TopP             *float64 `yaml:"top_p"`
	TopK             int      `yaml:"top_k"`
	MaxOutputTokens  int      `yaml:"max_output_tokens"`
	ResponseMIMEType string   `yaml:"response_mime_type"`
}

// UIConfig controls the terminal front end.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// GenerationParams converts the YAML block into completion parameters.
// Unset fields take the completion defaults.
func (c Config) GenerationParams() completion.GenerationConfig {
	gen := completion.DefaultGenerationConfig()
	if c.Generation.Temperature != nil {
		gen.Temperature = *c.Generation.Temperature
	}
	if c.Generation.TopP != nil {
		gen.TopP = *c.Generation.TopP
	}
	if c.Generation.TopK > 0 {
		gen.TopK = c.Generation.TopK
	}
	if c.Generation.MaxOutputTokens > 0 {
		gen.MaxOutputTokens = c.Generation.MaxOutputTokens
	}
	if c.Generation.ResponseMIMEType != "" {
		gen.ResponseMIMEType = c.Generation.ResponseMIMEType
	}
	return gen
}

// CompletionOptions builds provider options from the config. The API key
// is left empty for completion.ProviderFromEnv to fill.
func (c Config) CompletionOptions() completion.Options {
	return completion.Options{
		Model:      c.Model,
		BaseURL:    c.BaseURL,
		Timeout:    time.Duration(c.TimeoutSeconds) * time.Second,
		Generation: c.GenerationParams(),
	}
}
