package config

import (
	"strings"

	"syntaxquiz/internal/completion"
)

// Default returns the config used when no file exists.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Normalize trims values and fills defaults. Provider and model stay empty
// when unset so the environment and provider defaults can decide.
func Normalize(cfg *Config) {
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	gen := &cfg.Generation
	if gen.Temperature == nil {
		value := completion.DefaultTemperature
		gen.Temperature = &value
	}
	if gen.TopP == nil {
		value := completion.DefaultTopP
		gen.TopP = &value
	}
	if gen.TopK == 0 {
		gen.TopK = completion.DefaultTopK
	}
	if gen.MaxOutputTokens == 0 {
		gen.MaxOutputTokens = completion.DefaultMaxOutputTokens
	}
	gen.ResponseMIMEType = strings.TrimSpace(gen.ResponseMIMEType)
	if gen.ResponseMIMEType == "" {
		gen.ResponseMIMEType = completion.DefaultResponseMIMEType
	}

	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = UIModeAuto
	}
}
