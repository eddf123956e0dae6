package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"syntaxquiz/internal/completion"
)

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if cfg.Provider != "" && !slices.Contains(completion.SupportedProviders(), cfg.Provider) {
		collector.add("provider", fmt.Sprintf("unsupported provider %q (want one of %s)", cfg.Provider, strings.Join(completion.SupportedProviders(), ", ")))
	}
	if cfg.BaseURL != "" {
		if parsed, err := url.Parse(cfg.BaseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
			collector.add("base_url", "must be an absolute URL")
		}
	}
	if cfg.TimeoutSeconds < 0 {
		collector.add("timeout_seconds", "must be >= 0")
	}

	validateGeneration(cfg.Generation, collector.add)
	validateUI(cfg.UI, collector.add)

	return collector.result()
}

func validateGeneration(gen GenerationConfig, add issueAdder) {
	if gen.Temperature != nil && (*gen.Temperature < 0 || *gen.Temperature > 2) {
		add("generation.temperature", "must be between 0 and 2")
	}
	if gen.TopP != nil && (*gen.TopP <= 0 || *gen.TopP > 1) {
		add("generation.top_p", "must be in (0, 1]")
	}
	if gen.TopK < 0 {
		add("generation.top_k", "must be >= 0")
	}
	if gen.MaxOutputTokens < 0 {
		add("generation.max_output_tokens", "must be >= 0")
	}
}

func validateUI(ui UIConfig, add issueAdder) {
	if !IsUIMode(ui.Mode) {
		add("ui.mode", fmt.Sprintf("unsupported mode %q (want auto, live, or plain)", ui.Mode))
	}
}
