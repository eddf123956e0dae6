package completion

import (
	"fmt"
	"os"
	"strings"
)

// Provider names.
const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
)

// SupportedProviders lists the provider names accepted by NewProvider.
func SupportedProviders() []string {
	return []string{ProviderGemini, ProviderOpenRouter, ProviderOllama}
}

// NewProvider constructs the named provider.
func NewProvider(name string, opts Options) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ProviderGemini:
		return NewGeminiProvider(opts)
	case ProviderOpenRouter:
		return NewOpenRouterProvider(opts)
	case ProviderOllama:
		return NewOllamaProvider(opts)
	case "":
		return nil, fmt.Errorf("provider is required")
	default:
		return nil, fmt.Errorf("unsupported provider %q", name)
	}
}

// ProviderFromEnv builds a provider, filling the name and API key from the
// environment when the caller leaves them empty.
func ProviderFromEnv(name string, opts Options) (Provider, error) {
	if strings.TrimSpace(name) == "" {
		name = strings.TrimSpace(os.Getenv("LLM_PROVIDER"))
	}
	if name == "" {
		name = ProviderGemini
	}
	if strings.TrimSpace(opts.APIKey) == "" {
		opts.APIKey = apiKeyFromEnv(name)
	}
	return NewProvider(name, opts)
}

func apiKeyFromEnv(provider string) string {
	if key := strings.TrimSpace(os.Getenv("LLM_API_KEY")); key != "" {
		return key
	}
	if strings.EqualFold(provider, ProviderGemini) {
		return strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	}
	return ""
}
