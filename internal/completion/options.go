package completion

import "time"

// Options configures a provider at construction time.
type Options struct {
	Model      string
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	Generation GenerationConfig
	// HTTPClient replaces the transport for OpenRouter. Ollama uses it only
	// when it is an *http.Client. Gemini manages its own req client and
	// ignores it.
	HTTPClient HTTPDoer
}
