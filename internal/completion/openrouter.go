package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// defaultOpenRouterBaseURL is the default OpenRouter API base URL.
const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider implements Provider for the OpenRouter API.
type OpenRouterProvider struct {
	APIKey     string
	BaseURL    string
	Client     HTTPDoer
	Model      string
	Generation GenerationConfig
}

// openRouterRequest is the JSON payload sent to OpenRouter.
type openRouterRequest struct {
	Model       string              `json:"model"`
	Stream      bool                `json:"stream"`
	Messages    []openRouterMessage `json:"messages"`
	Temperature float64             `json:"temperature"`
	TopP        float64             `json:"top_p"`
	TopK        int                 `json:"top_k,omitempty"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
}

// openRouterMessage represents a single OpenRouter chat message.
type openRouterMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewOpenRouterProvider constructs an OpenRouter provider with explicit settings.
func NewOpenRouterProvider(opts Options) (*OpenRouterProvider, error) {
	if strings.TrimSpace(opts.Model) == "" {
		return nil, fmt.Errorf("openrouter: model is required")
	}
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("openrouter: %w", ErrMissingAPIKey)
	}
	baseURL := opts.BaseURL
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &OpenRouterProvider{
		APIKey:     opts.APIKey,
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Client:     client,
		Model:      opts.Model,
		Generation: opts.Generation,
	}, nil
}

// Complete streams a chat completion from OpenRouter and returns the joined text.
func (p *OpenRouterProvider) Complete(ctx context.Context, request Request) (string, error) {
	requestBody := openRouterRequest{
		Model:       p.Model,
		Stream:      true,
		Messages:    buildOpenRouterMessages(request),
		Temperature: p.Generation.Temperature,
		TopP:        p.Generation.TopP,
		TopK:        p.Generation.TopK,
		MaxTokens:   p.Generation.MaxOutputTokens,
	}
	payload, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := p.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", &ServiceError{
			Provider:   "openrouter",
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return readOpenRouterStream(resp.Body)
}

// buildOpenRouterMessages converts a request into OpenRouter message payloads.
func buildOpenRouterMessages(request Request) []openRouterMessage {
	messages := request.Messages()
	out := make([]openRouterMessage, 0, len(messages))
	for _, msg := range messages {
		out = append(out, openRouterMessage{Role: msg.Role, Content: msg.Text})
	}
	return out
}
