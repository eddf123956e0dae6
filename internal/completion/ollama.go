package completion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/ollama/ollama/api"
)

// defaultOllamaBaseURL is used when neither options nor OLLAMA_HOST name a server.
const defaultOllamaBaseURL = "http://localhost:11434"

// OllamaProvider runs completions against a local Ollama server.
type OllamaProvider struct {
	Model      string
	Generation GenerationConfig
	client     *api.Client
}

// NewOllamaProvider constructs an Ollama provider. No API key is needed.
func NewOllamaProvider(opts Options) (*OllamaProvider, error) {
	if strings.TrimSpace(opts.Model) == "" {
		return nil, fmt.Errorf("ollama: model is required")
	}
	rawURL := strings.TrimSpace(opts.BaseURL)
	if rawURL == "" {
		rawURL = strings.TrimSpace(os.Getenv("OLLAMA_HOST"))
	}
	if rawURL == "" {
		rawURL = defaultOllamaBaseURL
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "http://" + rawURL
	}
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("ollama: invalid base url %q: %w", rawURL, err)
	}
	httpClient := &http.Client{Timeout: opts.Timeout}
	if client, ok := opts.HTTPClient.(*http.Client); ok && client != nil {
		httpClient = client
	}
	return &OllamaProvider{
		Model:      opts.Model,
		Generation: opts.Generation,
		client:     api.NewClient(base, httpClient),
	}, nil
}

// Complete sends a non-streaming chat request and returns the assistant text.
func (p *OllamaProvider) Complete(ctx context.Context, request Request) (string, error) {
	stream := false
	chatReq := &api.ChatRequest{
		Model:    p.Model,
		Stream:   &stream,
		Messages: buildOllamaMessages(request),
		Options:  ollamaOptions(p.Generation),
	}
	if p.Generation.ResponseMIMEType == "application/json" {
		chatReq.Format = json.RawMessage(`"json"`)
	}

	var content strings.Builder
	err := p.client.Chat(ctx, chatReq, func(resp api.ChatResponse) error {
		content.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		var statusErr api.StatusError
		if errors.As(err, &statusErr) {
			return "", &ServiceError{Provider: "ollama", StatusCode: statusErr.StatusCode, Body: statusErr.ErrorMessage}
		}
		return "", fmt.Errorf("ollama request: %w", err)
	}
	return content.String(), nil
}

func buildOllamaMessages(request Request) []api.Message {
	messages := request.Messages()
	out := make([]api.Message, 0, len(messages))
	for _, msg := range messages {
		out = append(out, api.Message{Role: msg.Role, Content: msg.Text})
	}
	return out
}

// ollamaOptions maps generation parameters onto Ollama model options.
func ollamaOptions(gen GenerationConfig) map[string]any {
	options := map[string]any{
		"temperature": gen.Temperature,
		"top_p":       gen.TopP,
	}
	if gen.TopK > 0 {
		options["top_k"] = gen.TopK
	}
	if gen.MaxOutputTokens > 0 {
		options["num_predict"] = gen.MaxOutputTokens
	}
	return options
}
