package completion

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/imroc/req/v3"
)

// Gemini defaults.
const (
	DefaultGeminiModel   = "gemini-2.0-flash-exp"
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

// GeminiProvider calls the Google generative-language generateContent API.
type GeminiProvider struct {
	Model      string
	Generation GenerationConfig
	client     *req.Client
	apiKey     string
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"topP"`
	TopK             int     `json:"topK,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// NewGeminiProvider constructs a Gemini provider with explicit settings.
func NewGeminiProvider(opts Options) (*GeminiProvider, error) {
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultGeminiModel
	}
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("gemini: %w", ErrMissingAPIKey)
	}
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	client := req.C().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetJsonMarshal(json.Marshal).
		SetJsonUnmarshal(json.Unmarshal)
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	return &GeminiProvider{
		Model:      model,
		Generation: opts.Generation,
		client:     client,
		apiKey:     opts.APIKey,
	}, nil
}

// Complete sends the conversation to Gemini and returns the first candidate's text.
func (p *GeminiProvider) Complete(ctx context.Context, request Request) (string, error) {
	body := geminiRequest{
		Contents: buildGeminiContents(request),
		GenerationConfig: geminiGenerationConfig{
			Temperature:      p.Generation.Temperature,
			TopP:             p.Generation.TopP,
			TopK:             p.Generation.TopK,
			MaxOutputTokens:  p.Generation.MaxOutputTokens,
			ResponseMIMEType: p.Generation.ResponseMIMEType,
		},
	}
	var out geminiResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", p.apiKey).
		SetPathParam("model", p.Model).
		SetBody(&body).
		SetSuccessResult(&out).
		Post("/models/{model}:generateContent")
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	if !resp.IsSuccessState() {
		return "", &ServiceError{
			Provider:   "gemini",
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(resp.String()),
		}
	}
	return candidateText(out), nil
}

func buildGeminiContents(request Request) []geminiContent {
	messages := request.Messages()
	contents := make([]geminiContent, 0, len(messages))
	for _, msg := range messages {
		role := msg.Role
		if role == RoleAssistant {
			role = "model"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Text}},
		})
	}
	return contents
}

// candidateText joins the text parts of the first candidate.
func candidateText(resp geminiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		builder.WriteString(part.Text)
	}
	return builder.String()
}
