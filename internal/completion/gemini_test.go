package completion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeminiCompleteSendsConversation(t *testing.T) {
	var (
		gotPath string
		gotKey  string
		gotBody geminiRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"hello "},{"text":"world"}]}}]}`)
	}))
	t.Cleanup(server.Close)

	provider, err := NewGeminiProvider(Options{
		Model:      "gemini-test",
		APIKey:     "secret",
		BaseURL:    server.URL,
		Generation: DefaultGenerationConfig(),
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	text, err := provider.Complete(context.Background(), Request{
		History: []Message{{Role: RoleUser, Text: "instructions"}},
		Message: "Go",
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("unexpected text %q", text)
	}
	if gotPath != "/models/gemini-test:generateContent" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotKey != "secret" {
		t.Fatalf("expected api key header, got %q", gotKey)
	}
	if len(gotBody.Contents) != 2 {
		t.Fatalf("expected 2 contents, got %+v", gotBody.Contents)
	}
	if gotBody.Contents[0].Parts[0].Text != "instructions" || gotBody.Contents[1].Parts[0].Text != "Go" {
		t.Fatalf("unexpected contents: %+v", gotBody.Contents)
	}
	cfg := gotBody.GenerationConfig
	if cfg.Temperature != 1 || cfg.TopP != 0.95 || cfg.TopK != 40 || cfg.MaxOutputTokens != 8192 || cfg.ResponseMIMEType != "text/plain" {
		t.Fatalf("unexpected generation config: %+v", cfg)
	}
}

func TestGeminiCompleteNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"promptFeedback":{"blockReason":"SAFETY"}}`)
	}))
	t.Cleanup(server.Close)

	provider, err := NewGeminiProvider(Options{APIKey: "k", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	text, err := provider.Complete(context.Background(), Request{Message: "Go"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}

func TestGeminiCompleteServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"quota"}}`)
	}))
	t.Cleanup(server.Close)

	provider, err := NewGeminiProvider(Options{APIKey: "k", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	_, err = provider.Complete(context.Background(), Request{Message: "Go"})
	var serviceErr *ServiceError
	if !errors.As(err, &serviceErr) {
		t.Fatalf("expected service error, got %v", err)
	}
	if serviceErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("unexpected status %d", serviceErr.StatusCode)
	}
}

func TestGeminiRequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(Options{})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected missing key error, got %v", err)
	}
}

func TestGeminiDefaultModel(t *testing.T) {
	provider, err := NewGeminiProvider(Options{APIKey: "k"})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if provider.Model != DefaultGeminiModel {
		t.Fatalf("expected default model, got %q", provider.Model)
	}
}

type failingDoer struct{ t *testing.T }

func (d failingDoer) Do(*http.Request) (*http.Response, error) {
	d.t.Errorf("gemini should not route through Options.HTTPClient")
	return nil, errors.New("unexpected call")
}

func TestGeminiIgnoresHTTPClientOption(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`)
	}))
	t.Cleanup(server.Close)

	provider, err := NewGeminiProvider(Options{APIKey: "k", BaseURL: server.URL, HTTPClient: failingDoer{t: t}})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	text, err := provider.Complete(context.Background(), Request{Message: "Go"})
	if err != nil || text != "ok" {
		t.Fatalf("complete: %q, %v", text, err)
	}
}
