package completion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestProviderFromEnvErrors(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := ProviderFromEnv("", Options{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected missing key error for default provider, got %v", err)
	}
	if _, err := ProviderFromEnv("unknown", Options{Model: "m"}); err == nil {
		t.Fatalf("expected unsupported provider error")
	}
	if _, err := ProviderFromEnv("openrouter", Options{Model: "m"}); err == nil {
		t.Fatalf("expected missing api key error")
	}
}

func TestProviderFromEnvReadsKeys(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	provider, err := ProviderFromEnv("", Options{})
	if err != nil {
		t.Fatalf("provider from env: %v", err)
	}
	if _, ok := provider.(*GeminiProvider); !ok {
		t.Fatalf("expected gemini provider, got %T", provider)
	}

	t.Setenv("LLM_PROVIDER", "openrouter")
	t.Setenv("LLM_API_KEY", "router-key")
	provider, err = ProviderFromEnv("", Options{Model: "m"})
	if err != nil {
		t.Fatalf("provider from env: %v", err)
	}
	router, ok := provider.(*OpenRouterProvider)
	if !ok {
		t.Fatalf("expected openrouter provider, got %T", provider)
	}
	if router.APIKey != "router-key" {
		t.Fatalf("unexpected api key %q", router.APIKey)
	}
}

func TestOpenRouterCompleteJoinsStream(t *testing.T) {
	var got openRouterRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("unexpected auth header %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, ": keep-alive\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"hello \"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"world\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	t.Cleanup(server.Close)

	provider, err := NewOpenRouterProvider(Options{
		Model:      "model",
		APIKey:     "key",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		Generation: DefaultGenerationConfig(),
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	text, err := provider.Complete(context.Background(), Request{
		History: []Message{{Role: RoleUser, Text: "base"}},
		Message: "hi",
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("unexpected text %q", text)
	}
	if !got.Stream || got.Model != "model" || got.MaxTokens != 8192 || got.TopK != 40 {
		t.Fatalf("unexpected request: %+v", got)
	}
	if len(got.Messages) != 2 || got.Messages[1].Content != "hi" || got.Messages[1].Role != RoleUser {
		t.Fatalf("unexpected messages: %+v", got.Messages)
	}
}

func TestOpenRouterServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	provider, err := NewOpenRouterProvider(Options{Model: "m", APIKey: "k", BaseURL: server.URL, HTTPClient: server.Client()})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	_, err = provider.Complete(context.Background(), Request{Message: "hi"})
	var serviceErr *ServiceError
	if !errors.As(err, &serviceErr) {
		t.Fatalf("expected service error, got %v", err)
	}
	if serviceErr.StatusCode != http.StatusUnauthorized || !strings.Contains(serviceErr.Error(), "bad key") {
		t.Fatalf("unexpected service error: %v", serviceErr)
	}
}

func TestReadOpenRouterStreamErrorChunk(t *testing.T) {
	_, err := readOpenRouterStream(strings.NewReader("data: {\"error\":{\"code\":502,\"message\":\"upstream\"}}\n\n"))
	var serviceErr *ServiceError
	if !errors.As(err, &serviceErr) || serviceErr.StatusCode != 502 {
		t.Fatalf("expected upstream service error, got %v", err)
	}
	if _, err := readOpenRouterStream(strings.NewReader("data: {not json}\n")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestRequestMessagesDefaultsRole(t *testing.T) {
	messages := Request{History: []Message{{Text: "a"}}, Message: "b"}.Messages()
	if len(messages) != 2 || messages[0].Role != RoleUser || messages[1].Text != "b" {
		t.Fatalf("unexpected messages: %+v", messages)
	}
	if got := (Request{}).Messages(); len(got) != 0 {
		t.Fatalf("expected no messages, got %+v", got)
	}
}
