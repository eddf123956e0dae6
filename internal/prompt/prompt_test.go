package prompt

import (
	"errors"
	"strings"
	"testing"

	"syntaxquiz/internal/completion"
)

func TestBuildPromptEmbedsLanguageAndFormat(t *testing.T) {
	text := BuildPrompt("Python")
	if !strings.Contains(text, "Python") {
		t.Fatalf("expected language in prompt, got %q", text)
	}
	if !strings.Contains(text, "QuestionCard(question:") {
		t.Fatalf("expected record format in prompt, got %q", text)
	}
	if !strings.Contains(text, RecordFormat) {
		t.Fatalf("expected full record format in prompt, got %q", text)
	}
	if BuildPrompt("Python") != text {
		t.Fatalf("expected deterministic prompt")
	}
}

func TestBuildRequestShape(t *testing.T) {
	req := BuildRequest("Go")
	if len(req.History) != 1 || req.History[0].Role != completion.RoleUser {
		t.Fatalf("unexpected history: %+v", req.History)
	}
	if req.History[0].Text != BuildPrompt("Go") {
		t.Fatalf("expected prompt as history turn, got %q", req.History[0].Text)
	}
	if req.Message != "Go" {
		t.Fatalf("expected language as message, got %q", req.Message)
	}
}

func TestFilterLanguages(t *testing.T) {
	got := FilterLanguages("ja")
	if len(got) != 2 || got[0] != "Java" || got[1] != "JavaScript" {
		t.Fatalf("unexpected filter result: %v", got)
	}
	if len(FilterLanguages("")) != len(Languages()) {
		t.Fatalf("expected empty query to return all languages")
	}
	if len(FilterLanguages("zzz")) != 0 {
		t.Fatalf("expected no matches")
	}
	if got := FilterLanguages("c"); len(got) != 3 {
		t.Fatalf("expected C++, C, Clojure; got %v", got)
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("Python") || !IsSupported("Visual Basic") {
		t.Fatalf("expected listed languages to be supported")
	}
	if IsSupported("python") || IsSupported("Cobol") || IsSupported("") {
		t.Fatalf("expected exact match only")
	}
}

func TestLanguagesReturnsCopy(t *testing.T) {
	list := Languages()
	if len(list) != 26 {
		t.Fatalf("expected 26 languages, got %d", len(list))
	}
	list[0] = "changed"
	if Languages()[0] != "Java" {
		t.Fatalf("expected internal list untouched")
	}
}

func TestCheckLanguage(t *testing.T) {
	if err := CheckLanguage("Rust"); err != nil {
		t.Fatalf("expected Rust to pass, got %v", err)
	}
	err := CheckLanguage("Cobol")
	if !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
}
