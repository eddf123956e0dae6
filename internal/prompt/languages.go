package prompt

import (
	"errors"
	"fmt"
	"strings"
)

var supportedLanguages = []string{
	"Java", "Python", "C++", "C", "SQL", "HTML", "JavaScript",
	"TypeScript", "Kotlin", "Swift", "Ruby", "PHP", "Go", "R",
	"Perl", "Rust", "Dart", "Scala", "Clojure", "Haskell", "MATLAB",
	"Objective-C", "Shell", "Assembly", "Lua", "Visual Basic",
}

// Languages returns the languages a quiz can be generated for.
func Languages() []string {
	out := make([]string, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// FilterLanguages returns supported languages whose name starts with query,
// ignoring case. An empty query returns every language.
func FilterLanguages(query string) []string {
	if query == "" {
		return Languages()
	}
	needle := strings.ToLower(query)
	var out []string
	for _, language := range supportedLanguages {
		if strings.HasPrefix(strings.ToLower(language), needle) {
			out = append(out, language)
		}
	}
	return out
}

// IsSupported reports whether language is exactly one of the supported names.
func IsSupported(language string) bool {
	for _, candidate := range supportedLanguages {
		if candidate == language {
			return true
		}
	}
	return false
}

// ErrUnsupportedLanguage is returned for a language outside the allow-list.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// CheckLanguage returns ErrUnsupportedLanguage unless language is supported.
func CheckLanguage(language string) error {
	if !IsSupported(language) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}
	return nil
}
