package quiz

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

const recordPrefix = `QuestionCard(question: "`

// recordPattern matches one question record at the start of a segment.
//
// The question capture ends at the first quote. When the text continues past
// that quote, the rest of the segment up to `", answer: ` is skipped, so a
// question with embedded quotes is cut at its first quote.
var recordPattern = regexp.MustCompile(`^QuestionCard\(question: "([^"]*)(?:".*?)??", answer: (true|false)\)`)

// ParseQuestions extracts every well-formed record from raw completion text,
// in source order. Malformed fragments are dropped; no match yields an empty
// deck rather than an error.
func ParseQuestions(raw string) Deck {
	deck := Deck{}
	for _, segment := range recordSegments(raw) {
		card, ok := cardFromMatch(recordPattern.FindStringSubmatch(segment))
		if !ok {
			continue
		}
		deck = append(deck, card)
	}
	return deck
}

// recordSegments cuts raw at newlines and before every record prefix, so a
// malformed record can never borrow the tail of the record after it.
func recordSegments(raw string) []string {
	var segments []string
	for _, line := range strings.Split(raw, "\n") {
		for {
			start := strings.Index(line, recordPrefix)
			if start < 0 {
				break
			}
			line = line[start:]
			next := strings.Index(line[len(recordPrefix):], recordPrefix)
			if next < 0 {
				segments = append(segments, line)
				break
			}
			end := len(recordPrefix) + next
			segments = append(segments, line[:end])
			line = line[end:]
		}
	}
	return segments
}

// ParseQuestionsFrom reads all of r and parses it with ParseQuestions.
func ParseQuestionsFrom(r io.Reader) (Deck, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read completion text: %w", err)
	}
	return ParseQuestions(string(data)), nil
}

func cardFromMatch(match []string) (QuestionCard, bool) {
	if len(match) != 3 {
		return QuestionCard{}, false
	}
	if match[1] == "" {
		return QuestionCard{}, false
	}
	answer, ok := parseAnswerToken(match[2])
	if !ok {
		return QuestionCard{}, false
	}
	return NewQuestionCard(match[1], answer), true
}

// parseAnswerToken accepts only the exact literals "true" and "false".
func parseAnswerToken(token string) (bool, bool) {
	switch token {
	case "true", "false":
		return token == "true", true
	default:
		return false, false
	}
}
