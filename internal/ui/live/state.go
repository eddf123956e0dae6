package live

import "syntaxquiz/internal/session"

// Screen is the view currently on display.
type Screen int

const (
	ScreenPicker Screen = iota
	ScreenLoading
	ScreenCard
	ScreenSummary
)

// AnswerRecord is one answered card, kept for the summary table.
type AnswerRecord struct {
	Question string
	Given    bool
	Correct  bool
}

// State is the view state derived from input and session snapshots.
type State struct {
	Screen   Screen
	Query    string
	Matches  []string
	Cursor   int
	Snapshot session.Snapshot
	Answers  []AnswerRecord
}

// Highlighted returns the language under the cursor in the picker.
func (s State) Highlighted() (string, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Matches) {
		return "", false
	}
	return s.Matches[s.Cursor], true
}
