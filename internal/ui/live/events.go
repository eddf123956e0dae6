package live

import "syntaxquiz/internal/session"

// EventKind identifies the type of view event.
type EventKind int

const (
	// EventQueryChanged carries new picker input.
	EventQueryChanged EventKind = iota
	// EventCursorMoved moves the picker highlight by Delta.
	EventCursorMoved
	// EventSnapshot delivers fresh session state.
	EventSnapshot
	// EventAnswered records the outcome of one answer.
	EventAnswered
)

// Event is an input to Reduce.
type Event struct {
	Kind     EventKind
	Query    string
	Delta    int
	Snapshot session.Snapshot
	Answer   AnswerRecord
}
