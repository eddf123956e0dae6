package session

import "errors"

var (
	// ErrNotActive is returned when an answer arrives while no card is showing.
	ErrNotActive = errors.New("no question is active")
	// ErrNoQuestions is reported when a response parses to an empty deck.
	ErrNoQuestions = errors.New("no questions parsed from response")
	// ErrSuperseded is reported when a newer request replaced this one.
	ErrSuperseded = errors.New("generation superseded")
	// ErrClosed is returned once the controller has been closed.
	ErrClosed = errors.New("session closed")
)
