package session

import (
	"time"

	"syntaxquiz/internal/quiz"
)

// Phase is the lifecycle stage of a quiz session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseActive
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseActive:
		return "active"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable copy of session state.
type Snapshot struct {
	Phase    Phase
	Language string
	// Deck holds the remaining cards; the front card is the one on display.
	Deck      quiz.Deck
	Score     int
	Total     int
	StartedAt time.Time
	EndedAt   time.Time
}

// Answered counts cards already removed from the deck.
func (s Snapshot) Answered() int {
	answered := s.Total - len(s.Deck)
	if answered < 0 {
		return 0
	}
	return answered
}

// Progress is the answered fraction in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Answered()) / float64(s.Total)
}

// Percentage is the score as a percentage of the initial deck size. It is
// zero when the deck was empty.
func (s Snapshot) Percentage() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Score) / float64(s.Total) * 100
}

// Elapsed is the time between the generation request and the last answer.
// It is zero until the session has finished with both timestamps recorded.
func (s Snapshot) Elapsed() time.Duration {
	if s.StartedAt.IsZero() || s.EndedAt.IsZero() || s.EndedAt.Before(s.StartedAt) {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// Current returns the card on display.
func (s Snapshot) Current() (quiz.QuestionCard, bool) {
	if s.Phase != PhaseActive || len(s.Deck) == 0 {
		return quiz.QuestionCard{}, false
	}
	return s.Deck[0], true
}
