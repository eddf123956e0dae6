package quiz

import "github.com/google/uuid"

// QuestionCard is a single true/false question shown to the player.
type QuestionCard struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   bool   `json:"answer"`
}

// NewQuestionCard builds a card with a fresh random id.
func NewQuestionCard(question string, answer bool) QuestionCard {
	return QuestionCard{
		ID:       uuid.NewString(),
		Question: question,
		Answer:   answer,
	}
}

// Deck is an ordered set of cards, front first.
type Deck []QuestionCard

// Clone returns a copy that does not share backing storage.
func (d Deck) Clone() Deck {
	if d == nil {
		return nil
	}
	out := make(Deck, len(d))
	copy(out, d)
	return out
}
