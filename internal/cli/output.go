package cli

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"syntaxquiz/internal/quiz"
)

// writeDeck prints cards one per line, or as an indented JSON array.
func writeDeck(w io.Writer, deck quiz.Deck, asJSON bool) error {
	if asJSON {
		if deck == nil {
			deck = quiz.Deck{}
		}
		data, err := json.MarshalIndent(deck, "", "  ")
		if err != nil {
			return fmt.Errorf("encode cards: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	for i, card := range deck {
		if _, err := fmt.Fprintf(w, "%d. [%t] %s\n", i+1, card.Answer, card.Question); err != nil {
			return err
		}
	}
	return nil
}
