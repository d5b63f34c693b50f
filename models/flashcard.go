package models

import "strings"

// Flashcard represents an individual question/answer card.
// Cards belong to a folder through the key they are stored under, never
// through a field on the card itself.
type Flashcard struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// IsBlank reports whether both sides of the card are empty.
func (c Flashcard) IsBlank() bool {
	return c.Question == "" && c.Answer == ""
}

// Trimmed returns a copy with surrounding whitespace removed from both sides.
func (c Flashcard) Trimmed() Flashcard {
	c.Question = strings.TrimSpace(c.Question)
	c.Answer = strings.TrimSpace(c.Answer)
	return c
}

// WithoutBlank drops cards whose question and answer are both empty.
// The input slice is not modified.
func WithoutBlank(cards []Flashcard) []Flashcard {
	kept := make([]Flashcard, 0, len(cards))
	for _, c := range cards {
		if c.IsBlank() {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// ContainsCard reports whether cards holds a value-equal copy of card.
func ContainsCard(cards []Flashcard, card Flashcard) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}
