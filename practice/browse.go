package practice

import (
	"slices"

	"github.com/andrewpaige1/studysmart/models"
)

// Browser steps through cards in stored order, wrapping at both ends.
type Browser struct {
	cards         []models.Flashcard
	index         int
	showingAnswer bool
}

func NewBrowser(cards []models.Flashcard) *Browser {
	return &Browser{cards: slices.Clone(cards)}
}

func (b *Browser) Len() int   { return len(b.cards) }
func (b *Browser) Index() int { return b.index }

func (b *Browser) ShowingAnswer() bool { return b.showingAnswer }

func (b *Browser) Current() (models.Flashcard, bool) {
	if len(b.cards) == 0 {
		return models.Flashcard{}, false
	}
	return b.cards[b.index], true
}

// Flip toggles between question and answer.
func (b *Browser) Flip() {
	if len(b.cards) > 0 {
		b.showingAnswer = !b.showingAnswer
	}
}

func (b *Browser) Next() {
	b.move(1)
}

func (b *Browser) Prev() {
	b.move(-1)
}

func (b *Browser) move(step int) {
	n := len(b.cards)
	if n == 0 {
		return
	}
	b.index = (b.index + step + n) % n
	b.showingAnswer = false
}
