package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/andrewpaige1/studysmart/models"
	"github.com/andrewpaige1/studysmart/repository"
	"github.com/andrewpaige1/studysmart/utils"
	"go.uber.org/zap"
)

var (
	ErrEmptyCard    = errors.New("catalog: question and answer are both required")
	ErrCardNotFound = errors.New("catalog: flashcard not found")
)

// Cards returns the flashcards stored for a folder. Unreadable card data
// is logged and reported as no cards.
func (c *Catalog) Cards(folderID string) ([]models.Flashcard, error) {
	if c.index(folderID) < 0 {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, folderID)
	}
	return c.loadCards(folderID)
}

// AddCard appends a new card to the folder. Both sides are trimmed and must
// be non-empty.
func (c *Catalog) AddCard(folderID, question, answer string) (models.Flashcard, error) {
	card := models.Flashcard{Question: question, Answer: answer}.Trimmed()
	if card.Question == "" || card.Answer == "" {
		return models.Flashcard{}, ErrEmptyCard
	}

	cards, err := c.Cards(folderID)
	if err != nil {
		return models.Flashcard{}, err
	}

	id, err := utils.NewID()
	if err != nil {
		return models.Flashcard{}, fmt.Errorf("generating card id: %w", err)
	}
	card.ID = id

	if err := c.repo.SaveCards(folderID, append(cards, card)); err != nil {
		return models.Flashcard{}, err
	}

	c.logger.Debug("Flashcard added", zap.String("folder", folderID), zap.String("card", card.ID))
	return card, nil
}

// EditCard replaces the text of one card. Editing a card down to two empty
// sides removes it on save.
func (c *Catalog) EditCard(folderID, cardID, question, answer string) (models.Flashcard, error) {
	cards, err := c.Cards(folderID)
	if err != nil {
		return models.Flashcard{}, err
	}

	i := slices.IndexFunc(cards, func(f models.Flashcard) bool { return f.ID == cardID })
	if i < 0 {
		return models.Flashcard{}, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
	}

	cards[i] = models.Flashcard{ID: cardID, Question: question, Answer: answer}.Trimmed()
	if err := c.repo.SaveCards(folderID, cards); err != nil {
		return models.Flashcard{}, err
	}
	return cards[i], nil
}

func (c *Catalog) RemoveCard(folderID, cardID string) error {
	cards, err := c.Cards(folderID)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(cards, func(f models.Flashcard) bool { return f.ID == cardID })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
	}

	return c.repo.SaveCards(folderID, slices.Delete(cards, i, i+1))
}

// SaveCards trims every card and stores the ones with text. Cards without
// an ID get one. It returns what was stored.
func (c *Catalog) SaveCards(folderID string, cards []models.Flashcard) ([]models.Flashcard, error) {
	if c.index(folderID) < 0 {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, folderID)
	}

	cleaned := make([]models.Flashcard, 0, len(cards))
	for _, card := range cards {
		card = card.Trimmed()
		if card.IsBlank() {
			continue
		}
		if card.ID == "" {
			id, err := utils.NewID()
			if err != nil {
				return nil, fmt.Errorf("generating card id: %w", err)
			}
			card.ID = id
		}
		cleaned = append(cleaned, card)
	}

	if err := c.repo.SaveCards(folderID, cleaned); err != nil {
		return nil, err
	}
	return cleaned, nil
}

func (c *Catalog) loadCards(folderID string) ([]models.Flashcard, error) {
	cards, err := c.repo.Cards(folderID)
	if errors.Is(err, repository.ErrCorrupt) {
		c.logger.Warn("Flashcards could not be read", zap.String("folder", folderID), zap.Error(err))
		return cards, nil
	}
	return cards, err
}
