// Package practice runs shuffled review passes over a folder's flashcards
// and keeps the cards the learner missed in a laid-aside set.
package practice

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/andrewpaige1/studysmart/models"
	"github.com/andrewpaige1/studysmart/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CardSource is what a session needs from the repository.
type CardSource interface {
	Cards(folderID string) ([]models.Flashcard, error)
	LaidAside(folderID string) ([]models.Flashcard, error)
	SaveLaidAside(folderID string, cards []models.Flashcard) error
	ClearLaidAside(folderID string) error
}

var _ CardSource = (*repository.Repository)(nil)

// Score counts the outcomes marked during the current pass.
type Score struct {
	Correct   int
	Incorrect int
}

type Option func(*Session)

// WithShuffle replaces the random permutation used to build a deck. The
// function must permute the slice in place.
func WithShuffle(shuffle func([]models.Flashcard)) Option {
	return func(s *Session) { s.shuffle = shuffle }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// Session is one learner working through one folder. It is not safe for
// concurrent use.
type Session struct {
	id       string
	folderID string
	repo     CardSource
	logger   *zap.Logger
	shuffle  func([]models.Flashcard)

	cards     []models.Flashcard
	laidAside []models.Flashcard
	dirty     bool

	deck          []models.Flashcard
	source        Source
	position      int
	showingAnswer bool
	state         State
	score         Score
	closed        bool
}

func shuffleCards(cards []models.Flashcard) {
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

// Open loads the folder's cards and laid-aside set and starts a pass over
// all cards. Unreadable data is logged and treated as empty.
func Open(repo CardSource, folderID string, opts ...Option) (*Session, error) {
	s := &Session{
		id:       uuid.NewString(),
		folderID: folderID,
		repo:     repo,
		logger:   zap.NewNop(),
		shuffle:  shuffleCards,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.logger = s.logger.With(zap.String("session", s.id), zap.String("folder", folderID))

	cards, err := repo.Cards(folderID)
	if err != nil {
		if !errors.Is(err, repository.ErrCorrupt) {
			return nil, fmt.Errorf("loading cards: %w", err)
		}
		s.logger.Warn("Flashcards could not be read, practicing without them", zap.Error(err))
	}
	laidAside, err := repo.LaidAside(folderID)
	if err != nil {
		if !errors.Is(err, repository.ErrCorrupt) {
			return nil, fmt.Errorf("loading laid-aside cards: %w", err)
		}
		s.logger.Warn("Laid-aside cards could not be read, starting with none", zap.Error(err))
	}
	s.cards = cards
	s.laidAside = laidAside

	s.deal(s.cards, AllCards)
	s.logger.Debug("Practice session opened", zap.Int("cards", len(cards)), zap.Int("laid_aside", len(laidAside)))
	return s, nil
}

// Run opens a session, hands it to fn and closes it whatever fn returns.
func Run(repo CardSource, folderID string, fn func(*Session) error, opts ...Option) (err error) {
	s, err := Open(repo, folderID, opts...)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, s.Close())
	}()
	return fn(s)
}

// Start begins a fresh pass over all of the folder's cards.
func (s *Session) Start() error {
	if s.closed {
		return ErrClosed
	}
	s.deal(s.cards, AllCards)
	return nil
}

// Restart is Start.
func (s *Session) Restart() error { return s.Start() }

func (s *Session) deal(from []models.Flashcard, source Source) {
	s.deck = slices.Clone(from)
	s.shuffle(s.deck)
	s.source = source
	s.position = 0
	s.showingAnswer = false
	s.score = Score{}

	if len(s.deck) == 0 {
		s.state = Empty
		return
	}
	s.state = Ready
}

// Reveal flips the current card between question and answer.
func (s *Session) Reveal() error {
	if err := s.reviewable(); err != nil {
		return err
	}
	s.showingAnswer = !s.showingAnswer
	s.state = Reviewing
	return nil
}

// Mark records the outcome for the current card and moves on. A missed
// card is added to the laid-aside set unless an equal card is already
// there, and the set is saved straight away. If that save fails the
// session still moves on and the error is returned.
func (s *Session) Mark(correct bool) error {
	if err := s.reviewable(); err != nil {
		return err
	}

	var saveErr error
	if correct {
		s.score.Correct++
	} else {
		s.score.Incorrect++
		card := s.deck[s.position]
		if !models.ContainsCard(s.laidAside, card) {
			s.laidAside = append(s.laidAside, card)
			saveErr = s.saveLaidAside()
		}
	}

	s.showingAnswer = false
	if s.position+1 < len(s.deck) {
		s.position++
		s.state = Reviewing
	} else {
		s.state = Finished
		s.logger.Debug("Pass finished",
			zap.Stringer("source", s.source),
			zap.Int("correct", s.score.Correct),
			zap.Int("incorrect", s.score.Incorrect))
	}
	return saveErr
}

// PracticeLaidAside starts a pass over the laid-aside cards. Only allowed
// once the current pass is finished.
func (s *Session) PracticeLaidAside() error {
	if s.closed {
		return ErrClosed
	}
	if s.state != Finished {
		return ErrNotFinished
	}
	if len(s.laidAside) == 0 {
		return ErrNothingLaidAside
	}
	s.deal(s.laidAside, LaidAsideCards)
	return nil
}

// ClearLaidAside empties the laid-aside set and removes it from storage.
func (s *Session) ClearLaidAside() error {
	if s.closed {
		return ErrClosed
	}
	if s.state != Finished {
		return ErrNotFinished
	}
	s.laidAside = []models.Flashcard{}
	if err := s.repo.ClearLaidAside(s.folderID); err != nil {
		s.dirty = true
		return fmt.Errorf("clearing laid-aside cards: %w", err)
	}
	s.dirty = false
	return nil
}

// Close ends the session and writes the laid-aside set again if an earlier
// save failed. While that write keeps failing the set stays dirty and every
// further Close retries it.
func (s *Session) Close() error {
	wasOpen := !s.closed
	s.closed = true

	if s.dirty {
		if err := s.saveLaidAside(); err != nil {
			return err
		}
	}
	if wasOpen {
		s.logger.Debug("Practice session closed")
	}
	return nil
}

func (s *Session) ID() string       { return s.id }
func (s *Session) FolderID() string { return s.folderID }
func (s *Session) State() State     { return s.state }
func (s *Session) Source() Source   { return s.source }
func (s *Session) Score() Score     { return s.score }

// Len is the number of cards in the current deck.
func (s *Session) Len() int { return len(s.deck) }

// Position is the zero-based index of the current card in the deck.
func (s *Session) Position() int { return s.position }

func (s *Session) ShowingAnswer() bool { return s.showingAnswer }

// Current returns the card under review. ok is false when there is none.
func (s *Session) Current() (card models.Flashcard, ok bool) {
	if s.state != Ready && s.state != Reviewing {
		return models.Flashcard{}, false
	}
	return s.deck[s.position], true
}

// LaidAside returns a copy of the laid-aside set.
func (s *Session) LaidAside() []models.Flashcard {
	return slices.Clone(s.laidAside)
}

func (s *Session) reviewable() error {
	if s.closed {
		return ErrClosed
	}
	if s.state != Ready && s.state != Reviewing {
		return ErrNotReviewing
	}
	return nil
}

func (s *Session) saveLaidAside() error {
	if err := s.repo.SaveLaidAside(s.folderID, s.laidAside); err != nil {
		s.dirty = true
		s.logger.Error("Could not save laid-aside cards", zap.Error(err))
		return fmt.Errorf("saving laid-aside cards: %w", err)
	}
	s.dirty = false
	return nil
}
