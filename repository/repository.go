// Package repository gives typed access to flashcards, laid-aside cards
// and folders kept in a store.Store.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/andrewpaige1/studysmart/models"
	"github.com/andrewpaige1/studysmart/store"
	"go.uber.org/zap"
)

// ErrCorrupt is returned alongside empty data when a stored blob cannot be
// decoded.
var ErrCorrupt = errors.New("repository: stored data could not be decoded")

type Repository struct {
	store  store.Store
	logger *zap.Logger
}

func New(s store.Store, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{store: s, logger: logger}
}

// Cards returns the folder's saved flashcards, or an empty slice if none
// were saved.
func (r *Repository) Cards(folderID string) ([]models.Flashcard, error) {
	return loadSlice[models.Flashcard](r, CardsKey(folderID))
}

// SaveCards overwrites the folder's flashcards. Cards with neither a
// question nor an answer are not stored.
func (r *Repository) SaveCards(folderID string, cards []models.Flashcard) error {
	return r.save(CardsKey(folderID), models.WithoutBlank(cards))
}

// LaidAside returns the folder's laid-aside cards.
func (r *Repository) LaidAside(folderID string) ([]models.Flashcard, error) {
	return loadSlice[models.Flashcard](r, LaidAsideKey(folderID))
}

func (r *Repository) SaveLaidAside(folderID string, cards []models.Flashcard) error {
	if cards == nil {
		cards = []models.Flashcard{}
	}
	return r.save(LaidAsideKey(folderID), cards)
}

// ClearLaidAside removes the folder's laid-aside cards.
func (r *Repository) ClearLaidAside(folderID string) error {
	return r.delete(LaidAsideKey(folderID))
}

// Folders returns the saved folder list in insertion order.
func (r *Repository) Folders() ([]models.Folder, error) {
	return loadSlice[models.Folder](r, FoldersKey())
}

func (r *Repository) SaveFolders(folders []models.Folder) error {
	if folders == nil {
		folders = []models.Folder{}
	}
	return r.save(FoldersKey(), folders)
}

// DeleteFolderData removes both the cards and the laid-aside cards of a
// folder. Both deletes are attempted even if the first fails.
func (r *Repository) DeleteFolderData(folderID string) error {
	return errors.Join(
		r.delete(CardsKey(folderID)),
		r.delete(LaidAsideKey(folderID)),
	)
}

// FolderIDs lists, in order and without repeats, the folders that have
// flashcards or laid-aside cards stored.
func (r *Repository) FolderIDs() ([]string, error) {
	var ids []string
	for _, ns := range []namespace{cardsNamespace, laidAsideNamespace} {
		keys, err := r.store.Keys(string(ns))
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			if id, ok := ns.folderID(k); ok {
				ids = append(ids, id)
			}
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids), nil
}

func loadSlice[T any](r *Repository, key Key) ([]T, error) {
	data, err := r.store.Get(string(key))
	if errors.Is(err, store.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return []T{}, err
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		r.logger.Warn("Discarding undecodable data", zap.String("key", string(key)), zap.Error(err))
		return []T{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (r *Repository) save(key Key, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		r.logger.Error("Could not encode data", zap.String("key", string(key)), zap.Error(err))
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := r.store.Set(string(key), data); err != nil {
		r.logger.Error("Could not save data", zap.String("key", string(key)), zap.Error(err))
		return err
	}
	r.logger.Debug("Saved", zap.String("key", string(key)), zap.Int("bytes", len(data)))
	return nil
}

func (r *Repository) delete(key Key) error {
	if err := r.store.Delete(string(key)); err != nil {
		r.logger.Error("Could not delete data", zap.String("key", string(key)), zap.Error(err))
		return err
	}
	return nil
}
