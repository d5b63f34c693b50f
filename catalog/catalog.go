// Package catalog manages folders and the flashcards inside them.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/andrewpaige1/studysmart/models"
	"github.com/andrewpaige1/studysmart/repository"
	"github.com/andrewpaige1/studysmart/utils"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	ErrEmptyTitle     = errors.New("catalog: folder title is empty")
	ErrFolderNotFound = errors.New("catalog: folder not found")
)

// Catalog holds the ordered folder list in memory and writes the whole list
// back after every change. A change whose write fails is undone in memory.
type Catalog struct {
	repo     *repository.Repository
	logger   *zap.Logger
	validate *validator.Validate
	folders  []models.Folder
}

// New loads the saved folder list. A list that cannot be decoded is logged
// and the catalog starts empty.
func New(repo *repository.Repository, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Catalog{
		repo:     repo,
		logger:   logger,
		validate: validator.New(),
	}

	folders, err := repo.Folders()
	switch {
	case errors.Is(err, repository.ErrCorrupt):
		logger.Warn("Saved folders could not be read, starting empty", zap.Error(err))
	case err != nil:
		return nil, err
	}
	c.folders = folders

	logger.Debug("Catalog loaded", zap.Int("folders", len(folders)))
	return c, nil
}

// List returns the folders in the order they were created.
func (c *Catalog) List() []models.Folder {
	return slices.Clone(c.folders)
}

func (c *Catalog) Len() int { return len(c.folders) }

func (c *Catalog) Get(id string) (models.Folder, error) {
	i := c.index(id)
	if i < 0 {
		return models.Folder{}, fmt.Errorf("%w: %s", ErrFolderNotFound, id)
	}
	return c.folders[i], nil
}

// Create adds a folder. Title and description are trimmed; an empty title
// is rejected and nothing changes.
func (c *Catalog) Create(title, description string) (models.Folder, error) {
	folder := models.Folder{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
	if err := c.validate.Struct(folder); err != nil {
		return models.Folder{}, ErrEmptyTitle
	}

	id, err := utils.NewID()
	if err != nil {
		return models.Folder{}, fmt.Errorf("generating folder id: %w", err)
	}
	folder.ID = id

	c.folders = append(c.folders, folder)
	if err := c.persist(); err != nil {
		c.folders = c.folders[:len(c.folders)-1]
		return models.Folder{}, err
	}

	c.logger.Info("Folder created", zap.String("folder", folder.ID), zap.String("title", folder.Title))
	return folder, nil
}

// Patch lists the fields Update should change. Nil fields are left alone.
type Patch struct {
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
}

// Update changes a folder in place.
func (c *Catalog) Update(id string, p Patch) (models.Folder, error) {
	i := c.index(id)
	if i < 0 {
		return models.Folder{}, fmt.Errorf("%w: %s", ErrFolderNotFound, id)
	}

	updated := c.folders[i]
	if p.Title != nil {
		updated.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		updated.Description = strings.TrimSpace(*p.Description)
	}
	if p.DueDate != nil {
		d := models.CalendarDate(*p.DueDate)
		updated.DueDate = &d
	}
	if p.ClearDueDate {
		updated.DueDate = nil
	}
	if err := c.validate.Struct(updated); err != nil {
		return c.folders[i], ErrEmptyTitle
	}

	previous := c.folders[i]
	c.folders[i] = updated
	if err := c.persist(); err != nil {
		c.folders[i] = previous
		return previous, err
	}
	return updated, nil
}

func (c *Catalog) SetDueDate(id string, due time.Time) (models.Folder, error) {
	return c.Update(id, Patch{DueDate: &due})
}

func (c *Catalog) ClearDueDate(id string) (models.Folder, error) {
	return c.Update(id, Patch{ClearDueDate: true})
}

// Delete removes a folder and the cards stored for it.
func (c *Catalog) Delete(id string) error {
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrFolderNotFound, id)
	}

	previous := slices.Clone(c.folders)
	c.folders = slices.Delete(c.folders, i, i+1)
	if err := c.persist(); err != nil {
		c.folders = previous
		return err
	}
	if err := c.repo.DeleteFolderData(id); err != nil {
		return fmt.Errorf("removing cards of folder %s: %w", id, err)
	}

	c.logger.Info("Folder deleted", zap.String("folder", id))
	return nil
}

// Orphans lists folder IDs that still have cards or laid-aside cards
// stored but no folder.
func (c *Catalog) Orphans() ([]string, error) {
	ids, err := c.repo.FolderIDs()
	if err != nil {
		return nil, err
	}
	var orphans []string
	for _, id := range ids {
		if c.index(id) < 0 {
			orphans = append(orphans, id)
		}
	}
	return orphans, nil
}

func (c *Catalog) index(id string) int {
	return slices.IndexFunc(c.folders, func(f models.Folder) bool { return f.ID == id })
}

func (c *Catalog) persist() error {
	if err := c.repo.SaveFolders(c.folders); err != nil {
		return fmt.Errorf("saving folders: %w", err)
	}
	return nil
}
