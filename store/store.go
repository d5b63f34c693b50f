// Package store keeps byte blobs under string keys in a single gorm table.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andrewpaige1/studysmart/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// Store is the key-value primitive the repositories are built on.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
}

// DB is a Store backed by the entries table.
type DB struct {
	*gorm.DB
}

var _ Store = (*DB)(nil)

// Open connects through dialector and creates the entries table if needed.
func Open(dialector gorm.Dialector, opts ...gorm.Option) (*DB, error) {
	db, err := gorm.Open(dialector, opts...)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.AutoMigrate(&models.Entry{}); err != nil {
		return nil, fmt.Errorf("migrating entries table: %w", err)
	}

	return &DB{DB: db}, nil
}

func (db *DB) Get(key string) ([]byte, error) {
	var entry models.Entry
	err := db.Where("entry_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", key, err)
	}
	return entry.Value, nil
}

// Set overwrites whatever is stored under key.
func (db *DB) Set(key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	entry := models.Entry{Key: key, Value: value}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("saving %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (db *DB) Delete(key string) error {
	if err := db.Where("entry_key = ?", key).Delete(&models.Entry{}).Error; err != nil {
		return fmt.Errorf("deleting %q: %w", key, err)
	}
	return nil
}

// Keys lists stored keys starting with prefix, in key order.
func (db *DB) Keys(prefix string) ([]string, error) {
	var keys []string
	err := db.Model(&models.Entry{}).
		Where("entry_key LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%").
		Order("entry_key asc").
		Pluck("entry_key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("listing keys with prefix %q: %w", prefix, err)
	}
	return keys, nil
}

// Close releases the underlying connection pool.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
