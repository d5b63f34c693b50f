// Package storetest provides stores for tests in other packages.
package storetest

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/andrewpaige1/studysmart/store"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrInjected is returned by a Broken store.
var ErrInjected = errors.New("storetest: injected failure")

// Open returns a store backed by a fresh sqlite file in t's temp dir.
// It is closed when the test ends.
func Open(t testing.TB) *store.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "studysmart.db")
	db, err := store.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// Broken wraps a store and fails writes while FailWrites is set.
type Broken struct {
	store.Store
	FailWrites bool
}

func (b *Broken) Set(key string, value []byte) error {
	if b.FailWrites {
		return ErrInjected
	}
	return b.Store.Set(key, value)
}

func (b *Broken) Delete(key string) error {
	if b.FailWrites {
		return ErrInjected
	}
	return b.Store.Delete(key)
}
