package store_test

import (
	"testing"

	"github.com/andrewpaige1/studysmart/store"
	"github.com/andrewpaige1/studysmart/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingKey(t *testing.T) {
	db := storetest.Open(t)

	_, err := db.Get("flashcards_nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSetOverwrites(t *testing.T) {
	db := storetest.Open(t)

	require.NoError(t, db.Set("savedFolders", []byte(`[1]`)))
	require.NoError(t, db.Set("savedFolders", []byte(`[1,2]`)))

	got, err := db.Get("savedFolders")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))
}

func TestSetEmptyValue(t *testing.T) {
	db := storetest.Open(t)

	require.NoError(t, db.Set("k", nil))

	got, err := db.Get("k")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDelete(t *testing.T) {
	db := storetest.Open(t)

	require.NoError(t, db.Set("laidAside_a", []byte(`[]`)))
	require.NoError(t, db.Delete("laidAside_a"))

	_, err := db.Get("laidAside_a")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// deleting again is fine
	assert.NoError(t, db.Delete("laidAside_a"))
}

func TestKeysPrefix(t *testing.T) {
	db := storetest.Open(t)

	for _, k := range []string{"flashcards_b", "flashcards_a", "laidAside_a", "flashcardsXa", "savedFolders"} {
		require.NoError(t, db.Set(k, []byte(`[]`)))
	}

	keys, err := db.Keys("flashcards_")
	require.NoError(t, err)
	// the underscore is matched literally, so flashcardsXa is excluded
	assert.Equal(t, []string{"flashcards_a", "flashcards_b"}, keys)

	keys, err = db.Keys("nothing")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestBrokenStore(t *testing.T) {
	b := &storetest.Broken{Store: storetest.Open(t), FailWrites: true}

	assert.ErrorIs(t, b.Set("k", []byte("v")), storetest.ErrInjected)
	assert.ErrorIs(t, b.Delete("k"), storetest.ErrInjected)

	b.FailWrites = false
	require.NoError(t, b.Set("k", []byte("v")))
	got, err := b.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}
