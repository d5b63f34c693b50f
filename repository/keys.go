package repository

import "strings"

type namespace string

const (
	cardsNamespace     namespace = "flashcards_"
	laidAsideNamespace namespace = "laidAside_"
	foldersKey                   = Key("savedFolders")
)

// Key names one stored blob. Keys are only built here.
type Key string

func (n namespace) key(folderID string) Key {
	return Key(string(n) + folderID)
}

func (n namespace) folderID(k string) (string, bool) {
	return strings.CutPrefix(k, string(n))
}

// CardsKey is where a folder's flashcards are stored.
func CardsKey(folderID string) Key { return cardsNamespace.key(folderID) }

// LaidAsideKey is where a folder's laid-aside cards are stored.
func LaidAsideKey(folderID string) Key { return laidAsideNamespace.key(folderID) }

// FoldersKey is where the folder list is stored.
func FoldersKey() Key { return foldersKey }
