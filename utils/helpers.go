package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewID returns a fresh random identifier for folders and flashcards.
func NewID() (string, error) {
	return gonanoid.New()
}
