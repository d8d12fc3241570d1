package cards

import "errors"

var (
	ErrFileNotFound = errors.New("deck file not found")
	ErrEmptyDeck    = errors.New("no acronyms found")
)
