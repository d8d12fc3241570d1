// Package cards loads the acronym deck from its plain-text source.
//
// The format is one card per line: an acronym, a run of whitespace, then the
// meaning. A line holding only an acronym yields a card with an empty meaning.
// Blank lines are skipped. There is no quoting, escaping or comment syntax.
package cards

// Card is one acronym/meaning pair. IDs start at 1 and follow file order.
type Card struct {
	ID      int
	Acronym string
	Meaning string
}

// Deck is the read-only, load-ordered sequence of cards.
type Deck struct {
	cards []Card
}

// NewDeck builds a deck from explicit cards. The slice is copied.
func NewDeck(cards ...Card) Deck {
	return Deck{cards: append([]Card(nil), cards...)}
}

func (d Deck) Len() int {
	return len(d.cards)
}

func (d Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Card returns the card at position i in load order.
func (d Deck) Card(i int) Card {
	return d.cards[i]
}

// Cards returns a copy of the deck contents.
func (d Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}
