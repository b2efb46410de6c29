package deck

import (
	"math/rand/v2"

	"setgame/internal/game/card"
)

// Deck holds the cards that have not been dealt yet.
type Deck struct {
	cards card.Pile
}

// New returns the full 81-card deck in catalog order. Call Shuffle before
// dealing from it.
func New() *Deck {
	return &Deck{cards: card.All()}
}

// NewShuffled builds the full deck and permutes it with r.
func NewShuffled(r *rand.Rand) *Deck {
	d := New()
	d.Shuffle(r)
	return d
}

func (d *Deck) Shuffle(r *rand.Rand) {
	d.cards.Shuffle(r)
}

// Deal removes up to amount cards from the deck and hands them to the caller.
// It never fails: when fewer cards remain, all of them are returned.
func (d *Deck) Deal(amount int) card.Pile {
	return d.cards.Deal(amount)
}

// Size is the number of cards still in the deck.
func (d *Deck) Size() int {
	return d.cards.Size()
}

// Cards retorna uma cópia das cartas restantes.
func (d *Deck) Cards() card.Pile {
	out := make(card.Pile, len(d.cards))
	copy(out, d.cards)
	return out
}

func (d *Deck) String() string {
	return d.cards.String()
}
