package card

import (
	"fmt"
)

// DeckSize is the number of distinct cards: three values in four dimensions.
const DeckSize = 81

var (
	allCards [DeckSize]Card
	byKey    map[string]Card
)

func init() {
	byKey = make(map[string]Card, DeckSize)

	i := 0
	for _, shape := range Properties {
		for _, shading := range Properties {
			for _, color := range Properties {
				for _, count := range Properties {
					c := New(shape, shading, color, count)
					allCards[i] = c
					byKey[c.Key()] = c
					i++
				}
			}
		}
	}
}

// All returns a fresh copy of the catalog in enumeration order
// (shape, then shading, then color, then count).
func All() []Card {
	out := make([]Card, DeckSize)
	copy(out, allCards[:])
	return out
}

// acesso público ao catálogo
func GetCard(key string) (Card, error) {
	if c, ok := byKey[key]; ok {
		return c, nil
	}
	c, err := ParseKey(key)
	if err != nil {
		return Card{}, fmt.Errorf("card not found: %w", err)
	}
	return c, nil
}
