package card

import (
	"math/rand/v2"

	"setgame/internal/utils"
)

// Pile is an ordered run of cards. The deck and the board are both piles.
type Pile []Card

// Size retorna o número de cartas na pilha.
func (p *Pile) Size() int {
	if p == nil {
		return 0
	}
	return len(*p)
}

// Shuffle applies a uniform Fisher-Yates permutation in place.
func (p *Pile) Shuffle(r *rand.Rand) {
	n := p.Size()
	if n > 1 {
		for i := n - 1; i > 0; i-- {
			j := r.IntN(i + 1)
			(*p)[i], (*p)[j] = (*p)[j], (*p)[i]
		}
	}
}

// Deal removes up to amount cards from the end of the pile and returns them in
// their current order. Asking for more than the pile holds returns everything
// that is left; a negative amount deals nothing.
func (p *Pile) Deal(amount int) Pile {
	if p == nil {
		return Pile{}
	}
	n := p.Size()
	amount = max(0, min(amount, n))

	dealt := make(Pile, amount)
	copy(dealt, (*p)[n-amount:])
	*p = (*p)[:n-amount]
	return dealt
}

// Contains compara por valor, já que cartas são imutáveis.
func (p Pile) Contains(c Card) bool {
	for _, card := range p {
		if card == c {
			return true
		}
	}
	return false
}

// Keys returns the key of every card, in pile order.
func (p Pile) Keys() []string {
	keys := make([]string, len(p))
	for i, c := range p {
		keys[i] = c.Key()
	}
	return keys
}

func (p Pile) String() string {
	return utils.SliceToString("Pile", p)
}
