package card

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPileDeal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		size          int
		amount        int
		wantDealt     int
		wantRemaining int
	}{
		{name: "less than size", size: 81, amount: 12, wantDealt: 12, wantRemaining: 69},
		{name: "exactly size", size: 5, amount: 5, wantDealt: 5, wantRemaining: 0},
		{name: "more than size is clamped", size: 5, amount: 12, wantDealt: 5, wantRemaining: 0},
		{name: "zero", size: 5, amount: 0, wantDealt: 0, wantRemaining: 5},
		{name: "negative deals nothing", size: 5, amount: -3, wantDealt: 0, wantRemaining: 5},
		{name: "empty pile", size: 0, amount: 3, wantDealt: 0, wantRemaining: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pile(All()[:tt.size])
			before := make(Pile, len(p))
			copy(before, p)

			dealt := p.Deal(tt.amount)

			require.Len(t, dealt, tt.wantDealt)
			assert.Equal(t, tt.wantRemaining, p.Size())
			// Dealt cards come off the end in order and the rest is untouched.
			assert.Equal(t, before[:tt.wantRemaining], p)
			assert.Equal(t, before[tt.wantRemaining:], dealt)
		})
	}
}

func TestPileDealDoesNotAlias(t *testing.T) {
	t.Parallel()

	p := Pile(All())
	dealt := p.Deal(3)
	p = append(p, New(First, First, First, First))

	assert.Equal(t, All()[78:], []Card(dealt), "appending to the remainder must not overwrite dealt cards")
}

func TestPileShuffleIsPermutation(t *testing.T) {
	t.Parallel()

	p := Pile(All())
	p.Shuffle(rand.New(rand.NewPCG(1, 2)))

	require.Equal(t, DeckSize, p.Size())
	assert.ElementsMatch(t, All(), []Card(p))
	assert.NotEqual(t, All(), []Card(p), "a seeded shuffle of 81 cards should move something")
}

func TestPileShuffleSeeded(t *testing.T) {
	t.Parallel()

	a, b := Pile(All()), Pile(All())
	a.Shuffle(rand.New(rand.NewPCG(42, 0)))
	b.Shuffle(rand.New(rand.NewPCG(42, 0)))
	assert.Equal(t, a, b)
}

func TestPileShuffleSmall(t *testing.T) {
	t.Parallel()

	var empty Pile
	empty.Shuffle(rand.New(rand.NewPCG(1, 1)))
	assert.Zero(t, empty.Size())

	var nilPile *Pile
	assert.Zero(t, nilPile.Size())

	one := Pile{New(First, Second, Third, First)}
	one.Shuffle(rand.New(rand.NewPCG(1, 1)))
	assert.Equal(t, Pile{New(First, Second, Third, First)}, one)
}

func TestPileContainsAndKeys(t *testing.T) {
	t.Parallel()

	p := Pile{New(First, First, First, First), New(Third, Second, Second, Second)}
	assert.True(t, p.Contains(New(Third, Second, Second, Second)))
	assert.False(t, p.Contains(New(Second, Second, Second, Second)))
	assert.Equal(t, []string{"diamond:solid:red:1", "oval:striped:green:2"}, p.Keys())
}

func TestPileString(t *testing.T) {
	t.Parallel()

	p := Pile{New(First, First, First, First)}
	assert.Equal(t, "----- Pile -----\n[0]: diamond:solid:red:1\n--------------------\n", p.String())
	assert.Contains(t, Pile{}.String(), "(Empty)")
}

func TestPileDealNil(t *testing.T) {
	t.Parallel()

	var p *Pile
	assert.Empty(t, p.Deal(3))
}
