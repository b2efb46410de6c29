//START OF FILE setgame/internal/game/card/card.go
package card

// Card is immutable; two cards are the same card iff they compare equal.
type Card struct {
	shape   Property
	shading Property
	color   Property
	count   Property
}

func (c Card) Shape() Property   { return c.shape }
func (c Card) Shading() Property { return c.shading }
func (c Card) Color() Property   { return c.color }
func (c Card) Count() Property   { return c.count }

func (c Card) Key() string { return CardKey(c.shape, c.shading, c.color, c.count) }

// ---- Construtor ----

// New builds a card from its four dimensions. Out of range properties are
// folded back into the three valid variants so the result is always one of
// the 81 cards in the catalog.
func New(shape, shading, color, count Property) Card {
	return Card{
		shape:   shape % 3,
		shading: shading % 3,
		color:   color % 3,
		count:   count % 3,
	}
}

// Complete returns the only card that forms a set together with c and other.
// Each dimension is completed independently.
func (c Card) Complete(other Card) Card {
	return Card{
		shape:   Complete(c.shape, other.shape),
		shading: Complete(c.shading, other.shading),
		color:   Complete(c.color, other.color),
		count:   Complete(c.count, other.count),
	}
}

func (c Card) String() string {
	return c.Key()
}

func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.Key()), nil
}

func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

//END OF FILE setgame/internal/game/card/card.go
