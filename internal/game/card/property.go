package card

import "fmt"

// Property is one of the three values a card can take in any dimension.
// Only equality and Complete carry meaning; the numeric order does not.
type Property uint8

const (
	First Property = iota
	Second
	Third
)

// Properties lists every variant in enumeration order.
var Properties = [...]Property{First, Second, Third}

// Complete returns the property that turns a and b into a balanced triple:
// a itself when a == b, otherwise the variant that is neither.
func Complete(a, b Property) Property {
	return Property((6 - int(a) - int(b)) % 3)
}

func (p Property) Valid() bool { return p <= Third }

func (p Property) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	case Third:
		return "third"
	}
	return fmt.Sprintf("property(%d)", uint8(p))
}
