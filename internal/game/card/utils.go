package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned when a textual key does not name one of the 81 cards.
var ErrUnknownKey = errors.New("unknown card key")

// Nomes usados nas chaves, indexados pelo valor da propriedade.
var (
	ShapeNames   = [...]string{"diamond", "squiggle", "oval"}
	ShadingNames = [...]string{"solid", "striped", "open"}
	ColorNames   = [...]string{"red", "green", "purple"}
	CountNames   = [...]string{"1", "2", "3"}
)

// CardKey formats the four dimensions as "shape:shading:color:count",
// e.g. "oval:striped:green:2".
func CardKey(shape, shading, color, count Property) string {
	return fmt.Sprintf("%s:%s:%s:%s",
		nameOf(ShapeNames, shape),
		nameOf(ShadingNames, shading),
		nameOf(ColorNames, color),
		nameOf(CountNames, count))
}

func nameOf(names [3]string, p Property) string {
	if !p.Valid() {
		return p.String()
	}
	return names[p]
}

// ParseKey is the inverse of CardKey. Matching is case-insensitive and
// ignores surrounding whitespace.
func ParseKey(key string) (Card, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(key)), ":")
	if len(parts) != 4 {
		return Card{}, fmt.Errorf("%w: %q (want shape:shading:color:count)", ErrUnknownKey, key)
	}

	tables := [4][3]string{ShapeNames, ShadingNames, ColorNames, CountNames}
	var props [4]Property
	for i, part := range parts {
		p, ok := lookupName(tables[i], part)
		if !ok {
			return Card{}, fmt.Errorf("%w: %q has invalid field %q", ErrUnknownKey, key, part)
		}
		props[i] = p
	}
	return New(props[0], props[1], props[2], props[3]), nil
}

func lookupName(names [3]string, s string) (Property, bool) {
	for i, name := range names {
		if name == s {
			return Property(i), true
		}
	}
	return 0, false
}
