// card/rule.go
package card

// IsSet reports whether x, y and z form a set: in every dimension the three
// values are either all the same or all different. Because Complete yields the
// unique value that balances a pair, checking z against x.Complete(y) is enough.
func IsSet(x, y, z Card) bool {
	return x.Complete(y) == z
}

// Balanced reports whether three properties are all equal or pairwise distinct.
func Balanced(a, b, c Property) bool {
	if a == b && b == c {
		return true
	}
	return a != b && b != c && a != c
}
