// Package finder enumerates the sets present on a board.
//
// Every 3-combination of board positions is visited in lexicographic order
// (i < j < k) and kept when the third card completes the first two. The
// sequences are lazy and restartable: ranging over them twice on the same
// board yields the same triples in the same order, and breaking out of the
// loop stops the enumeration.
package finder

import (
	"iter"
	"strings"

	"setgame/internal/game/card"
)

// Triple is one set found on a board, with the board positions it came from.
type Triple struct {
	Cards   [3]card.Card `json:"cards"`
	Indices [3]int       `json:"indices"`
}

func (t Triple) String() string {
	parts := make([]string, len(t.Cards))
	for i, c := range t.Cards {
		parts[i] = c.Key()
	}
	return strings.Join(parts, " ")
}

// Combinations yields every index triple i < j < k below n in lexicographic
// order. It holds no state, so each range over it starts from scratch.
func Combinations(n int) iter.Seq[[3]int] {
	return func(yield func([3]int) bool) {
		for i := 0; i < n-2; i++ {
			for j := i + 1; j < n-1; j++ {
				for k := j + 1; k < n; k++ {
					if !yield([3]int{i, j, k}) {
						return
					}
				}
			}
		}
	}
}

// Sets yields the valid sets on board. The board is read, never modified.
// Boards with fewer than three cards produce an empty sequence.
func Sets(board card.Pile) iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		for idx := range Combinations(len(board)) {
			x, y, z := board[idx[0]], board[idx[1]], board[idx[2]]
			if !card.IsSet(x, y, z) {
				continue
			}
			if !yield(Triple{Cards: [3]card.Card{x, y, z}, Indices: idx}) {
				return
			}
		}
	}
}

// Collect drains Sets into a slice.
func Collect(board card.Pile) []Triple {
	var out []Triple
	for t := range Sets(board) {
		out = append(out, t)
	}
	return out
}

func Count(board card.Pile) int {
	n := 0
	for range Sets(board) {
		n++
	}
	return n
}

// Binomial returns C(n, k), the number of k-combinations of n items.
func Binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}
