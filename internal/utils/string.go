package utils

import (
	"fmt"
	"strings"
)

// SliceToString lists items one per line under a label, with their index.
func SliceToString[T any](label string, items []T) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "----- %s -----\n", label)

	if len(items) == 0 {
		sb.WriteString("(Empty)\n")
	} else {
		for i, item := range items {
			fmt.Fprintf(&sb, "[%d]: %v\n", i, item)
		}
	}

	sb.WriteString("--------------------\n")
	return sb.String()
}
